package cmd

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/friendlyzoo/zoo/pkg/config"
	"github.com/friendlyzoo/zoo/pkg/namegen"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRootCommand(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		pattern string
	}{
		{"default", nil, `^[a-z]+-[a-z]+\n$`},
		{"snake", []string{"-s", "snake", "-n", "2"}, `^[a-z]+_[a-z]+_[a-z]+\n$`},
		{"screaming kebab", []string{"--species", "screaming_kebab"}, `^[A-Z]+-[A-Z]+\n$`},
		{"camel", []string{"-s", "camel", "-n", "2"}, `^[A-Z][a-z]+[A-Z][a-z]+[A-Z][a-z]+\n$`},
		{"dromedary", []string{"-s", "dromedary", "-n", "2"}, `^[a-z]+[A-Z][a-z]+[A-Z][a-z]+\n$`},
		{"dromedary without adjectives", []string{"-s", "dromedary", "-n", "0"}, `^[a-z]+\n$`},
		{"custom delimiter", []string{"-d", "$", "--adjectives", "3"}, `^([a-z]+\$){3}[a-z]+\n$`},
		{"no adjectives", []string{"-d", "$", "-n", "0"}, `^[a-z]+\n$`},
		{"count", []string{"-c", "3"}, `^([a-z]+-[a-z]+\n){3}$`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stdout, _, err := execute(t, tt.args...)
			require.NoError(t, err)
			assert.Regexp(t, regexp.MustCompile(tt.pattern), stdout)
		})
	}
}

func TestRootCommandErrors(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errContains string
	}{
		{"unparsable count", []string{"-n", "abc"}, "invalid argument"},
		{"count out of range", []string{"-n", "300"}, "invalid argument"},
		{"unknown species", []string{"-s", "hydra"}, "unknown species"},
		{"long delimiter", []string{"-d", "ab"}, "exactly one character"},
		{"missing value", []string{"-d"}, "needs an argument"},
		{"unknown flag", []string{"--bogus"}, "unknown flag"},
		{"delimiter and species", []string{"-d", "$", "-s", "snake"}, "delimiter"},
		{"zero names", []string{"-c", "0"}, "invalid count"},
		{"positional argument", []string{"snake"}, "unknown command"},
		{"missing config", []string{"--config", "/nonexistent/zoo.yaml"}, "failed to load config"},
		{"missing words file", []string{"-w", "/nonexistent/words.yaml"}, "no such file"},
		{"species with missing words file", []string{"species", "-w", "/nonexistent/words.yaml"}, "no such file"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errContains)
		})
	}
}

func TestRootCommandSeed(t *testing.T) {
	first, _, err := execute(t, "--seed", "7", "-c", "4", "-n", "3")
	require.NoError(t, err)
	second, _, err := execute(t, "--seed", "7", "-c", "4", "-n", "3")
	require.NoError(t, err)

	assert.Equal(t, first, second)

	want := namegen.New(namegen.Kebab, 3).GenerateNWithRand(namegen.NewSeededRand(7), 4)
	assert.Equal(t, strings.Join(want, "\n")+"\n", first)
}

func TestRootCommandStyleFlagOverrides(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		config  string
		args    []string
		pattern string
	}{
		{
			name:    "delimiter flag over env species",
			env:     map[string]string{"ZOO_SPECIES": "camel"},
			args:    []string{"-d", "+", "-n", "2"},
			pattern: `^[a-z]+\+[a-z]+\+[a-z]+\n$`,
		},
		{
			name:    "delimiter flag over file species",
			config:  "species: camel\n",
			args:    []string{"-d", "+", "-n", "2"},
			pattern: `^[a-z]+\+[a-z]+\+[a-z]+\n$`,
		},
		{
			name:    "species flag over file delimiter",
			config:  "delimiter: \"+\"\n",
			args:    []string{"-s", "camel", "-n", "2"},
			pattern: `^[A-Z][a-z]+[A-Z][a-z]+[A-Z][a-z]+\n$`,
		},
		{
			name:    "species flag over env delimiter",
			env:     map[string]string{"ZOO_DELIMITER": "+"},
			args:    []string{"-s", "snake", "-n", "1"},
			pattern: `^[a-z]+_[a-z]+\n$`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			args := tt.args
			if tt.config != "" {
				args = append([]string{"--config", writeFile(t, "config.yaml", tt.config)}, args...)
			}

			stdout, _, err := execute(t, args...)
			require.NoError(t, err)
			assert.Regexp(t, tt.pattern, stdout)
		})
	}
}

func TestRootCommandStyleConflictInEnv(t *testing.T) {
	t.Setenv("ZOO_SPECIES", "camel")
	t.Setenv("ZOO_DELIMITER", "+")

	_, _, err := execute(t)
	assert.ErrorIs(t, err, config.ErrConflict)
}

func TestRootCommandWords(t *testing.T) {
	words := writeFile(t, "words.yaml", "adjectives: [happy]\nanimals: [fox]\n")

	stdout, _, err := execute(t, "-w", words, "-s", "camel")
	require.NoError(t, err)
	assert.Equal(t, "HappyFox\n", stdout)

	bad := writeFile(t, "bad.yaml", "animals: []\n")
	_, _, err = execute(t, "-w", bad)
	assert.ErrorContains(t, err, "no animals")
}

func TestRootCommandEnv(t *testing.T) {
	t.Setenv("ZOO_SPECIES", "screaming_snake")
	t.Setenv("ZOO_ADJECTIVES", "2")

	stdout, _, err := execute(t)
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Z]+_[A-Z]+_[A-Z]+\n$`, stdout)

	// flags win over the environment
	stdout, _, err = execute(t, "-n", "0")
	require.NoError(t, err)
	assert.Regexp(t, `^[A-Z]+\n$`, stdout)
}

func TestRootCommandConfigFile(t *testing.T) {
	cfg := writeFile(t, "config.yaml", "species: camel\nadjectives: 0\ncount: 2\n")

	stdout, _, err := execute(t, "--config", cfg)
	require.NoError(t, err)
	assert.Regexp(t, `^([A-Z][a-z]+\n){2}$`, stdout)
}

func TestRootCommandLogging(t *testing.T) {
	_, stderr, err := execute(t, "--log-level", "debug", "-n", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "generating names")

	_, stderr, err = execute(t)
	require.NoError(t, err)
	assert.Empty(t, stderr)
}

func TestSpeciesCommandUsesWordsAndSeed(t *testing.T) {
	words := writeFile(t, "words.yaml", "adjectives: [happy]\nanimals: [fox]\n")

	stdout, _, err := execute(t, "species", "-w", words, "--seed", "3")
	require.NoError(t, err)

	for _, example := range []string{"happy_fox", "HAPPY_FOX", "HappyFox", "happyFox", "happy-fox", "HAPPY-FOX"} {
		assert.Contains(t, stdout, example)
	}
}

func TestSpeciesCommand(t *testing.T) {
	stdout, _, err := execute(t, "species")
	require.NoError(t, err)

	for _, token := range []string{"SPECIES", "snake", "screaming_snake", "camel", "dromedary", "kebab", "screaming_kebab", "(none)"} {
		assert.Contains(t, stdout, token)
	}
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 7)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, stdout, "zoo dev (")
	assert.NotContains(t, stdout, "commit:")

	stdout, _, err = execute(t, "version", "--json")
	require.NoError(t, err)

	var info VersionInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	assert.Equal(t, Version, info.Version)
	assert.Contains(t, info.Platform, "/")
}
