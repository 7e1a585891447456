package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/friendlyzoo/zoo/pkg/namegen"
	"github.com/friendlyzoo/zoo/pkg/vocab"
)

// Keys understood by FromViper. Environment variables use the ZOO_ prefix,
// e.g. ZOO_ADJECTIVES.
const (
	KeySpecies    = "species"
	KeyDelimiter  = "delimiter"
	KeyAdjectives = "adjectives"
	KeyCount      = "count"
	KeySeed       = "seed"
	KeyLogLevel   = "log_level"
	KeyWords      = "words"
)

// MaxAdjectives is the largest adjective count accepted from configuration.
const MaxAdjectives = 255

// DefaultSpecies is used when neither a species nor a delimiter is configured.
var DefaultSpecies = namegen.Kebab

// ErrConflict is returned when both a species and a delimiter are configured.
var ErrConflict = errors.New("species and delimiter are mutually exclusive")

// Config represents the zoo generator configuration
type Config struct {
	Species    string
	Delimiter  string
	Adjectives int
	Count      int
	Seed       *uint64
	LogLevel   string
	Words      string
}

// Words is a custom word list file
type Words struct {
	Adjectives []string `yaml:"adjectives"`
	Animals    []string `yaml:"animals"`
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyAdjectives, 1)
	v.SetDefault(KeyCount, 1)
	v.SetDefault(KeyLogLevel, "warn")
}

// FromViper reads the configuration from v and validates it.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Species:    v.GetString(KeySpecies),
		Delimiter:  v.GetString(KeyDelimiter),
		Adjectives: v.GetInt(KeyAdjectives),
		Count:      v.GetInt(KeyCount),
		LogLevel:   v.GetString(KeyLogLevel),
		Words:      v.GetString(KeyWords),
	}
	if v.IsSet(KeySeed) {
		seed := v.GetUint64(KeySeed)
		cfg.Seed = &seed
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and conflicting settings.
func (c *Config) Validate() error {
	if c.Adjectives < 0 || c.Adjectives > MaxAdjectives {
		return fmt.Errorf("invalid adjective count %d: must be between 0 and %d", c.Adjectives, MaxAdjectives)
	}
	if c.Count < 1 {
		return fmt.Errorf("invalid count %d: must be at least 1", c.Count)
	}
	if c.Species != "" && c.Delimiter != "" {
		return ErrConflict
	}
	if c.LogLevel != "" && hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// ResolveSpecies returns the configured species. A delimiter takes the form
// of a custom species; with neither set DefaultSpecies is used.
func (c *Config) ResolveSpecies() (namegen.Species, error) {
	switch {
	case c.Delimiter != "":
		return namegen.ParseDelimiter(c.Delimiter)
	case c.Species != "":
		return namegen.ParseSpecies(c.Species)
	default:
		return DefaultSpecies, nil
	}
}

// Level returns the configured log level, defaulting to warn.
func (c *Config) Level() hclog.Level {
	if c.LogLevel == "" {
		return hclog.Warn
	}
	return hclog.LevelFromString(c.LogLevel)
}

// Rand returns a seeded source when a seed is configured.
func (c *Config) Rand() namegen.Rand {
	if c.Seed != nil {
		return namegen.NewSeededRand(*c.Seed)
	}
	return namegen.DefaultRand()
}

// Vocabulary returns the word lists names are drawn from. Lists missing from
// the words file fall back to the built-in ones. A configured words file that
// does not exist is an error.
func (c *Config) Vocabulary() (vocab.Vocabulary, error) {
	if c.Words == "" {
		return vocab.Default, nil
	}

	if _, err := os.Stat(c.Words); err != nil {
		return nil, fmt.Errorf("words file %s: %w", c.Words, err)
	}

	words, err := LoadWords(c.Words)
	if err != nil {
		return nil, err
	}
	if words.Adjectives == nil && words.Animals == nil {
		return vocab.Default, nil
	}

	adjectives, animals := words.Adjectives, words.Animals
	if adjectives == nil {
		adjectives = vocab.Default.Adjectives()
	}
	if animals == nil {
		animals = vocab.Default.Animals()
	}

	v, err := vocab.New(adjectives, animals)
	if err != nil {
		return nil, fmt.Errorf("words file %s: %w", c.Words, err)
	}
	return v, nil
}

// Zoo builds a generator from the configuration.
func (c *Config) Zoo() (*namegen.Zoo, error) {
	species, err := c.ResolveSpecies()
	if err != nil {
		return nil, err
	}
	v, err := c.Vocabulary()
	if err != nil {
		return nil, err
	}
	return namegen.New(species, c.Adjectives).WithVocabulary(v), nil
}

// LoadWords reads a word list file
func LoadWords(path string) (*Words, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Words{}, nil
		}
		return nil, err
	}

	var words Words
	if err := yaml.Unmarshal(data, &words); err != nil {
		return nil, fmt.Errorf("failed to parse words file: %w", err)
	}

	return &words, nil
}
