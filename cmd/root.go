package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/friendlyzoo/zoo/pkg/config"
)

func Execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()
	config.SetDefaults(v)

	rootCmd := &cobra.Command{
		Use:   "zoo",
		Short: "Generate friendly animal names",
		Long: `Zoo generates random, human-friendly names made of adjectives and an
animal, such as "poor-ballsy-elegant-camel" or "HappyLazyFox".

Names can be joined snake_case, kebab-case, CamelCase, dromedaryCase, in
screaming variants, or with any single-character delimiter.`,
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, v)
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/zoo/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (trace, debug, info, warn, error)")
	rootCmd.PersistentFlags().Uint64("seed", 0, "seed for repeatable output")
	rootCmd.PersistentFlags().StringP("words", "w", "", "yaml file with custom adjectives and animals")

	flags := rootCmd.Flags()
	flags.StringP("delimiter", "d", "", "join words with this single character")
	flags.StringP("species", "s", "", "naming style: snake, screaming_snake, camel, dromedary, kebab, screaming_kebab")
	flags.Uint8P("adjectives", "n", 1, "number of adjectives before the animal")
	flags.IntP("count", "c", 1, "number of names to generate")
	rootCmd.MarkFlagsMutuallyExclusive("delimiter", "species")

	persistent := rootCmd.PersistentFlags()
	_ = v.BindPFlag(config.KeyLogLevel, persistent.Lookup("log-level"))
	_ = v.BindPFlag(config.KeySeed, persistent.Lookup("seed"))
	_ = v.BindPFlag(config.KeyWords, persistent.Lookup("words"))
	for key, flag := range map[string]string{
		config.KeyDelimiter:  "delimiter",
		config.KeySpecies:    "species",
		config.KeyAdjectives: "adjectives",
		config.KeyCount:      "count",
	} {
		_ = v.BindPFlag(key, flags.Lookup(flag))
	}

	rootCmd.AddCommand(newSpeciesCmd(v))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}

		// Search order: ~/.config/zoo, ~/.zoo, current dir
		v.AddConfigPath(filepath.Join(home, ".config", "zoo"))
		v.AddConfigPath(filepath.Join(home, ".zoo"))
		v.AddConfigPath(".")
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("ZOO")
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("failed to load config: %w", err)
	}
	return nil
}

func newLogger(cmd *cobra.Command, cfg *config.Config) hclog.Logger {
	return hclog.New(&hclog.LoggerOptions{
		Name:   "zoo",
		Level:  cfg.Level(),
		Output: cmd.ErrOrStderr(),
	})
}

// preferFlagStyle lets a -d or -s flag override the other style key coming
// from the environment or a config file. Both flags at once are rejected by
// cobra before this runs.
func preferFlagStyle(cmd *cobra.Command, v *viper.Viper) {
	flags := cmd.Flags()
	switch {
	case flags.Changed("delimiter") && !flags.Changed("species"):
		v.Set(config.KeySpecies, "")
	case flags.Changed("species") && !flags.Changed("delimiter"):
		v.Set(config.KeyDelimiter, "")
	}
}

func runGenerate(cmd *cobra.Command, v *viper.Viper) error {
	preferFlagStyle(cmd, v)

	cfg, err := config.FromViper(v)
	if err != nil {
		return err
	}

	logger := newLogger(cmd, cfg)
	if used := v.ConfigFileUsed(); used != "" {
		logger.Debug("loaded config", "path", used)
	}

	zoo, err := cfg.Zoo()
	if err != nil {
		return err
	}
	zoo.SetLogger(logger.Named("namegen"))

	logger.Debug("generating names",
		"species", zoo.Species(),
		"adjectives", zoo.Adjectives(),
		"count", cfg.Count,
		"seeded", cfg.Seed != nil)

	out := cmd.OutOrStdout()
	printed := 0
	for name := range zoo.AllWithRand(cfg.Rand()) {
		fmt.Fprintln(out, name)
		printed++
		if printed == cfg.Count {
			break
		}
	}
	return nil
}
