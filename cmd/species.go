package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/friendlyzoo/zoo/pkg/config"
	"github.com/friendlyzoo/zoo/pkg/namegen"
)

func newSpeciesCmd(v *viper.Viper) *cobra.Command {
	var adjectives int

	cmd := &cobra.Command{
		Use:   "species",
		Short: "List available naming styles with an example each",
		Long: `List available naming styles with an example each.

Examples are drawn from the configured words file and seed, if any.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.FromViper(v)
			if err != nil {
				return err
			}
			vocabulary, err := cfg.Vocabulary()
			if err != nil {
				return err
			}
			r := cfg.Rand()
			zoo := namegen.Default().WithVocabulary(vocabulary).WithAdjectives(adjectives)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "SPECIES\tDELIMITER\tEXAMPLE")
			for _, s := range namegen.AllSpecies() {
				delim := "(none)"
				if d, ok := s.Delimiter(); ok {
					delim = string(d)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", s, delim, zoo.WithSpecies(s).GenerateWithRand(r))
			}
			return w.Flush()
		},
	}

	cmd.Flags().IntVarP(&adjectives, "adjectives", "n", 2, "number of adjectives in the examples")

	return cmd
}
