package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/lyricstats/internal/statscmd"
)

func NewRootCmd() *cobra.Command {
	g := &statscmd.Globals{}

	cmd := &cobra.Command{
		Use:   "lyricstats",
		Short: "Lexical distinctiveness and syllable statistics for song lyrics",
		Long: `Lyricstats compares the vocabulary of song lyrics grouped by genre, year or
decade.

For every group it scores how over- or under-represented each word is against
the rest of the corpus and estimates the average syllables per word, using the
CMU pronouncing dictionary with a spelling heuristic as fallback.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&g.ConfigPath, "config", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&g.Database, "db", "", "SQLite database path (overrides config)")
	cmd.PersistentFlags().StringVar(&g.Dictionary, "dictionary", "", "CMU pronouncing dictionary path (overrides config)")
	cmd.PersistentFlags().StringVar(&g.LogFile, "log-file", "", "Also write JSON logs to this file")
	cmd.PersistentFlags().BoolVar(&g.Verbose, "verbose", false, "Verbose logging")

	// Add subcommands
	cmd.AddCommand(statscmd.NewImportCmd(g))
	cmd.AddCommand(statscmd.NewExportCmd(g))
	cmd.AddCommand(statscmd.NewClassifyCmd(g))
	cmd.AddCommand(statscmd.NewDistinctCmd(g))
	cmd.AddCommand(statscmd.NewPersistCmd(g))
	cmd.AddCommand(statscmd.NewReportCmd(g))
	cmd.AddCommand(statscmd.NewSeriesCmd(g))

	return cmd
}
