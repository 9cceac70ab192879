package statscmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lehigh-university-libraries/lyricstats/internal/corpus"
	"github.com/lehigh-university-libraries/lyricstats/internal/series"
)

// NewImportCmd creates the import command for loading row files into the store
func NewImportCmd(g *Globals) *cobra.Command {
	var sampleSize int
	var raw bool

	cmd := &cobra.Command{
		Use:   "import <rows.parquet|rows.jsonl>",
		Short: "Import song rows into the database",
		Long: `Import song rows from a parquet or JSONL file into the media table.

Each row needs song, artist, lyrics, genre and year. Lyrics are cleaned before
they are stored: markup is stripped, punctuation becomes whitespace and the
text is lowercased.`,
		Example: `  # Import every row
  lyricstats import ./billboard.parquet

  # Import the first 500 rows without cleaning
  lyricstats import ./billboard.jsonl --sample 500 --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := g.setup()
			if err != nil {
				return err
			}
			defer env.Close()
			return executeImport(cmd.Context(), env, args[0], sampleSize, !raw)
		},
	}

	cmd.Flags().IntVar(&sampleSize, "sample", -1, "Number of rows to import (-1 for all)")
	cmd.Flags().BoolVar(&raw, "raw", false, "Store lyrics as-is instead of cleaning them")

	return cmd
}

// NewExportCmd creates the export command for dumping the store to parquet
func NewExportCmd(g *Globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "export <rows.parquet>",
		Short: "Export complete song rows to a parquet file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := g.setup()
			if err != nil {
				return err
			}
			defer env.Close()
			return executeExport(cmd.Context(), env, args[0])
		},
	}

	return cmd
}

// NewClassifyCmd creates the classify command for resolving raw store genres
func NewClassifyCmd(g *Globals) *cobra.Command {
	var strategy string
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Resolve raw store genre lists to a single corpus genre",
		Long: `Resolve every song's comma-separated store genres to one of the corpus
genres using the subgenre weighting table.

Songs whose genres match nothing in the table are removed from the database.

Strategies:
  first    first corpus genre in table order with any weight (default)
  last     last corpus genre in table order with any weight
  highest  heaviest corpus genre, earlier genres win ties`,
		Example: `  # Preview the result
  lyricstats classify --dry-run

  # Pick the heaviest genre
  lyricstats classify --strategy highest`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := g.setup()
			if err != nil {
				return err
			}
			defer env.Close()
			if strategy == "" {
				strategy = env.cfg.GenreStrategy
			}
			return executeClassify(cmd.Context(), env, strategy, dryRun)
		},
	}

	cmd.Flags().StringVar(&strategy, "strategy", "", "Tie-break strategy (first, last, highest); defaults to the config value")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the resolved genres without updating the database")

	return cmd
}

// NewDistinctCmd creates the distinct command for scoring and writing the
// per-group distinctiveness files
func NewDistinctCmd(g *Globals) *cobra.Command {
	var mode string
	var input string
	var outputJSON string
	var outputYAML string
	var outputReport string

	cmd := &cobra.Command{
		Use:   "distinct",
		Short: "Score word distinctiveness per group and write the top/bottom 100 files",
		Long: `Partition the corpus, score every group's words against the rest of the
corpus and write one <group>_distinctiveness.txt file per group.

Each file lists the 100 lowest scoring words next to the 100 highest scoring
ones. Groups with fewer than 101 scored words get no file.`,
		Example: `  # Genre files from the database
  lyricstats distinct --mode genre

  # Decade files straight from a parquet file, with a YAML summary
  lyricstats distinct --mode decade --input ./billboard.parquet --output-yaml decade.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := corpus.ParseMode(mode)
			if err != nil {
				return err
			}
			env, err := g.setup()
			if err != nil {
				return err
			}
			defer env.Close()
			return executeDistinct(cmd.Context(), env, distinctOptions{
				mode:         m,
				input:        input,
				outputJSON:   outputJSON,
				outputYAML:   outputYAML,
				outputReport: outputReport,
			})
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "genre", "Partition mode (genre, year, decade)")
	cmd.Flags().StringVar(&input, "input", "", "Read rows from a parquet or JSONL file instead of the database")
	cmd.Flags().StringVar(&outputJSON, "output-json", "", "Path to a JSON run summary")
	cmd.Flags().StringVar(&outputYAML, "output-yaml", "", "Path to a YAML run summary")
	cmd.Flags().StringVar(&outputReport, "output-report", "", "Path to a detailed text report")

	return cmd
}

// NewPersistCmd creates the persist command for writing the stats tables
func NewPersistCmd(g *Globals) *cobra.Command {
	var tables []string

	cmd := &cobra.Command{
		Use:   "persist",
		Short: "Compute per-group statistics and store them in genre_stats and year_stats",
		Long: `Compute the distinctiveness average, syllable average and top 100 words of
every group and write them to the stats tables.

genre_stats is keyed by genre, year_stats by decade. A group's existing row is
replaced.`,
		Example: `  lyricstats persist
  lyricstats persist --table genre`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := g.setup()
			if err != nil {
				return err
			}
			defer env.Close()
			return executePersist(cmd.Context(), env, tables)
		},
	}

	cmd.Flags().StringSliceVar(&tables, "table", []string{"genre", "year"}, "Tables to write (genre, year)")

	return cmd
}

// NewReportCmd creates the report command for printing stored statistics
func NewReportCmd(g *Globals) *cobra.Command {
	var table string
	var format string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print stored per-group statistics",
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := g.setup()
			if err != nil {
				return err
			}
			defer env.Close()
			return executeReport(cmd.Context(), env, cmd.OutOrStdout(), table, format)
		},
	}

	cmd.Flags().StringVar(&table, "table", "genre", "Stats table (genre, year)")
	cmd.Flags().StringVar(&format, "format", "text", "Output format (text, json, csv)")

	return cmd
}

// NewSeriesCmd creates the series command for exporting per-genre syllable
// time series
func NewSeriesCmd(g *Globals) *cobra.Command {
	var selection string
	var format string
	var input string

	cmd := &cobra.Command{
		Use:   "series",
		Short: "Export per-genre syllable averages by year for plotting",
		Long: fmt.Sprintf(`Compute every song's syllable average and group the points by genre and
year, then write one file per figure.

Selections:
  %-9s every genre together plus one figure per genre
  %-9s every genre on one figure
  %-9s one figure per genre
  A,B,...   the listed genres on one figure`, series.SelectAll, series.SelectTogether, series.SelectIndiv),
		Example: `  lyricstats series --select all
  lyricstats series --select "Rock,Pop,Country" --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := g.setup()
			if err != nil {
				return err
			}
			defer env.Close()
			return executeSeries(cmd.Context(), env, input, selection, format)
		},
	}

	cmd.Flags().StringVar(&selection, "select", series.SelectAll, "Figures to export (all, together, indiv, or a comma-separated genre list)")
	cmd.Flags().StringVar(&format, "format", "csv", "Output format (csv, json)")
	cmd.Flags().StringVar(&input, "input", "", "Read rows from a parquet or JSONL file instead of the database")

	return cmd
}
