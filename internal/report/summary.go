package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"

	"github.com/lehigh-university-libraries/lyricstats/internal/analysis"
	"github.com/lehigh-university-libraries/lyricstats/internal/distinct"
)

// GroupSummary is one group's line in the run summary
type GroupSummary struct {
	Name            string   `json:"name" yaml:"name"`
	Rows            int      `json:"rows" yaml:"rows"`
	Entries         int      `json:"entries" yaml:"entries"`
	Score           float64  `json:"score" yaml:"score"`
	SyllableAverage float64  `json:"syllable_average" yaml:"syllableaverage"`
	Empty           bool     `json:"empty,omitempty" yaml:"empty,omitempty"`
	BelowThreshold  bool     `json:"below_threshold,omitempty" yaml:"belowthreshold,omitempty"`
	TopWords        []string `json:"top_words,omitempty" yaml:"topwords,omitempty"`
}

// Summary represents the aggregated results of an analysis run
type Summary struct {
	RunID       string         `json:"run_id" yaml:"runid"`
	Mode        string         `json:"mode" yaml:"mode"`
	GeneratedAt time.Time      `json:"generated_at" yaml:"generatedat"`
	TotalRows   int            `json:"total_rows" yaml:"totalrows"`
	Dropped     int            `json:"dropped" yaml:"dropped"`
	Groups      []GroupSummary `json:"groups" yaml:"groups"`
}

// NewSummary aggregates an analysis result
func NewSummary(result *analysis.Result) *Summary {
	s := &Summary{
		RunID:       result.RunID.String(),
		Mode:        string(result.Mode),
		GeneratedAt: time.Now(),
		Dropped:     result.Dropped,
		Groups:      make([]GroupSummary, 0, len(result.Groups)),
	}

	for _, g := range result.Groups {
		stats := BuildStats(g.Name, g.Entries, g.SyllableAverage)
		s.TotalRows += g.Rows
		s.Groups = append(s.Groups, GroupSummary{
			Name:            g.Name,
			Rows:            g.Rows,
			Entries:         len(g.Entries),
			Score:           stats.Score,
			SyllableAverage: g.SyllableAverage,
			Empty:           g.Empty,
			BelowThreshold:  len(g.Entries) < MinEntries,
			TopWords:        stats.TopWords,
		})
	}
	return s
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	sectionStyle = lipgloss.NewStyle().Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// PrintSummary prints a human-readable summary of the run
func (s *Summary) PrintSummary(w io.Writer) {
	fmt.Fprintln(w, "\n"+strings.Repeat("=", 70))
	fmt.Fprintln(w, titleStyle.Render("LYRIC STATISTICS SUMMARY"))
	fmt.Fprintln(w, strings.Repeat("=", 70))
	fmt.Fprintf(w, "Run ID: %s\n", s.RunID)
	fmt.Fprintf(w, "Generated: %s\n", s.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(w, "Mode: %s\n", s.Mode)
	fmt.Fprintf(w, "Rows: %d\n", s.TotalRows)
	if s.Dropped > 0 {
		fmt.Fprintln(w, warnStyle.Render(fmt.Sprintf("Dropped (outside every bucket): %d", s.Dropped)))
	}
	fmt.Fprintln(w)

	fmt.Fprintln(w, sectionStyle.Render("GROUPS"))
	fmt.Fprintln(w, strings.Repeat("-", 70))
	fmt.Fprintf(w, "%-20s %8s %8s %12s %12s\n", "Group", "Rows", "Words", "Score", "Syllables")
	for _, g := range s.Groups {
		line := fmt.Sprintf("%-20s %8d %8d %12.4f %12.4f", g.Name, g.Rows, g.Entries, g.Score, g.SyllableAverage)
		switch {
		case g.Empty:
			line = warnStyle.Render(line + "  (empty)")
		case g.BelowThreshold:
			line = warnStyle.Render(line + "  (too few words for a file)")
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w, strings.Repeat("=", 70))
}

// SaveToJSON saves the summary to a JSON file
func (s *Summary) SaveToJSON(path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(s); err != nil {
		return fmt.Errorf("failed to encode summary to JSON: %w", err)
	}

	return nil
}

// SaveToYAML saves the summary to a YAML file
func (s *Summary) SaveToYAML(path string) error {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write YAML file: %w", err)
	}

	return nil
}

// SaveDetailedReport writes every group's lowest and highest scoring words
// to a plain text file
func (s *Summary) SaveDetailedReport(path string, result *analysis.Result, k int) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "LYRIC DISTINCTIVENESS DETAILED REPORT\n")
	fmt.Fprintf(file, "Generated: %s\n", s.GeneratedAt.Format("2006-01-02 15:04:05"))
	fmt.Fprintf(file, "Run: %s, Mode: %s\n", s.RunID, s.Mode)
	separator := strings.Repeat("=", 80)
	fmt.Fprintf(file, "%s\n\n", separator)

	dash := strings.Repeat("-", 80)
	for i, g := range result.Groups {
		fmt.Fprintf(file, "GROUP %d: %s\n", i+1, g.Name)
		fmt.Fprintf(file, "%s\n", dash)
		fmt.Fprintf(file, "Rows: %d\n", g.Rows)
		fmt.Fprintf(file, "Syllable Average: %.4f\n", g.SyllableAverage)

		if g.Empty {
			fmt.Fprintf(file, "EMPTY GROUP\n")
		} else {
			fmt.Fprintf(file, "\nLowest scores:\n")
			for _, e := range distinct.Lowest(g.Entries, k) {
				fmt.Fprintf(file, "  %-20s %s\n", e.Word, FormatScore(e.Score))
			}
			fmt.Fprintf(file, "\nHighest scores:\n")
			for _, e := range distinct.Highest(g.Entries, k) {
				fmt.Fprintf(file, "  %-20s %s\n", e.Word, FormatScore(e.Score))
			}
		}

		fmt.Fprintf(file, "\n%s\n\n", separator)
	}

	return nil
}
