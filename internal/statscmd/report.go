package statscmd

import (
	"context"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lehigh-university-libraries/lyricstats/internal/models"
)

func executeReport(ctx context.Context, e *env, w io.Writer, table, format string) error {
	target, ok := statsTargets[table]
	if !ok {
		return fmt.Errorf("unknown table: %s (supported: genre, year)", table)
	}

	db, err := e.store()
	if err != nil {
		return err
	}
	stats, err := db.Stats(ctx, target.table)
	if err != nil {
		return err
	}

	switch format {
	case "text":
		return printTextReport(w, string(target.table), stats)
	case "json":
		return printJSONReport(w, stats)
	case "csv":
		return printCSVReport(w, stats)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func printTextReport(w io.Writer, table string, stats []models.GroupStats) error {
	fmt.Fprintln(w, "========================================")
	fmt.Fprintf(w, "Lyric Statistics: %s\n", table)
	fmt.Fprintln(w, "========================================")

	if len(stats) == 0 {
		fmt.Fprintln(w, "No statistics stored. Run `lyricstats persist` first.")
		return nil
	}

	for i, st := range stats {
		fmt.Fprintf(w, "\n[%d] %s\n", i+1, st.Label)
		fmt.Fprintf(w, "  Distinctiveness: %.4f\n", st.Score)
		fmt.Fprintf(w, "  Syllable Average: %.4f\n", st.SyllableAverage)
		fmt.Fprintf(w, "  Top Words: %s\n", truncate(strings.Join(st.TopWords, ", "), 80))
	}
	return nil
}

func printJSONReport(w io.Writer, stats []models.GroupStats) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(stats)
}

func printCSVReport(w io.Writer, stats []models.GroupStats) error {
	writer := csv.NewWriter(w)

	if err := writer.Write([]string{"Label", "Score", "Syllable Average", "Top Words"}); err != nil {
		return err
	}
	for _, st := range stats {
		row := []string{
			st.Label,
			strconv.FormatFloat(st.Score, 'f', 4, 64),
			strconv.FormatFloat(st.SyllableAverage, 'f', 4, 64),
			strings.Join(st.TopWords, ","),
		}
		if err := writer.Write(row); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// truncate shortens s to maxLen runes
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	return string(runes[:maxLen-3]) + "..."
}
