// Package report formats distinctiveness results and per-group summaries for
// files, the terminal and the stats tables.
package report

import (
	"bufio"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/lehigh-university-libraries/lyricstats/internal/distinct"
)

const (
	// TopN is the number of entries listed from each end of a group's scores
	TopN = 100
	// MinEntries is the smallest group that gets a distinctiveness file
	MinEntries = TopN + 1

	leftColumnWidth = 35
	fileSuffix      = "_distinctiveness.txt"
)

// FileName returns the distinctiveness file name for a group label. Slashes
// in labels such as "R&B/Soul" would otherwise be read as directories.
func FileName(label string) string {
	return strings.ReplaceAll(label, "/", "_") + fileSuffix
}

// FormatLines renders the TopN lowest entries next to the TopN highest ones.
// Entries must be sorted ascending and hold at least TopN items.
func FormatLines(entries []distinct.Entry) ([]string, error) {
	if len(entries) < TopN {
		return nil, fmt.Errorf("need %d entries, have %d", TopN, len(entries))
	}

	left := distinct.Lowest(entries, TopN)
	right := distinct.Highest(entries, TopN)

	maxRight := 0
	for _, e := range right {
		maxRight = max(maxRight, utf8.RuneCountInString(e.Word))
	}

	lines := make([]string, TopN)
	for i := range TopN {
		l, r := left[i], right[i]
		var sb strings.Builder
		sb.WriteString(l.Word)
		sb.WriteString(padLeft(FormatScore(l.Score), leftColumnWidth-utf8.RuneCountInString(l.Word)))
		sb.WriteString(" ")
		sb.WriteString(r.Word)
		sb.WriteString(" \t")
		sb.WriteString(padRight(FormatScore(r.Score), maxRight-utf8.RuneCountInString(r.Word)))
		sb.WriteString("\t")
		lines[i] = sb.String()
	}
	return lines, nil
}

// WriteDistinctFiles writes one file per group into dir. Groups with fewer
// than MinEntries entries are skipped and returned.
func WriteDistinctFiles(dir string, names []string, batch map[string][]distinct.Entry) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var skipped []string
	for _, name := range names {
		entries := batch[name]
		if len(entries) < MinEntries {
			slog.Warn("Too few distinctiveness entries, skipping file", "group", name, "entries", len(entries), "required", MinEntries)
			skipped = append(skipped, name)
			continue
		}

		lines, err := FormatLines(entries)
		if err != nil {
			return skipped, fmt.Errorf("group %s: %w", name, err)
		}

		path := filepath.Join(dir, FileName(name))
		if err := writeLines(path, lines); err != nil {
			return skipped, err
		}
		slog.Debug("Wrote distinctiveness file", "group", name, "path", path)
	}
	return skipped, nil
}

func writeLines(path string, lines []string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	for _, line := range lines {
		w.WriteString(line)
		w.WriteString("\n")
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write report file: %w", err)
	}
	return nil
}

// FormatScore prints the shortest representation that round-trips, keeping
// a ".0" on integral values so the column reads as floats
func FormatScore(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eIn") {
		s += ".0"
	}
	return s
}

func padLeft(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return strings.Repeat(" ", n) + s
}

func padRight(s string, width int) string {
	n := width - utf8.RuneCountInString(s)
	if n <= 0 {
		return s
	}
	return s + strings.Repeat(" ", n)
}
