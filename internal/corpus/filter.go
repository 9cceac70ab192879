package corpus

import (
	"strings"

	"github.com/lehigh-university-libraries/lyricstats/internal/models"
)

// Complete reports whether a row carries every field the analysis needs.
// Decoders turn a null field into its zero value, so an empty string or a
// zero year counts as missing.
func Complete(row models.Row) bool {
	return strings.TrimSpace(row.Song) != "" &&
		strings.TrimSpace(row.Artist) != "" &&
		strings.TrimSpace(row.Lyrics) != "" &&
		strings.TrimSpace(row.Genre) != "" &&
		row.Year != 0
}

// DropIncomplete filters rows in place and returns the kept rows with the
// number dropped.
func DropIncomplete(rows []models.Row) ([]models.Row, int) {
	kept := rows[:0]
	for _, row := range rows {
		if Complete(row) {
			kept = append(kept, row)
		}
	}
	return kept, len(rows) - len(kept)
}
