package report

import (
	"github.com/lehigh-university-libraries/lyricstats/internal/analysis"
	"github.com/lehigh-university-libraries/lyricstats/internal/distinct"
	"github.com/lehigh-university-libraries/lyricstats/internal/models"
)

// BuildStats condenses a group's ascending entries into the stats record:
// the mean of the first TopN scores and their words. A group with no
// entries scores 0.
func BuildStats(label string, entries []distinct.Entry, syllableAverage float64) models.GroupStats {
	head := distinct.Lowest(entries, TopN)

	stats := models.GroupStats{
		Label:           label,
		SyllableAverage: syllableAverage,
		TopWords:        make([]string, len(head)),
	}

	var sum float64
	for i, e := range head {
		sum += e.Score
		stats.TopWords[i] = e.Word
	}
	if len(head) > 0 {
		stats.Score = sum / float64(len(head))
	}
	return stats
}

// StatsFromResult builds the stats record of every non-empty group
func StatsFromResult(result *analysis.Result) []models.GroupStats {
	out := make([]models.GroupStats, 0, len(result.Groups))
	for _, g := range result.Groups {
		if g.Empty {
			continue
		}
		out = append(out, BuildStats(g.Name, g.Entries, g.SyllableAverage))
	}
	return out
}
