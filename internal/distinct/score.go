// Package distinct scores how over- or under-represented each word is in one
// frequency profile relative to another.
package distinct

import (
	"sort"

	"github.com/lehigh-university-libraries/lyricstats/internal/frequency"
)

// Entry is a single word with its distinctiveness score in [-1, 1]
type Entry struct {
	Score float64 `json:"score" yaml:"score"`
	Word  string  `json:"word" yaml:"word"`
}

// Score computes (countA - countB) / (countA + countB) for every word present
// in both profiles. Entries are sorted ascending by score, ties broken by word.
func Score(a, b frequency.Profile) []Entry {
	entries := make([]Entry, 0, min(len(a), len(b)))
	for word, ca := range a {
		cb, ok := b[word]
		if !ok || ca < 0 || cb < 0 || ca+cb == 0 {
			continue
		}
		entries = append(entries, Entry{
			Score: float64(ca-cb) / float64(ca+cb),
			Word:  word,
		})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score < entries[j].Score
		}
		return entries[i].Word < entries[j].Word
	})
	return entries
}

// BatchScore scores every group against the combined profile of all the
// other groups. The complement is the first argument, so words used more by
// the group itself score low.
func BatchScore(set frequency.Set) map[string][]Entry {
	out := make(map[string][]Entry, len(set))
	for name, profile := range set {
		out[name] = Score(frequency.Complement(name, set), profile)
	}
	return out
}

// Lowest returns up to k entries from the start of an ascending slice
func Lowest(entries []Entry, k int) []Entry {
	if k < 0 {
		k = 0
	}
	return entries[:min(k, len(entries))]
}

// Highest returns up to k entries from the end of an ascending slice,
// highest score first
func Highest(entries []Entry, k int) []Entry {
	if k < 0 {
		k = 0
	}
	n := min(k, len(entries))
	out := make([]Entry, n)
	for i := 0; i < n; i++ {
		out[i] = entries[len(entries)-1-i]
	}
	return out
}
