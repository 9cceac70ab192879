// Package frequency builds per-group word frequency profiles and the shared
// vocabulary they are compared over.
package frequency

import (
	"strings"
	"unicode/utf8"

	"github.com/lehigh-university-libraries/lyricstats/internal/models"
)

// Vocabulary length bounds, in runes. Shorter tokens are mostly articles and
// interjections, longer ones are scraping artifacts.
const (
	MinWordLen = 4
	MaxWordLen = 16
)

// Profile maps a word to the number of times it occurs in a group
type Profile map[string]int

// Set maps a group name to its profile
type Set map[string]Profile

// Count tallies every whitespace-delimited token across the rows' lyrics.
// Tokens are counted with repetition.
func Count(rows []models.Row) Profile {
	profile := make(Profile)
	for _, row := range rows {
		for _, word := range strings.Fields(row.Lyrics) {
			profile[word]++
		}
	}
	return profile
}

// CountAll counts every group of a partition
func CountAll(groups map[string][]models.Row) Set {
	set := make(Set, len(groups))
	for name, rows := range groups {
		set[name] = Count(rows)
	}
	return set
}

// Complement sums the profiles of every group except exclude. When exclude is
// not in the set the result is the full aggregate.
func Complement(exclude string, set Set) Profile {
	out := make(Profile)
	for name, profile := range set {
		if name == exclude {
			continue
		}
		for word, n := range profile {
			out[word] += n
		}
	}
	return out
}

// Total sums every profile in the set
func Total(set Set) Profile {
	out := make(Profile)
	for _, profile := range set {
		for word, n := range profile {
			out[word] += n
		}
	}
	return out
}

// Normalize restricts every profile to the shared vocabulary: the union of
// all words, minus words shorter than MinWordLen or longer than MaxWordLen.
// The input set is left untouched.
func Normalize(set Set) Set {
	vocabulary := make(map[string]struct{})
	for _, profile := range set {
		for word := range profile {
			if inVocabulary(word) {
				vocabulary[word] = struct{}{}
			}
		}
	}

	out := make(Set, len(set))
	for name, profile := range set {
		restricted := make(Profile, len(profile))
		for word, n := range profile {
			if _, ok := vocabulary[word]; ok {
				restricted[word] = n
			}
		}
		out[name] = restricted
	}
	return out
}

func inVocabulary(word string) bool {
	n := utf8.RuneCountInString(word)
	return n >= MinWordLen && n <= MaxWordLen
}
