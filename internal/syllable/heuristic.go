package syllable

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const vowels = "aeiouy"

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// Heuristic estimates the syllables of a word from its spelling. It counts
// vowel groups, corrects for silent and syllabic endings, and special-cases a
// few tokens common in lyrics (vocalised "ooo"/"mm", "ll" from contractions,
// "x2" repeat markers).
func Heuristic(word string) int {
	word = strings.Trim(strings.ToLower(word), ".:;?!")
	if word == "" {
		return 0
	}
	runes := []rune(word)

	count := 0
	if isVowel(runes[0]) {
		count++
	}
	for i := 1; i < len(runes); i++ {
		if isVowel(runes[i]) && !isVowel(runes[i-1]) {
			count++
		}
	}

	if strings.HasSuffix(word, "e") {
		count--
	}
	if strings.HasSuffix(word, "le") || strings.HasSuffix(word, "a") {
		count++
	}
	if count == 0 {
		count = 1
	}

	if strings.Contains(word, "ooo") || strings.Contains(word, "mm") {
		count = 1
	}
	if word == "ll" {
		count = 0
	}
	if len(runes) >= 2 && runes[0] == 'x' && unicode.IsDigit(runes[1]) {
		count = 0
	}
	if word == "lmfao" {
		count = 5
	}
	if utf8.RuneCountInString(word) < 2 && !strings.Contains("aiyo", word) {
		count = 0
	}
	return count
}
