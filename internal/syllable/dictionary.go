package syllable

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// Dictionary maps a lowercase word to the syllable count of each of its
// pronunciation variants, in file order
type Dictionary struct {
	counts map[string][]int
}

// LoadDictionaryFile opens and parses a CMU pronouncing dictionary file
func LoadDictionaryFile(path string) (*Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open pronunciation dictionary: %w", err)
	}
	defer f.Close()

	d, err := LoadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return d, nil
}

// LoadDictionary parses the CMU pronouncing dictionary format:
//
//	;;; comment
//	WORD  W ER1 D
//	WORD(1)  W ER0 D
//
// A pronunciation's syllable count is the number of phonemes carrying a
// stress digit.
func LoadDictionary(r io.Reader) (*Dictionary, error) {
	d := &Dictionary{counts: make(map[string][]int)}

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		word, count, ok := parseLine(scanner.Text())
		if ok {
			d.counts[word] = append(d.counts[word], count)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error reading dictionary: %w", err)
	}
	return d, nil
}

func parseLine(line string) (string, int, bool) {
	if strings.HasPrefix(line, ";;;") {
		return "", 0, false
	}
	fields := strings.Fields(line)
	if len(fields) < 2 {
		return "", 0, false
	}

	word := fields[0]
	if i := strings.IndexByte(word, '('); i > 0 && strings.HasSuffix(word, ")") {
		word = word[:i]
	}

	count := 0
	for _, phoneme := range fields[1:] {
		if unicode.IsDigit(rune(phoneme[len(phoneme)-1])) {
			count++
		}
	}
	return strings.ToLower(word), count, true
}

// Lookup returns the syllable counts of every variant of word. The word is
// matched as given, so callers lowercase it first.
func (d *Dictionary) Lookup(word string) ([]int, bool) {
	if d == nil {
		return nil, false
	}
	counts, ok := d.counts[word]
	return counts, ok
}

// Len returns the number of distinct words
func (d *Dictionary) Len() int {
	if d == nil {
		return 0
	}
	return len(d.counts)
}
