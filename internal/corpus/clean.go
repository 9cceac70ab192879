package corpus

import (
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// lyricPunctuation is replaced by a space so that neighbouring words stay apart
const lyricPunctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~\n\r"

var punctuationReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, 2*len(lyricPunctuation))
	for _, r := range lyricPunctuation {
		pairs = append(pairs, string(r), " ")
	}
	return strings.NewReplacer(pairs...)
}()

// CleanLyrics turns raw lyric payloads (which may still carry markup such as
// <lyric> wrappers) into the lowercase, punctuation-free text the analysis
// tokenizes on whitespace.
func CleanLyrics(raw string) string {
	text := stripMarkup(raw)
	text = norm.NFC.String(text)
	text = punctuationReplacer.Replace(text)
	return strings.ToLower(text)
}

// stripMarkup keeps only the text nodes of an HTML/XML fragment. Tags are
// replaced by a space.
func stripMarkup(raw string) string {
	if !strings.ContainsRune(raw, '<') {
		return raw
	}

	var sb strings.Builder
	z := html.NewTokenizer(strings.NewReader(raw))
	for {
		switch z.Next() {
		case html.ErrorToken:
			// io.EOF or malformed input, keep what we have
			return sb.String()
		case html.TextToken:
			sb.Write(z.Text())
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			sb.WriteByte(' ')
		}
	}
}
