// Package wrap word-wraps plain text to a fixed width.
package wrap

import (
	"strings"
	"unicode/utf8"
)

// DefaultLimit is the width used for program descriptions.
const DefaultLimit = 80

const (
	bulletPrefix  = "  -"
	hangingIndent = "    "
)

// Text wraps s greedily. Paragraphs are separated by '\n' and words by
// whitespace; a word is moved to a new line when appending it would make the
// line length reach limit. A paragraph whose first word is "-" becomes a
// bullet with a hanging indent. Every paragraph ends with '\n'.
func Text(s string, limit int) string {
	var b strings.Builder
	for _, paragraph := range strings.Split(s, "\n") {
		writeParagraph(&b, paragraph, limit)
	}
	return b.String()
}

// Lines wraps s like Text and returns the individual lines.
func Lines(s string, limit int) []string {
	return strings.Split(strings.TrimSuffix(Text(s, limit), "\n"), "\n")
}

func writeParagraph(b *strings.Builder, paragraph string, limit int) {
	words := strings.Fields(paragraph)

	var indent string
	lineLen := 0
	if len(words) > 0 {
		first := words[0]
		if first == "-" {
			first = bulletPrefix
			indent = hangingIndent
		}
		b.WriteString(first)
		lineLen = utf8.RuneCountInString(first)
		words = words[1:]
	}

	for _, word := range words {
		n := utf8.RuneCountInString(word)
		if lineLen+1+n >= limit {
			b.WriteByte('\n')
			b.WriteString(indent)
			lineLen = len(indent)
		} else {
			b.WriteByte(' ')
			lineLen++
		}
		b.WriteString(word)
		lineLen += n
	}

	b.WriteByte('\n')
}
