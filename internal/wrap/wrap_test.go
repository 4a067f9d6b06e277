package wrap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestText_LongParagraph(t *testing.T) {
	words := []string{"alpha", "beta", "gamma", "delta", "epsilon", "zeta", "eta", "theta", "iota", "kappa"}
	var b strings.Builder
	for b.Len() < 200 {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(words[b.Len()%len(words)])
	}
	input := b.String()
	require.GreaterOrEqual(t, len(input), 200)

	lines := Lines(input, DefaultLimit)
	require.Greater(t, len(lines), 1)

	for i, line := range lines {
		assert.LessOrEqual(t, len(line), DefaultLimit-1, "line %d too long: %q", i, line)
		assert.NotContains(t, line, "  ", "line %d has a double space", i)
		assert.Equal(t, strings.TrimSpace(line), line, "line %d has surrounding space", i)
	}
	assert.Equal(t, strings.Fields(input), strings.Fields(strings.Join(lines, " ")))
}

func TestText_GreedyBoundary(t *testing.T) {
	// "aaaa" x n words: each word plus separator is 5 runes.
	word := strings.Repeat("a", 4)
	input := strings.TrimSpace(strings.Repeat(word+" ", 20))

	lines := Lines(input, 20)
	// 3 words = 14 chars; a 4th would make 19 (< 20), a 5th 24.
	for _, line := range lines[:len(lines)-1] {
		assert.Equal(t, "aaaa aaaa aaaa aaaa", line)
	}
}

func TestText_ReachingLimitWraps(t *testing.T) {
	// "abcd efgh" is 9 characters; with limit 9 the second word must wrap.
	assert.Equal(t, "abcd\nefgh\n", Text("abcd efgh", 9))
	assert.Equal(t, "abcd efgh\n", Text("abcd efgh", 10))
}

func TestText_Bullet(t *testing.T) {
	input := "- " + strings.Repeat("word ", 30)
	lines := Lines(input, DefaultLimit)
	require.Greater(t, len(lines), 1)

	assert.True(t, strings.HasPrefix(lines[0], "  - word"), "first line %q", lines[0])
	for _, line := range lines[1:] {
		assert.True(t, strings.HasPrefix(line, "    word"), "continuation %q", line)
		assert.LessOrEqual(t, len(line), DefaultLimit-1)
	}
}

func TestText_DashInsideWordIsNotBullet(t *testing.T) {
	assert.Equal(t, "-x is not a bullet\n", Text("-x is not a bullet", DefaultLimit))
}

func TestText_Paragraphs(t *testing.T) {
	input := "Version: 1.0\nFirst paragraph.\n\n- item one\n- item two"
	want := "Version: 1.0\nFirst paragraph.\n\n  - item one\n  - item two\n"
	assert.Equal(t, want, Text(input, DefaultLimit))
}

func TestText_CollapsesWhitespace(t *testing.T) {
	assert.Equal(t, "a b c\n", Text("  a \t b   c  ", DefaultLimit))
}

func TestText_OverlongWordStaysWhole(t *testing.T) {
	long := strings.Repeat("x", 100)
	assert.Equal(t, "short\n"+long+"\nend\n", Text("short "+long+" end", DefaultLimit))
}

func TestLines_Empty(t *testing.T) {
	assert.Equal(t, []string{""}, Lines("", DefaultLimit))
}
