package mdjoin

import (
	"strings"
	"unicode"
)

// Normalize strips trailing whitespace and collapses each whitespace gap
// between two non-whitespace characters into a single space. A gap that is
// already one space is left alone, and leading indentation is never touched.
func Normalize(line string) string {
	line = TrimTrailing(line)

	start := strings.IndexFunc(line, func(r rune) bool { return r != ' ' && r != '\t' })
	if start < 0 {
		return line
	}

	var b strings.Builder
	b.Grow(len(line))
	b.WriteString(line[:start])

	for i := start; i < len(line); {
		if !isBlank(line[i]) {
			b.WriteByte(line[i])
			i++
			continue
		}

		j := i
		for j < len(line) && isBlank(line[j]) {
			j++
		}
		// j never reaches the end: trailing whitespace is already gone
		b.WriteByte(' ')
		i = j
	}

	return b.String()
}

// TrimTrailing removes trailing whitespace only
func TrimTrailing(line string) string {
	return strings.TrimRightFunc(line, unicode.IsSpace)
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}
