// Package reflow wraps long markdown lines to a column limit. It is the
// inverse of mdjoin: continuation lines keep the list, quote or indentation
// prefix of the line they came from, and ``` regions are left alone.
package reflow

import (
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/gubarz/mdjoin/internal/mdjoin"
)

const fence = "```"

var (
	bulletRegex    = regexp.MustCompile(`^\s*([-*]|\d+\.) `)
	quoteRegex     = regexp.MustCompile(`^> `)
	leadingWsRegex = regexp.MustCompile(`^\s+`)
)

// Wrap wraps every line wider than width display cells. A width of zero or
// less returns lines unchanged. Lines never break before a word that would
// make the continuation read as a fence or a bullet, so joining the output
// again gives back the input; such a line may run past width.
func Wrap(lines []string, width int) []string {
	if width <= 0 {
		return lines
	}

	out := make([]string, 0, len(lines))
	inCode := false

	for _, line := range lines {
		switch {
		case inCode:
			out = append(out, line)
			if line == fence {
				inCode = false
			}
		case strings.HasPrefix(line, fence):
			out = append(out, line)
			inCode = true
		default:
			out = append(out, WrapLine(line, width)...)
		}
	}

	return out
}

// WrapLine splits one line at word boundaries so no piece is wider than width,
// unless a single word already is
func WrapLine(line string, width int) []string {
	if width <= 0 || runewidth.StringWidth(line) <= width {
		return []string{line}
	}

	lead := leadingWsRegex.FindString(line)
	words := strings.Fields(line)
	if len(words) == 0 {
		return []string{line}
	}

	prefix := Prefix(line)
	prefixWidth := runewidth.StringWidth(prefix)

	var out []string
	current := lead + words[0]
	currentWidth := runewidth.StringWidth(current)

	for _, word := range words[1:] {
		w := runewidth.StringWidth(word)
		if currentWidth+1+w > width && !opensBlock(prefix+word+" ") {
			out = append(out, current)
			current = prefix + word
			currentWidth = prefixWidth + w
			continue
		}
		current += " " + word
		currentWidth += 1 + w
	}

	return append(out, current)
}

// opensBlock reports whether a line starting like s would end a paragraph
// when joined
func opensBlock(s string) bool {
	return strings.HasPrefix(s, mdjoin.Fence) || mdjoin.IsBullet(s)
}

// Prefix returns what continuation lines of line start with: list markers
// become spaces of the same width, leading whitespace is repeated and quotes
// keep their "> "
func Prefix(line string) string {
	if m := bulletRegex.FindString(line); m != "" {
		return strings.Repeat(" ", runewidth.StringWidth(m))
	}
	if m := leadingWsRegex.FindString(line); m != "" {
		return m
	}
	if quoteRegex.MatchString(line) {
		return "> "
	}
	return ""
}
