package mdjoin

import (
	"iter"
	"regexp"
	"strings"
)

// Fence opens and closes a code region
const Fence = "```"

var bulletRegex = regexp.MustCompile(`^(    )*[-*] `)

// Line is one merged output line
type Line struct {
	Text string
	Code bool // Inside a ``` region, fences included
}

// IsBullet reports whether line starts a list item
func IsBullet(line string) bool {
	return bulletRegex.MatchString(line)
}

// Merge walks lines once and yields each logical line as it is finished.
// Paragraph lines are joined with single spaces until a blank or bullet line;
// code regions pass through with tabs expanded.
func Merge(lines []string) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		var block []string

		// flush emits the pending block, if any
		flush := func() bool {
			if len(block) == 0 {
				return true
			}
			text := strings.Join(block, " ")
			block = block[:0]
			return yield(Line{Text: text})
		}

		inCode := false

		for _, line := range lines {
			if inCode {
				if !yield(Line{Text: expandTabs(line), Code: true}) {
					return
				}
				if line == Fence {
					inCode = false
				}
				continue
			}

			// A fence only opens between blocks; inside a paragraph it is text
			if len(block) == 0 && strings.HasPrefix(line, Fence) {
				if !yield(Line{Text: line, Code: true}) {
					return
				}
				inCode = true
				continue
			}

			if line == "" {
				if !flush() || !yield(Line{}) {
					return
				}
				continue
			}

			if IsBullet(line) && !flush() {
				return
			}

			block = append(block, line)
		}

		flush()
	}
}

func expandTabs(line string) string {
	return strings.ReplaceAll(line, "\t", "    ")
}
