// Package mdjoin merges soft-wrapped markdown paragraphs into single lines
// while keeping list items, blank-line boundaries and ``` code regions intact.
package mdjoin

import "strings"

// Range selects lines by 1-indexed inclusive bounds. A zero bound is unset.
// Negative bounds clamp: a start below 1 acts as 1 and a negative end selects
// nothing.
type Range struct {
	Start int
	End   int
}

// IsZero reports whether neither bound is set
func (r Range) IsZero() bool {
	return r.Start == 0 && r.End == 0
}

// Bounds resolves the range against n lines and returns slice indices.
// Unset bounds fall back to the first or last line; anything past either end
// is truncated, so the result is always safe for lines[lo:hi].
func (r Range) Bounds(n int) (lo, hi int) {
	if r.IsZero() {
		return 0, n
	}

	start, end := r.Start, r.End
	if start < 1 {
		start = 1
	}
	if end == 0 || end > n {
		end = n
	}

	lo = min(start-1, n)
	hi = max(end, lo)
	return lo, hi
}

// Slice returns the lines covered by r
func (r Range) Slice(lines []string) []string {
	lo, hi := r.Bounds(len(lines))
	return lines[lo:hi]
}

// Join merges the selected lines and returns them newline-joined, with every
// output line normalized. No trailing newline is added.
func Join(lines []string, r Range) string {
	return strings.Join(JoinLines(lines, r), "\n")
}

// JoinLines is Join without the final concatenation
func JoinLines(lines []string, r Range) []string {
	var out []string
	for line := range Merge(r.Slice(lines)) {
		if line.Code {
			out = append(out, TrimTrailing(line.Text))
		} else {
			out = append(out, Normalize(line.Text))
		}
	}
	return out
}
