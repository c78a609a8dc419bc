package ui

import (
	"fmt"
	"strings"

	"github.com/kylelemons/godebug/diff"
)

// DiffStat counts changed lines
type DiffStat struct {
	Added   int
	Removed int
}

func (d DiffStat) String() string {
	return fmt.Sprintf("+%d -%d", d.Added, d.Removed)
}

// Changed reports whether the diff is non-empty
func (d DiffStat) Changed() bool {
	return d.Added > 0 || d.Removed > 0
}

// RenderDiff returns a line diff of before and after, one "-", "+" or " "
// marked line per entry, colored with the current styles
func RenderDiff(before, after []string) (string, DiffStat) {
	var b strings.Builder
	var stat DiffStat

	for _, chunk := range diff.DiffChunks(before, after) {
		for _, line := range chunk.Deleted {
			b.WriteString(styles.Removed.Render("- " + line))
			b.WriteByte('\n')
			stat.Removed++
		}
		for _, line := range chunk.Added {
			b.WriteString(styles.Added.Render("+ " + line))
			b.WriteByte('\n')
			stat.Added++
		}
		for _, line := range chunk.Equal {
			b.WriteString(styles.Equal.Render("  " + line))
			b.WriteByte('\n')
		}
	}

	return b.String(), stat
}
