package buffer

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	// ErrInvalidEdit is wrapped by Edit.Validate failures
	ErrInvalidEdit = errors.New("invalid edit")
	// ErrOverlappingEdits is returned when edits touch the same lines
	ErrOverlappingEdits = errors.New("edits overlap")
)

// Edit replaces lines Start..End (1-indexed, inclusive) with Replacement.
// An End of zero inserts Replacement before Start without removing anything.
type Edit struct {
	Start       int
	End         int
	Replacement []string
}

// Validate returns an error if any of the fields are invalid
func (e Edit) Validate() error {
	if e.Start <= 0 {
		return fmt.Errorf("%w: start must be greater than 0", ErrInvalidEdit)
	}
	if e.End != 0 && e.End < e.Start {
		return fmt.Errorf("%w: end must be zero or not less than start", ErrInvalidEdit)
	}
	for _, s := range e.Replacement {
		if strings.Contains(s, "\n") {
			return fmt.Errorf("%w: replacement cannot contain newlines", ErrInvalidEdit)
		}
	}
	return nil
}

// sortEdits orders edits by start line without touching the caller's slice
func sortEdits(edits []Edit) []Edit {
	sorted := make([]Edit, len(edits))
	copy(sorted, edits)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})
	return sorted
}

// AnyOverlapping reports whether any two edits touch the same line.
// Two inserts at the same position count as overlapping.
func AnyOverlapping(edits []Edit) bool {
	sorted := sortEdits(edits)
	for i := 0; i < len(sorted)-1; i++ {
		cur, next := sorted[i], sorted[i+1]
		if cur.Start == next.Start {
			return true
		}
		if cur.End != 0 && cur.End >= next.Start {
			return true
		}
	}
	return false
}

// Apply returns a copy of lines with every edit applied. Line numbers refer to
// the original lines; edits past the end are clamped to it.
func Apply(lines []string, edits []Edit) ([]string, error) {
	for i, e := range edits {
		if err := e.Validate(); err != nil {
			return nil, fmt.Errorf("edits[%d]: %w", i, err)
		}
	}
	if AnyOverlapping(edits) {
		return nil, ErrOverlappingEdits
	}

	result := make([]string, len(lines))
	copy(result, lines)
	offset := 0

	for _, e := range sortEdits(edits) {
		start := min(e.Start-1, len(lines)) + offset
		end := start
		if e.End != 0 {
			// e.End is inclusive, so no -1 here
			end = min(e.End, len(lines)) + offset
		}

		updated := make([]string, 0, len(result)+len(e.Replacement)-(end-start))
		updated = append(updated, result[:start]...)
		updated = append(updated, e.Replacement...)
		updated = append(updated, result[end:]...)

		offset += len(e.Replacement) - (end - start)
		result = updated
	}

	return result, nil
}
