// Package buffer holds a line-oriented document that text can be read from
// and written back into by line range.
package buffer

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/gubarz/mdjoin/internal/mdjoin"
)

// Buffer is an in-memory copy of a document split into lines
type Buffer struct {
	path  string
	lines []string
	// eols[i] is the ending read after lines[i]: "\n", "\r\n", or "" for a
	// final line with no newline
	eols []string
}

// Read loads a buffer from r. The result has no path and cannot be saved.
func Read(r io.Reader) (*Buffer, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return parse(data), nil
}

// Load reads the file at path
func Load(path string) (*Buffer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	b := parse(data)
	b.path = path
	return b, nil
}

func parse(data []byte) *Buffer {
	b := &Buffer{}
	for piece := range bytes.SplitAfterSeq(data, []byte("\n")) {
		if len(piece) == 0 {
			continue
		}
		line, eol := string(piece), ""
		switch {
		case strings.HasSuffix(line, "\r\n"):
			line, eol = line[:len(line)-2], "\r\n"
		case strings.HasSuffix(line, "\n"):
			line, eol = line[:len(line)-1], "\n"
		}
		b.lines = append(b.lines, line)
		b.eols = append(b.eols, eol)
	}
	return b
}

// Path returns the file backing the buffer, or "" for stdin
func (b *Buffer) Path() string {
	return b.path
}

// Lines returns the buffer's lines. Callers must not modify the slice.
func (b *Buffer) Lines() []string {
	return b.lines
}

// Len returns the number of lines
func (b *Buffer) Len() int {
	return len(b.lines)
}

// Slice returns lines start..end (1-indexed, inclusive, zero = unset),
// truncated to what the buffer holds
func (b *Buffer) Slice(start, end int) []string {
	return mdjoin.Range{Start: start, End: end}.Slice(b.lines)
}

// Replace swaps lines start..end for the lines of text. Bounds follow Slice,
// so an unset range replaces the whole buffer. Lines outside the range keep
// their endings; new lines get the buffer's most common one.
func (b *Buffer) Replace(start, end int, text string) error {
	lo, hi := mdjoin.Range{Start: start, End: end}.Bounds(len(b.lines))

	var replacement []string
	if text != "" || hi > lo {
		replacement = strings.Split(text, "\n")
	}

	var edit Edit
	if hi > lo {
		edit = Edit{Start: lo + 1, End: hi, Replacement: replacement}
	} else {
		edit = Edit{Start: lo + 1, Replacement: replacement}
	}

	lines, err := Apply(b.lines, []Edit{edit})
	if err != nil {
		return err
	}

	final := b.finalEOL()
	eol := b.dominantEOL()
	eols := slices.Concat(b.eols[:lo], slices.Repeat([]string{eol}, len(replacement)), b.eols[hi:])
	for i := range eols {
		if eols[i] == "" {
			eols[i] = eol
		}
	}
	if len(eols) > 0 {
		eols[len(eols)-1] = final
	}

	b.lines, b.eols = lines, eols
	return nil
}

// finalEOL is the ending of the last line, "" when the document has no
// trailing newline
func (b *Buffer) finalEOL() string {
	if len(b.eols) == 0 {
		return ""
	}
	return b.eols[len(b.eols)-1]
}

// dominantEOL is the most common line ending, "\n" on a tie or when no line
// has one
func (b *Buffer) dominantEOL() string {
	crlf := 0
	for _, e := range b.eols {
		switch e {
		case "\r\n":
			crlf++
		case "\n":
			crlf--
		}
	}
	if crlf > 0 {
		return "\r\n"
	}
	return "\n"
}

// Bytes renders the buffer with every line's own ending
func (b *Buffer) Bytes() []byte {
	var buf bytes.Buffer
	for i, line := range b.lines {
		buf.WriteString(line)
		buf.WriteString(b.eols[i])
	}
	return buf.Bytes()
}

// Save writes the buffer back to its file
func (b *Buffer) Save() error {
	if b.path == "" {
		return fmt.Errorf("buffer has no file")
	}

	mode := os.FileMode(0o644)
	if info, err := os.Stat(b.path); err == nil {
		mode = info.Mode().Perm()
	}
	return os.WriteFile(b.path, b.Bytes(), mode)
}
