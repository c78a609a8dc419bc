// Package output delivers a join result: printed, copied to the clipboard or
// written back over the lines it came from.
package output

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/gubarz/mdjoin/internal/buffer"
	"github.com/gubarz/mdjoin/internal/logging"
)

// ErrNoPath is returned when write mode has no file to write to
var ErrNoPath = errors.New("write mode needs a file, not stdin")

// ============================================================================
// Clipboard Interface
// ============================================================================

// Clipboard defines the interface for clipboard operations
type Clipboard interface {
	Copy(text string) error
}

// systemClipboard implements Clipboard with the platform clipboard
type systemClipboard struct {
	fallback io.Writer
}

// Copy copies text to the system clipboard
func (c *systemClipboard) Copy(text string) error {
	if clipboard.Unsupported {
		// No clipboard tool found, just print
		logging.Warn("no clipboard available, printing instead")
		_, err := fmt.Fprintln(c.fallback, text)
		return err
	}
	return clipboard.WriteAll(text)
}

// ============================================================================
// Sink
// ============================================================================

// Mode represents how the joined text should be handled
type Mode string

const (
	ModePrint Mode = "print"
	ModeCopy  Mode = "copy"
	ModeWrite Mode = "write"
)

// ParseMode validates a mode name
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModePrint, ModeCopy, ModeWrite:
		return m, nil
	default:
		return "", fmt.Errorf("unsupported output mode: %s (supported: print, copy, write)", s)
	}
}

// Result is a finished join and where it came from
type Result struct {
	Lines  []string       // Joined output lines
	Source *buffer.Buffer // Buffer the range was read from
	Start  int            // 1-indexed range, zero = unset
	End    int
}

// Text returns the joined lines separated by newlines
func (r Result) Text() string {
	return strings.Join(r.Lines, "\n")
}

// Sink hands results to stdout, the clipboard or the source file
type Sink struct {
	out       io.Writer
	clipboard Clipboard
}

// NewSink creates a sink printing to out
func NewSink(out io.Writer) *Sink {
	return &Sink{
		out:       out,
		clipboard: &systemClipboard{fallback: out},
	}
}

// WithClipboard sets a custom clipboard implementation (useful for testing)
func (s *Sink) WithClipboard(c Clipboard) *Sink {
	s.clipboard = c
	return s
}

// Emit delivers res according to mode
func (s *Sink) Emit(mode Mode, res Result) error {
	switch mode {
	case ModeWrite:
		return s.write(res)
	case ModeCopy:
		if err := s.clipboard.Copy(res.Text()); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
		return nil
	default: // print
		for _, line := range res.Lines {
			if _, err := fmt.Fprintln(s.out, line); err != nil {
				return err
			}
		}
		return nil
	}
}

func (s *Sink) write(res Result) error {
	if res.Source == nil || res.Source.Path() == "" {
		return ErrNoPath
	}
	if err := res.Source.Replace(res.Start, res.End, res.Text()); err != nil {
		return fmt.Errorf("replace lines: %w", err)
	}
	if err := res.Source.Save(); err != nil {
		return fmt.Errorf("write %s: %w", res.Source.Path(), err)
	}
	logging.Debug("wrote file", "path", res.Source.Path(), "lines", res.Source.Len())
	return nil
}
