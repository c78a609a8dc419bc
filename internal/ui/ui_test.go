package ui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestRenderDiff(t *testing.T) {
	before := []string{"# Title", "Hello", "world", "", "rest"}
	after := []string{"# Title", "Hello world", "", "rest"}

	out, stat := RenderDiff(before, after)

	if stat.Added != 1 || stat.Removed != 2 {
		t.Errorf("expected +1 -2, got %s", stat)
	}
	if !stat.Changed() {
		t.Errorf("expected diff to be reported as changed")
	}

	for _, want := range []string{"  # Title", "- Hello", "- world", "+ Hello world", "  rest"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected diff to contain %q, got:\n%s", want, out)
		}
	}
	if strings.Index(out, "- Hello") > strings.Index(out, "+ Hello world") {
		t.Errorf("expected removals before additions, got:\n%s", out)
	}
}

func TestRenderDiffUnchanged(t *testing.T) {
	lines := []string{"a", "b"}
	_, stat := RenderDiff(lines, lines)
	if stat.Changed() {
		t.Errorf("expected no change, got %s", stat)
	}
}

func TestParseANSIColor(t *testing.T) {
	tests := []struct {
		code     string
		expected string
	}{
		{"32", "2"},
		{"90", "8"},
		{"241", "241"},
		{"#ff0000", "#ff0000"},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			if result := parseANSIColor(tt.code); string(result) != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, result)
			}
		})
	}
}

func sendKey(m tea.Model, msg tea.KeyMsg) (reviewModel, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(reviewModel), cmd
}

func TestReviewModelAccept(t *testing.T) {
	var m tea.Model = newReviewModel("doc.md", []string{"a", "b"}, []string{"a b"})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if view := m.View(); !strings.Contains(view, "doc.md") || !strings.Contains(view, "+ a b") {
		t.Errorf("expected title and diff in view, got:\n%s", view)
	}

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("y")},
		{Type: tea.KeyEnter},
	} {
		result, cmd := sendKey(m, key)
		if !result.accepted {
			t.Errorf("%s: expected accepted", key)
		}
		if cmd == nil {
			t.Errorf("%s: expected quit command", key)
		}
	}
}

func TestReviewModelCancel(t *testing.T) {
	var m tea.Model = newReviewModel("doc.md", []string{"a", "b"}, []string{"a b"})

	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyEsc},
		{Type: tea.KeyCtrlC},
	} {
		result, cmd := sendKey(m, key)
		if result.accepted {
			t.Errorf("%s: expected not accepted", key)
		}
		if !result.quitting || cmd == nil {
			t.Errorf("%s: expected quit", key)
		}
	}
}

func TestReviewModelScrollBeforeResize(t *testing.T) {
	var m tea.Model = newReviewModel("doc.md", nil, []string{"x"})
	result, cmd := sendKey(m, tea.KeyMsg{Type: tea.KeyDown})
	if cmd != nil || result.quitting {
		t.Errorf("expected scroll key to be ignored before the first resize")
	}
	if result.View() != "Loading…" {
		t.Errorf("expected loading view, got %q", result.View())
	}
}
