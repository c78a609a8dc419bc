package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const helpText = "y/enter: accept • q/esc: cancel • ↑/↓ pgup/pgdn: scroll"

// reviewModel shows a diff in a scrollable viewport and waits for a verdict
type reviewModel struct {
	title    string
	content  string
	stat     DiffStat
	vp       viewport.Model
	ready    bool
	accepted bool
	quitting bool
}

func newReviewModel(title string, before, after []string) reviewModel {
	content, stat := RenderDiff(before, after)
	return reviewModel{
		title:   title,
		content: content,
		stat:    stat,
	}
}

// Init implements tea.Model
func (m reviewModel) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m reviewModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "y", "enter":
			m.accepted = true
			m.quitting = true
			return m, tea.Quit
		case "q", "n", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}

	if !m.ready {
		return m, nil
	}

	var cmd tea.Cmd
	m.vp, cmd = m.vp.Update(msg)
	return m, cmd
}

// resize fits the viewport between the header and help lines
func (m *reviewModel) resize(width, height int) {
	chrome := lipgloss.Height(m.headerView()) + lipgloss.Height(helpText) + styles.Border.GetVerticalFrameSize()
	innerW := max(10, width-styles.Border.GetHorizontalFrameSize())
	innerH := max(3, height-chrome)

	if !m.ready {
		m.vp = viewport.New(innerW, innerH)
		m.vp.SetContent(m.content)
		m.ready = true
		return
	}
	m.vp.Width = innerW
	m.vp.Height = innerH
}

func (m reviewModel) headerView() string {
	return styles.Header.Render(fmt.Sprintf("%s  %s", m.title, m.stat))
}

// View implements tea.Model
func (m reviewModel) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "Loading…"
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(),
		styles.Border.Render(m.vp.View()),
		styles.Help.Render(helpText),
	)
}

// Review shows the change from before to after and reports whether the user
// accepted it
func Review(title string, before, after []string) (bool, error) {
	m := newReviewModel(title, before, after)

	ttyIn, ttyOut, cleanup := getTTY()
	defer cleanup()
	RefreshStyles() // Refresh after getTTY sets up the renderer

	// Styles may have changed color, so render again
	m.content, m.stat = RenderDiff(before, after)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithOutput(ttyOut), tea.WithInput(ttyIn))
	finalModel, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("review: %w", err)
	}

	return finalModel.(reviewModel).accepted, nil
}

// getTTY returns terminal handles for the TUI. When stdin or stdout is
// redirected (a pipe from an editor, or $(...) capture) it falls back to
// /dev/tty so the program stays interactive.
func getTTY() (in *os.File, out *os.File, cleanup func()) {
	var closers []func()
	in, out = os.Stdin, os.Stdout

	if !isTerminal(os.Stdout) {
		if f, err := os.OpenFile("/dev/tty", os.O_WRONLY, 0); err == nil {
			out = f
			closers = append(closers, func() { f.Close() })
		} else {
			out = os.Stderr // Last resort fallback
		}
		// Tell lipgloss to use the TTY for color detection
		lipgloss.SetDefaultRenderer(lipgloss.NewRenderer(out))
	}

	if !isTerminal(os.Stdin) {
		if f, err := os.OpenFile("/dev/tty", os.O_RDONLY, 0); err == nil {
			in = f
			closers = append(closers, func() { f.Close() })
		}
	}

	return in, out, func() {
		for _, c := range closers {
			c()
		}
	}
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	return err == nil && info.Mode()&os.ModeCharDevice != 0
}
