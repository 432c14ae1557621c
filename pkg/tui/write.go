// Package tui holds the interactive screens: the journal editor with
// autosaved drafts and the ticking sobriety clock.
package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/recovery/pkg/debounce"
	"tableflip.dev/recovery/pkg/store"
)

// WriteResult is what the editor hands back: the final text and whether
// the author submitted it (as opposed to stepping away mid-draft).
type WriteResult struct {
	Text      string
	Submitted bool
}

// statusTickMsg drives the save-state line in the footer.
type statusTickMsg time.Time

const statusTickEvery = 250 * time.Millisecond

type writeModel struct {
	ta     textarea.Model
	writer *debounce.Writer

	width  int
	height int

	typed     bool
	submitted bool
}

func newWriteModel(s *store.Store, initial string) writeModel {
	ta := textarea.New()
	ta.Placeholder = "What is on your mind today?"
	ta.CharLimit = 0
	ta.SetValue(initial)
	ta.Focus()

	// Keystrokes autosave the draft after a short quiet period, so an
	// interrupted session picks up where it left off.
	writer := debounce.NewWriter(debounce.TextDelay, s.SaveDraft)

	return writeModel{ta: ta, writer: writer}
}

func (m writeModel) Init() tea.Cmd {
	return statusTick()
}

func statusTick() tea.Cmd {
	return tea.Tick(statusTickEvery, func(t time.Time) tea.Msg {
		return statusTickMsg(t)
	})
}

func (m writeModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ta.SetWidth(msg.Width - 2)
		if msg.Height > 6 {
			m.ta.SetHeight(msg.Height - 4)
		}
		return m, nil
	case statusTickMsg:
		return m, statusTick()
	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			// Keep the draft: flush whatever was typed so an interrupted
			// session can resume, but never clobber an untouched draft.
			if m.typed {
				_ = m.writer.Flush()
			} else {
				m.writer.Stop()
			}
			return m, tea.Quit
		case "ctrl+s":
			m.submitted = true
			m.writer.Stop()
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	before := m.ta.Value()
	m.ta, cmd = m.ta.Update(msg)
	if after := m.ta.Value(); after != before {
		m.typed = true
		m.writer.Set(after)
	}
	return m, cmd
}

var (
	writeTitleStyle  = lipgloss.NewStyle().Bold(true)
	writeFooterStyle = lipgloss.NewStyle().Faint(true)
	writeErrorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
)

func (m writeModel) View() string {
	title := writeTitleStyle.Render("journal")

	status, err := m.writer.Status()
	line := status.String()
	if err != nil {
		line = writeErrorStyle.Render(fmt.Sprintf("%s: %v", status, err))
	}
	footer := writeFooterStyle.Render("ctrl+s save entry · esc keep as draft") + "  " + line

	return title + "\n" + m.ta.View() + "\n" + footer
}

// RunWrite opens the journal editor seeded with initial text and blocks
// until the author submits or quits.
func RunWrite(s *store.Store, initial string) (WriteResult, error) {
	m := newWriteModel(s, initial)
	p := tea.NewProgram(m, tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return WriteResult{}, err
	}
	out, ok := final.(writeModel)
	if !ok {
		return WriteResult{}, nil
	}
	return WriteResult{Text: out.ta.Value(), Submitted: out.submitted}, nil
}
