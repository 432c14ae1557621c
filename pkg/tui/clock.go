package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/recovery/pkg/timeutil"
)

type clockTickMsg time.Time

type clockModel struct {
	start time.Time
	now   time.Time

	width  int
	height int
}

func clockTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

func (m clockModel) Init() tea.Cmd {
	return clockTick()
}

func (m clockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case clockTickMsg:
		m.now = time.Time(msg)
		return m, clockTick()
	case tea.KeyPressMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
	}
	return m, nil
}

var (
	clockDaysStyle  = lipgloss.NewStyle().Bold(true)
	clockUnitStyle  = lipgloss.NewStyle().Faint(true)
	clockFrameStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(1, 4)
)

func (m clockModel) View() string {
	elapsed := timeutil.Since(m.start, m.now)

	days := clockDaysStyle.Render(fmt.Sprintf("%d", elapsed.Days))
	body := fmt.Sprintf("%s %s\n%02d:%02d:%02d",
		days, clockUnitStyle.Render(plural(elapsed.Days, "day")),
		elapsed.Hours, elapsed.Minutes, elapsed.Seconds)
	footer := clockUnitStyle.Render("sober since " + m.start.Local().Format("January 2, 2006"))

	card := clockFrameStyle.Render(body + "\n" + footer)
	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}

func plural(n int, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}

// RunClock shows the ticking sobriety counter until dismissed.
func RunClock(start time.Time) error {
	m := clockModel{start: start, now: time.Now()}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
