package tui

import (
	"strings"
	"testing"
	"time"
)

func TestClockViewShowsElapsedBreakdown(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	now := start.Add(40*24*time.Hour + 2*time.Hour + 3*time.Minute + 4*time.Second)

	m := clockModel{start: start, now: now}
	view := m.View()

	if !strings.Contains(view, "40") {
		t.Errorf("view should show 40 days:\n%s", view)
	}
	if !strings.Contains(view, "02:03:04") {
		t.Errorf("view should show 02:03:04:\n%s", view)
	}
	if !strings.Contains(view, "sober since") {
		t.Errorf("view should carry the start date line:\n%s", view)
	}
}

func TestClockViewSingularDay(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	m := clockModel{start: start, now: start.Add(25 * time.Hour)}

	if view := m.View(); !strings.Contains(view, "day") || strings.Contains(view, "days") {
		t.Errorf("one elapsed day should render singular:\n%s", view)
	}
}
