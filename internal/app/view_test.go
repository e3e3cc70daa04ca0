package app

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

func viewLines(m Model) []string {
	return strings.Split(strings.TrimRight(m.View(), "\n"), "\n")
}

func TestViewLoading(t *testing.T) {
	m := newTestModel()
	m.width = 0

	if got := m.View(); got != "Loading..." {
		t.Errorf("Expected loading view, got %q", got)
	}
}

func TestViewHeight(t *testing.T) {
	m := newTestModel()
	now := time.Now()

	check := func(t *testing.T) {
		t.Helper()
		lines := viewLines(m)
		if len(lines) > m.height {
			t.Errorf("View is too tall: got %d lines, want %d", len(lines), m.height)
		}
		for i, line := range lines {
			if w := lipgloss.Width(line); w > m.width {
				t.Errorf("Line %d is too wide: %d > %d", i, w, m.width)
			}
		}
	}

	t.Run("closed", check)

	t.Run("menu open", func(t *testing.T) {
		m = press(t, m, "m")
		m, now = frames(m, now, 20, 16*time.Millisecond)
		check(t)
	})

	t.Run("with notifications", func(t *testing.T) {
		m = press(t, m, "n", "n", "n", "n", "n", "n")
		m, now = frames(m, now, 20, 16*time.Millisecond)
		check(t)
	})

	t.Run("with dialog", func(t *testing.T) {
		m = press(t, m, "?")
		check(t)
	})

	t.Run("small terminal", func(t *testing.T) {
		m.width, m.height = 40, 8
		check(t)
	})
}

func TestViewShowsMenuAndPanel(t *testing.T) {
	m := newTestModel()
	now := time.Now()

	view := m.View()
	if strings.Contains(view, "Settings") {
		t.Error("Closed menu should not render")
	}
	if !strings.Contains(view, "CLOSED") {
		t.Error("Status bar should show the closed state")
	}

	m = press(t, m, "m", "n")
	m, _ = frames(m, now, 20, 16*time.Millisecond)
	view = m.View()

	for _, want := range []string{"Settings", "General", "Display", "Notifications", "Notification #1", "OPEN"} {
		if !strings.Contains(view, want) {
			t.Errorf("Expected %q in view", want)
		}
	}
}

func TestViewPanelDisabled(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "n")
	m, _ = frames(m, time.Now(), 20, 16*time.Millisecond)

	updated, _ := m.Update(tea.Msg(nil))
	m = updated.(Model)
	m.panelEnabled = false

	if strings.Contains(m.View(), "Notification #1") {
		t.Error("Disabled panel should not render notifications")
	}
	if !strings.Contains(m.View(), "1 notification") {
		t.Error("Status bar still counts notifications")
	}
}
