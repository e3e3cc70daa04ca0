package statusbar

import (
	"strings"
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/vrhud/internal/types"
	"github.com/riordanpawley/vrhud/internal/ui/styles"
)

var (
	toggleKey = key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu"))
	quitKey   = key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit"))
	nextKey   = key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab"))
)

func TestStatusBar_RenderClosed(t *testing.T) {
	hints := Hints(types.MenuClosed, []key.Binding{toggleKey, quitKey}, []key.Binding{nextKey})
	sb := New(types.MenuClosed, 0, hints, 80, styles.New())

	result := sb.Render()

	if !strings.Contains(result, "CLOSED") {
		t.Errorf("Expected status bar to contain 'CLOSED', got: %s", result)
	}
	if !strings.Contains(result, "no notifications") {
		t.Errorf("Expected empty count label, got: %s", result)
	}
	if !strings.Contains(result, "menu") || !strings.Contains(result, "quit") {
		t.Errorf("Expected global hints, got: %s", result)
	}
	if strings.Contains(result, "next tab") {
		t.Errorf("Tab hints should be hidden while closed, got: %s", result)
	}
}

func TestStatusBar_RenderOpen(t *testing.T) {
	hints := Hints(types.MenuOpen, []key.Binding{toggleKey}, []key.Binding{nextKey})
	sb := New(types.MenuOpen, 3, hints, 80, styles.New())

	result := sb.Render()

	for _, want := range []string{"OPEN", "3 notifications", "next tab"} {
		if !strings.Contains(result, want) {
			t.Errorf("Expected %q in status bar, got: %s", want, result)
		}
	}
}

func TestStatusBar_Width(t *testing.T) {
	sb := New(types.MenuOpening, 1, []key.Binding{toggleKey}, 60, styles.New())

	result := sb.Render()

	if w := lipgloss.Width(result); w != 60 {
		t.Errorf("Expected width 60, got %d", w)
	}
	if !strings.Contains(result, "1 notification") {
		t.Errorf("Expected singular label, got: %s", result)
	}
}

func TestStatusBar_NoHints(t *testing.T) {
	sb := New(types.MenuClosing, 0, nil, 40, styles.New())

	result := sb.Render()

	if !strings.Contains(result, "CLOSING") {
		t.Errorf("Expected 'CLOSING', got: %s", result)
	}
	if strings.Contains(result, "│") {
		t.Errorf("Separator should be omitted without hints, got: %s", result)
	}
}

func TestHints_DoesNotAliasGlobal(t *testing.T) {
	global := make([]key.Binding, 1, 4)
	global[0] = toggleKey

	open := Hints(types.MenuOpen, global, []key.Binding{nextKey})
	closed := Hints(types.MenuClosed, global, []key.Binding{nextKey})

	if len(open) != 2 || len(closed) != 1 {
		t.Fatalf("Unexpected hint counts: open=%d closed=%d", len(open), len(closed))
	}
	if len(global) != 1 {
		t.Error("Hints must not grow the caller's slice")
	}
}
