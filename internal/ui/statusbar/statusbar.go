// Package statusbar renders the bottom line: menu state, notification
// count and key hints.
package statusbar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/vrhud/internal/types"
	"github.com/riordanpawley/vrhud/internal/ui/styles"
)

// StatusBar represents the status bar at the bottom of the TUI
type StatusBar struct {
	state  types.MenuState
	count  int
	hints  []key.Binding
	width  int
	styles *styles.Styles
}

// New creates a StatusBar for the given menu state and notification count
func New(state types.MenuState, count int, hints []key.Binding, width int, st *styles.Styles) StatusBar {
	return StatusBar{
		state:  state,
		count:  count,
		hints:  hints,
		width:  width,
		styles: st,
	}
}

// Render renders the status bar as a string
func (sb StatusBar) Render() string {
	badge := sb.styles.StatusState(sb.state.String()).Render(strings.ToUpper(sb.state.String()))

	info := sb.styles.StatusInfo.Render(countLabel(sb.count))
	separator := sb.styles.StatusHint.Render(" │ ")
	parts := []string{badge, " ", info}

	if len(sb.hints) > 0 {
		h := help.New()
		used := lipgloss.Width(badge) + 1 + lipgloss.Width(info) + lipgloss.Width(separator)
		// leave room for the bar's own padding
		h.Width = max(sb.width-used-sb.styles.StatusBar.GetHorizontalFrameSize(), 0)
		if hints := h.ShortHelpView(sb.hints); hints != "" {
			parts = append(parts, separator, sb.styles.StatusHint.Render(hints))
		}
	}

	content := lipgloss.JoinHorizontal(lipgloss.Left, parts...)
	return sb.styles.StatusBar.Width(sb.width).MaxHeight(1).Render(content)
}

func countLabel(n int) string {
	switch n {
	case 0:
		return "no notifications"
	case 1:
		return "1 notification"
	default:
		return fmt.Sprintf("%d notifications", n)
	}
}
