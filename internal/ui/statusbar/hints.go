package statusbar

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/vrhud/internal/types"
)

// Hints returns the bindings worth showing in state: tab bindings only
// matter while the menu is on screen
func Hints(state types.MenuState, global, tab []key.Binding) []key.Binding {
	hints := append([]key.Binding(nil), global...)
	if state.Visible() {
		hints = append(hints, tab...)
	}
	return hints
}
