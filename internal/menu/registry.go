// Package menu wires tab handlers to the host scene and animates the
// menu open and closed.
package menu

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// HandlerSuffix is stripped from a handler name to get the tab name
const HandlerSuffix = "Handler"

// Handler renders and drives the contents of one tab
type Handler interface {
	Title() string
	Update(msg tea.Msg) tea.Cmd
	View() string
}

// Activator is implemented by handlers that react to gaining or losing focus
type Activator interface {
	SetFocused(focused bool)
}

// Registration is one row of the static tab table
type Registration struct {
	// Handler is the handler type name, e.g. "DisplayTabHandler"
	Handler string
	// New constructs the handler once its view and button are resolved
	New func() Handler
}

// TabName returns the handler name without HandlerSuffix.
// The scene must contain a view and a button with this name.
func (r Registration) TabName() string {
	return strings.TrimSuffix(r.Handler, HandlerSuffix)
}

// ID returns the lower-case tab identifier
func (r Registration) ID() string {
	return strings.ToLower(r.TabName())
}

// View is a named scene node holding a tab's content
type View interface {
	Name() string
	SetVisible(visible bool)
}

// Button is a named scene node that selects a tab
type Button interface {
	Name() string
	SetSelected(selected bool)
}

// Scene resolves views and buttons by name. Lookups are case-insensitive.
type Scene interface {
	View(name string) (View, bool)
	Button(name string) (Button, bool)
}
