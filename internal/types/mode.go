// Package types contains shared types used across the application.
package types

// MenuState is the visible phase of the menu animation
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpening
	MenuOpen
	MenuClosing
)

// StateFor derives the menu state from the logical open flag and whether
// a tween is still running
func StateFor(open, animating bool) MenuState {
	switch {
	case open && animating:
		return MenuOpening
	case open:
		return MenuOpen
	case animating:
		return MenuClosing
	default:
		return MenuClosed
	}
}

// String returns the string representation of the state
func (s MenuState) String() string {
	switch s {
	case MenuClosed:
		return "closed"
	case MenuOpening:
		return "opening"
	case MenuOpen:
		return "open"
	case MenuClosing:
		return "closing"
	default:
		return "unknown"
	}
}

// Visible reports whether any part of the menu is on screen
func (s MenuState) Visible() bool {
	return s != MenuClosed
}
