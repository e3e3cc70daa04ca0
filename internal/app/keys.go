package app

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/riordanpawley/vrhud/internal/ui/overlay"
)

// KeyMap holds the host-level bindings
type KeyMap struct {
	Toggle  key.Binding
	NextTab key.Binding
	PrevTab key.Binding
	Notify  key.Binding
	Help    key.Binding
	Quit    key.Binding

	List overlay.ListKeys
}

// NewKeyMap creates the bindings with toggle on the configured key
func NewKeyMap(toggle string) KeyMap {
	if toggle == "" {
		toggle = "m"
	}
	return KeyMap{
		Toggle: key.NewBinding(
			key.WithKeys(toggle),
			key.WithHelp(toggle, "menu"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev tab"),
		),
		Notify: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "notify"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		List: overlay.DefaultListKeys(),
	}
}

// Global returns the bindings that work whether or not the menu is open
func (k KeyMap) Global() []key.Binding {
	return []key.Binding{k.Toggle, k.Notify, k.Help, k.Quit}
}

// Tab returns the bindings that only act on an open menu
func (k KeyMap) Tab() []key.Binding {
	return []key.Binding{k.NextTab, k.PrevTab, k.List.Down, k.List.Next, k.List.Activate}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return k.Global()
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		k.Global(),
		{k.NextTab, k.PrevTab},
		{k.List.Up, k.List.Down, k.List.Prev, k.List.Next, k.List.Activate},
	}
}
