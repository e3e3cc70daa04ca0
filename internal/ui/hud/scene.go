// Package hud provides the terminal stand-in for the world-space overlay:
// a named scene graph for tab views and buttons, and the surfaces the
// animators drive.
package hud

import (
	"sort"
	"strings"

	"github.com/riordanpawley/vrhud/internal/menu"
)

// Node is a named scene element used both as a tab view and a tab button
type Node struct {
	name     string
	visible  bool
	selected bool
}

// Name returns the node name as authored
func (n *Node) Name() string {
	return n.name
}

// SetVisible shows or hides the node
func (n *Node) SetVisible(visible bool) {
	n.visible = visible
}

// Visible reports whether the node is shown
func (n *Node) Visible() bool {
	return n.visible
}

// SetSelected marks a button as the active tab
func (n *Node) SetSelected(selected bool) {
	n.selected = selected
}

// Selected reports whether the button is the active tab
func (n *Node) Selected() bool {
	return n.selected
}

// Scene holds views and buttons keyed by lower-case name
type Scene struct {
	views   map[string]*Node
	buttons map[string]*Node
}

// NewScene creates an empty scene
func NewScene() *Scene {
	return &Scene{
		views:   make(map[string]*Node),
		buttons: make(map[string]*Node),
	}
}

// DemoScene returns the scene layout shipped with the overlay: one view and
// one button per built-in tab
func DemoScene() *Scene {
	s := NewScene()
	for _, name := range []string{"GeneralTab", "DisplayTab", "NotificationsTab"} {
		s.AddView(name)
		s.AddButton(name)
	}
	return s
}

// AddView adds a view node
func (s *Scene) AddView(name string) *Node {
	n := &Node{name: name}
	s.views[strings.ToLower(name)] = n
	return n
}

// AddButton adds a button node
func (s *Scene) AddButton(name string) *Node {
	n := &Node{name: name}
	s.buttons[strings.ToLower(name)] = n
	return n
}

// View looks up a view by name, ignoring case
func (s *Scene) View(name string) (menu.View, bool) {
	n, ok := s.views[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return n, true
}

// Button looks up a button by name, ignoring case
func (s *Scene) Button(name string) (menu.Button, bool) {
	n, ok := s.buttons[strings.ToLower(name)]
	if !ok {
		return nil, false
	}
	return n, true
}

// ViewNames returns the authored view names, sorted
func (s *Scene) ViewNames() []string {
	return names(s.views)
}

// ButtonNames returns the authored button names, sorted
func (s *Scene) ButtonNames() []string {
	return names(s.buttons)
}

func names(nodes map[string]*Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, n.name)
	}
	sort.Strings(out)
	return out
}
