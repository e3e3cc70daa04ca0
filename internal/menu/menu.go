package menu

import (
	"log/slog"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/vrhud/internal/domain"
	"github.com/riordanpawley/vrhud/internal/tween"
)

// Tab is a registered handler bound to its scene nodes
type Tab struct {
	ID      string
	Name    string
	Handler Handler
	View    View
	Button  Button
}

// Menu is the tabbed settings menu. It owns the scale animation and the
// active tab; handlers only see messages while the menu is open.
type Menu struct {
	tabs    []*Tab
	current int
	skipped []error
	results []error

	anim   *tween.ToggleAnimator
	logger *slog.Logger
}

// Build resolves every registration against the scene. Registrations whose
// view or button is missing are skipped with a warning.
func Build(scene Scene, regs []Registration, target tween.Target, opts tween.AnimatorOptions, logger *slog.Logger) *Menu {
	if logger == nil {
		logger = slog.Default()
	}

	m := &Menu{
		anim:   tween.NewToggleAnimator(target, opts),
		logger: logger,
	}

	seen := make(map[string]bool)
	for _, reg := range regs {
		tab, err := bind(scene, reg, seen)
		m.results = append(m.results, err)
		if err != nil {
			logger.Warn("skipping tab", "handler", reg.Handler, "error", err)
			m.skipped = append(m.skipped, err)
			continue
		}
		seen[tab.ID] = true
		m.tabs = append(m.tabs, tab)
		logger.Debug("tab registered", "tab", tab.ID)
	}

	for i, tab := range m.tabs {
		m.setFocus(tab, i == 0)
	}
	return m
}

func bind(scene Scene, reg Registration, seen map[string]bool) (*Tab, error) {
	name := reg.TabName()
	id := reg.ID()

	if seen[id] {
		return nil, &domain.TabError{Op: "register", Tab: id, Err: domain.ErrDuplicateTab}
	}

	view, ok := scene.View(name)
	if !ok {
		return nil, &domain.TabError{Op: "register", Tab: id, Err: domain.ErrViewNotFound}
	}
	button, ok := scene.Button(name)
	if !ok {
		return nil, &domain.TabError{Op: "register", Tab: id, Err: domain.ErrButtonNotFound}
	}
	if reg.New == nil {
		return nil, &domain.TabError{Op: "register", Tab: id, Message: "no constructor"}
	}

	return &Tab{
		ID:      id,
		Name:    name,
		Handler: reg.New(),
		View:    view,
		Button:  button,
	}, nil
}

// Toggle opens or closes the menu. It is driven by the host's button-down edge.
func (m *Menu) Toggle() {
	m.anim.Toggle()
	m.logger.Debug("menu toggled", "open", m.anim.IsOpen(), "value", m.anim.Value())
}

// Close starts closing the menu if it is open
func (m *Menu) Close() {
	m.anim.Close()
}

// Update advances the scale animation
func (m *Menu) Update(dt time.Duration) {
	m.anim.Update(dt)
}

// IsOpen reports the logical open state
func (m *Menu) IsOpen() bool {
	return m.anim.IsOpen()
}

// Scale returns the current animated scale
func (m *Menu) Scale() float64 {
	return m.anim.Value()
}

// Animator exposes the scale animator
func (m *Menu) Animator() *tween.ToggleAnimator {
	return m.anim
}

// Tabs returns the registered tabs in table order
func (m *Menu) Tabs() []*Tab {
	return m.tabs
}

// Skipped returns the registration errors for tabs that were left out
func (m *Menu) Skipped() []error {
	return m.skipped
}

// Results returns one entry per registration in table order: nil when the
// tab was bound, the registration error otherwise
func (m *Menu) Results() []error {
	return m.results
}

// Current returns the active tab, or nil when no tab registered
func (m *Menu) Current() *Tab {
	if len(m.tabs) == 0 {
		return nil
	}
	return m.tabs[m.current]
}

// Select activates the tab with id
func (m *Menu) Select(id string) error {
	for i, tab := range m.tabs {
		if tab.ID == id {
			m.activate(i)
			return nil
		}
	}
	return &domain.TabError{Op: "select", Tab: id, Err: domain.ErrUnknownTab}
}

// Next activates the following tab, wrapping around
func (m *Menu) Next() {
	if len(m.tabs) == 0 {
		return
	}
	m.activate((m.current + 1) % len(m.tabs))
}

// Prev activates the preceding tab, wrapping around
func (m *Menu) Prev() {
	if len(m.tabs) == 0 {
		return
	}
	m.activate((m.current - 1 + len(m.tabs)) % len(m.tabs))
}

// HandleMsg forwards msg to the active tab while the menu is open
func (m *Menu) HandleMsg(msg tea.Msg) tea.Cmd {
	tab := m.Current()
	if tab == nil || !m.IsOpen() {
		return nil
	}
	return tab.Handler.Update(msg)
}

func (m *Menu) activate(i int) {
	if i == m.current {
		return
	}
	m.setFocus(m.tabs[m.current], false)
	m.current = i
	m.setFocus(m.tabs[m.current], true)
}

func (m *Menu) setFocus(tab *Tab, focused bool) {
	tab.View.SetVisible(focused)
	tab.Button.SetSelected(focused)
	if a, ok := tab.Handler.(Activator); ok {
		a.SetFocused(focused)
	}
}
