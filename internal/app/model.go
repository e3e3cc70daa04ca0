// Package app contains the main application model and TEA implementation.
package app

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/riordanpawley/vrhud/internal/config"
	"github.com/riordanpawley/vrhud/internal/menu"
	"github.com/riordanpawley/vrhud/internal/notify"
	"github.com/riordanpawley/vrhud/internal/tween"
	"github.com/riordanpawley/vrhud/internal/types"
	"github.com/riordanpawley/vrhud/internal/ui/hud"
	"github.com/riordanpawley/vrhud/internal/ui/overlay"
	"github.com/riordanpawley/vrhud/internal/ui/statusbar"
	"github.com/riordanpawley/vrhud/internal/ui/styles"
	"github.com/riordanpawley/vrhud/internal/ui/toast"
)

// maxFrameStep caps dt after a stall so animations do not jump to the end
const maxFrameStep = 250 * time.Millisecond

// Model is the main application state
type Model struct {
	hud  *HUD
	keys KeyMap

	// UI state
	overlayStack *overlay.Stack
	panelEnabled bool
	sent         int

	// Terminal size
	width  int
	height int

	// Frame clock
	interval  time.Duration
	lastFrame time.Time

	styles *styles.Styles
	toast  *toast.Renderer
	config *config.Config
	logger *slog.Logger
}

// New creates the model for the demo scene
func New(cfg *config.Config, logger *slog.Logger) Model {
	return NewWithScene(cfg, hud.DemoScene(), nil, logger)
}

// NewWithScene creates the model against a custom scene and tab table
func NewWithScene(cfg *config.Config, scene menu.Scene, regs []menu.Registration, logger *slog.Logger) Model {
	if logger == nil {
		logger = slog.Default()
	}
	st := styles.New()

	return Model{
		hud:          NewHUD(cfg, scene, regs, logger),
		keys:         NewKeyMap(cfg.Menu.ToggleKey),
		overlayStack: overlay.NewStack(),
		panelEnabled: true,
		interval:     cfg.Host.FrameInterval(),
		styles:       st,
		toast:        toast.New(st),
		config:       cfg,
		logger:       logger,
	}
}

// HUD exposes the overlay core
func (m Model) HUD() *HUD {
	return m.hud
}

// Init starts the frame clock
func (m Model) Init() tea.Cmd {
	return frameTick(m.interval)
}

// Update handles incoming messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case frameMsg:
		m.step(time.Time(msg))
		return m, frameTick(m.interval)

	case tea.KeyMsg:
		// If a dialog is open, it gets every key
		if !m.overlayStack.IsEmpty() {
			return m, m.overlayStack.Update(msg)
		}
		return m.handleKey(msg)

	case overlay.CloseOverlayMsg:
		m.overlayStack.Pop()
		return m, nil

	case overlay.SelectionMsg:
		return m.handleSelection(msg)
	}

	// Anything else (cursor blinks) goes to the active tab
	return m, m.hud.Menu.HandleMsg(msg)
}

// step advances the HUD by the time since the previous frame
func (m *Model) step(now time.Time) {
	dt := m.interval
	if !m.lastFrame.IsZero() {
		dt = now.Sub(m.lastFrame)
	}
	m.lastFrame = now

	if dt < 0 {
		dt = 0
	}
	if dt > maxFrameStep {
		dt = maxFrameStep
	}
	m.hud.Step(dt)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menuOpen := m.hud.Menu.IsOpen()

	// A tab taking typed text sees everything except ctrl+c
	if menuOpen && m.capturing() {
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		return m, m.hud.Menu.HandleMsg(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Toggle):
		m.hud.Menu.Toggle()
		return m, nil

	case key.Matches(msg, m.keys.Notify):
		m.sent++
		m.hud.Service.Notify(notify.LevelInfo, fmt.Sprintf("Notification #%d", m.sent))
		return m, nil

	case key.Matches(msg, m.keys.Help):
		return m, m.overlayStack.Push(overlay.NewHelpOverlay(m.keys))
	}

	if !menuOpen {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.NextTab):
		m.hud.Menu.Next()
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		m.hud.Menu.Prev()
		return m, nil
	}
	return m, m.hud.Menu.HandleMsg(msg)
}

// capturing reports whether the active tab is taking raw text
func (m Model) capturing() bool {
	tab := m.hud.Menu.Current()
	if tab == nil {
		return false
	}
	c, ok := tab.Handler.(overlay.InputCapturer)
	return ok && c.CapturesInput()
}

func (m Model) handleSelection(msg overlay.SelectionMsg) (tea.Model, tea.Cmd) {
	switch msg.Key {
	case overlay.KeyLifetime:
		if d, ok := msg.Value.(time.Duration); ok {
			m.hud.Queue.SetLifetime(d)
			m.config.Notifications.LifetimeMs = int(d / time.Millisecond)
			m.logger.Info("notification lifetime changed", "lifetime", d)
		}

	case overlay.KeyRestart:
		if p, ok := msg.Value.(tween.RestartPolicy); ok {
			m.hud.Menu.Animator().SetRestartPolicy(p)
			m.config.Menu.RestartPolicy = p.String()
			m.logger.Info("restart policy changed", "policy", p.String())
		}

	case overlay.KeyMenuScale:
		if v, ok := msg.Value.(float64); ok {
			m.hud.Menu.Animator().SetTargetValue(v)
			m.config.Menu.TargetScale = v
			m.logger.Info("menu scale changed", "scale", v)
		}

	case overlay.KeyPanel:
		if on, ok := msg.Value.(bool); ok {
			m.panelEnabled = on
		}

	case overlay.KeySendTest:
		if n, ok := msg.Value.(overlay.TestNotification); ok {
			m.hud.Service.Notify(n.Level, n.Message)
		}

	case overlay.KeyClearAll:
		return m, m.overlayStack.Push(overlay.NewClearConfirmDialog(m.hud.Queue.Len()))

	case overlay.KeyConfirmClear:
		if res, ok := msg.Value.(overlay.ConfirmResult); ok && res.Confirmed {
			m.hud.Queue.Clear()
			m.logger.Info("notifications cleared")
		}

	default:
		m.logger.Warn("unhandled selection", "key", msg.Key)
	}

	return m, nil
}

// View renders the HUD
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	state := types.StateFor(m.hud.Menu.IsOpen(), m.hud.Menu.Animator().Animating())
	sb := statusbar.New(state, m.hud.Queue.Len(),
		statusbar.Hints(state, m.keys.Global(), m.keys.Tab()), m.width, m.styles)
	statusBarView := sb.Render()

	mainHeight := max(m.height-lipgloss.Height(statusBarView), 1)

	var toastView string
	if m.panelEnabled && m.hud.PanelSurface.Active() {
		toastView = m.toast.Render(m.hud.Fade.Text(), m.hud.PanelSurface.Strength(), m.width)
	}
	toastHeight := min(lipgloss.Height(toastView), mainHeight-1)
	if toastView == "" {
		toastHeight = 0
	}

	center := m.renderMenu()
	if !m.overlayStack.IsEmpty() {
		center = m.overlayStack.View()
	}

	backdrop := []lipgloss.WhitespaceOption{
		lipgloss.WithWhitespaceChars("·"),
		lipgloss.WithWhitespaceForeground(m.styles.Backdrop.GetForeground()),
	}
	top := lipgloss.Place(m.width, mainHeight-toastHeight, lipgloss.Center, lipgloss.Center, center, backdrop...)
	top = clip(top, m.width, mainHeight-toastHeight)

	sections := []string{top}
	if toastHeight > 0 {
		bottom := lipgloss.Place(m.width, toastHeight, lipgloss.Right, lipgloss.Bottom, toastView, backdrop...)
		sections = append(sections, clip(bottom, m.width, toastHeight))
	}
	sections = append(sections, statusBarView)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderMenu draws the tab strip and the active tab at the animated scale
func (m Model) renderMenu() string {
	if !m.hud.MenuSurface.Active() {
		return ""
	}

	tabs := m.hud.Menu.Tabs()
	if len(tabs) == 0 {
		return ""
	}
	current := m.hud.Menu.Current()

	labels := make([]string, 0, len(tabs))
	for _, tab := range tabs {
		style := m.styles.TabInactive
		if tab == current {
			style = m.styles.TabActive
		}
		labels = append(labels, style.Render(tab.Handler.Title()))
	}
	strip := m.styles.TabStrip.Render(lipgloss.JoinHorizontal(lipgloss.Top, labels...))

	content := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.MenuTitle.Render("Settings"),
		strip,
		current.Handler.View(),
	)
	return hud.Scale(content, m.styles.Menu, m.hud.MenuSurface.Strength())
}

// clip cuts s down to a w by h block
func clip(s string, w, h int) string {
	return lipgloss.NewStyle().MaxWidth(w).MaxHeight(h).Render(s)
}

// frameMsg carries the wall-clock time of a host frame
type frameMsg time.Time

func frameTick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
