package overlay

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/riordanpawley/vrhud/internal/menu"
	"github.com/riordanpawley/vrhud/internal/notify"
	"github.com/riordanpawley/vrhud/internal/tween"
)

// TabSettings seeds the built-in tabs with the running configuration
type TabSettings struct {
	Lifetime     time.Duration
	Restart      tween.RestartPolicy
	MenuScale    float64
	PanelEnabled bool
}

// TestNotification is the value of a KeySendTest selection
type TestNotification struct {
	Level   notify.Level
	Message string
}

// SampleMessage is sent by the "send sample" action
const SampleMessage = "Hello from the overlay"

// InputCapturer is implemented by tabs that take raw typing. While
// CapturesInput is true the host must not treat keys as shortcuts.
type InputCapturer interface {
	CapturesInput() bool
}

// Registrations is the static table of built-in tabs
func Registrations(s TabSettings) []menu.Registration {
	return []menu.Registration{
		{Handler: "GeneralTabHandler", New: func() menu.Handler { return NewGeneralTabHandler(s) }},
		{Handler: "DisplayTabHandler", New: func() menu.Handler { return NewDisplayTabHandler(s) }},
		{Handler: "NotificationsTabHandler", New: func() menu.Handler { return NewNotificationsTabHandler() }},
	}
}

var (
	lifetimeChoices = []time.Duration{3 * time.Second, 5 * time.Second, 8 * time.Second, 15 * time.Second}
	restartChoices  = []tween.RestartPolicy{tween.RestartFromCurrent, tween.RestartFromEndpoint}
	scaleChoices    = []float64{0.8, 1.0, 1.2, 1.5}
	levelChoices    = []notify.Level{notify.LevelInfo, notify.LevelSuccess, notify.LevelWarning, notify.LevelError}
)

// choiceIndex finds v in values, appending it when it is not a preset
func choiceIndex[T comparable](values []T, v T) ([]T, int) {
	for i, c := range values {
		if c == v {
			return values, i
		}
	}
	return append(append([]T(nil), values...), v), len(values)
}

func labels[T any](values []T, format func(T) string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = format(v)
	}
	return out
}

// GeneralTabHandler edits notification lifetime and the menu restart policy
type GeneralTabHandler struct {
	list *SettingsList
}

// NewGeneralTabHandler creates the General tab
func NewGeneralTabHandler(s TabSettings) *GeneralTabHandler {
	lifetimes, li := choiceIndex(lifetimeChoices, s.Lifetime)
	_, ri := choiceIndex(restartChoices, s.Restart)

	return &GeneralTabHandler{
		list: NewSettingsList([]SettingItem{
			{
				Key:     KeyLifetime,
				Label:   "Notification lifetime",
				Type:    SettingChoice,
				Choices: labels(lifetimes, time.Duration.String),
				Choice:  li,
				OnChange: func(item SettingItem) tea.Cmd {
					return selection(KeyLifetime, lifetimes[item.Choice])
				},
			},
			{
				Key:     KeyRestart,
				Label:   "Interrupted animation restarts from",
				Type:    SettingChoice,
				Choices: labels(restartChoices, tween.RestartPolicy.String),
				Choice:  ri,
				OnChange: func(item SettingItem) tea.Cmd {
					return selection(KeyRestart, restartChoices[item.Choice])
				},
			},
		}),
	}
}

// Title implements menu.Handler
func (h *GeneralTabHandler) Title() string { return "General" }

// Update implements menu.Handler
func (h *GeneralTabHandler) Update(msg tea.Msg) tea.Cmd { return h.list.Update(msg) }

// View implements menu.Handler
func (h *GeneralTabHandler) View() string { return h.list.View() }

// List exposes the settings rows
func (h *GeneralTabHandler) List() *SettingsList { return h.list }

// DisplayTabHandler edits the menu scale and the notification panel switch
type DisplayTabHandler struct {
	list *SettingsList
}

// NewDisplayTabHandler creates the Display tab
func NewDisplayTabHandler(s TabSettings) *DisplayTabHandler {
	scales, si := choiceIndex(scaleChoices, s.MenuScale)

	return &DisplayTabHandler{
		list: NewSettingsList([]SettingItem{
			{
				Key:     KeyMenuScale,
				Label:   "Menu scale",
				Type:    SettingChoice,
				Choices: labels(scales, func(v float64) string { return fmt.Sprintf("%.1fx", v) }),
				Choice:  si,
				OnChange: func(item SettingItem) tea.Cmd {
					return selection(KeyMenuScale, scales[item.Choice])
				},
			},
			{
				Key:     KeyPanel,
				Label:   "Notification panel",
				Type:    SettingToggle,
				Enabled: s.PanelEnabled,
				OnChange: func(item SettingItem) tea.Cmd {
					return selection(KeyPanel, item.Enabled)
				},
			},
		}),
	}
}

// Title implements menu.Handler
func (h *DisplayTabHandler) Title() string { return "Display" }

// Update implements menu.Handler
func (h *DisplayTabHandler) Update(msg tea.Msg) tea.Cmd { return h.list.Update(msg) }

// View implements menu.Handler
func (h *DisplayTabHandler) View() string { return h.list.View() }

// List exposes the settings rows
func (h *DisplayTabHandler) List() *SettingsList { return h.list }

// NotificationsTabHandler sends test notifications and clears the queue
type NotificationsTabHandler struct {
	list   *SettingsList
	input  textinput.Model
	submit key.Binding
	cancel key.Binding
	styles *Styles
}

// NewNotificationsTabHandler creates the Notifications tab
func NewNotificationsTabHandler() *NotificationsTabHandler {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "test message..."
	ti.CharLimit = 120
	ti.Width = 40
	// the frame clock already redraws every frame
	ti.Cursor.SetMode(cursor.CursorStatic)

	h := &NotificationsTabHandler{
		input: ti,
		submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "send"),
		),
		cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		styles: New(),
	}

	h.list = NewSettingsList([]SettingItem{
		{
			Key:     "level",
			Label:   "Level",
			Type:    SettingChoice,
			Choices: labels(levelChoices, notify.Level.String),
		},
		{
			Key:      "compose",
			Label:    "Write test message",
			Type:     SettingAction,
			OnAction: h.compose,
		},
		{
			Key:   "sample",
			Label: "Send sample",
			Type:  SettingAction,
			OnAction: func() tea.Cmd {
				return h.send(SampleMessage)
			},
		},
		{Type: SettingSeparator},
		{
			Key:   KeyClearAll,
			Label: "Clear all",
			Type:  SettingAction,
			OnAction: func() tea.Cmd {
				return selection(KeyClearAll, nil)
			},
		},
	})
	return h
}

// Title implements menu.Handler
func (h *NotificationsTabHandler) Title() string { return "Notifications" }

// Update implements menu.Handler
func (h *NotificationsTabHandler) Update(msg tea.Msg) tea.Cmd {
	if !h.input.Focused() {
		return h.list.Update(msg)
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, h.submit):
			text := strings.TrimSpace(h.input.Value())
			h.stopComposing()
			if text == "" {
				return nil
			}
			return h.send(text)
		case key.Matches(keyMsg, h.cancel):
			h.stopComposing()
			return nil
		}
	}

	var cmd tea.Cmd
	h.input, cmd = h.input.Update(msg)
	return cmd
}

// View implements menu.Handler
func (h *NotificationsTabHandler) View() string {
	view := h.list.View()
	if h.input.Focused() {
		view += "\n\n" + h.styles.Input.Render(h.input.View())
	}
	return view
}

// SetFocused implements menu.Activator. Leaving the tab drops a
// half-typed message.
func (h *NotificationsTabHandler) SetFocused(focused bool) {
	if !focused {
		h.stopComposing()
	}
}

// CapturesInput implements InputCapturer
func (h *NotificationsTabHandler) CapturesInput() bool {
	return h.input.Focused()
}

// Level returns the level used for test notifications
func (h *NotificationsTabHandler) Level() notify.Level {
	item, _ := h.list.Item("level")
	return levelChoices[item.Choice]
}

// List exposes the settings rows
func (h *NotificationsTabHandler) List() *SettingsList { return h.list }

func (h *NotificationsTabHandler) compose() tea.Cmd {
	return h.input.Focus()
}

func (h *NotificationsTabHandler) stopComposing() {
	h.input.Reset()
	h.input.Blur()
}

func (h *NotificationsTabHandler) send(message string) tea.Cmd {
	return selection(KeySendTest, TestNotification{Level: h.Level(), Message: message})
}
