// Package overlay holds the modal dialogs drawn over the HUD and the
// built-in menu tabs.
package overlay

import tea "github.com/charmbracelet/bubbletea"

// Overlay represents a modal dialog drawn above the menu
type Overlay interface {
	tea.Model
	Title() string
	Size() (width, height int)
}

// CloseOverlayMsg signals that the top dialog should be closed
type CloseOverlayMsg struct{}

// SelectionMsg is sent when a tab setting changes or a dialog is answered.
// Key is one of the Key* constants; Value depends on the key.
type SelectionMsg struct {
	Key   string
	Value any
}

// Selection keys
const (
	KeyLifetime     = "lifetime"      // time.Duration
	KeyRestart      = "restart"       // tween.RestartPolicy
	KeyMenuScale    = "menu-scale"    // float64
	KeyPanel        = "panel"         // bool
	KeySendTest     = "send-test"     // TestNotification
	KeyClearAll     = "clear-all"     // nil, asks for confirmation
	KeyConfirmClear = "confirm-clear" // ConfirmResult
)

func selection(key string, value any) tea.Cmd {
	return func() tea.Msg {
		return SelectionMsg{Key: key, Value: value}
	}
}

func closeOverlay() tea.Msg {
	return CloseOverlayMsg{}
}
