package overlay

import tea "github.com/charmbracelet/bubbletea"

// Stack holds the open dialogs; only the top one receives input
type Stack struct {
	overlays []Overlay
	styles   *Styles
}

// NewStack creates an empty dialog stack
func NewStack() *Stack {
	return &Stack{styles: New()}
}

// Push opens o above the current dialog
func (s *Stack) Push(o Overlay) tea.Cmd {
	s.overlays = append(s.overlays, o)
	return o.Init()
}

// Pop removes and returns the top dialog, or nil if none is open
func (s *Stack) Pop() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}

	top := s.overlays[len(s.overlays)-1]
	s.overlays = s.overlays[:len(s.overlays)-1]
	return top
}

// Current returns the top dialog without removing it
func (s *Stack) Current() Overlay {
	if len(s.overlays) == 0 {
		return nil
	}
	return s.overlays[len(s.overlays)-1]
}

// Len returns the number of open dialogs
func (s *Stack) Len() int {
	return len(s.overlays)
}

// IsEmpty returns true if no dialog is open
func (s *Stack) IsEmpty() bool {
	return len(s.overlays) == 0
}

// Clear closes every dialog
func (s *Stack) Clear() {
	s.overlays = nil
}

// Update pops on CloseOverlayMsg and forwards everything else to the top dialog
func (s *Stack) Update(msg tea.Msg) tea.Cmd {
	if s.IsEmpty() {
		return nil
	}

	if _, ok := msg.(CloseOverlayMsg); ok {
		s.Pop()
		return nil
	}

	model, cmd := s.Current().Update(msg)
	if o, ok := model.(Overlay); ok {
		s.overlays[len(s.overlays)-1] = o
	}
	return cmd
}

// View renders the top dialog in its frame, or "" when none is open
func (s *Stack) View() string {
	top := s.Current()
	if top == nil {
		return ""
	}

	w, _ := top.Size()
	body := s.styles.Title.Render(top.Title()) + "\n" + top.View()
	return s.styles.Dialog.Width(w).Render(body)
}
