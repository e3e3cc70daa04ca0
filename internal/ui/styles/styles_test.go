package styles

import (
	"testing"
)

func TestNew(t *testing.T) {
	s := New()
	if s == nil {
		t.Fatal("New() returned nil")
	}
}

func TestStatusState(t *testing.T) {
	s := New()

	tests := []struct {
		state string
		name  string
	}{
		{"closed", "Closed"},
		{"opening", "Opening"},
		{"open", "Open"},
		{"closing", "Closing"},
		{"bogus", "Unknown state falls back to closed colour"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rendered := s.StatusState(tt.state).Render(tt.state)
			if len(rendered) == 0 {
				t.Error("StatusState rendered empty string")
			}
		})
	}
}
