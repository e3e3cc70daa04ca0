package domain

import (
	"errors"
	"testing"
)

func TestTabError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  TabError
		want string
	}{
		{
			name: "with tab and error",
			err:  TabError{Op: "register", Tab: "audio", Err: ErrViewNotFound},
			want: "tab register [audio]: view not found",
		},
		{
			name: "with tab and message",
			err:  TabError{Op: "select", Tab: "audio", Message: "disabled"},
			want: "tab select [audio]: disabled",
		},
		{
			name: "with message only",
			err:  TabError{Op: "build", Message: "empty registry"},
			want: "tab build: empty registry",
		},
		{
			name: "with underlying error",
			err:  TabError{Op: "select", Err: ErrUnknownTab},
			want: "tab select: unknown tab",
		},
		{
			name: "minimal",
			err:  TabError{Op: "register"},
			want: "tab register failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("TabError.Error() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTabError_Unwrap(t *testing.T) {
	err := &TabError{Op: "register", Tab: "audio", Err: ErrButtonNotFound}

	if !errors.Is(err, ErrButtonNotFound) {
		t.Errorf("errors.Is(%v, ErrButtonNotFound) = false", err)
	}
}

func TestConfigError(t *testing.T) {
	err := &ConfigError{Field: "menu.duration", Err: errors.New("must be positive")}

	if got, want := err.Error(), "config [menu.duration]: must be positive"; got != want {
		t.Errorf("ConfigError.Error() = %v, want %v", got, want)
	}

	bare := &ConfigError{Err: errors.New("boom")}
	if got, want := bare.Error(), "config: boom"; got != want {
		t.Errorf("ConfigError.Error() = %v, want %v", got, want)
	}
}
