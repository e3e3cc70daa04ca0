// Package domain holds the error values shared across the overlay packages.
package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	ErrNotInitialized = errors.New("not initialized")
	ErrViewNotFound   = errors.New("view not found")
	ErrButtonNotFound = errors.New("button not found")
	ErrUnknownTab     = errors.New("unknown tab")
	ErrDuplicateTab   = errors.New("duplicate tab")
)

// TabError represents a failure to wire or select a menu tab
type TabError struct {
	Op      string // Operation: "register", "select", etc.
	Tab     string // Optional: tab identifier
	Message string // Human-readable context
	Err     error  // Underlying error
}

func (e *TabError) Error() string {
	if e.Tab != "" && e.Err != nil {
		return fmt.Sprintf("tab %s [%s]: %v", e.Op, e.Tab, e.Err)
	}
	if e.Tab != "" {
		return fmt.Sprintf("tab %s [%s]: %s", e.Op, e.Tab, e.Message)
	}
	if e.Message != "" {
		return fmt.Sprintf("tab %s: %s", e.Op, e.Message)
	}
	if e.Err != nil {
		return fmt.Sprintf("tab %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("tab %s failed", e.Op)
}

func (e *TabError) Unwrap() error {
	return e.Err
}

// ConfigError represents an invalid or unreadable configuration value
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("config [%s]: %v", e.Field, e.Err)
	}
	return fmt.Sprintf("config: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
