// Package notify implements the bounded, auto-expiring notification queue
// and the rich-text display built from it.
package notify

import (
	"fmt"
	"strings"
	"time"
)

// Level indicates the severity of a notification
type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelWarning
	LevelError
)

// String returns the string representation of the level
func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelSuccess:
		return "success"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return "unknown"
	}
}

// ParseLevel maps a level name to a Level
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "info":
		return LevelInfo, nil
	case "success":
		return LevelSuccess, nil
	case "warn", "warning":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	default:
		return LevelInfo, fmt.Errorf("unknown level %q", s)
	}
}

// RGB is an 8-bit colour without alpha
type RGB struct {
	R, G, B uint8
}

// Hex renders the colour with the given alpha as uppercase RRGGBBAA
func (c RGB) Hex(alpha float64) string {
	return fmt.Sprintf("%02X%02X%02X%02X", c.R, c.G, c.B, alphaByte(alpha))
}

// levelColors holds the text colour per level
var levelColors = map[Level]RGB{
	LevelInfo:    {0xFF, 0xFF, 0xFF},
	LevelSuccess: {0xA6, 0xDA, 0x95},
	LevelWarning: {0xEE, 0xD4, 0x9F},
	LevelError:   {0xED, 0x87, 0x96},
}

// Color returns the text colour for the level
func (l Level) Color() RGB {
	if c, ok := levelColors[l]; ok {
		return c
	}
	return levelColors[LevelInfo]
}

// Item is a single queued notification. Items are immutable once created.
type Item struct {
	ID        string
	Level     Level
	Message   string
	CreatedAt time.Time
}
