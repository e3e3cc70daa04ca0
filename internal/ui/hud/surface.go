package hud

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Surface is a display target: one scalar strength and an active flag.
// The menu uses it as scale, the notification panel as opacity.
type Surface struct {
	strength float64
	active   bool
}

// SetStrength sets the scale or opacity
func (s *Surface) SetStrength(v float64) {
	s.strength = v
}

// SetActive shows or hides the surface
func (s *Surface) SetActive(active bool) {
	s.active = active
}

// Strength returns the current scale or opacity
func (s *Surface) Strength() float64 {
	return s.strength
}

// Active reports whether the surface is shown
func (s *Surface) Active() bool {
	return s.active
}

// minScaledWidth is the narrowest box worth drawing
const minScaledWidth = 6

// Scale draws content inside style at scale times its natural size.
// Scales above 1 (ease-out-back overshoot) widen the box; content that no
// longer fits is cut off.
func Scale(content string, style lipgloss.Style, scale float64) string {
	if scale <= 0 {
		return ""
	}

	naturalW := lipgloss.Width(content) + style.GetHorizontalFrameSize()
	naturalH := lipgloss.Height(content) + style.GetVerticalFrameSize()

	w := int(math.Round(float64(naturalW) * scale))
	h := int(math.Round(float64(naturalH) * scale))
	if w < minScaledWidth || h < style.GetVerticalFrameSize()+1 {
		return ""
	}

	innerW := w - style.GetHorizontalFrameSize()
	innerH := h - style.GetVerticalFrameSize()

	lines := strings.Split(content, "\n")
	if len(lines) > innerH {
		lines = lines[:innerH]
	}
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, innerW, "")
	}
	clipped := strings.Join(lines, "\n")

	// Width and Height include padding but not border or margins
	return style.
		Width(innerW + style.GetHorizontalPadding()).
		Height(innerH + style.GetVerticalPadding()).
		Render(clipped)
}
