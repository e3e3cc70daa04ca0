// Package richtext parses the color/size markup emitted by the notification
// queue and renders it for the terminal.
package richtext

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// fragmentRe matches <color=#RRGGBBAA><size=N>text</size></color>. A fragment
// only ends at a closing pair followed by the separator or the end of the
// markup, so messages that contain the closing tags stay whole.
var fragmentRe = regexp.MustCompile(`(?s)<color=#([0-9A-Fa-f]{8})><size=(\d+)>(.*?)</size></color>(?:\n\n|\z)`)

// Fragment is one styled run of text
type Fragment struct {
	R, G, B uint8
	Alpha   float64
	Size    int
	Text    string
}

// Parse extracts every fragment from markup in order. Text outside
// fragments is ignored.
func Parse(markup string) []Fragment {
	matches := fragmentRe.FindAllStringSubmatch(markup, -1)
	frags := make([]Fragment, 0, len(matches))
	for _, m := range matches {
		rgba, err := strconv.ParseUint(m[1], 16, 32)
		if err != nil {
			continue
		}
		size, err := strconv.Atoi(m[2])
		if err != nil {
			continue
		}
		frags = append(frags, Fragment{
			R:     uint8(rgba >> 24),
			G:     uint8(rgba >> 16),
			B:     uint8(rgba >> 8),
			Alpha: float64(uint8(rgba)) / 255,
			Size:  size,
			Text:  m[3],
		})
	}
	return frags
}

// Options controls terminal rendering
type Options struct {
	// Background is the colour faded fragments blend toward, as #RRGGBB
	Background string
	// Opacity multiplies every fragment's alpha
	Opacity float64
	// BoldAt is the smallest size rendered bold
	BoldAt int
	// FaintBelow is the size below which text is rendered faint
	FaintBelow int
}

// DefaultOptions returns rendering options for the Macchiato base colour
func DefaultOptions() Options {
	return Options{
		Background: "#24273a",
		Opacity:    1,
		BoldAt:     28,
		FaintBelow: 20,
	}
}

// Render draws fragments one per block, separated by blank lines
func Render(frags []Fragment, opts Options) string {
	if len(frags) == 0 {
		return ""
	}

	bg := parseHex(opts.Background)
	rendered := make([]string, 0, len(frags))
	for _, f := range frags {
		a := clamp01(f.Alpha * opts.Opacity)
		color := fmt.Sprintf("#%02x%02x%02x",
			blend(f.R, bg[0], a), blend(f.G, bg[1], a), blend(f.B, bg[2], a))

		style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
		if f.Size >= opts.BoldAt {
			style = style.Bold(true)
		} else if f.Size < opts.FaintBelow {
			style = style.Faint(true)
		}
		rendered = append(rendered, style.Render(f.Text))
	}
	return strings.Join(rendered, "\n\n")
}

func blend(fg, bg uint8, a float64) uint8 {
	return uint8(float64(fg)*a + float64(bg)*(1-a) + 0.5)
}

func parseHex(s string) [3]uint8 {
	var out [3]uint8
	s = strings.TrimPrefix(s, "#")
	if len(s) != 6 {
		return out
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return out
	}
	out[0], out[1], out[2] = uint8(v>>16), uint8(v>>8), uint8(v)
	return out
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
