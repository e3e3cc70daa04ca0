package notify

import (
	"fmt"
	"math"
	"strings"
)

// separator sits between consecutive fragments, never after the last one
const separator = "\n\n"

// DisplayLine is one rendered notification with its rank-derived weight
type DisplayLine struct {
	Item     Item
	Rank     int
	FontSize int
	Alpha    float64
}

// Markup renders the line as <color=#RRGGBBAA><size=N>message</size></color>.
// The message is passed through verbatim; tags inside it are not escaped.
func (l DisplayLine) Markup() string {
	return fmt.Sprintf("<color=#%s><size=%d>%s</size></color>",
		l.Item.Level.Color().Hex(l.Alpha), l.FontSize, l.Item.Message)
}

// FontSizeForRank returns the font size of the item at rank (0 = newest)
func (o Options) FontSizeForRank(rank int) int {
	size := o.BaseFontSize - o.FontSizeStep*rank
	if size < o.MinFontSize {
		return o.MinFontSize
	}
	return size
}

// AlphaForRank returns the opacity of the item at rank (0 = newest)
func (o Options) AlphaForRank(rank int) float64 {
	return clamp01(1 - o.AlphaStep*float64(rank))
}

// buildLines ranks items newest first. items must be oldest first.
func buildLines(items []Item, opts Options) []DisplayLine {
	lines := make([]DisplayLine, 0, len(items))
	for i := len(items) - 1; i >= 0; i-- {
		rank := len(lines)
		lines = append(lines, DisplayLine{
			Item:     items[i],
			Rank:     rank,
			FontSize: opts.FontSizeForRank(rank),
			Alpha:    opts.AlphaForRank(rank),
		})
	}
	return lines
}

// renderLines joins line markup with the blank-line separator
func renderLines(lines []DisplayLine) string {
	if len(lines) == 0 {
		return ""
	}

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(line.Markup())
	}
	return b.String()
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func alphaByte(alpha float64) uint8 {
	return uint8(math.Round(clamp01(alpha) * 255))
}
