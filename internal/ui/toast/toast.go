// Package toast draws the notification panel from the queue's markup.
package toast

import (
	"github.com/riordanpawley/vrhud/internal/ui/richtext"
	"github.com/riordanpawley/vrhud/internal/ui/styles"
)

const (
	minPanelWidth = 20
	maxPanelWidth = 48
)

// Renderer turns display markup into the bottom-right notification panel
type Renderer struct {
	styles *styles.Styles
	text   richtext.Options
}

// New creates a Renderer with the given styles
func New(st *styles.Styles) *Renderer {
	return &Renderer{
		styles: st,
		text:   richtext.DefaultOptions(),
	}
}

// Render draws markup at the panel opacity alpha inside a screen width
// columns wide. It returns "" when there is nothing visible.
func (r *Renderer) Render(markup string, alpha float64, width int) string {
	if markup == "" || alpha <= 0 {
		return ""
	}

	frags := richtext.Parse(markup)
	if len(frags) == 0 {
		return ""
	}

	opts := r.text
	opts.Opacity = alpha
	body := richtext.Render(frags, opts)

	w := width / 3
	w = max(w, minPanelWidth)
	w = min(w, maxPanelWidth)

	return r.styles.Panel.Width(w).Render(body)
}
