// Package fade drives the notification panel opacity from queue occupancy.
package fade

import (
	"time"

	"github.com/riordanpawley/vrhud/internal/notify"
	"github.com/riordanpawley/vrhud/internal/tween"
)

// Options configures a Controller
type Options struct {
	FadeInDuration  time.Duration
	FadeOutDuration time.Duration
}

// DefaultOptions returns the stock fade timings
func DefaultOptions() Options {
	return Options{
		FadeInDuration:  200 * time.Millisecond,
		FadeOutDuration: 400 * time.Millisecond,
	}
}

// Controller fades its target in while the queue holds notifications and
// out once it empties. Every queue change re-evaluates the target alpha and
// restarts the fade from the current alpha.
type Controller struct {
	target tween.Target
	opts   Options

	alpha  float64
	active *tween.Tween
	text   string
	count  int

	starts int
}

// New creates a controller at rest, fully transparent
func New(target tween.Target, opts Options) *Controller {
	return &Controller{
		target: target,
		opts:   opts,
	}
}

// Bind subscribes the controller to queue changes
func (c *Controller) Bind(q *notify.Queue) {
	q.OnChange(c.Observe)
}

// Observe handles one queue change
func (c *Controller) Observe(change notify.Change) {
	c.text = change.Text
	c.count = change.Count

	if change.Count > 0 {
		c.fadeTo(1)
		return
	}
	c.fadeTo(0)
}

// Update advances the running fade by dt
func (c *Controller) Update(dt time.Duration) {
	if c.active == nil {
		return
	}

	c.alpha = c.active.Step(dt)
	c.setStrength(c.alpha)

	if !c.active.Done() {
		return
	}

	dir := c.active.Direction
	c.active = nil
	if dir == tween.Closing {
		c.setActive(false)
	}
}

// Alpha returns the current opacity
func (c *Controller) Alpha() float64 {
	return c.alpha
}

// Text returns the display text from the last queue change
func (c *Controller) Text() string {
	return c.text
}

// Visible reports whether the panel should be drawn at all
func (c *Controller) Visible() bool {
	return c.alpha > 0 || c.active != nil
}

// Fading reports whether a fade is in flight
func (c *Controller) Fading() bool {
	return c.active != nil
}

// Starts returns how many fades have been started
func (c *Controller) Starts() int {
	return c.starts
}

func (c *Controller) fadeTo(end float64) {
	if c.active == nil && c.alpha == end {
		return
	}

	dir, duration, ease := tween.Closing, c.opts.FadeOutDuration, tween.Ease(tween.EaseInCubic)
	if end > 0 {
		dir, duration, ease = tween.Opening, c.opts.FadeInDuration, tween.EaseOutCubic
		c.setActive(true)
	}

	c.active = tween.New(dir, c.alpha, end, duration, ease)
	c.starts++
}

func (c *Controller) setStrength(v float64) {
	if c.target != nil {
		c.target.SetStrength(v)
	}
}

func (c *Controller) setActive(active bool) {
	if c.target != nil {
		c.target.SetActive(active)
	}
}
