package tween

import "time"

// Target is the host surface an animator drives: one scalar strength
// (scale or opacity) plus an active flag.
type Target interface {
	SetStrength(v float64)
	SetActive(active bool)
}

// RestartPolicy decides where a tween starts when it interrupts another one
type RestartPolicy int

const (
	// RestartFromCurrent starts from the value the interrupted tween reached
	RestartFromCurrent RestartPolicy = iota
	// RestartFromEndpoint starts from the canonical rest value (0 or target),
	// which makes rapid toggling jump visibly
	RestartFromEndpoint
)

// String returns the string representation of the policy
func (p RestartPolicy) String() string {
	switch p {
	case RestartFromCurrent:
		return "current"
	case RestartFromEndpoint:
		return "endpoint"
	default:
		return "unknown"
	}
}

// ParseRestartPolicy maps a config string to a policy, defaulting to RestartFromCurrent
func ParseRestartPolicy(s string) RestartPolicy {
	if s == "endpoint" {
		return RestartFromEndpoint
	}
	return RestartFromCurrent
}

// AnimatorOptions configures a ToggleAnimator
type AnimatorOptions struct {
	Duration    time.Duration
	TargetValue float64
	OpenEase    Ease
	CloseEase   Ease
	Restart     RestartPolicy
}

// DefaultAnimatorOptions returns the menu scale animation settings
func DefaultAnimatorOptions() AnimatorOptions {
	return AnimatorOptions{
		Duration:    250 * time.Millisecond,
		TargetValue: 1,
		OpenEase:    EaseOutBack,
		CloseEase:   EaseInBack,
		Restart:     RestartFromCurrent,
	}
}

// ToggleAnimator drives an open/closed state through an eased tween.
// At most one tween is active at a time; Toggle cancels the running one.
type ToggleAnimator struct {
	target Target
	opts   AnimatorOptions

	open   bool
	value  float64
	active *Tween

	onSettled func(open bool)
}

// NewToggleAnimator creates a closed animator at rest at 0
func NewToggleAnimator(target Target, opts AnimatorOptions) *ToggleAnimator {
	if opts.OpenEase == nil {
		opts.OpenEase = EaseOutBack
	}
	if opts.CloseEase == nil {
		opts.CloseEase = EaseInBack
	}
	return &ToggleAnimator{
		target: target,
		opts:   opts,
	}
}

// OnSettled registers a callback fired when a tween runs to completion.
// Cancelled tweens never fire it.
func (a *ToggleAnimator) OnSettled(fn func(open bool)) {
	a.onSettled = fn
}

// Toggle flips the state and starts animating toward the new target
func (a *ToggleAnimator) Toggle() {
	a.open = !a.open
	a.start()
}

// Open starts opening unless the animator is already open or opening
func (a *ToggleAnimator) Open() {
	if a.open {
		return
	}
	a.Toggle()
}

// Close starts closing unless the animator is already closed or closing
func (a *ToggleAnimator) Close() {
	if !a.open {
		return
	}
	a.Toggle()
}

// Snap jumps straight to the rest state for open, cancelling any tween
func (a *ToggleAnimator) Snap(open bool) {
	a.active = nil
	a.open = open
	if open {
		a.value = a.opts.TargetValue
		a.setActive(true)
		a.setStrength(a.value)
		return
	}
	a.value = 0
	a.setStrength(0)
	a.setActive(false)
}

// SetRestartPolicy changes how future interruptions pick their start value
func (a *ToggleAnimator) SetRestartPolicy(p RestartPolicy) {
	a.opts.Restart = p
}

// SetTargetValue changes the open value. An animator resting open moves
// to it at once; a running tween keeps its end value.
func (a *ToggleAnimator) SetTargetValue(v float64) {
	a.opts.TargetValue = v
	if a.open && a.active == nil {
		a.value = v
		a.setStrength(v)
	}
}

// Update advances the active tween by dt
func (a *ToggleAnimator) Update(dt time.Duration) {
	if a.active == nil {
		return
	}

	a.value = a.active.Step(dt)
	a.setStrength(a.value)

	if !a.active.Done() {
		return
	}

	dir := a.active.Direction
	a.active = nil
	if dir == Closing {
		a.setActive(false)
	}
	if a.onSettled != nil {
		a.onSettled(a.open)
	}
}

// IsOpen reports the logical state, which flips as soon as Toggle is called
func (a *ToggleAnimator) IsOpen() bool {
	return a.open
}

// Value returns the current interpolated strength
func (a *ToggleAnimator) Value() float64 {
	return a.value
}

// Animating reports whether a tween is in flight
func (a *ToggleAnimator) Animating() bool {
	return a.active != nil
}

// Active returns the in-flight tween, or nil when at rest
func (a *ToggleAnimator) Active() *Tween {
	return a.active
}

func (a *ToggleAnimator) start() {
	dir, end, ease := Closing, 0.0, a.opts.CloseEase
	if a.open {
		dir, end, ease = Opening, a.opts.TargetValue, a.opts.OpenEase
	}

	from := a.value
	if a.opts.Restart == RestartFromEndpoint {
		from = a.opts.TargetValue
		if a.open {
			from = 0
		}
	}

	// host must be visible before the first opening frame
	if dir == Opening {
		a.setActive(true)
	}

	a.active = New(dir, from, end, a.opts.Duration, ease)
	a.value = from
	a.setStrength(from)
}

func (a *ToggleAnimator) setStrength(v float64) {
	if a.target != nil {
		a.target.SetStrength(v)
	}
}

func (a *ToggleAnimator) setActive(active bool) {
	if a.target != nil {
		a.target.SetActive(active)
	}
}
