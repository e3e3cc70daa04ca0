// Package tween provides eased scalar interpolation and the open/close
// animator built on top of it.
package tween

// Ease remaps normalized time t to animation progress.
type Ease func(t float64) float64

const (
	backC1 = 1.70158
	backC3 = backC1 + 1
)

// EaseOutBack overshoots the end value slightly before settling.
func EaseOutBack(t float64) float64 {
	u := t - 1
	return 1 + backC3*u*u*u + backC1*u*u
}

// EaseInBack pulls back below the start value before accelerating.
func EaseInBack(t float64) float64 {
	return backC3*t*t*t - backC1*t*t
}

// EaseOutCubic decelerates toward the end value.
func EaseOutCubic(t float64) float64 {
	u := 1 - t
	return 1 - u*u*u
}

// EaseInCubic accelerates from the start value.
func EaseInCubic(t float64) float64 {
	return t * t * t
}

// Linear is the identity ease.
func Linear(t float64) float64 {
	return t
}
