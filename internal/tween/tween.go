package tween

import "time"

// Direction tells whether a tween is opening or closing its target
type Direction int

const (
	Opening Direction = iota
	Closing
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case Opening:
		return "opening"
	case Closing:
		return "closing"
	default:
		return "unknown"
	}
}

// Tween is a single time-bounded interpolation from Start to End.
// A Tween is advanced by Step and is discarded once Done reports true;
// cancelling a tween means dropping the record.
type Tween struct {
	Direction Direction
	Start     float64
	End       float64
	Duration  time.Duration
	Ease      Ease

	elapsed time.Duration
	value   float64
	done    bool
}

// New creates a tween positioned at its start value
func New(dir Direction, start, end float64, duration time.Duration, ease Ease) *Tween {
	if ease == nil {
		ease = Linear
	}
	return &Tween{
		Direction: dir,
		Start:     start,
		End:       end,
		Duration:  duration,
		Ease:      ease,
		value:     start,
	}
}

// Step advances the tween by dt and returns the interpolated value.
// Once elapsed reaches Duration the value snaps to End exactly.
func (t *Tween) Step(dt time.Duration) float64 {
	if t.done {
		return t.value
	}
	if dt > 0 {
		t.elapsed += dt
	}

	if t.elapsed >= t.Duration {
		t.value = t.End
		t.done = true
		return t.value
	}

	progress := float64(t.elapsed) / float64(t.Duration)
	t.value = t.Start + (t.End-t.Start)*t.Ease(progress)
	return t.value
}

// Value returns the most recent interpolated value
func (t *Tween) Value() float64 {
	return t.value
}

// Elapsed returns the accumulated time
func (t *Tween) Elapsed() time.Duration {
	return t.elapsed
}

// Done reports whether the tween has reached its end value
func (t *Tween) Done() bool {
	return t.done
}
