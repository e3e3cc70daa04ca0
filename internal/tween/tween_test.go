package tween

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEases_Endpoints(t *testing.T) {
	tests := []struct {
		name string
		ease Ease
	}{
		{"EaseOutBack", EaseOutBack},
		{"EaseInBack", EaseInBack},
		{"EaseOutCubic", EaseOutCubic},
		{"EaseInCubic", EaseInCubic},
		{"Linear", Linear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, 0.0, tt.ease(0), 1e-9)
			assert.InDelta(t, 1.0, tt.ease(1), 1e-9)
		})
	}
}

func TestEases_KnownValues(t *testing.T) {
	// c1 = 1.70158, c3 = 2.70158
	assert.InDelta(t, 1+2.70158*-0.125+1.70158*0.25, EaseOutBack(0.5), 1e-9)
	assert.InDelta(t, 2.70158*0.125-1.70158*0.25, EaseInBack(0.5), 1e-9)
	assert.InDelta(t, 0.875, EaseOutCubic(0.5), 1e-9)
	assert.InDelta(t, 0.125, EaseInCubic(0.5), 1e-9)
}

func TestEaseOutBack_Overshoots(t *testing.T) {
	assert.Greater(t, EaseOutBack(0.8), 1.0)
}

func TestEaseInBack_Undershoots(t *testing.T) {
	assert.Less(t, EaseInBack(0.2), 0.0)
}

func TestTween_StepInterpolates(t *testing.T) {
	tw := New(Opening, 0, 2, 100*time.Millisecond, Linear)

	assert.InDelta(t, 0.5, tw.Step(25*time.Millisecond), 1e-9)
	assert.InDelta(t, 1.0, tw.Step(25*time.Millisecond), 1e-9)
	assert.False(t, tw.Done())
}

func TestTween_SnapsToEnd(t *testing.T) {
	tw := New(Opening, 0, 1, 100*time.Millisecond, EaseOutBack)

	for i := 0; i < 6; i++ {
		tw.Step(17 * time.Millisecond)
	}

	assert.True(t, tw.Done())
	assert.Equal(t, 1.0, tw.Value())
	assert.Equal(t, 102*time.Millisecond, tw.Elapsed())
}

func TestTween_StepAfterDoneIsStable(t *testing.T) {
	tw := New(Closing, 1, 0, 10*time.Millisecond, EaseInBack)
	tw.Step(20 * time.Millisecond)

	assert.Equal(t, 0.0, tw.Step(time.Second))
	assert.Equal(t, 20*time.Millisecond, tw.Elapsed())
}

func TestTween_ZeroDurationCompletesImmediately(t *testing.T) {
	tw := New(Opening, 0, 1, 0, nil)

	assert.Equal(t, 1.0, tw.Step(0))
	assert.True(t, tw.Done())
}

func TestDirection_String(t *testing.T) {
	assert.Equal(t, "opening", Opening.String())
	assert.Equal(t, "closing", Closing.String())
	assert.Equal(t, "unknown", Direction(9).String())
}
