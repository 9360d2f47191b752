package radial

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// AngleTween eases a displayed angle toward the angle a control reports.
// Retarget it whenever the control's angle changes and call Update(dt) each
// frame. The engine never reads the displayed angle back.
type AngleTween struct {
	tween    *gween.Tween
	fn       ease.TweenFunc
	duration float32
	current  float64
	target   float64
	Done     bool
}

// NewAngleTween creates a tween resting at angle. Each Retarget animates over
// duration seconds using fn; a nil fn means ease.OutCubic.
func NewAngleTween(angle float64, duration float32, fn ease.TweenFunc) *AngleTween {
	if fn == nil {
		fn = ease.OutCubic
	}
	return &AngleTween{fn: fn, duration: duration, current: angle, target: angle, Done: true}
}

// Retarget starts easing from the currently displayed angle toward angle.
// Retargeting to the current target is a no-op.
func (a *AngleTween) Retarget(angle float64) {
	if angle == a.target {
		return
	}
	a.target = angle
	if a.duration <= 0 {
		a.current = angle
		a.Done = true
		return
	}
	a.tween = gween.New(float32(a.current), float32(angle), a.duration, a.fn)
	a.Done = false
}

// Update advances the tween by dt seconds and returns the displayed angle.
func (a *AngleTween) Update(dt float32) float64 {
	if a.Done || a.tween == nil {
		return a.current
	}
	val, finished := a.tween.Update(dt)
	a.current = float64(val)
	if finished {
		a.current = a.target
		a.Done = true
	}
	return a.current
}

// Angle returns the displayed angle.
func (a *AngleTween) Angle() float64 {
	return a.current
}

// Target returns the angle being eased toward.
func (a *AngleTween) Target() float64 {
	return a.target
}
