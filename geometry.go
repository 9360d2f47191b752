package radial

import "math"

// ArcSpec is the angular span a value range maps onto, in degrees. Angles
// follow screen convention: 0° points right and angles grow clockwise, so
// -90° (or 270°) is 12 o'clock. A negative ArcLength sweeps counter-clockwise.
type ArcSpec struct {
	StartAngle float64
	ArcLength  float64
}

// FullCircle starts at 12 o'clock and sweeps once clockwise.
var FullCircle = ArcSpec{StartAngle: -90, ArcLength: 360}

// Gauge is a 270° arc open at the bottom, sweeping clockwise from
// 7:30 to 4:30.
var Gauge = ArcSpec{StartAngle: 135, ArcLength: 270}

// HalfCircle returns a 180° arc occupying the given side of the circle.
func HalfCircle(o Orientation) ArcSpec {
	switch o {
	case OrientationRight:
		return ArcSpec{StartAngle: -90, ArcLength: 180}
	case OrientationBottom:
		return ArcSpec{StartAngle: 0, ArcLength: 180}
	case OrientationLeft:
		return ArcSpec{StartAngle: 90, ArcLength: 180}
	default:
		return ArcSpec{StartAngle: 180, ArcLength: 180}
	}
}

// Reversed returns the same span traversed in the opposite direction: the
// old end becomes the new start.
func (a ArcSpec) Reversed() ArcSpec {
	return ArcSpec{StartAngle: a.StartAngle + a.ArcLength, ArcLength: -a.ArcLength}
}

// EndAngle returns StartAngle + ArcLength.
func (a ArcSpec) EndAngle() float64 {
	return a.StartAngle + a.ArcLength
}

func (a ArcSpec) validate() error {
	if !isFinite(a.StartAngle) || !isFinite(a.ArcLength) {
		return configErrorf("arc must be finite, got start %v length %v", a.StartAngle, a.ArcLength)
	}
	if a.ArcLength == 0 {
		return configErrorf("arc length must be non-zero")
	}
	return nil
}

// AngleOf returns the direction of (dx, dy) in degrees, normalized to [0, 360).
func AngleOf(dx, dy float64) float64 {
	return normalizeAngle(math.Atan2(dy, dx) * 180 / math.Pi)
}

// DistanceOf returns the Euclidean length of (dx, dy).
func DistanceOf(dx, dy float64) float64 {
	return math.Hypot(dx, dy)
}

// RelativeSweep returns how far angle lies along the arc from its start, in
// degrees within [0, |ArcLength|]. Angles past the end of the span clamp to
// the end rather than wrapping back to zero.
func RelativeSweep(angle float64, arc ArcSpec) float64 {
	var rel float64
	if arc.ArcLength >= 0 {
		rel = normalizeAngle(angle - arc.StartAngle)
	} else {
		rel = normalizeAngle(arc.StartAngle - angle)
	}
	return math.Min(rel, math.Abs(arc.ArcLength))
}

// ValueAtAngle maps a pointer angle onto r along the arc. Zero-width ranges and
// zero-length arcs return r.Min.
func ValueAtAngle(angle float64, r Range, arc ArcSpec) float64 {
	length := math.Abs(arc.ArcLength)
	if length == 0 || r.Span() == 0 {
		return r.Min
	}
	return r.Min + RelativeSweep(angle, arc)/length*r.Span()
}

// AngleAtValue is the inverse of ValueAtAngle. It uses the signed ArcLength so
// reverse arcs animate the right way, and does not normalize the result.
// Zero-width ranges return the start angle.
func AngleAtValue(value float64, r Range, arc ArcSpec) float64 {
	if r.Span() == 0 {
		return arc.StartAngle
	}
	return arc.StartAngle + (value-r.Min)/r.Span()*arc.ArcLength
}

// pointOnCircle returns the point at angle degrees on the circle.
func pointOnCircle(center Vec2, radius, angle float64) Vec2 {
	sin, cos := math.Sincos(angle * math.Pi / 180)
	return Vec2{center.X + radius*cos, center.Y + radius*sin}
}

func normalizeAngle(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	// -0 and values rounding up to 360 after the add.
	if deg >= 360 || deg == 0 {
		return 0
	}
	return deg
}
