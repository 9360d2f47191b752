package radial

import (
	"math"
	"strconv"
	"strings"

	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PathSpec describes a circular arc in the form SVG's elliptical arc command
// expects, plus the polar data it was built from.
type PathSpec struct {
	Center     Vec2
	Radius     float64
	StartAngle float64 // degrees
	Span       float64 // signed sweep in degrees; negative runs counter-clockwise
	Start      Vec2
	End        Vec2

	LargeArcFlag int // 1 when the arc covers more than 180°
	SweepFlag    int // 1 for clockwise (positive ArcLength), 0 otherwise
}

// Synthesize builds the arc from the start of arc to currentAngle. The sweep
// flag always follows the sign of ArcLength, so reverse arcs render as one
// continuous sweep in their own direction.
func Synthesize(center Vec2, radius float64, arc ArcSpec, currentAngle float64) PathSpec {
	span := RelativeSweep(currentAngle, arc)
	if arc.ArcLength < 0 {
		span = -span
	}
	return SweepPath(center, radius, arc, span)
}

// SweepPath builds the arc covering span degrees from the start of arc. Unlike
// Synthesize it can express a complete 360° sweep, whose end angle would
// otherwise alias back onto the start.
func SweepPath(center Vec2, radius float64, arc ArcSpec, span float64) PathSpec {
	p := PathSpec{
		Center:     center,
		Radius:     radius,
		StartAngle: arc.StartAngle,
		Span:       span,
		Start:      pointOnCircle(center, radius, arc.StartAngle),
		End:        pointOnCircle(center, radius, arc.StartAngle+span),
	}
	if math.Abs(span) > 180 {
		p.LargeArcFlag = 1
	}
	if arc.ArcLength >= 0 {
		p.SweepFlag = 1
	}
	return p
}

// TrackPath builds the full static track for arc.
func TrackPath(center Vec2, radius float64, arc ArcSpec) PathSpec {
	return SweepPath(center, radius, arc, arc.ArcLength)
}

// Empty reports whether the arc covers no angle.
func (p PathSpec) Empty() bool {
	return p.Span == 0 || p.Radius <= 0
}

func (p PathSpec) full() bool {
	return math.Abs(p.Span) >= 360
}

// SVG returns the path as an SVG "d" attribute. A complete circle is emitted
// as two half arcs because a single arc command cannot start and end on the
// same point.
func (p PathSpec) SVG() string {
	var b strings.Builder
	b.WriteString("M ")
	writePoint(&b, p.Start)
	if p.Empty() {
		return b.String()
	}
	if p.full() {
		mid := pointOnCircle(p.Center, p.Radius, p.StartAngle+math.Copysign(180, p.Span))
		writeArc(&b, p.Radius, 0, p.SweepFlag, mid)
		writeArc(&b, p.Radius, 0, p.SweepFlag, p.Start)
		return b.String()
	}
	writeArc(&b, p.Radius, p.LargeArcFlag, p.SweepFlag, p.End)
	return b.String()
}

func writeArc(b *strings.Builder, r float64, large, sweep int, end Vec2) {
	b.WriteString(" A ")
	b.WriteString(formatCoord(r))
	b.WriteByte(' ')
	b.WriteString(formatCoord(r))
	b.WriteString(" 0 ")
	b.WriteString(strconv.Itoa(large))
	b.WriteByte(' ')
	b.WriteString(strconv.Itoa(sweep))
	b.WriteByte(' ')
	writePoint(b, end)
}

func writePoint(b *strings.Builder, v Vec2) {
	b.WriteString(formatCoord(v.X))
	b.WriteByte(' ')
	b.WriteString(formatCoord(v.Y))
}

// formatCoord prints v with at most three decimals and no trailing zeros.
func formatCoord(v float64) string {
	v = roundTo(v, 3)
	if v == 0 {
		v = 0 // drop negative zero
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// AppendTo adds the arc to an ebiten vector path as a new subpath.
func (p PathSpec) AppendTo(path *vector.Path) {
	path.MoveTo(float32(p.Start.X), float32(p.Start.Y))
	if p.Empty() {
		return
	}
	dir := vector.Clockwise
	if p.SweepFlag == 0 {
		dir = vector.CounterClockwise
	}
	cx, cy, r := float32(p.Center.X), float32(p.Center.Y), float32(p.Radius)
	start := p.StartAngle * math.Pi / 180
	span := p.Span * math.Pi / 180
	if p.full() {
		half := math.Copysign(math.Pi, span)
		path.Arc(cx, cy, r, float32(start), float32(start+half), dir)
		path.Arc(cx, cy, r, float32(start+half), float32(start+2*half), dir)
		return
	}
	path.Arc(cx, cy, r, float32(start), float32(start+span), dir)
}
