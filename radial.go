package radial

import (
	"errors"
	"fmt"
	"image/color"
	"math"
)

// ErrInvalidConfig is wrapped by every construction-time validation error.
// Use errors.Is to detect it.
var ErrInvalidConfig = errors.New("invalid configuration")

func configErrorf(format string, args ...any) error {
	return fmt.Errorf("radial: "+format+": %w", append(args, ErrInvalidConfig)...)
}

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
// Premultiplication occurs at render submission time.
type Color struct {
	R, G, B, A float64
}

// ColorWhite is the default stroke color.
var ColorWhite = Color{1, 1, 1, 1}

func (c Color) toRGBA() color.RGBA {
	return color.RGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Vec2 is a 2D vector used for pointer positions, centers, and arc endpoints.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// Radius returns the radius of the largest circle inscribed in the rectangle.
// Negative sizes yield zero.
func (r Rect) Radius() float64 {
	return math.Max(math.Min(r.Width, r.Height)/2, 0)
}

// Range is an inclusive min/max value interval. Min == Max is a constant
// range: every mapping onto it returns Min.
type Range struct {
	Min, Max float64
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	if v < r.Min {
		return r.Min
	}
	if v > r.Max {
		return r.Max
	}
	return v
}

// Fraction returns where v sits within the range as a value in [0, 1].
// A constant range always reports 0.
func (r Range) Fraction(v float64) float64 {
	span := r.Span()
	if span <= 0 {
		return 0
	}
	return clamp01((v - r.Min) / span)
}

func (r Range) validate() error {
	if !isFinite(r.Min) || !isFinite(r.Max) {
		return configErrorf("range bounds must be finite, got [%v, %v]", r.Min, r.Max)
	}
	if r.Max < r.Min {
		return configErrorf("range max %v is below min %v", r.Max, r.Min)
	}
	return nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// Orientation selects which side of the circle a half-circle arc occupies.
type Orientation uint8

const (
	OrientationTop    Orientation = iota // upper half, sweeping left to right
	OrientationRight                     // right half, sweeping top to bottom
	OrientationBottom                    // lower half, sweeping right to left
	OrientationLeft                      // left half, sweeping bottom to top
)

// Band identifies a ring of a DateDial. Bands are numbered from the outer edge
// inward.
type Band int

const (
	BandNone  Band = iota - 1 // no ring owns the pointer
	BandYear                  // outermost ring
	BandMonth                 // middle ring
	BandDay                   // innermost ring
)

func (b Band) String() string {
	switch b {
	case BandYear:
		return "year"
	case BandMonth:
		return "month"
	case BandDay:
		return "day"
	default:
		return "none"
	}
}
