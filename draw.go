package radial

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Style holds the presentation settings used by DrawDial and DrawDateDial.
type Style struct {
	Track       Color
	Progress    Color
	Thumb       Color
	Width       float32 // stroke width of track and progress arcs
	ThumbRadius float32 // zero hides the thumb
}

// DefaultStyle is a light-on-dark style with a visible thumb.
var DefaultStyle = Style{
	Track:       Color{R: 1, G: 1, B: 1, A: 0.15},
	Progress:    Color{R: 0.3, G: 0.7, B: 1, A: 1},
	Thumb:       ColorWhite,
	Width:       8,
	ThumbRadius: 7,
}

var whitePixel *ebiten.Image

// whiteSubImage returns the 1x1 interior of a 3x3 white image, so sampling at
// triangle edges never bleeds transparent texels.
func whiteSubImage() *ebiten.Image {
	if whitePixel == nil {
		img := ebiten.NewImage(3, 3)
		img.Fill(color.White)
		whitePixel = img.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
	}
	return whitePixel
}

// strokeVertices tessellates the arc into a stroke of the given width,
// offset by at. Returns nil slices for an empty arc.
func strokeVertices(p PathSpec, at Vec2, width float32, c Color) ([]ebiten.Vertex, []uint16) {
	if p.Empty() || width <= 0 {
		return nil, nil
	}
	p.Center.X += at.X
	p.Center.Y += at.Y
	p.Start.X += at.X
	p.Start.Y += at.Y
	p.End.X += at.X
	p.End.Y += at.Y

	var path vector.Path
	p.AppendTo(&path)
	vs, is := path.AppendVerticesAndIndicesForStroke(nil, nil, &vector.StrokeOptions{
		Width:    width,
		LineCap:  vector.LineCapRound,
		LineJoin: vector.LineJoinRound,
	})
	// Vertex colors are straight alpha (ColorScaleModeStraightAlpha).
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		vs[i].ColorR = float32(clamp01(c.R))
		vs[i].ColorG = float32(clamp01(c.G))
		vs[i].ColorB = float32(clamp01(c.B))
		vs[i].ColorA = float32(clamp01(c.A))
	}
	return vs, is
}

// DrawArc strokes p onto dst, translated by at.
func DrawArc(dst *ebiten.Image, p PathSpec, at Vec2, width float32, c Color) {
	vs, is := strokeVertices(p, at, width, c)
	if len(is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	dst.DrawTriangles(vs, is, whiteSubImage(), op)
}

// DrawDial draws d's track, a progress arc up to angle, and a thumb at its
// end. Pass d.Angle() for an undamped display or an AngleTween's output for an
// eased one. at is the world position of the dial's bounds.
func DrawDial(dst *ebiten.Image, d *Dial, at Vec2, angle float64, style Style) {
	center, radius := d.bounds.Center(), d.bounds.Radius()-float64(style.Width)/2
	arc := d.Arc()
	DrawArc(dst, TrackPath(center, radius, arc), at, style.Width, style.Track)
	progress := SweepPath(center, radius, arc, angle-arc.StartAngle)
	DrawArc(dst, progress, at, style.Width, style.Progress)
	drawThumb(dst, progress, at, style)
}

// DrawDateDial draws the three rings of d, outermost first, highlighting the
// ring that owns the pointer.
func DrawDateDial(dst *ebiten.Image, d *DateDial, at Vec2, style Style) {
	center, radius := d.bounds.Center(), d.bounds.Radius()
	paths := d.RingPaths()
	for i, p := range paths {
		r := RingRadius(Band(i), radius)
		DrawArc(dst, TrackPath(center, r, d.arc), at, style.Width, style.Track)
		prog := style.Progress
		if d.ActiveBand() != BandNone && d.ActiveBand() != Band(i) {
			prog.A *= 0.5
		}
		DrawArc(dst, p, at, style.Width, prog)
		drawThumb(dst, p, at, style)
	}
}

func drawThumb(dst *ebiten.Image, p PathSpec, at Vec2, style Style) {
	if style.ThumbRadius <= 0 || p.Radius <= 0 {
		return
	}
	vector.DrawFilledCircle(dst, float32(p.End.X+at.X), float32(p.End.Y+at.Y),
		style.ThumbRadius, style.Thumb.toRGBA(), true)
}
