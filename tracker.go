package radial

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// HitCircle is a circular hit area.
type HitCircle struct {
	CenterX, CenterY, Radius float64
}

// Contains reports whether (x, y) lies inside or on the circle.
func (c HitCircle) Contains(x, y float64) bool {
	dx := x - c.CenterX
	dy := y - c.CenterY
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

// PointerSource supplies one frame of raw host input to a Tracker.
type PointerSource interface {
	// Pointer returns the pointer position in world coordinates and whether
	// the primary button (or a touch) is held.
	Pointer() (x, y float64, pressed bool)
	// Focused reports whether the host still delivers input. Losing focus
	// loses pointer capture.
	Focused() bool
	// NudgeTicks returns the keyboard step requested this frame.
	NudgeTicks() int
}

// ebitenSource reads the mouse, the first active touch, and the arrow keys.
type ebitenSource struct {
	touchIDs []ebiten.TouchID
}

func (s *ebitenSource) Pointer() (float64, float64, bool) {
	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	if len(s.touchIDs) > 0 {
		tx, ty := ebiten.TouchPosition(s.touchIDs[0])
		return float64(tx), float64(ty), true
	}
	mx, my := ebiten.CursorPosition()
	return float64(mx), float64(my), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)
}

func (s *ebitenSource) Focused() bool {
	return ebiten.IsFocused()
}

func (s *ebitenSource) NudgeTicks() int {
	var n int
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowUp) || inpututil.IsKeyJustPressed(ebiten.KeyArrowRight) {
		n++
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyArrowDown) || inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft) {
		n--
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		n *= 10
	}
	return n
}

// Binding places a Control on the tracker's surface.
type Binding struct {
	Name string

	ctl     Control
	bounds  Rect // world space
	tracker *Tracker
}

// Control returns the bound control.
func (b *Binding) Control() Control {
	return b.ctl
}

// Bounds returns the binding's world-space bounds.
func (b *Binding) Bounds() Rect {
	return b.bounds
}

// SetBounds moves or resizes the control. A drag in progress keeps the
// geometry it started with.
func (b *Binding) SetBounds(r Rect) {
	b.bounds = r
	if s, ok := b.ctl.(interface{ SetBounds(Rect) }); ok && !b.ctl.Dragging() {
		s.SetBounds(b.localBounds())
	}
}

// Remove detaches the control. A drag in progress is cancelled.
func (b *Binding) Remove() {
	t := b.tracker
	if t == nil {
		return
	}
	if t.captured == b {
		t.cancelCapture("binding removed")
	}
	if t.focused == b {
		t.focused = nil
	}
	for i, other := range t.bindings {
		if other == b {
			copy(t.bindings[i:], t.bindings[i+1:])
			t.bindings[len(t.bindings)-1] = nil
			t.bindings = t.bindings[:len(t.bindings)-1]
			break
		}
	}
	b.ctl.SetSurface(nil)
	b.tracker = nil
}

func (b *Binding) localBounds() Rect {
	return Rect{Width: b.bounds.Width, Height: b.bounds.Height}
}

func (b *Binding) local(wx, wy float64) Vec2 {
	return Vec2{wx - b.bounds.X, wy - b.bounds.Y}
}

func (b *Binding) hitShape() HitCircle {
	c := b.bounds.Center()
	return HitCircle{CenterX: c.X, CenterY: c.Y, Radius: b.bounds.Radius()}
}

// --- Pointer state ---

type pointerState struct {
	down  bool
	lastX float64
	lastY float64
}

// Tracker is the surface radial controls are dragged on. It hit-tests
// presses against each control's inscribed circle, captures the pointer for
// the pressed control, and keeps routing moves to it until release, even once
// the pointer leaves the control. Only one drag is tracked at a time.
type Tracker struct {
	bindings    []*Binding
	source      PointerSource
	pointer     pointerState
	captured    *Binding
	focused     *Binding
	injectQueue []syntheticPointerEvent
	testRunner  *TestRunner
	debug       bool
}

// NewTracker creates a tracker that reads input from ebiten.
func NewTracker() *Tracker {
	return &Tracker{source: &ebitenSource{}}
}

// SetSource replaces the input source. A nil source restores ebiten input.
func (t *Tracker) SetSource(src PointerSource) {
	if src == nil {
		src = &ebitenSource{}
	}
	t.source = src
}

// Add places ctl on the surface at the given world-space bounds. Controls
// added later sit on top for hit testing.
func (t *Tracker) Add(name string, ctl Control, bounds Rect) *Binding {
	b := &Binding{Name: name, ctl: ctl, tracker: t}
	t.bindings = append(t.bindings, b)
	ctl.SetSurface(t)
	b.SetBounds(bounds)
	return b
}

// Captured returns the binding that owns the pointer, or nil.
func (t *Tracker) Captured() *Binding {
	return t.captured
}

// Focused returns the binding that receives keyboard nudges, or nil.
func (t *Tracker) Focused() *Binding {
	return t.focused
}

// Capture implements Surface.
func (t *Tracker) Capture(ctl Control) func() {
	b := t.binding(ctl)
	if b == nil {
		return func() {}
	}
	t.captured = b
	t.debugf("capture %q", b.Name)
	return func() {
		if t.captured == b {
			t.captured = nil
			t.debugf("release %q", b.Name)
		}
	}
}

// Update processes one frame of input. Injected events take priority over
// real input.
func (t *Tracker) Update() {
	if t.testRunner != nil {
		t.testRunner.step(t)
	}
	if t.processInjectedInput() {
		return
	}
	if !t.source.Focused() {
		t.cancelCapture("focus lost")
		t.pointer.down = false
		return
	}
	x, y, pressed := t.source.Pointer()
	t.processPointer(x, y, pressed)

	if n := t.source.NudgeTicks(); n != 0 && t.focused != nil && t.captured == nil {
		if nd, ok := t.focused.ctl.(Nudger); ok {
			nd.Nudge(n)
		}
	}
}

func (t *Tracker) binding(ctl Control) *Binding {
	for _, b := range t.bindings {
		if b.ctl == ctl {
			return b
		}
	}
	return nil
}

// hitTest finds the topmost binding whose circle contains (wx, wy).
func (t *Tracker) hitTest(wx, wy float64) *Binding {
	for i := len(t.bindings) - 1; i >= 0; i-- {
		b := t.bindings[i]
		if b.hitShape().Contains(wx, wy) {
			return b
		}
	}
	return nil
}

// processPointer runs the press/move/release state machine for the pointer.
func (t *Tracker) processPointer(wx, wy float64, pressed bool) {
	ps := &t.pointer
	switch {
	case pressed && !ps.down:
		ps.down = true
		ps.lastX, ps.lastY = wx, wy
		hit := t.hitTest(wx, wy)
		t.focused = hit
		if hit != nil {
			t.debugf("press %q at (%.1f, %.1f)", hit.Name, wx, wy)
			hit.ctl.PointerDown(hit.local(wx, wy), hit.localBounds())
		}
	case !pressed && ps.down:
		ps.down = false
		if b := t.captured; b != nil {
			b.ctl.PointerUp()
			t.debugf("up %q", b.Name)
			// Apply bounds that changed during the drag.
			b.SetBounds(b.bounds)
		}
		// Auto-release capture.
		t.captured = nil
		ps.lastX, ps.lastY = wx, wy
	case pressed && ps.down:
		if wx != ps.lastX || wy != ps.lastY {
			if b := t.captured; b != nil {
				before := activeBand(b.ctl)
				b.ctl.PointerMove(b.local(wx, wy))
				if after := activeBand(b.ctl); after != before {
					t.debugf("band %q: %s -> %s", b.Name, before, after)
				}
			}
		}
		ps.lastX, ps.lastY = wx, wy
	default:
		ps.lastX, ps.lastY = wx, wy
	}
}

// cancelCapture ends the captured control's drag without a release.
func (t *Tracker) cancelCapture(reason string) {
	b := t.captured
	if b == nil {
		return
	}
	t.captured = nil
	t.debugf("cancel %q: %s", b.Name, reason)
	b.ctl.PointerCancel()
	b.SetBounds(b.bounds)
}

// activeBand reports the ring a multi-band control is editing, or BandNone.
func activeBand(ctl Control) Band {
	if bc, ok := ctl.(interface{ ActiveBand() Band }); ok {
		return bc.ActiveBand()
	}
	return BandNone
}
