package radial

// Control is a radial input that consumes a host's pointer stream. Points are
// in container-local coordinates, the same space as bounds.
type Control interface {
	PointerDown(origin Vec2, bounds Rect)
	PointerMove(p Vec2)
	PointerUp()
	// PointerCancel ends a drag because the host lost pointer capture.
	PointerCancel()
	Dragging() bool
	// SetSurface attaches the surface that keeps routing events to the
	// control for the length of a drag.
	SetSurface(s Surface)
}

// Nudger is implemented by controls that can be stepped without a pointer,
// e.g. from arrow keys.
type Nudger interface {
	Nudge(ticks int)
}

// Surface is an input area wider than a control's visual bounds. Capture
// routes every pointer event to ctl until the returned release func runs.
type Surface interface {
	Capture(ctl Control) (release func())
}

// dragSession lives from pointer down to pointer up or capture loss.
type dragSession struct {
	center  Vec2
	radius  float64
	release func()
}

// sessionHost owns at most one dragSession for a control. Every exit path
// funnels through end, which undoes the capture exactly once.
type sessionHost struct {
	surface Surface
	bounds  Rect
	session *dragSession
}

// SetSurface implements Control.
func (h *sessionHost) SetSurface(s Surface) {
	h.surface = s
}

// SetBounds updates the control's layout without starting a drag.
func (h *sessionHost) SetBounds(bounds Rect) {
	h.bounds = bounds
}

// Bounds returns the control's last known layout.
func (h *sessionHost) Bounds() Rect {
	return h.bounds
}

// Dragging implements Control.
func (h *sessionHost) Dragging() bool {
	return h.session != nil
}

// begin starts a session for ctl, ending any session still open.
func (h *sessionHost) begin(ctl Control, bounds Rect) *dragSession {
	h.end()
	h.bounds = bounds
	s := &dragSession{center: bounds.Center(), radius: bounds.Radius()}
	if h.surface != nil {
		s.release = h.surface.Capture(ctl)
	}
	h.session = s
	return s
}

func (h *sessionHost) end() {
	s := h.session
	if s == nil {
		return
	}
	h.session = nil
	if s.release != nil {
		s.release()
	}
}
