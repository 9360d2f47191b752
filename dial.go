package radial

// DialConfig configures a single-value Dial.
type DialConfig struct {
	Range    Range
	Arc      ArcSpec
	Deadzone float64
	Steps    StepPolicy
	Value    float64 // initial value; clamped into Range

	// Controlled leaves the value owned by the host: emitted values are only
	// candidates, and the dial changes Value only through SetValue.
	Controlled bool
}

// Dial maps drags over a circular surface to one bounded number.
//
// Dragging: PointerDown starts a session, every PointerMove resolves a value
// and fires OnChange (even when the value did not change), and PointerUp or
// PointerCancel ends the session without firing.
type Dial struct {
	sessionHost

	resolver   *Resolver
	value      float64
	controlled bool
	changes    handlerRegistry[float64]
}

// NewDial validates cfg and returns an idle Dial.
func NewDial(cfg DialConfig) (*Dial, error) {
	r, err := NewResolver(ResolverConfig{
		Range:    cfg.Range,
		Arc:      cfg.Arc,
		Deadzone: cfg.Deadzone,
		Steps:    cfg.Steps,
	})
	if err != nil {
		return nil, err
	}
	return &Dial{
		resolver:   r,
		value:      cfg.Range.Clamp(cfg.Value),
		controlled: cfg.Controlled,
	}, nil
}

// OnChange registers fn to receive every value the dial resolves.
func (d *Dial) OnChange(fn func(float64)) CallbackHandle {
	return d.changes.add(fn)
}

// Value returns the current value.
func (d *Dial) Value() float64 {
	return d.value
}

// SetValue replaces the current value, clamped into the dial's range. Hosts in
// controlled mode call this to accept (or transform) an emitted value.
func (d *Dial) SetValue(v float64) {
	d.value = d.resolver.cfg.Range.Clamp(v)
}

// Range returns the dial's value range.
func (d *Dial) Range() Range {
	return d.resolver.cfg.Range
}

// Arc returns the dial's arc.
func (d *Dial) Arc() ArcSpec {
	return d.resolver.cfg.Arc
}

// Angle returns the arc angle of the current value in degrees, unnormalized.
func (d *Dial) Angle() float64 {
	return d.resolver.Angle(d.value)
}

// ArcPath returns the progress arc from the start of the dial's arc to the
// current value, sized to the dial's bounds.
func (d *Dial) ArcPath() PathSpec {
	cfg := d.resolver.cfg
	span := cfg.Range.Fraction(d.value) * cfg.Arc.ArcLength
	return SweepPath(d.bounds.Center(), d.bounds.Radius(), cfg.Arc, span)
}

// TrackPath returns the static track covering the dial's whole arc.
func (d *Dial) TrackPath() PathSpec {
	return TrackPath(d.bounds.Center(), d.bounds.Radius(), d.resolver.cfg.Arc)
}

// PointerDown implements Control. The value is not touched until the first
// move.
func (d *Dial) PointerDown(origin Vec2, bounds Rect) {
	d.begin(d, bounds)
}

// PointerMove implements Control.
func (d *Dial) PointerMove(p Vec2) {
	s := d.session
	if s == nil {
		return
	}
	// A collapsed container has no usable geometry.
	if s.radius <= 0 {
		d.emit(d.value)
		return
	}
	d.emit(d.resolver.Resolve(p, s.center, d.value))
}

// PointerUp implements Control.
func (d *Dial) PointerUp() {
	d.end()
}

// PointerCancel implements Control.
func (d *Dial) PointerCancel() {
	d.end()
}

// Nudge implements Nudger, moving the value by ticks coarse steps.
func (d *Dial) Nudge(ticks int) {
	if ticks == 0 {
		return
	}
	d.emit(d.resolver.Nudge(d.value, ticks))
}

func (d *Dial) emit(v float64) {
	if !d.controlled {
		d.value = v
	}
	d.changes.fire(v)
}
