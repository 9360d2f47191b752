package radial

import "math"

// ResolverConfig describes how pointer positions map onto values.
type ResolverConfig struct {
	Range    Range
	Arc      ArcSpec
	Deadzone float64 // pointer distances below this leave the value unchanged
	Steps    StepPolicy
}

func (c ResolverConfig) validate() error {
	if err := c.Range.validate(); err != nil {
		return err
	}
	if err := c.Arc.validate(); err != nil {
		return err
	}
	if !isFinite(c.Deadzone) || c.Deadzone < 0 {
		return configErrorf("deadzone must be a non-negative number, got %v", c.Deadzone)
	}
	if c.Steps == nil {
		return configErrorf("step policy is required")
	}
	return nil
}

// Resolver turns a pointer position into a clamped, snapped value. It holds no
// state beyond its configuration; Resolve is a pure function of its inputs.
type Resolver struct {
	cfg ResolverConfig
}

// NewResolver validates cfg and returns a Resolver.
func NewResolver(cfg ResolverConfig) (*Resolver, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Resolver{cfg: cfg}, nil
}

// Config returns the resolver's configuration.
func (r *Resolver) Config() ResolverConfig { return r.cfg }

// Resolve maps pointer (relative to the same origin as center) onto the
// configured range. Inside the deadzone, or exactly at the center where no
// angle exists, previous is returned unchanged.
// Otherwise the raw value is snapped to the step for the pointer's distance,
// measured from Range.Min, clamped into the range and rounded to the policy's
// precision.
func (r *Resolver) Resolve(pointer, center Vec2, previous float64) float64 {
	d := pointer.Sub(center)
	dist := DistanceOf(d.X, d.Y)
	if dist < r.cfg.Deadzone || dist == 0 {
		return previous
	}
	raw := ValueAtAngle(AngleOf(d.X, d.Y), r.cfg.Range, r.cfg.Arc)
	return r.snap(raw, r.cfg.Steps.Step(dist))
}

// Nudge moves value by ticks coarse steps, snapped and clamped like a drag.
func (r *Resolver) Nudge(value float64, ticks int) float64 {
	tick := r.cfg.Steps.Tick()
	return r.snap(value+float64(ticks)*tick, tick)
}

func (r *Resolver) snap(raw, step float64) float64 {
	rng := r.cfg.Range
	snapped := rng.Min + math.Round((raw-rng.Min)/step)*step
	// Rounding can push a bound with more decimals than the steps back out.
	return rng.Clamp(roundTo(rng.Clamp(snapped), r.cfg.Steps.Precision()))
}

// Angle returns the arc angle for value.
func (r *Resolver) Angle(value float64) float64 {
	return AngleAtValue(value, r.cfg.Range, r.cfg.Arc)
}
