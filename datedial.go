package radial

import (
	"math"
	"time"
)

const dateBands = 3

// DateDialConfig configures a DateDial. Times are reduced to calendar dates in
// Min's location.
type DateDialConfig struct {
	Min, Max time.Time
	Value    time.Time // initial value; clamped into [Min, Max]
	Arc      ArcSpec   // zero value means FullCircle

	// Controlled leaves the value owned by the host, see DialConfig.
	Controlled bool
}

// DateDial edits a calendar date through three concentric rings on one
// circular surface: year on the outside, month in the middle, day inside.
// A single drag may cross rings; each crossing commits the ring being left
// before the new ring starts writing.
//
// Month and day ranges depend on the working year and month, so they are
// recomputed on every sample rather than cached.
type DateDial struct {
	sessionHost

	min, max   time.Time
	arc        ArcSpec
	value      time.Time
	controlled bool
	changes    handlerRegistry[time.Time]

	// Drag state, valid while a session is open.
	active  Band
	working [dateBands]int
	last    [dateBands]int
	preview [dateBands]int
}

// NewDateDial validates cfg and returns an idle DateDial.
func NewDateDial(cfg DateDialConfig) (*DateDial, error) {
	if cfg.Min.IsZero() || cfg.Max.IsZero() {
		return nil, configErrorf("date dial needs both min and max")
	}
	arc := cfg.Arc
	if arc == (ArcSpec{}) {
		arc = FullCircle
	}
	if err := arc.validate(); err != nil {
		return nil, err
	}
	loc := cfg.Min.Location()
	minDate := dateOf(cfg.Min, loc)
	maxDate := dateOf(cfg.Max, loc)
	if maxDate.Before(minDate) {
		return nil, configErrorf("max date %s is before min date %s",
			maxDate.Format(time.DateOnly), minDate.Format(time.DateOnly))
	}
	d := &DateDial{
		min:        minDate,
		max:        maxDate,
		arc:        arc,
		controlled: cfg.Controlled,
		active:     BandNone,
	}
	value := cfg.Value
	if value.IsZero() {
		value = minDate
	}
	d.SetValue(value)
	return d, nil
}

// OnChange registers fn to receive every date the dial resolves.
func (d *DateDial) OnChange(fn func(time.Time)) CallbackHandle {
	return d.changes.add(fn)
}

// Value returns the current date.
func (d *DateDial) Value() time.Time {
	return d.value
}

// SetValue replaces the current date, clamped into [Min, Max].
func (d *DateDial) SetValue(t time.Time) {
	d.value = d.clampDate(dateOf(t, d.min.Location()))
}

// Min returns the earliest selectable date.
func (d *DateDial) Min() time.Time { return d.min }

// Max returns the latest selectable date.
func (d *DateDial) Max() time.Time { return d.max }

// ActiveBand returns the ring that owns the pointer, or BandNone when idle or
// before the first move of a drag.
func (d *DateDial) ActiveBand() Band {
	return d.active
}

// Preview returns the year, month, and day the last move's angle implied on
// each ring, each resolved against that ring's range at the time.
func (d *DateDial) Preview() [3]int {
	return d.preview
}

// YearRange returns the selectable years.
func (d *DateDial) YearRange() Range {
	return Range{Min: float64(d.min.Year()), Max: float64(d.max.Year())}
}

// MonthRange returns the selectable months of year. Only the first and last
// years of the window are narrowed.
func (d *DateDial) MonthRange(year int) Range {
	lo, hi := 1, 12
	if year <= d.min.Year() {
		lo = int(d.min.Month())
	}
	if year >= d.max.Year() {
		hi = int(d.max.Month())
	}
	return Range{Min: float64(lo), Max: float64(max(hi, lo))}
}

// DayRange returns the selectable days of the given month, accounting for
// month length, leap years, and the edges of the window.
func (d *DateDial) DayRange(year int, month time.Month) Range {
	lo, hi := 1, daysIn(year, month)
	if year == d.min.Year() && month == d.min.Month() {
		lo = d.min.Day()
	}
	if year == d.max.Year() && month == d.max.Month() {
		hi = min(hi, d.max.Day())
	}
	return Range{Min: float64(lo), Max: float64(max(hi, lo))}
}

// BandAt returns the ring under a pointer at distance from the center of a
// dial with the given outer radius. Points outside the surface belong to the
// year ring, points at the center to the day ring.
func BandAt(distance, radius float64) Band {
	if radius <= 0 {
		return BandYear
	}
	width := radius / dateBands
	i := int(math.Floor((radius - distance) / width))
	return Band(min(max(i, int(BandYear)), int(BandDay)))
}

// RingRadius returns the radius through the middle of band's ring for a dial
// with the given outer radius.
func RingRadius(b Band, radius float64) float64 {
	width := radius / dateBands
	return radius - (float64(b)+0.5)*width
}

// Angles returns the arc angle of the current year, month, and day on their
// rings.
func (d *DateDial) Angles() [3]float64 {
	y, m, day := d.value.Date()
	return [3]float64{
		AngleAtValue(float64(y), d.YearRange(), d.arc),
		AngleAtValue(float64(m), d.MonthRange(y), d.arc),
		AngleAtValue(float64(day), d.DayRange(y, m), d.arc),
	}
}

// RingPaths returns one progress arc per ring, outermost first, sized to the
// dial's bounds.
func (d *DateDial) RingPaths() [3]PathSpec {
	y, m, day := d.value.Date()
	fractions := [3]float64{
		d.YearRange().Fraction(float64(y)),
		d.MonthRange(y).Fraction(float64(m)),
		d.DayRange(y, m).Fraction(float64(day)),
	}
	center, radius := d.bounds.Center(), d.bounds.Radius()
	var paths [3]PathSpec
	for i, f := range fractions {
		paths[i] = SweepPath(center, RingRadius(Band(i), radius), d.arc, f*d.arc.ArcLength)
	}
	return paths
}

// PointerDown implements Control. The working copy is seeded from the current
// value.
func (d *DateDial) PointerDown(origin Vec2, bounds Rect) {
	d.begin(d, bounds)
	y, m, day := d.value.Date()
	d.working = [dateBands]int{y, int(m), day}
	d.last = d.working
	d.preview = d.working
	d.active = BandNone
}

// PointerMove implements Control.
func (d *DateDial) PointerMove(p Vec2) {
	s := d.session
	if s == nil {
		return
	}
	v := p.Sub(s.center)
	dist := DistanceOf(v.X, v.Y)
	if s.radius <= 0 || dist == 0 {
		d.emit(d.workingDate())
		return
	}
	band := BandAt(dist, s.radius)

	if d.active != BandNone && band != d.active {
		// Commit what the ring being left last resolved, not this sample's
		// read of it: the pointer is no longer over that ring.
		d.working[d.active] = d.last[d.active]
		d.clampWorking()
	}
	d.active = band

	d.preview = d.resolveRings(AngleOf(v.X, v.Y))
	d.working[band] = d.preview[band]
	d.last[band] = d.preview[band]
	d.clampWorking()

	d.emit(d.workingDate())
}

// workingDate assembles the working year, month, and day, clamped into the
// window.
func (d *DateDial) workingDate() time.Time {
	return d.clampDate(time.Date(d.working[BandYear], time.Month(d.working[BandMonth]),
		d.working[BandDay], 0, 0, 0, 0, d.min.Location()))
}

// PointerUp implements Control. The working copy is discarded; the last
// emitted date already is the result.
func (d *DateDial) PointerUp() {
	d.active = BandNone
	d.end()
}

// PointerCancel implements Control.
func (d *DateDial) PointerCancel() {
	d.PointerUp()
}

// Nudge implements Nudger, moving the date by ticks days.
func (d *DateDial) Nudge(ticks int) {
	if ticks == 0 {
		return
	}
	d.emit(d.clampDate(d.value.AddDate(0, 0, ticks)))
}

// resolveRings reads angle on all three rings. Month and day use ranges
// derived from the working year and month.
func (d *DateDial) resolveRings(angle float64) [dateBands]int {
	year := d.working[BandYear]
	month := time.Month(d.working[BandMonth])
	return [dateBands]int{
		d.resolveRing(angle, d.YearRange()),
		d.resolveRing(angle, d.MonthRange(year)),
		d.resolveRing(angle, d.DayRange(year, month)),
	}
}

func (d *DateDial) resolveRing(angle float64, r Range) int {
	return int(r.Clamp(math.Round(ValueAtAngle(angle, r, d.arc))))
}

// clampWorking pulls the dependent month and day back into the ranges
// implied by the working year and month.
func (d *DateDial) clampWorking() {
	year := d.working[BandYear]
	d.working[BandMonth] = int(d.MonthRange(year).Clamp(float64(d.working[BandMonth])))
	month := time.Month(d.working[BandMonth])
	d.working[BandDay] = int(d.DayRange(year, month).Clamp(float64(d.working[BandDay])))
}

func (d *DateDial) clampDate(t time.Time) time.Time {
	if t.Before(d.min) {
		return d.min
	}
	if t.After(d.max) {
		return d.max
	}
	return t
}

func (d *DateDial) emit(t time.Time) {
	if !d.controlled {
		d.value = t
	}
	d.changes.fire(t)
}

func dateOf(t time.Time, loc *time.Location) time.Time {
	y, m, day := t.In(loc).Date()
	return time.Date(y, m, day, 0, 0, 0, 0, loc)
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
