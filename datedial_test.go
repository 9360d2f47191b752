package radial

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

// Rings on a 180x180 dial: radius 90, each ring 30 wide.
var (
	dateBounds = Rect{Width: 180, Height: 180}
	dateCenter = Vec2{90, 90}
)

const (
	yearRing  = 80
	monthRing = 50
	dayRing   = 10
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newDateDial(t *testing.T, cfg DateDialConfig) *DateDial {
	t.Helper()
	if cfg.Min.IsZero() {
		cfg.Min = day(2000, time.January, 1)
	}
	if cfg.Max.IsZero() {
		cfg.Max = day(2030, time.December, 31)
	}
	d, err := NewDateDial(cfg)
	if err != nil {
		t.Fatal(err)
	}
	d.SetBounds(dateBounds)
	return d
}

// angleFor returns the pointer angle that maps to v on a full-circle ring.
func angleFor(v float64, r Range) float64 {
	return AngleAtValue(v, r, FullCircle)
}

func TestDateDialDayRange(t *testing.T) {
	d := newDateDial(t, DateDialConfig{})
	tests := []struct {
		name  string
		year  int
		month time.Month
		want  Range
	}{
		{"leap february", 2024, time.February, Range{1, 29}},
		{"common february", 2023, time.February, Range{1, 28}},
		{"century non-leap", 2100, time.February, Range{1, 28}},
		{"leap century", 2000, time.February, Range{1, 29}},
		{"thirty days", 2024, time.April, Range{1, 30}},
		{"thirty-one days", 2024, time.December, Range{1, 31}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := d.DayRange(tt.year, tt.month); got != tt.want {
				t.Errorf("DayRange(%d, %v) = %+v, want %+v", tt.year, tt.month, got, tt.want)
			}
		})
	}
}

func TestDateDialRangesNarrowAtWindowEdges(t *testing.T) {
	d := newDateDial(t, DateDialConfig{
		Min: day(2000, time.March, 15),
		Max: day(2030, time.June, 10),
	})
	if got := d.YearRange(); got != (Range{2000, 2030}) {
		t.Errorf("YearRange = %+v", got)
	}
	if got := d.MonthRange(2000); got != (Range{3, 12}) {
		t.Errorf("MonthRange(2000) = %+v, want {3 12}", got)
	}
	if got := d.MonthRange(2015); got != (Range{1, 12}) {
		t.Errorf("MonthRange(2015) = %+v, want {1 12}", got)
	}
	if got := d.MonthRange(2030); got != (Range{1, 6}) {
		t.Errorf("MonthRange(2030) = %+v, want {1 6}", got)
	}
	if got := d.DayRange(2000, time.March); got != (Range{15, 31}) {
		t.Errorf("DayRange(2000, March) = %+v, want {15 31}", got)
	}
	if got := d.DayRange(2030, time.June); got != (Range{1, 10}) {
		t.Errorf("DayRange(2030, June) = %+v, want {1 10}", got)
	}
}

func TestBandAt(t *testing.T) {
	tests := []struct {
		distance float64
		want     Band
	}{
		{120, BandYear},
		{yearRing, BandYear},
		{60.5, BandYear},
		{monthRing, BandMonth},
		{dayRing, BandDay},
		{0, BandDay},
	}
	for _, tt := range tests {
		if got := BandAt(tt.distance, 90); got != tt.want {
			t.Errorf("BandAt(%v, 90) = %v, want %v", tt.distance, got, tt.want)
		}
	}
	if got := BandAt(5, 0); got != BandYear {
		t.Errorf("BandAt on zero radius = %v, want year", got)
	}
	if got := RingRadius(BandMonth, 90); got != 45 {
		t.Errorf("RingRadius(month) = %v, want 45", got)
	}
}

func TestDateDialYearRingDrag(t *testing.T) {
	d := newDateDial(t, DateDialConfig{Value: day(2024, time.February, 10)})
	var got []time.Time
	d.OnChange(func(v time.Time) { got = append(got, v) })

	d.PointerDown(dateCenter, dateBounds)
	if d.ActiveBand() != BandNone {
		t.Errorf("ActiveBand after down = %v, want none", d.ActiveBand())
	}
	// 6 o'clock on the year ring is halfway through 2000..2030.
	d.PointerMove(polar(dateCenter, yearRing, 90))
	if d.ActiveBand() != BandYear {
		t.Errorf("ActiveBand = %v, want year", d.ActiveBand())
	}
	if len(got) != 1 || !got[0].Equal(day(2015, time.February, 10)) {
		t.Errorf("emitted %v, want 2015-02-10", got)
	}

	d.PointerUp()
	if d.ActiveBand() != BandNone || d.Dragging() {
		t.Error("expected idle after PointerUp")
	}
	if !d.Value().Equal(day(2015, time.February, 10)) {
		t.Errorf("Value = %v", d.Value())
	}
}

func TestDateDialBandSwitchCommitsYearBeforeDay(t *testing.T) {
	// Starting in 2023, February has 28 days. The day ring can only offer 29
	// if the 2024 picked on the year ring is committed first.
	d := newDateDial(t, DateDialConfig{Value: day(2023, time.February, 10)})
	var got []time.Time
	d.OnChange(func(v time.Time) { got = append(got, v) })

	d.PointerDown(dateCenter, dateBounds)
	d.PointerMove(polar(dateCenter, yearRing, angleFor(2024, d.YearRange())))
	// One sample jumps straight to the innermost ring, just short of 12 o'clock.
	d.PointerMove(polar(dateCenter, dayRing, FullCircle.StartAngle-1))

	if d.ActiveBand() != BandDay {
		t.Errorf("ActiveBand = %v, want day", d.ActiveBand())
	}
	want := []time.Time{day(2024, time.February, 10), day(2024, time.February, 29)}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("emissions mismatch (-want +got):\n%s", diff)
	}
}

func TestDateDialLeftRingIsNotOverwrittenByStaleRead(t *testing.T) {
	d := newDateDial(t, DateDialConfig{Value: day(2024, time.February, 10)})
	d.PointerDown(dateCenter, dateBounds)
	d.PointerMove(polar(dateCenter, yearRing, 90)) // 2015

	// At 3 o'clock the year ring would read 2007 or 2008; the pointer is on
	// the day ring now, so the year must stay 2015.
	d.PointerMove(polar(dateCenter, dayRing, 0))
	if y := d.Value().Year(); y != 2015 {
		t.Errorf("year = %d, want 2015", y)
	}
	if p := d.Preview(); p[BandYear] == 2015 {
		t.Errorf("preview year = %d, expected the angle-implied year", p[BandYear])
	}
	// 3 o'clock on February 2015 (1..28) is day 7.75, rounded to 8.
	if got := d.Value(); !got.Equal(day(2015, time.February, 8)) {
		t.Errorf("Value = %v, want 2015-02-08", got)
	}
}

func TestDateDialMonthChangeReclampsDay(t *testing.T) {
	d := newDateDial(t, DateDialConfig{Value: day(2024, time.January, 31)})
	d.PointerDown(dateCenter, dateBounds)
	d.PointerMove(polar(dateCenter, monthRing, angleFor(2, d.MonthRange(2024))))
	if got := d.Value(); !got.Equal(day(2024, time.February, 29)) {
		t.Errorf("Value = %v, want 2024-02-29", got)
	}
}

func TestDateDialYearChangeReclampsToWindow(t *testing.T) {
	d := newDateDial(t, DateDialConfig{
		Min:   day(2000, time.March, 15),
		Value: day(2001, time.March, 10),
	})
	d.PointerDown(dateCenter, dateBounds)
	d.PointerMove(Vec2{90, 90 - yearRing}) // 12 o'clock: 2000
	if got := d.Value(); !got.Equal(day(2000, time.March, 15)) {
		t.Errorf("Value = %v, want clamp to 2000-03-15", got)
	}
}

// Re-entering a ring within one drag continues from the working value, not
// the value the drag started with. Controlled mode makes that visible: the
// committed value never changes, yet later emissions keep the edited year.
func TestDateDialReentryKeepsWorkingValue(t *testing.T) {
	d := newDateDial(t, DateDialConfig{Value: day(2023, time.February, 10), Controlled: true})
	var got []time.Time
	d.OnChange(func(v time.Time) { got = append(got, v) })

	d.PointerDown(dateCenter, dateBounds)
	d.PointerMove(polar(dateCenter, yearRing, angleFor(2024, d.YearRange())))
	d.PointerMove(polar(dateCenter, dayRing, angleFor(20, Range{1, 29})))
	d.PointerMove(polar(dateCenter, monthRing, angleFor(3, Range{1, 12})))
	d.PointerMove(polar(dateCenter, dayRing, angleFor(5, Range{1, 31})))

	if !d.Value().Equal(day(2023, time.February, 10)) {
		t.Errorf("controlled Value changed to %v", d.Value())
	}
	last := got[len(got)-1]
	if !last.Equal(day(2024, time.March, 5)) {
		t.Errorf("last emission = %v, want 2024-03-05", last)
	}
}

func TestDateDialDegenerateGeometryKeepsDate(t *testing.T) {
	start := day(2024, time.February, 10)
	tests := []struct {
		name   string
		bounds Rect
		p      Vec2
	}{
		{"pointer at center", dateBounds, dateCenter},
		{"zero radius", Rect{}, Vec2{30, 40}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := newDateDial(t, DateDialConfig{Value: start})
			var got []time.Time
			d.OnChange(func(v time.Time) { got = append(got, v) })

			d.PointerDown(Vec2{}, tt.bounds)
			d.PointerMove(tt.p)
			if diff := cmp.Diff([]time.Time{start}, got); diff != "" {
				t.Errorf("emissions mismatch (-want +got):\n%s", diff)
			}
			if d.ActiveBand() != BandNone {
				t.Errorf("ActiveBand = %v, want none", d.ActiveBand())
			}
		})
	}
}

func TestDateDialNudge(t *testing.T) {
	d := newDateDial(t, DateDialConfig{
		Max:   day(2030, time.December, 31),
		Value: day(2030, time.December, 30),
	})
	d.Nudge(1)
	d.Nudge(1)
	if got := d.Value(); !got.Equal(day(2030, time.December, 31)) {
		t.Errorf("Value = %v, want clamp to max", got)
	}
	d.Nudge(-31)
	if got := d.Value(); !got.Equal(day(2030, time.November, 30)) {
		t.Errorf("Value = %v, want 2030-11-30", got)
	}
}

func TestDateDialConfig(t *testing.T) {
	_, err := NewDateDial(DateDialConfig{Max: day(2000, 1, 1)})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("missing min: err = %v", err)
	}
	_, err = NewDateDial(DateDialConfig{Min: day(2010, 1, 1), Max: day(2000, 1, 1)})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("inverted window: err = %v", err)
	}

	d := newDateDial(t, DateDialConfig{Value: time.Date(1990, 5, 5, 13, 30, 0, 0, time.UTC)})
	if !d.Value().Equal(day(2000, time.January, 1)) {
		t.Errorf("initial value = %v, want clamp to min", d.Value())
	}
	d.SetValue(time.Date(2012, 7, 4, 23, 59, 0, 0, time.UTC))
	if !d.Value().Equal(day(2012, time.July, 4)) {
		t.Errorf("SetValue = %v, want midnight 2012-07-04", d.Value())
	}
}

func TestDateDialRingPaths(t *testing.T) {
	d := newDateDial(t, DateDialConfig{Value: day(2015, time.July, 16)})
	paths := d.RingPaths()
	for i, p := range paths {
		if want := RingRadius(Band(i), 90); p.Radius != want {
			t.Errorf("ring %d radius = %v, want %v", i, p.Radius, want)
		}
	}
	// 2015 is the middle of 2000..2030: half a turn.
	if !approxEqual(paths[BandYear].Span, 180, 1e-9) {
		t.Errorf("year span = %v, want 180", paths[BandYear].Span)
	}
	if a := d.Angles(); !approxEqual(a[BandYear], 90, 1e-9) {
		t.Errorf("year angle = %v, want 90", a[BandYear])
	}
}
