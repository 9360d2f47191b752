// Package radial turns pointer drags over a circular surface into bounded
// values for [Ebitengine] games and tools.
//
// A dial maps the pointer's angle around its center onto a value range along
// an arc, and the pointer's distance from the center onto a snapping step:
// drag near the rim for fine control, closer in for coarse ticks, and inside
// the deadzone to leave the value alone.
//
// # Quick start
//
//	steps, _ := radial.NewBinarySteps(10, 1, 60)
//	dial, err := radial.NewDial(radial.DialConfig{
//		Range: radial.Range{Min: 0, Max: 100},
//		Arc:   radial.Gauge,
//		Deadzone: 12,
//		Steps: steps,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
//	dial.OnChange(func(v float64) { fmt.Println(v) })
//
//	tracker := radial.NewTracker()
//	tracker.Add("volume", dial, radial.Rect{X: 40, Y: 40, Width: 200, Height: 200})
//
// Call [Tracker.Update] from your game's Update and draw with [DrawDial], or
// feed your own pointer stream straight into the [Control] methods.
//
// # Building blocks
//
// The engine is a stack of pure functions. [AngleOf], [RelativeSweep],
// [ValueAtAngle] and [AngleAtValue] handle geometry; a [StepPolicy]
// ([BinarySteps] or [BandedSteps]) picks the step; a [Resolver] combines both
// into a clamped, snapped value; [Synthesize] and [SweepPath] describe the
// arcs to render as a [PathSpec].
//
// Orientation and direction are just [ArcSpec] values: [FullCircle], [Gauge],
// [HalfCircle] and [ArcSpec.Reversed].
//
// # Dates
//
// [DateDial] edits a calendar date with three concentric rings (year, month,
// day) in one drag. Month and day ranges follow the working year and month,
// so February of a leap year offers 29 days.
//
// # Controlled values
//
// With Controlled set, a dial only emits candidate values; the host decides
// what to apply through SetValue, and the next move resolves against
// whatever the host applied.
//
// [Ebitengine]: https://ebitengine.org
package radial
