package ecs

import (
	"time"

	"github.com/phanxgames/radial"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// ValueEvent is published for each value a Dial emits.
type ValueEvent struct {
	Name  string
	Value float64
	Angle float64
}

// DateEvent is published for each date a DateDial emits.
type DateEvent struct {
	Name   string
	Value  time.Time
	Active radial.Band
}

// ValueEventType is the Donburi event type for dial values.
var ValueEventType = events.NewEventType[ValueEvent]()

// DateEventType is the Donburi event type for date dial values.
var DateEventType = events.NewEventType[DateEvent]()

// BindDial publishes d's emissions to world under name. Events are queued
// until ProcessEvents runs. Remove the returned handle to stop publishing.
func BindDial(world donburi.World, name string, d *radial.Dial) radial.CallbackHandle {
	return d.OnChange(func(v float64) {
		ValueEventType.Publish(world, ValueEvent{
			Name:  name,
			Value: v,
			Angle: radial.AngleAtValue(v, d.Range(), d.Arc()),
		})
	})
}

// BindDateDial publishes d's emissions to world under name.
func BindDateDial(world donburi.World, name string, d *radial.DateDial) radial.CallbackHandle {
	return d.OnChange(func(v time.Time) {
		DateEventType.Publish(world, DateEvent{Name: name, Value: v, Active: d.ActiveBand()})
	})
}
