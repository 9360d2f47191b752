// Package ecs bridges radial value changes into an ECS world.
//
// [BindDial] and [BindDateDial] publish every value a control emits to a
// [Donburi] world as typed events. Subscribe to [ValueEventType] or
// [DateEventType] in your ECS systems to receive them.
//
// Usage:
//
//	h := ecs.BindDial(world, "volume", dial)
//	defer h.Remove()
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
