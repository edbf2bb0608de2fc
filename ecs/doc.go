// Package ecs provides ECS adapters for sapling's input events.
//
// The primary adapter is [NewDonburiSink], which forwards the press, release
// and smash events of an [input.Controller] into a [Donburi] world as typed
// events. Subscribe to [InputEventType] in your ECS systems to receive them.
//
// Usage:
//
//	ctrl.SetEventSink(ecs.NewDonburiSink(world))
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
