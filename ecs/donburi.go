package ecs

import (
	"github.com/phanxgames/sapling/input"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// InputEventType is the Donburi event type for controller events.
var InputEventType = events.NewEventType[input.Event]()

type donburiSink struct {
	world donburi.World
}

// NewDonburiSink creates an EventSink backed by a Donburi world. Events are
// queued on InputEventType and delivered by ProcessEvents or
// events.ProcessAllEvents.
func NewDonburiSink(world donburi.World) input.EventSink {
	return &donburiSink{world: world}
}

func (s *donburiSink) EmitInput(event input.Event) {
	InputEventType.Publish(s.world, event)
}
