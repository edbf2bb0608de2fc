package input

// EventType identifies an edge reported by Controller.Update.
type EventType uint8

const (
	EventPressed  EventType = iota // rising edge this tick
	EventReleased                  // falling edge this tick
	EventSmashed                   // smash detected this tick
)

func (t EventType) String() string {
	switch t {
	case EventPressed:
		return "pressed"
	case EventReleased:
		return "released"
	case EventSmashed:
		return "smashed"
	default:
		return "unknown"
	}
}

// Event is one edge on a named binding.
type Event struct {
	Type   EventType
	Layout string
	Name   string
	Value  float64
	Tick   uint64 // number of Controller.Update calls so far, starting at 1
}

// EventSink receives input events. See package ecs for a Donburi-backed
// implementation.
type EventSink interface {
	EmitInput(event Event)
}
