package input

// Latcher is implemented by sources that capture raw state once per tick.
// Device.Poll calls Latch before reading any channel.
type Latcher interface {
	Latch()
}

// Frame is one tick of scripted raw input. Ids missing from a map read as
// released, zero or centred.
type Frame struct {
	Buttons map[int]bool
	Axes    map[int]float64
	Hats    map[int][2]int
}

// ScriptSource replays queued frames, one per poll. When the queue drains,
// the last frame stays latched, so a held button stays held.
type ScriptSource struct {
	queue   []Frame
	current Frame
}

// NewScriptSource returns a source with the given frames queued.
func NewScriptSource(frames ...Frame) *ScriptSource {
	s := &ScriptSource{}
	s.Queue(frames...)
	return s
}

// Queue appends frames to the replay queue.
func (s *ScriptSource) Queue(frames ...Frame) {
	s.queue = append(s.queue, frames...)
}

// QueueButtons queues one frame per entry; each entry lists the buttons held
// during that frame.
func (s *ScriptSource) QueueButtons(frames ...[]int) {
	for _, held := range frames {
		f := Frame{Buttons: make(map[int]bool, len(held))}
		for _, id := range held {
			f.Buttons[id] = true
		}
		s.queue = append(s.queue, f)
	}
}

// QueueAxis queues one frame per value with axis id set to that value.
func (s *ScriptSource) QueueAxis(id int, values ...float64) {
	for _, v := range values {
		s.queue = append(s.queue, Frame{Axes: map[int]float64{id: v}})
	}
}

// Pending returns the number of frames not yet latched.
func (s *ScriptSource) Pending() int {
	return len(s.queue)
}

// Latch pops the next queued frame, if any.
func (s *ScriptSource) Latch() {
	if len(s.queue) == 0 {
		return
	}
	s.current = s.queue[0]
	copy(s.queue, s.queue[1:])
	s.queue[len(s.queue)-1] = Frame{}
	s.queue = s.queue[:len(s.queue)-1]
}

// Button reports whether id is held in the latched frame.
func (s *ScriptSource) Button(id int) bool {
	return s.current.Buttons[id]
}

// Axis returns the latched value of axis id.
func (s *ScriptSource) Axis(id int) float64 {
	return s.current.Axes[id]
}

// Hat returns the latched components of hat id.
func (s *ScriptSource) Hat(id int) (x, y int) {
	h := s.current.Hats[id]
	return h[0], h[1]
}
