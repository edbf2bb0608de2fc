package input

// DefaultHistoryLength is the capacity NewHistory uses when given n < 1.
const DefaultHistoryLength = 5

// Smash defaults.
const (
	DefaultSmashThreshold = 0.9
	DefaultSmashWindow    = 3

	// smashRest is the level the lookback sample must not exceed for a smash.
	smashRest = 0.1
)

// SmashConfig tunes smash detection. Zero fields fall back to the defaults.
type SmashConfig struct {
	Threshold float64 `yaml:"threshold"`
	Window    int     `yaml:"window"`
}

// DefaultSmash is the smash configuration used when a layout declares none.
var DefaultSmash = SmashConfig{Threshold: DefaultSmashThreshold, Window: DefaultSmashWindow}

func (c SmashConfig) withDefaults() SmashConfig {
	if c.Threshold <= 0 {
		c.Threshold = DefaultSmashThreshold
	}
	if c.Window <= 0 {
		c.Window = DefaultSmashWindow
	}
	return c
}

// History is a bounded FIFO of snapshots, newest last. It must be pushed once
// per tick; all queries are relative to the latest push.
type History struct {
	ring  []Snapshot
	head  int // index of the oldest entry
	count int
}

// NewHistory returns an empty history holding at most n snapshots.
func NewHistory(n int) *History {
	if n < 1 {
		n = DefaultHistoryLength
	}
	return &History{ring: make([]Snapshot, n)}
}

// Push appends s, evicting the oldest snapshot when the history is full.
func (h *History) Push(s Snapshot) {
	n := len(h.ring)
	if h.count < n {
		h.ring[(h.head+h.count)%n] = s
		h.count++
		return
	}
	h.ring[h.head] = s
	h.head = (h.head + 1) % n
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return h.count }

// Cap returns the capacity.
func (h *History) Cap() int { return len(h.ring) }

// At returns the k-th stored snapshot, oldest first. Out-of-range k returns
// the sentinel.
func (h *History) At(k int) Snapshot {
	if k < 0 || k >= h.count {
		return Snapshot{}
	}
	return h.ring[(h.head+k)%len(h.ring)]
}

// back returns the snapshot pushed ago ticks before the newest one.
func (h *History) back(ago int) Snapshot {
	return h.At(h.count - 1 - ago)
}

// Current returns the newest snapshot, or the sentinel before the first push.
func (h *History) Current() Snapshot { return h.back(0) }

// Previous returns the snapshot before Current, or the sentinel.
func (h *History) Previous() Snapshot { return h.back(1) }

// Value returns the current value of channel i.
func (h *History) Value(i int) float64 {
	return h.Current().At(i)
}

// IsDown reports whether channel i is non-zero this tick.
func (h *History) IsDown(i int) bool {
	return h.Current().At(i) != 0
}

// IsPressed reports a rising edge on channel i this tick.
func (h *History) IsPressed(i int) bool {
	return h.Current().At(i) != 0 && h.Previous().At(i) == 0
}

// IsReleased reports a falling edge on channel i this tick.
func (h *History) IsReleased(i int) bool {
	return h.Previous().At(i) != 0 && h.Current().At(i) == 0
}

// BufferedEdges counts the rising and falling edges of channel i across the
// last window snapshots. Edges older than the window are not counted.
func (h *History) BufferedEdges(i, window int) (rising, falling int) {
	if window > h.count {
		window = h.count
	}
	start := h.count - window
	for k := start + 1; k < h.count; k++ {
		prev := h.At(k-1).At(i) != 0
		cur := h.At(k).At(i) != 0
		switch {
		case cur && !prev:
			rising++
		case prev && !cur:
			falling++
		}
	}
	return rising, falling
}

// BufferedPresses returns the rising edges of channel i in the last window
// snapshots.
func (h *History) BufferedPresses(i, window int) int {
	rising, _ := h.BufferedEdges(i, window)
	return rising
}

// BufferedReleases returns the falling edges of channel i in the last window
// snapshots.
func (h *History) BufferedReleases(i, window int) int {
	_, falling := h.BufferedEdges(i, window)
	return falling
}

// IsSmashed reports a fast flick on channel i: the newest sample reaches the
// threshold while the sample cfg.Window ticks earlier was at rest. When fewer
// samples exist, the oldest stored one is used for the lookback.
func (h *History) IsSmashed(i int, cfg SmashConfig) bool {
	if h.count == 0 {
		return false
	}
	cfg = cfg.withDefaults()
	ago := cfg.Window
	if ago > h.count-1 {
		ago = h.count - 1
	}
	return h.Current().At(i) >= cfg.Threshold && h.back(ago).At(i) <= smashRest
}
