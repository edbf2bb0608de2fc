package input

import (
	"errors"
	"fmt"
	"sort"
)

var (
	// ErrUnknownBinding is returned when a name is not declared anywhere in
	// a controller's layout chain.
	ErrUnknownBinding = errors.New("input: unknown binding")
	// ErrLayoutCycle is returned when a layout extends itself, directly or
	// through its bases.
	ErrLayoutCycle = errors.New("input: layout inheritance cycle")
)

// Layout is a declarative table mapping friendly names to channel indices of
// a device. A layout may extend a base layout; names declared on the derived
// layout override the same names on its bases.
type Layout struct {
	Name     string
	Base     *Layout
	Channels map[string]int

	// Smash overrides the smash tuning for every binding resolved through this
	// layout. The most specific non-nil value in the chain wins.
	Smash *SmashConfig
}

// Extend returns a new layout with l as its base.
func (l *Layout) Extend(name string, channels map[string]int) *Layout {
	return &Layout{Name: name, Base: l, Channels: channels}
}

// chain returns the layouts from most to least specific.
func (l *Layout) chain() ([]*Layout, error) {
	var out []*Layout
	seen := make(map[*Layout]bool)
	for p := l; p != nil; p = p.Base {
		if seen[p] {
			return nil, fmt.Errorf("%w: %q", ErrLayoutCycle, p.Name)
		}
		seen[p] = true
		out = append(out, p)
	}
	return out, nil
}

// resolve flattens the chain into one name table.
func (l *Layout) resolve() (map[string]int, SmashConfig, error) {
	chain, err := l.chain()
	if err != nil {
		return nil, SmashConfig{}, err
	}
	names := make(map[string]int)
	smash := DefaultSmash
	smashSet := false
	for _, p := range chain {
		for name, idx := range p.Channels {
			if _, ok := names[name]; ok {
				continue
			}
			if idx < 0 {
				return nil, SmashConfig{}, fmt.Errorf("input: layout %q binds %q to negative channel %d", p.Name, name, idx)
			}
			names[name] = idx
		}
		if !smashSet && p.Smash != nil {
			smash = p.Smash.withDefaults()
			smashSet = true
		}
	}
	return names, smash, nil
}

// Controller exposes the resolved names of a layout as Bindings on one
// History. Bindings are fixed at construction.
type Controller struct {
	layout   *Layout
	poller   Poller
	history  *History
	bindings map[string]*Binding
	names    []string
	sink     EventSink
	tick     uint64
}

// NewController resolves layout and binds every name to history. When dev is
// non-nil, Update polls it and pushes into history, and every binding index
// is checked against the device width when dev is a *Device.
func NewController(layout *Layout, dev Poller, history *History) (*Controller, error) {
	if layout == nil {
		return nil, errors.New("input: controller needs a layout")
	}
	if history == nil {
		history = NewHistory(0)
	}
	names, smash, err := layout.resolve()
	if err != nil {
		return nil, err
	}
	width := -1
	if d, ok := dev.(*Device); ok {
		if d == nil {
			dev = nil
		} else {
			width = d.Len()
		}
	}
	c := &Controller{
		layout:   layout,
		poller:   dev,
		history:  history,
		bindings: make(map[string]*Binding, len(names)),
	}
	for name, idx := range names {
		if width >= 0 && idx >= width {
			return nil, fmt.Errorf("input: layout %q binds %q to channel %d, device has %d", layout.Name, name, idx, width)
		}
		c.bindings[name] = &Binding{name: name, index: idx, history: history, smash: smash}
		c.names = append(c.names, name)
	}
	sort.Strings(c.names)
	return c, nil
}

// Layout returns the layout the controller was built from.
func (c *Controller) Layout() *Layout { return c.layout }

// History returns the history every binding reads.
func (c *Controller) History() *History { return c.history }

// Names returns the resolved binding names, sorted.
func (c *Controller) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Lookup returns the binding for name.
func (c *Controller) Lookup(name string) (*Binding, error) {
	b, ok := c.bindings[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q is not declared in layout %q or its bases", ErrUnknownBinding, name, c.layout.Name)
	}
	return b, nil
}

// Get returns the binding for name and panics if it does not exist.
func (c *Controller) Get(name string) *Binding {
	b, err := c.Lookup(name)
	if err != nil {
		panic(err)
	}
	return b
}

// SetEventSink attaches a sink that receives edge events from Update.
// Pass nil to detach.
func (c *Controller) SetEventSink(sink EventSink) {
	c.sink = sink
}

// Update polls the device, if the controller has one, and pushes the
// snapshot. Controllers sharing a history should let exactly one of them
// poll.
func (c *Controller) Update() {
	c.tick++
	if c.poller != nil {
		c.history.Push(c.poller.Poll())
	}
	if c.sink != nil {
		c.emitEvents()
	}
}

func (c *Controller) emitEvents() {
	for _, name := range c.names {
		b := c.bindings[name]
		if b.IsPressed() {
			c.sink.EmitInput(Event{Type: EventPressed, Layout: c.layout.Name, Name: name, Value: b.Value(), Tick: c.tick})
		}
		if b.IsReleased() {
			c.sink.EmitInput(Event{Type: EventReleased, Layout: c.layout.Name, Name: name, Value: b.Value(), Tick: c.tick})
		}
		if b.IsSmashed() {
			c.sink.EmitInput(Event{Type: EventSmashed, Layout: c.layout.Name, Name: name, Value: b.Value(), Tick: c.tick})
		}
	}
}

// Binding is one named channel on a History.
type Binding struct {
	name    string
	index   int
	history *History
	smash   SmashConfig
}

// Name returns the friendly name.
func (b *Binding) Name() string { return b.name }

// Channel returns the snapshot index the binding reads.
func (b *Binding) Channel() int { return b.index }

// Value returns the current normalised value in [0, 1].
func (b *Binding) Value() float64 { return b.history.Value(b.index) }

// IsDown reports whether the channel is non-zero this tick.
func (b *Binding) IsDown() bool { return b.history.IsDown(b.index) }

// IsPressed reports a rising edge this tick.
func (b *Binding) IsPressed() bool { return b.history.IsPressed(b.index) }

// IsReleased reports a falling edge this tick.
func (b *Binding) IsReleased() bool { return b.history.IsReleased(b.index) }

// BufferedPresses counts rising edges in the last window ticks.
func (b *Binding) BufferedPresses(window int) int {
	return b.history.BufferedPresses(b.index, window)
}

// BufferedReleases counts falling edges in the last window ticks.
func (b *Binding) BufferedReleases(window int) int {
	return b.history.BufferedReleases(b.index, window)
}

// IsSmashed reports a smash using the layout's smash tuning.
func (b *Binding) IsSmashed() bool {
	return b.history.IsSmashed(b.index, b.smash)
}

// SmashConfig returns the resolved smash tuning.
func (b *Binding) SmashConfig() SmashConfig { return b.smash }

// AxisPair combines two one-sided bindings (e.g. LEFT and RIGHT) into a
// signed reading.
type AxisPair struct {
	Negative, Positive *Binding
}

// Value returns Positive minus Negative, in [-1, 1].
func (p AxisPair) Value() float64 {
	return p.Positive.Value() - p.Negative.Value()
}
