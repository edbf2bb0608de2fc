package input

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testBase = &Layout{
		Name:     "base",
		Channels: map[string]int{"A": 0, "B": 1},
	}
	testDerived  = testBase.Extend("derived", map[string]int{"A2": 0})
	testDerived2 = testDerived.Extend("derived2", map[string]int{"A3": 0})
	testSibling  = testBase.Extend("sibling", map[string]int{"B2": 1})
)

func newTestController(t *testing.T, layout *Layout, frames ...[]int) (*Controller, *ScriptSource) {
	t.Helper()
	src := NewScriptSource()
	src.QueueButtons(frames...)
	dev, err := NewDevice("pad", src, Button(0), Button(1), Button(2))
	require.NoError(t, err)
	c, err := NewController(layout, dev, NewHistory(0))
	require.NoError(t, err)
	return c, src
}

func TestControllerInheritance(t *testing.T) {
	c, _ := newTestController(t, testDerived, []int{0})
	c.Update()

	assert.True(t, c.Get("A").IsDown())
	assert.True(t, c.Get("A2").IsDown())
	assert.False(t, c.Get("B").IsDown())

	_, err := c.Lookup("A3")
	assert.True(t, errors.Is(err, ErrUnknownBinding), "A3 lives on a more derived layout")
	_, err = c.Lookup("B2")
	assert.True(t, errors.Is(err, ErrUnknownBinding), "B2 lives on a sibling layout")
	assert.Panics(t, func() { c.Get("B2") })

	c2, _ := newTestController(t, testDerived2, []int{0})
	c2.Update()
	assert.True(t, c2.Get("A3").IsDown())
	assert.True(t, c2.Get("A2").IsDown())
	assert.Equal(t, []string{"A", "A2", "A3", "B"}, c2.Names())

	c3, _ := newTestController(t, testSibling, []int{1})
	c3.Update()
	assert.True(t, c3.Get("B2").IsDown())
	_, err = c3.Lookup("A2")
	assert.True(t, errors.Is(err, ErrUnknownBinding))
}

func TestControllerDerivedOverridesBase(t *testing.T) {
	override := testBase.Extend("override", map[string]int{"A": 2})
	c, _ := newTestController(t, override, []int{0}, []int{2})

	c.Update()
	assert.False(t, c.Get("A").IsDown(), "A is rebound to channel 2")
	c.Update()
	assert.True(t, c.Get("A").IsPressed())
	assert.Equal(t, 2, c.Get("A").Channel())
	assert.Equal(t, 1, c.Get("B").Channel())
}

func TestControllerRejectsCycle(t *testing.T) {
	a := &Layout{Name: "a", Channels: map[string]int{"X": 0}}
	b := a.Extend("b", nil)
	a.Base = b
	defer func() { a.Base = nil }()

	_, err := NewController(b, nil, nil)
	assert.True(t, errors.Is(err, ErrLayoutCycle))
}

func TestControllerRejectsOutOfRangeChannel(t *testing.T) {
	wide := &Layout{Name: "wide", Channels: map[string]int{"FAR": 3}}
	dev, err := NewDevice("pad", NewScriptSource(), Button(0))
	require.NoError(t, err)

	_, err = NewController(wide, dev, nil)
	assert.Error(t, err)

	neg := &Layout{Name: "neg", Channels: map[string]int{"N": -1}}
	_, err = NewController(neg, nil, nil)
	assert.Error(t, err)
}

func TestControllerSharesHistoryInstance(t *testing.T) {
	h := NewHistory(0)
	c, err := NewController(testDerived, nil, h)
	require.NoError(t, err)
	assert.Same(t, h, c.History())

	h.Push(NewSnapshot(0, 1))
	c.Update() // no device: history is pushed by the caller
	assert.True(t, c.Get("B").IsPressed())
	assert.Equal(t, 1, h.Len())
}

func TestBindingBufferedPresses(t *testing.T) {
	c, _ := newTestController(t, testBase, nil, []int{0}, nil, []int{0}, nil)
	for i := 0; i < 5; i++ {
		c.Update()
	}
	a := c.Get("A")
	assert.Equal(t, 2, a.BufferedPresses(5))
	assert.Equal(t, 2, a.BufferedReleases(5))
	assert.Equal(t, 1, a.BufferedPresses(3))
	assert.Equal(t, 0, a.BufferedPresses(2))
	assert.True(t, a.IsReleased())
}

func TestBindingSmashUsesLayoutConfig(t *testing.T) {
	loose := &Layout{
		Name:     "loose",
		Channels: map[string]int{"RIGHT": 0},
		Smash:    &SmashConfig{Threshold: 0.5, Window: 2},
	}
	child := loose.Extend("child", nil)

	src := NewScriptSource()
	src.QueueAxis(0, 0, 0.2, 0.6)
	dev, err := NewDevice("stick", src, Axis(0, 0, 1))
	require.NoError(t, err)
	c, err := NewController(child, dev, nil)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		c.Update()
	}
	right := c.Get("RIGHT")
	assert.Equal(t, SmashConfig{Threshold: 0.5, Window: 2}, right.SmashConfig())
	assert.True(t, right.IsSmashed())
	assert.False(t, right.history.IsSmashed(0, DefaultSmash))
}

type recordingSink struct {
	events []Event
}

func (r *recordingSink) EmitInput(e Event) { r.events = append(r.events, e) }

func TestControllerEmitsEdgeEvents(t *testing.T) {
	c, _ := newTestController(t, testBase, []int{0, 1}, []int{1}, nil)
	sink := &recordingSink{}
	c.SetEventSink(sink)

	c.Update()
	c.Update()
	c.Update()

	require.Len(t, sink.events, 4)
	assert.Equal(t, Event{Type: EventPressed, Layout: "base", Name: "A", Value: 1, Tick: 1}, sink.events[0])
	assert.Equal(t, Event{Type: EventPressed, Layout: "base", Name: "B", Value: 1, Tick: 1}, sink.events[1])
	assert.Equal(t, Event{Type: EventReleased, Layout: "base", Name: "A", Value: 0, Tick: 2}, sink.events[2])
	assert.Equal(t, Event{Type: EventReleased, Layout: "base", Name: "B", Value: 0, Tick: 3}, sink.events[3])
}

func TestAxisPair(t *testing.T) {
	src := NewScriptSource()
	src.QueueAxis(0, -0.77, 0.77)
	dev, err := NewDevice("stick", src, GamecubeChannels[GCLeft], GamecubeChannels[GCRight])
	require.NoError(t, err)
	c, err := NewController(&Layout{Name: "stick", Channels: map[string]int{"LEFT": 0, "RIGHT": 1}}, dev, nil)
	require.NoError(t, err)

	x := AxisPair{Negative: c.Get("LEFT"), Positive: c.Get("RIGHT")}
	c.Update()
	assert.InDelta(t, -1, x.Value(), 1e-9)
	c.Update()
	assert.InDelta(t, 1, x.Value(), 1e-9)
}

func TestKeyboardLayouts(t *testing.T) {
	wasd, err := NewController(KeyboardWASD, nil, nil)
	require.NoError(t, err)
	arrows, err := NewController(KeyboardArrows, nil, nil)
	require.NoError(t, err)

	assert.NotEqual(t, wasd.Get("UP").Channel(), arrows.Get("UP").Channel())
	assert.Equal(t, wasd.Get("SPACE").Channel(), arrows.Get("SPACE").Channel())
}

func TestGamecubeLayoutMatchesDevice(t *testing.T) {
	dev, err := NewDevice("gamecube", NewScriptSource(), GamecubeChannels...)
	require.NoError(t, err)
	c, err := NewController(GamecubeLayout, dev, nil)
	require.NoError(t, err)
	assert.Len(t, c.Names(), len(GamecubeChannels))
}
