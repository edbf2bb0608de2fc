package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pushSeries(h *History, values ...float64) {
	for _, v := range values {
		h.Push(NewSnapshot(v))
	}
}

func TestHistoryCapacityKeepsNewest(t *testing.T) {
	h := NewHistory(3)
	pushSeries(h, 1, 2, 3, 4, 5, 6, 7)

	require.Equal(t, 3, h.Len())
	assert.Equal(t, 3, h.Cap())
	assert.Equal(t, 5.0, h.At(0).At(0))
	assert.Equal(t, 6.0, h.At(1).At(0))
	assert.Equal(t, 7.0, h.At(2).At(0))
	assert.Equal(t, 7.0, h.Current().At(0))
	assert.Equal(t, 6.0, h.Previous().At(0))
}

func TestNewHistoryDefaultLength(t *testing.T) {
	assert.Equal(t, DefaultHistoryLength, NewHistory(0).Cap())
	assert.Equal(t, DefaultHistoryLength, NewHistory(-3).Cap())
}

func TestHistorySentinelBeforePush(t *testing.T) {
	h := NewHistory(0)
	assert.Equal(t, 0, h.Current().Len())
	assert.Equal(t, 0.0, h.Previous().At(12))
	assert.False(t, h.IsDown(0))
	assert.False(t, h.IsPressed(0))
	assert.False(t, h.IsReleased(0))
	assert.Equal(t, 0.0, h.At(-1).At(0))

	h.Push(NewSnapshot(1))
	assert.True(t, h.IsPressed(0), "first push after the sentinel is a rising edge")
	assert.Equal(t, 0, h.Previous().Len())
}

func TestHistoryEdges(t *testing.T) {
	h := NewHistory(0)
	var pressed, released []bool
	for _, v := range []float64{0, 0, 1, 1, 0} {
		h.Push(NewSnapshot(v))
		pressed = append(pressed, h.IsPressed(0))
		released = append(released, h.IsReleased(0))
	}
	assert.Equal(t, []bool{false, false, true, false, false}, pressed)
	assert.Equal(t, []bool{false, false, false, false, true}, released)
}

func TestHistoryAnalogIsDown(t *testing.T) {
	h := NewHistory(0)
	pushSeries(h, 0.25)
	assert.True(t, h.IsDown(0))
	assert.Equal(t, 0.25, h.Value(0))
}

func TestHistoryBufferedEdges(t *testing.T) {
	const window = 5
	tests := []struct {
		input   []float64
		rising  int
		falling int
	}{
		{nil, 0, 0},
		{[]float64{0, 0, 0}, 0, 0},
		{[]float64{0, 0, 1}, 1, 0},
		{[]float64{1, 0, 0}, 0, 1},
		{[]float64{0, 1, 0}, 1, 1},
		{[]float64{0, 0, 0, 0, 1, 0, 0, 0, 0, 0, 0}, 0, 0},
		{[]float64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1}, 1, 0},
		{[]float64{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 0}, 1, 1},
		{[]float64{0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1}, 2, 1},
		{[]float64{0, 0.5, 1, 0.5, 0}, 1, 1},
	}
	for _, tt := range tests {
		h := NewHistory(100)
		pushSeries(h, tt.input...)

		rising, falling := h.BufferedEdges(0, window)
		assert.Equal(t, tt.rising, rising, "rising edges for %v", tt.input)
		assert.Equal(t, tt.falling, falling, "falling edges for %v", tt.input)
		assert.Equal(t, rising, h.BufferedPresses(0, window))
		assert.Equal(t, falling, h.BufferedReleases(0, window))
	}
}

func TestHistoryBufferedEdgesWindowLargerThanCapacity(t *testing.T) {
	h := NewHistory(3)
	pushSeries(h, 1, 0, 0, 1, 0)
	// Only [0, 1, 0] survive eviction.
	rising, falling := h.BufferedEdges(0, 10)
	assert.Equal(t, 1, rising)
	assert.Equal(t, 1, falling)
}

func TestHistoryIsSmashed(t *testing.T) {
	tests := []struct {
		name   string
		input  []float64
		expect bool
	}{
		{"empty", nil, false},
		{"single full sample", []float64{1}, false},
		{"flick within window", []float64{0, 0.5, 0.95}, true},
		{"flick exactly window ago", []float64{0.05, 0.3, 0.6, 0.9}, true},
		{"slow push", []float64{0, 0.3, 0.5, 0.7, 0.95}, false},
		{"held", []float64{1, 1, 1, 1}, false},
		{"below threshold", []float64{0, 0, 0.85}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHistory(0)
			pushSeries(h, tt.input...)
			assert.Equal(t, tt.expect, h.IsSmashed(0, DefaultSmash))
		})
	}
}

func TestHistoryIsSmashedCustomConfig(t *testing.T) {
	h := NewHistory(10)
	pushSeries(h, 0, 0.2, 0.4, 0.6, 0.8)

	assert.False(t, h.IsSmashed(0, SmashConfig{Threshold: 0.8, Window: 3}))
	assert.True(t, h.IsSmashed(0, SmashConfig{Threshold: 0.8, Window: 4}))
	// Zero fields take the defaults.
	assert.False(t, h.IsSmashed(0, SmashConfig{}))
}
