package input

import (
	"errors"
	"fmt"
)

// ErrDegenerateCalibration is returned when a channel's zero and one values
// are equal, which leaves the normalisation undefined.
var ErrDegenerateCalibration = errors.New("input: degenerate channel calibration")

// ChannelKind selects which raw reading a Channel consumes.
type ChannelKind uint8

const (
	KindButton ChannelKind = iota // digital button, raw domain {0, 1}
	KindAxis                      // analog axis, device-native range
	KindHat                       // one component of a two-axis hat
)

func (k ChannelKind) String() string {
	switch k {
	case KindButton:
		return "button"
	case KindAxis:
		return "axis"
	case KindHat:
		return "hat"
	default:
		return fmt.Sprintf("ChannelKind(%d)", uint8(k))
	}
}

// Hat components.
const (
	HatHorizontal = 0
	HatVertical   = 1
)

// Channel describes one raw input line and its calibration. A Channel is a
// value; it is bound to a Source when registered on a Device.
type Channel struct {
	Kind      ChannelKind
	ID        int // raw button/axis/hat id on the source
	Component int // hat component (HatHorizontal or HatVertical); unused otherwise
	Zero      float64
	One       float64
}

// NewChannel validates and returns a channel. Zero and one must differ; a hat
// component must be HatHorizontal or HatVertical.
func NewChannel(kind ChannelKind, id, component int, zero, one float64) (Channel, error) {
	c := Channel{Kind: kind, ID: id, Component: component, Zero: zero, One: one}
	if err := c.validate(); err != nil {
		return Channel{}, err
	}
	return c, nil
}

// Button returns a digital button channel with the {0, 1} calibration.
func Button(id int) Channel {
	return mustChannel(KindButton, id, 0, 0, 1)
}

// Axis returns an analog axis channel calibrated so that a raw reading of
// zero maps to 0 and a raw reading of one maps to 1. Panics on a degenerate
// calibration; intended for definition-time channel tables.
func Axis(id int, zero, one float64) Channel {
	return mustChannel(KindAxis, id, 0, zero, one)
}

// Hat returns a channel for one component of a hat. Panics on a degenerate
// calibration or an unknown component.
func Hat(id, component int, zero, one float64) Channel {
	return mustChannel(KindHat, id, component, zero, one)
}

func mustChannel(kind ChannelKind, id, component int, zero, one float64) Channel {
	c, err := NewChannel(kind, id, component, zero, one)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Channel) validate() error {
	if c.Zero == c.One {
		return fmt.Errorf("%w: %s %d has zero == one == %v", ErrDegenerateCalibration, c.Kind, c.ID, c.Zero)
	}
	if c.Kind == KindHat && c.Component != HatHorizontal && c.Component != HatVertical {
		return fmt.Errorf("input: hat %d has invalid component %d", c.ID, c.Component)
	}
	if c.Kind > KindHat {
		return fmt.Errorf("input: unknown channel kind %d", c.Kind)
	}
	return nil
}

// Normalize maps raw from [Zero, One] to [0, 1]. Readings outside the
// calibrated range saturate. Inverted calibrations (One < Zero) are allowed.
func (c Channel) Normalize(raw float64) float64 {
	v := (raw - c.Zero) / (c.One - c.Zero)
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// read takes the raw reading for c from src and normalises it.
func (c Channel) read(src Source) float64 {
	var raw float64
	switch c.Kind {
	case KindButton:
		if src.Button(c.ID) {
			raw = 1
		}
	case KindAxis:
		raw = src.Axis(c.ID)
	case KindHat:
		x, y := src.Hat(c.ID)
		if c.Component == HatVertical {
			raw = float64(y)
		} else {
			raw = float64(x)
		}
	}
	return c.Normalize(raw)
}
