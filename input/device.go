package input

import (
	"errors"
	"fmt"
)

// ErrNoSource is returned when a Device is constructed without a Source.
var ErrNoSource = errors.New("input: device has no source")

// Poller produces one Snapshot per call. Device implements it; tests and
// recorded sessions may supply their own.
type Poller interface {
	Poll() Snapshot
}

// Device is an ordered, fixed set of channels read from one Source. The
// channel table is copied at construction and cannot change afterwards; a
// channel's index in every Snapshot is its position in that table.
type Device struct {
	name     string
	src      Source
	channels []Channel
	buf      []float64
}

// NewDevice validates channels and returns a device reading them from src.
func NewDevice(name string, src Source, channels ...Channel) (*Device, error) {
	if src == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoSource, name)
	}
	table := make([]Channel, len(channels))
	for i, c := range channels {
		if err := c.validate(); err != nil {
			return nil, fmt.Errorf("device %q channel %d: %w", name, i, err)
		}
		table[i] = c
	}
	return &Device{
		name:     name,
		src:      src,
		channels: table,
		buf:      make([]float64, len(table)),
	}, nil
}

// Name returns the device name.
func (d *Device) Name() string { return d.name }

// Len returns the number of registered channels.
func (d *Device) Len() int { return len(d.channels) }

// Channels returns a copy of the channel table.
func (d *Device) Channels() []Channel {
	c := make([]Channel, len(d.channels))
	copy(c, d.channels)
	return c
}

// Source returns the source the device reads from.
func (d *Device) Source() Source { return d.src }

// Poll reads every channel in registration order.
func (d *Device) Poll() Snapshot {
	if l, ok := d.src.(Latcher); ok {
		l.Latch()
	}
	for i, c := range d.channels {
		d.buf[i] = c.read(d.src)
	}
	return NewSnapshot(d.buf...)
}
