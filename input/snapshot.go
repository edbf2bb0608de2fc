package input

// Snapshot is one tick's normalised reading of every channel on a Device,
// indexed by channel registration order. The zero Snapshot is the all-zero
// sentinel returned by History before enough samples exist.
type Snapshot struct {
	values []float64
}

// NewSnapshot returns a snapshot holding a copy of values.
func NewSnapshot(values ...float64) Snapshot {
	v := make([]float64, len(values))
	copy(v, values)
	return Snapshot{values: v}
}

// At returns the value of channel i. Indices past the end read as 0.
func (s Snapshot) At(i int) float64 {
	if i < 0 || i >= len(s.values) {
		return 0
	}
	return s.values[i]
}

// Len returns the number of channels in the snapshot; 0 for the sentinel.
func (s Snapshot) Len() int {
	return len(s.values)
}

// Values returns a copy of the channel values.
func (s Snapshot) Values() []float64 {
	v := make([]float64, len(s.values))
	copy(v, s.values)
	return v
}
