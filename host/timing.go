package host

import "pkt.systems/serlog/internal/tsc"

// Timing is a TimingSource backed by the CPU time-stamp counter. On
// platforms without one, every capability reports absent and serlog renders
// empty elapsed columns.
type Timing struct{}

// NewTiming returns the host timing source.
func NewTiming() *Timing {
	return &Timing{}
}

// HasCounter reports whether a cycle counter exists.
func (*Timing) HasCounter() bool {
	return tsc.Available()
}

// HasInvariantCounter reports whether the counter rate survives power and
// frequency transitions.
func (*Timing) HasInvariantCounter() bool {
	return tsc.Invariant()
}

// ReadCounter returns the raw counter value.
func (*Timing) ReadCounter() uint64 {
	return tsc.Read()
}

// CalibratedFrequencyHz returns the locally calibrated counter frequency.
func (*Timing) CalibratedFrequencyHz() (uint64, bool) {
	return tsc.CalibratedFrequencyHz()
}

// VMMFrequencyHz returns the hypervisor-provided counter frequency.
func (*Timing) VMMFrequencyHz() (uint64, bool) {
	return tsc.VMMFrequencyHz()
}
