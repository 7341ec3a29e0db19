package serlog

import "math/bits"

// ElapsedKind discriminates the three timestamp qualities serlog can offer.
type ElapsedKind uint8

const (
	// ElapsedUndetermined means no counter is available; the elapsed
	// column renders empty.
	ElapsedUndetermined ElapsedKind = iota
	// ElapsedCycles is a raw counter delta. It is deliberately not labeled
	// as time: without an invariant counter and a known frequency, cycles
	// do not convert to wall time honestly.
	ElapsedCycles
	// ElapsedNanos is a counter delta converted to nanoseconds through a
	// calibrated frequency.
	ElapsedNanos
)

// Elapsed is the best-effort time since Init, produced fresh for every
// emitted record and never stored.
type Elapsed struct {
	Kind  ElapsedKind
	Value uint64
}

const nsPerSec = 1_000_000_000

// cyclesToNanos converts a cycle delta to nanoseconds at hz without
// overflowing: the whole-second part divides first, the sub-second remainder
// multiplies through a 128-bit intermediate. hz must be non-zero.
func cyclesToNanos(cycles, hz uint64) uint64 {
	secs := cycles / hz
	rem := cycles % hz
	// rem < hz, so rem*nsPerSec/hz < nsPerSec and the 128/64 division
	// cannot overflow its 64-bit quotient.
	hi, lo := bits.Mul64(rem, nsPerSec)
	frac, _ := bits.Div64(hi, lo, hz)
	return secs*nsPerSec + frac
}
