//go:build !amd64

package tsc

// Read returns 0 on platforms without a supported cycle counter.
func Read() uint64 { return 0 }

// Available reports false on platforms without a supported cycle counter.
func Available() bool { return false }

// Invariant reports false on platforms without a supported cycle counter.
func Invariant() bool { return false }

// CalibratedFrequencyHz reports no frequency on unsupported platforms.
func CalibratedFrequencyHz() (uint64, bool) { return 0, false }

// VMMFrequencyHz reports no frequency on unsupported platforms.
func VMMFrequencyHz() (uint64, bool) { return 0, false }
