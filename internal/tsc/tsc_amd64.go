//go:build amd64

package tsc

func readCounter() uint64
func cpuid(leaf, sub uint32) (eax, ebx, ecx, edx uint32)

const (
	mhzToHz = 1000 * 1000
	khzToHz = 1000
)

// Read returns the current value of the time-stamp counter.
func Read() uint64 {
	return readCounter()
}

// Available reports whether the CPU exposes a time-stamp counter
// (CPUID.01H:EDX[4]).
func Available() bool {
	maxLeaf, _, _, _ := cpuid(0, 0)
	if maxLeaf < 1 {
		return false
	}
	_, _, _, edx := cpuid(1, 0)
	return edx&(1<<4) != 0
}

// Invariant reports whether the counter runs at a constant rate across power
// and frequency state changes (CPUID.80000007H:EDX[8]).
func Invariant() bool {
	maxExt, _, _, _ := cpuid(0x80000000, 0)
	if maxExt < 0x80000007 {
		return false
	}
	_, _, _, edx := cpuid(0x80000007, 0)
	return edx&(1<<8) != 0
}

// CalibratedFrequencyHz derives the counter frequency from CPUID leaf 0x15
// when the crystal clock is reported, and approximates it from the CPU base
// frequency (leaf 0x16) on parts that leave the crystal field zero.
func CalibratedFrequencyHz() (uint64, bool) {
	maxLeaf, _, _, _ := cpuid(0, 0)
	if maxLeaf < 0x15 {
		return 0, false
	}
	den, num, crystal, _ := cpuid(0x15, 0)
	if num == 0 || den == 0 {
		return 0, false
	}
	if crystal != 0 {
		return uint64(crystal) * uint64(num) / uint64(den), true
	}
	// Skylake and Kabylake don't report the crystal clock; reconstruct it
	// from the base frequency so the ratio still applies.
	if maxLeaf >= 0x16 {
		baseMHz, _, _, _ := cpuid(0x16, 0)
		if baseMHz != 0 {
			baseHz := uint64(baseMHz) * mhzToHz
			crystalHz := baseHz * uint64(den) / uint64(num)
			return crystalHz * uint64(num) / uint64(den), true
		}
	}
	return 0, false
}

// VMMFrequencyHz returns the counter frequency advertised by a hypervisor
// through leaf 0x40000010 (EAX, in kHz), when one is present at all
// (CPUID.01H:ECX[31]).
func VMMFrequencyHz() (uint64, bool) {
	maxLeaf, _, _, _ := cpuid(0, 0)
	if maxLeaf < 1 {
		return 0, false
	}
	_, _, ecx, _ := cpuid(1, 0)
	if ecx&(1<<31) == 0 {
		return 0, false
	}
	maxHv, _, _, _ := cpuid(0x40000000, 0)
	if maxHv < 0x40000010 {
		return 0, false
	}
	khz, _, _, _ := cpuid(0x40000010, 0)
	if khz == 0 {
		return 0, false
	}
	return uint64(khz) * khzToHz, true
}
