package serlog

import "testing"

func TestCyclesToNanos(t *testing.T) {
	cases := []struct {
		name   string
		cycles uint64
		hz     uint64
		want   uint64
	}{
		{"identity at 1GHz", 12345, 1_000_000_000, 12345},
		{"half rate", 1000, 2_000_000_000, 500},
		{"2.6GHz sample", 2_600_000_000, 2_600_000_000, 1_000_000_000},
		{"sub-cycle truncates", 1, 2_000_000_000, 0},
		{"fractional remainder", 3, 2, 1_500_000_000},
		{"one hertz", 7, 1, 7_000_000_000},
		{"large delta no overflow", 1 << 62, 2_000_000_000, (uint64(1) << 62) / 2},
		{"max delta at 1GHz", (1 << 63) - 1, 1_000_000_000, (1 << 63) - 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := cyclesToNanos(tc.cycles, tc.hz); got != tc.want {
				t.Fatalf("cyclesToNanos(%d, %d) = %d, want %d", tc.cycles, tc.hz, got, tc.want)
			}
		})
	}
}

type fakeTiming struct {
	has      bool
	inv      bool
	calHz    uint64
	calOK    bool
	vmmHz    uint64
	vmmOK    bool
	reads    []uint64
	readIdx  int
	lastRead uint64
}

func (f *fakeTiming) HasCounter() bool          { return f.has }
func (f *fakeTiming) HasInvariantCounter() bool { return f.inv }

func (f *fakeTiming) ReadCounter() uint64 {
	if f.readIdx < len(f.reads) {
		f.lastRead = f.reads[f.readIdx]
		f.readIdx++
	}
	return f.lastRead
}

func (f *fakeTiming) CalibratedFrequencyHz() (uint64, bool) { return f.calHz, f.calOK }
func (f *fakeTiming) VMMFrequencyHz() (uint64, bool)        { return f.vmmHz, f.vmmOK }

func TestStateElapsedKinds(t *testing.T) {
	t.Run("no counter", func(t *testing.T) {
		st := &state{}
		if got := st.elapsed(); got.Kind != ElapsedUndetermined {
			t.Fatalf("expected undetermined, got %+v", got)
		}
	})

	t.Run("counter without frequency yields cycles", func(t *testing.T) {
		timing := &fakeTiming{has: true, inv: true, reads: []uint64{5000}}
		st := &state{timing: timing, hasCounter: true, invariant: true, epoch: 1000}
		got := st.elapsed()
		if got.Kind != ElapsedCycles || got.Value != 4000 {
			t.Fatalf("expected 4000 cycles, got %+v", got)
		}
	})

	t.Run("non-invariant counter yields cycles even with frequency", func(t *testing.T) {
		timing := &fakeTiming{has: true, reads: []uint64{5000}}
		st := &state{timing: timing, hasCounter: true, epoch: 1000, freqHz: 1_000_000_000}
		got := st.elapsed()
		if got.Kind != ElapsedCycles || got.Value != 4000 {
			t.Fatalf("expected 4000 cycles, got %+v", got)
		}
	})

	t.Run("invariant counter with frequency yields nanoseconds", func(t *testing.T) {
		timing := &fakeTiming{has: true, inv: true, reads: []uint64{3_000_001_000}}
		st := &state{timing: timing, hasCounter: true, invariant: true, epoch: 1000, freqHz: 2_000_000_000}
		got := st.elapsed()
		if got.Kind != ElapsedNanos || got.Value != 1_500_000_000 {
			t.Fatalf("expected 1.5s in ns, got %+v", got)
		}
	})
}
