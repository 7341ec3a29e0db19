package serlog

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"pkt.systems/serlog/ansi"
)

// ErrAlreadyInitialized is returned by Init when a logger installation
// already exists. The existing installation is left untouched.
var ErrAlreadyInitialized = errors.New("serlog: already initialized")

// ErrOutputSelection is wrapped around channel selector failures during Init.
var ErrOutputSelection = errors.New("serlog: output selection failed")

// state is the process-wide installation: assembled once inside Init,
// logically read-only afterwards. The timing capabilities are probed at Init
// so the per-record path touches only plain fields plus ReadCounter.
type state struct {
	channel Channel
	timing  TimingSource

	hasCounter bool
	invariant  bool
	epoch      uint64
	freqHz     uint64 // 0 = unknown

	filters  directiveSet
	maxLevel Level

	colors  bool
	palette *ansi.Palette
}

// installed is the single-assignment cell holding the installation. It is
// written exactly once, by the compare-and-swap in Init; readers only load.
var installed atomic.Pointer[state]

// Init parses spec, probes the configured channel and timing source, and
// installs the assembled state as the process-wide sink. Exactly one Init can
// succeed per process lifetime; later calls return ErrAlreadyInitialized and
// leave the first installation observably unchanged.
//
// Malformed filter input never fails Init: bad entries (and a spec with more
// than one '/') degrade toward logging less, with diagnostics written to the
// channel through the best-effort path.
func Init(spec string, cfg Config) error {
	if installed.Load() != nil {
		return ErrAlreadyInitialized
	}
	channel := cfg.Channel
	if channel == nil {
		channel = NewWriterChannel(os.Stdout)
	}
	if cfg.Output != "" {
		sel, ok := channel.(OutputSelector)
		if !ok {
			return fmt.Errorf("%w: channel cannot select %q", ErrOutputSelection, cfg.Output)
		}
		if err := sel.SelectOutput(cfg.Output); err != nil {
			return fmt.Errorf("%w: %q: %v", ErrOutputSelection, cfg.Output, err)
		}
	}

	st := &state{
		channel: channel,
		timing:  cfg.Timing,
		palette: cfg.Palette,
	}
	if st.palette == nil {
		st.palette = &ansi.PaletteDefault
	}
	if t := cfg.Timing; t != nil && t.HasCounter() {
		st.hasCounter = true
		st.invariant = t.HasInvariantCounter()
		st.epoch = t.ReadCounter()
		if hz, ok := t.CalibratedFrequencyHz(); ok && hz > 0 {
			st.freqHz = hz
		} else if hz, ok := t.VMMFrequencyHz(); ok && hz > 0 {
			st.freqHz = hz
		}
	}

	st.filters = parseFilterSpec(spec, BestEffortWriter{ch: channel})
	st.maxLevel = st.filters.maxLevel()
	st.colors = !cfg.NoColor && (cfg.ForceColor || channelIsTerminal(channel))

	if !installed.CompareAndSwap(nil, st) {
		return ErrAlreadyInitialized
	}
	return nil
}

// DefaultEnvKey is the environment variable InitFromEnv consults when given
// an empty key.
const DefaultEnvKey = "SERLOG"

// InitFromEnv reads the filter spec from the environment (key, or SERLOG when
// key is empty) and calls Init. An unset variable behaves like the empty
// spec: deny-all.
func InitFromEnv(key string, cfg Config) error {
	if key == "" {
		key = DefaultEnvKey
	}
	return Init(os.Getenv(key), cfg)
}

// Enabled reports whether a record at level for target would be emitted by
// the installed filter. Before Init it reports false.
func Enabled(level Level, target string) bool {
	st := installed.Load()
	if st == nil {
		return false
	}
	return level <= st.maxLevel && st.filters.enabled(level, target)
}

// MaxLevel returns the installed fast-reject ceiling, Off before Init.
func MaxLevel() Level {
	st := installed.Load()
	if st == nil {
		return Off
	}
	return st.maxLevel
}

// elapsed computes the best-effort time since Init for one record.
func (st *state) elapsed() Elapsed {
	if !st.hasCounter {
		return Elapsed{}
	}
	delta := st.timing.ReadCounter() - st.epoch
	if !st.invariant || st.freqHz == 0 {
		return Elapsed{Kind: ElapsedCycles, Value: delta}
	}
	return Elapsed{Kind: ElapsedNanos, Value: cyclesToNanos(delta, st.freqHz)}
}

// Log emits one record. Records above the installed ceiling are rejected
// before any matching or formatting work; records denied by the directive
// set are dropped after matching only. The line is rendered and written
// under the line lock, terminator and release guaranteed on every exit path.
func Log(level Level, target, format string, args ...any) {
	st := installed.Load()
	if st == nil || level == Off || level > st.maxLevel {
		return
	}
	if !st.filters.enabled(level, target) {
		return
	}
	el := st.elapsed()
	w := newLineWriter(st.channel)
	defer w.Close()
	renderRecord(w, st.palette, st.colors, el, level, target, format, args...)
}

// Error logs at ErrorLevel.
func Error(target, format string, args ...any) {
	Log(ErrorLevel, target, format, args...)
}

// Warn logs at WarnLevel.
func Warn(target, format string, args ...any) {
	Log(WarnLevel, target, format, args...)
}

// Info logs at InfoLevel.
func Info(target, format string, args ...any) {
	Log(InfoLevel, target, format, args...)
}

// Debug logs at DebugLevel.
func Debug(target, format string, args ...any) {
	Log(DebugLevel, target, format, args...)
}

// Trace logs at TraceLevel.
func Trace(target, format string, args ...any) {
	Log(TraceLevel, target, format, args...)
}
