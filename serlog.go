package serlog

import (
	"io"
	"strconv"
	"strings"

	"pkt.systems/serlog/ansi"
)

// Level is both a record severity and a per-directive threshold. Off is a
// filter-only sentinel ordered below every real level; a record is emitted by
// a directive when its level compares <= the directive's level.
type Level int8

const (
	// Off disables a directive (and is the ceiling of an empty filter).
	Off Level = iota
	// ErrorLevel designates failures the system cannot recover from locally.
	ErrorLevel
	// WarnLevel designates suspicious but survivable conditions.
	WarnLevel
	// InfoLevel designates coarse progress reporting.
	InfoLevel
	// DebugLevel designates diagnostics for development.
	DebugLevel
	// TraceLevel designates the most verbose per-operation tracing.
	TraceLevel
)

// maxVerbosity is the level a directive gets when no threshold is spelled out
// ("crate1::mod2" alone enables everything for that target).
const maxVerbosity = TraceLevel

// ParseLevel converts a textual level into a Level value. It accepts the
// canonical names ("off", "error", "warn", "info", "debug", "trace"),
// "warning" and "none" as aliases, and the numeric forms 0..5, all case
// insensitive.
func ParseLevel(value string) (Level, bool) {
	trimmed := strings.TrimSpace(value)
	switch strings.ToLower(trimmed) {
	case "off", "none":
		return Off, true
	case "error":
		return ErrorLevel, true
	case "warn", "warning":
		return WarnLevel, true
	case "info":
		return InfoLevel, true
	case "debug":
		return DebugLevel, true
	case "trace":
		return TraceLevel, true
	}
	if n, err := strconv.Atoi(trimmed); err == nil && n >= int(Off) && n <= int(TraceLevel) {
		return Level(n), true
	}
	return Off, false
}

// LevelString returns the canonical lower-case name of a Level.
func LevelString(level Level) string {
	switch level {
	case Off:
		return "off"
	case ErrorLevel:
		return "error"
	case WarnLevel:
		return "warn"
	case InfoLevel:
		return "info"
	case DebugLevel:
		return "debug"
	case TraceLevel:
		return "trace"
	default:
		return "off"
	}
}

// levelColumn is the upper-case, 5-column form used in rendered lines.
func levelColumn(level Level) string {
	switch level {
	case ErrorLevel:
		return "ERROR"
	case WarnLevel:
		return "WARN "
	case InfoLevel:
		return "INFO "
	case DebugLevel:
		return "DEBUG"
	case TraceLevel:
		return "TRACE"
	default:
		return "OFF  "
	}
}

// Channel is the physical byte sink. Writes block until the transport accepts
// each unit and have no failure mode below them: implementations must treat
// an unwritable channel as fatal rather than report an error upward (logging
// a logging failure through the same channel recurses).
//
// Channel implementations are not required to be concurrency safe; serlog
// serializes whole lines through the line lock before bytes reach the
// channel. Only the best-effort path bypasses that guarantee.
type Channel interface {
	// WriteBytes emits p verbatim.
	WriteBytes(p []byte)
	// WriteString emits s verbatim.
	WriteString(s string)
	// WriteChar emits a single byte.
	WriteChar(c byte)
}

// OutputSelector is implemented by channels that can redirect output to a
// different physical line or stream after construction. Init forwards
// Config.Output to it when set.
type OutputSelector interface {
	SelectOutput(selector string) error
}

// TimingSource exposes the hardware counter capabilities consumed at Init.
// All methods must be safe to call before any logging happens; ReadCounter is
// called on every emitted record afterwards.
type TimingSource interface {
	// HasCounter reports whether a monotonic cycle counter exists at all.
	HasCounter() bool
	// HasInvariantCounter reports whether the counter runs at a constant
	// rate regardless of power or frequency state changes.
	HasInvariantCounter() bool
	// ReadCounter returns the current raw counter value.
	ReadCounter() uint64
	// CalibratedFrequencyHz returns the locally calibrated counter
	// frequency, when the hardware reports one.
	CalibratedFrequencyHz() (uint64, bool)
	// VMMFrequencyHz returns a virtualization-host-provided counter
	// frequency, used as a fallback when local calibration fails.
	VMMFrequencyHz() (uint64, bool)
}

// Config controls Init. The zero value selects a writer channel over
// os.Stdout, no timing source (elapsed renders empty), and color
// autodetection against the channel.
type Config struct {
	// Channel is the transport lines are written to. Nil selects a
	// WriterChannel over os.Stdout.
	Channel Channel

	// Timing provides counter capabilities. Nil means no counter: every
	// line renders with an empty elapsed column.
	Timing TimingSource

	// Output, when non-empty, is passed to the channel's SelectOutput
	// before anything is written. Channels without an OutputSelector
	// implementation reject a non-empty Output.
	Output string

	// NoColor forces color escape codes off regardless of detection.
	NoColor bool

	// ForceColor bypasses terminal detection and emits color even when the
	// channel is not a TTY.
	ForceColor bool

	// Palette overrides the ANSI palette. Nil uses ansi.PaletteDefault.
	Palette *ansi.Palette
}

// writerChannel adapts an io.Writer to the Channel contract. A write error
// from the underlying writer is fatal per the transport model.
type writerChannel struct {
	w io.Writer
}

// NewWriterChannel wraps w as a Channel. Useful for tests and for hosts where
// the "serial line" is just a file descriptor.
func NewWriterChannel(w io.Writer) Channel {
	if w == nil {
		w = io.Discard
	}
	return &writerChannel{w: w}
}

func (c *writerChannel) WriteBytes(p []byte) {
	if len(p) == 0 {
		return
	}
	if _, err := c.w.Write(p); err != nil {
		panic("serlog: channel write failed: " + err.Error())
	}
}

func (c *writerChannel) WriteString(s string) {
	if s == "" {
		return
	}
	if sw, ok := c.w.(io.StringWriter); ok {
		if _, err := sw.WriteString(s); err != nil {
			panic("serlog: channel write failed: " + err.Error())
		}
		return
	}
	c.WriteBytes([]byte(s))
}

func (c *writerChannel) WriteChar(b byte) {
	var buf [1]byte
	buf[0] = b
	c.WriteBytes(buf[:])
}

// underlying exposes the wrapped writer for terminal detection.
func (c *writerChannel) underlying() io.Writer { return c.w }
