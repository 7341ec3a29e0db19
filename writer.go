package serlog

import (
	"fmt"
	"runtime"
	"sync/atomic"
)

// lineLock is the binary token guarding the physical channel. Acquisition is
// a queue-less busy wait: there is no timeout and no deadlock detection, so a
// holder that never releases stalls every other locked writer indefinitely.
// On a hosted runtime the spin yields to the scheduler between attempts.
type lineLock struct {
	token atomic.Bool
}

func (l *lineLock) acquire() {
	for !l.token.CompareAndSwap(false, true) {
		runtime.Gosched()
	}
}

func (l *lineLock) release() {
	l.token.Store(false)
}

// lineMu is the process-wide line-exclusion token. It has no independent
// lifecycle: it exists only as the critical section around one formatted
// line.
var lineMu lineLock

// LineWriter owns the output channel for exactly one line. Construction
// acquires the line lock; Close unconditionally emits the CRLF terminator and
// releases it. Writes forward to the transport immediately, with no
// buffering. LineWriter implements io.Writer so fmt.Fprintf composes onto an
// open line.
type LineWriter struct {
	ch     Channel
	closed bool
}

// newLineWriter blocks until the line lock is available.
func newLineWriter(ch Channel) *LineWriter {
	lineMu.acquire()
	return &LineWriter{ch: ch}
}

// newModuleLineWriter additionally writes the bracketed module prefix before
// returning, so subsequent writes continue that line.
func newModuleLineWriter(ch Channel, module string) *LineWriter {
	w := newLineWriter(ch)
	w.ch.WriteChar('[')
	w.ch.WriteString(module)
	w.ch.WriteString("] ")
	return w
}

// Write implements io.Writer. It never fails: transport faults are fatal
// below this layer.
func (w *LineWriter) Write(p []byte) (int, error) {
	w.ch.WriteBytes(p)
	return len(p), nil
}

// WriteString emits s verbatim onto the open line.
func (w *LineWriter) WriteString(s string) {
	w.ch.WriteString(s)
}

// WriteChar emits one byte onto the open line.
func (w *LineWriter) WriteChar(c byte) {
	w.ch.WriteChar(c)
}

// Close terminates the line with CRLF and releases the line lock. It is
// idempotent and must run on every exit path; the scoped helpers (Line,
// ModuleLine, the log entry points) defer it so panics from nested calls
// still release the channel.
func (w *LineWriter) Close() {
	if w.closed {
		return
	}
	w.closed = true
	w.ch.WriteString("\r\n")
	lineMu.release()
}

// BestEffortWriter emits bytes without acquiring the line lock. It never
// blocks and never deadlocks, at the price of interleaving freely with a
// concurrent LineWriter; use it only on failure and abort paths where the
// locked writer might already be held by the faulting context.
type BestEffortWriter struct {
	ch Channel
}

// Write implements io.Writer.
func (w BestEffortWriter) Write(p []byte) (int, error) {
	w.ch.WriteBytes(p)
	return len(p), nil
}

// WriteString emits s verbatim.
func (w BestEffortWriter) WriteString(s string) {
	w.ch.WriteString(s)
}

// Line acquires the locked writer, runs fn, and guarantees terminator and
// release on every exit path, including a panic propagating out of fn. It is
// a no-op before Init.
func Line(fn func(w *LineWriter)) {
	st := installed.Load()
	if st == nil {
		return
	}
	w := newLineWriter(st.channel)
	defer w.Close()
	fn(w)
}

// ModuleLine is Line with a bracketed module-name prefix written before fn
// runs.
func ModuleLine(module string, fn func(w *LineWriter)) {
	st := installed.Load()
	if st == nil {
		return
	}
	w := newModuleLineWriter(st.channel, module)
	defer w.Close()
	fn(w)
}

// Println formats one complete locked line with no level, timestamp or target
// decoration. It is a no-op before Init.
func Println(format string, args ...any) {
	Line(func(w *LineWriter) {
		if len(args) == 0 {
			w.WriteString(format)
			return
		}
		fmt.Fprintf(w, format, args...)
	})
}

// Print formats onto the channel through the best-effort path: no lock, no
// terminator. It is a no-op before Init.
func Print(format string, args ...any) {
	st := installed.Load()
	if st == nil {
		return
	}
	w := BestEffortWriter{ch: st.channel}
	if len(args) == 0 {
		w.WriteString(format)
		return
	}
	fmt.Fprintf(w, format, args...)
}

// BestEffort returns the non-locking writer over the installed channel, or
// false before Init.
func BestEffort() (BestEffortWriter, bool) {
	st := installed.Load()
	if st == nil {
		return BestEffortWriter{}, false
	}
	return BestEffortWriter{ch: st.channel}, true
}
