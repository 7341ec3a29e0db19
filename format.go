package serlog

import (
	"fmt"
	"strconv"

	"pkt.systems/serlog/ansi"
)

const elapsedColumns = 10

// renderRecord writes one formatted record onto an already-open line:
//
//	<elapsed> [<LEVEL>] - <target>: <message>
//
// The elapsed count is right-justified in ten columns, or empty when
// undetermined. The caller owns the terminator via LineWriter.Close.
func renderRecord(w *LineWriter, pal *ansi.Palette, colors bool, el Elapsed, level Level, target, format string, args ...any) {
	if el.Kind != ElapsedUndetermined {
		if colors {
			w.WriteString(pal.Elapsed)
		}
		writeElapsed(w, el)
		if colors {
			w.WriteString(ansi.Reset)
		}
	}
	w.WriteString(" [")
	if colors {
		w.WriteString(paletteLevel(pal, level))
	}
	w.WriteString(levelColumn(level))
	if colors {
		w.WriteString(ansi.Reset)
	}
	w.WriteString("] - ")
	w.WriteString(target)
	w.WriteString(": ")
	if colors {
		w.WriteString(pal.Message)
	}
	if len(args) == 0 {
		w.WriteString(format)
	} else {
		fmt.Fprintf(w, format, args...)
	}
	if colors {
		w.WriteString(ansi.Reset)
	}
}

// writeElapsed emits the counter value right-justified, without heap work
// for the common case.
func writeElapsed(w *LineWriter, el Elapsed) {
	if el.Kind == ElapsedUndetermined {
		return
	}
	var buf [20]byte
	digits := strconv.AppendUint(buf[:0], el.Value, 10)
	for pad := elapsedColumns - len(digits); pad > 0; pad-- {
		w.WriteChar(' ')
	}
	w.Write(digits)
}

func paletteLevel(pal *ansi.Palette, level Level) string {
	switch level {
	case ErrorLevel:
		return pal.Error
	case WarnLevel:
		return pal.Warn
	case InfoLevel:
		return pal.Info
	case DebugLevel:
		return pal.Debug
	default:
		return pal.Trace
	}
}
