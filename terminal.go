package serlog

import (
	"io"

	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

type terminalReporter interface {
	IsTerminal() bool
}

// channelIsTerminal decides whether color autodetection sees a TTY behind the
// channel. Host channels report directly; writer channels are probed through
// their file descriptor.
func channelIsTerminal(ch Channel) bool {
	if tr, ok := ch.(terminalReporter); ok {
		return tr.IsTerminal()
	}
	if wc, ok := ch.(*writerChannel); ok {
		return isTerminal(wc.underlying())
	}
	return false
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
