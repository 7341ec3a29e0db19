// Package host provides serlog.Channel and serlog.TimingSource
// implementations for hosted (OS) environments: process standard streams, raw
// serial devices on Linux, and a time-stamp-counter backed timing source. The
// filter, lock and format logic in the root package never references any of
// this directly; hosts inject it through serlog.Config.
package host

import (
	"fmt"
	"os"

	"golang.org/x/term"
)

// Console is a Channel over a process output stream, stdout by default.
type Console struct {
	f *os.File
}

// NewConsole returns a console channel writing to stdout.
func NewConsole() *Console {
	return &Console{f: os.Stdout}
}

// SelectOutput switches the console between "stdout" and "stderr".
func (c *Console) SelectOutput(selector string) error {
	switch selector {
	case "", "stdout":
		c.f = os.Stdout
	case "stderr":
		c.f = os.Stderr
	default:
		return fmt.Errorf("host: unknown console selector %q", selector)
	}
	return nil
}

// WriteBytes emits p, blocking until the stream accepts all of it. Stream
// errors are fatal: the console is the last-resort diagnostic path.
func (c *Console) WriteBytes(p []byte) {
	writeFull(c.f, p)
}

// WriteString emits s verbatim.
func (c *Console) WriteString(s string) {
	if s == "" {
		return
	}
	if _, err := c.f.WriteString(s); err != nil {
		panic("host: console write failed: " + err.Error())
	}
}

// WriteChar emits one byte.
func (c *Console) WriteChar(b byte) {
	var buf [1]byte
	buf[0] = b
	writeFull(c.f, buf[:])
}

// IsTerminal reports whether the selected stream is a TTY; serlog uses it for
// color autodetection.
func (c *Console) IsTerminal() bool {
	return term.IsTerminal(int(c.f.Fd()))
}

func writeFull(f *os.File, p []byte) {
	for len(p) > 0 {
		n, err := f.Write(p)
		if err != nil {
			panic("host: console write failed: " + err.Error())
		}
		p = p[n:]
	}
}
