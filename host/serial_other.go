//go:build !linux

package host

import "errors"

// Serial is only available on Linux; this stub keeps the type resolvable on
// other platforms.
type Serial struct{}

// DefaultBaud is used when NewSerial is given a zero rate.
const DefaultBaud = 115200

// NewSerial reports that raw serial channels are unsupported on this
// platform.
func NewSerial(path string, baud uint32) (*Serial, error) {
	return nil, errors.New("host: serial channels are only supported on linux")
}

func (*Serial) WriteBytes(p []byte)                {}
func (*Serial) WriteString(s string)               {}
func (*Serial) WriteChar(b byte)                   {}
func (*Serial) SelectOutput(selector string) error { return nil }
func (*Serial) IsTerminal() bool                   { return false }
func (*Serial) Close() error                       { return nil }
