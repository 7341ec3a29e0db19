//go:build linux

package host

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"
)

// Serial is a Channel over a raw serial device (8N1, no flow control).
// Writes block until the driver accepts the bytes; any write error is fatal,
// matching the transport model of the root package.
type Serial struct {
	fd   int
	path string
	baud uint32
}

// DefaultBaud is used when NewSerial is given a zero rate.
const DefaultBaud = 115200

// NewSerial opens path (for example "/dev/ttyS0") and configures it raw at
// baud.
func NewSerial(path string, baud uint32) (*Serial, error) {
	if baud == 0 {
		baud = DefaultBaud
	}
	s := &Serial{fd: -1, baud: baud}
	if err := s.open(path); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Serial) open(path string) error {
	speed, ok := baudFlag(s.baud)
	if !ok {
		return fmt.Errorf("host: unsupported baud rate %d", s.baud)
	}
	fd, err := unix.Open(path, unix.O_WRONLY|unix.O_NOCTTY, 0)
	if err != nil {
		return fmt.Errorf("host: open serial %q: %w", path, err)
	}
	tio, err := unix.IoctlGetTermios(fd, unix.TCGETS)
	if err != nil {
		_ = unix.Close(fd)
		return fmt.Errorf("host: read termios %q: %w", path, err)
	}
	tio.Iflag &^= unix.IGNBRK | unix.BRKINT | unix.PARMRK | unix.ISTRIP |
		unix.INLCR | unix.IGNCR | unix.ICRNL | unix.IXON
	tio.Oflag &^= unix.OPOST
	tio.Lflag &^= unix.ECHO | unix.ECHONL | unix.ICANON | unix.ISIG | unix.IEXTEN
	tio.Cflag &^= unix.CSIZE | unix.PARENB | unix.CSTOPB | unix.CBAUD
	tio.Cflag |= unix.CS8 | unix.CLOCAL | speed
	tio.Ispeed = speed
	tio.Ospeed = speed
	if err := unix.IoctlSetTermios(fd, unix.TCSETS, tio); err != nil {
		_ = unix.Close(fd)
		return fmt.Errorf("host: configure serial %q: %w", path, err)
	}
	if s.fd >= 0 {
		_ = unix.Close(s.fd)
	}
	s.fd = fd
	s.path = path
	return nil
}

// SelectOutput reopens the channel on a different device at the configured
// baud rate.
func (s *Serial) SelectOutput(selector string) error {
	return s.open(selector)
}

// WriteBytes emits p, retrying short writes and EINTR.
func (s *Serial) WriteBytes(p []byte) {
	for len(p) > 0 {
		n, err := unix.Write(s.fd, p)
		if err == unix.EINTR {
			continue
		}
		if err != nil {
			panic("host: serial write " + s.path + " failed: " + err.Error())
		}
		p = p[n:]
	}
}

// WriteString emits str verbatim.
func (s *Serial) WriteString(str string) {
	if str == "" {
		return
	}
	s.WriteBytes([]byte(str))
}

// WriteChar emits one byte.
func (s *Serial) WriteChar(b byte) {
	var buf [1]byte
	buf[0] = b
	s.WriteBytes(buf[:])
}

// IsTerminal reports whether the device is a TTY, which serial lines are;
// color then depends on whatever is attached to the other end, so pair a
// dumb console with Config.NoColor or ansi.Palette16.
func (s *Serial) IsTerminal() bool {
	return term.IsTerminal(s.fd)
}

// Close releases the device. The logger never calls it; it exists for
// embedding programs that tear the channel down on their own paths.
func (s *Serial) Close() error {
	if s.fd < 0 {
		return nil
	}
	err := unix.Close(s.fd)
	s.fd = -1
	return err
}

func baudFlag(baud uint32) (uint32, bool) {
	switch baud {
	case 1200:
		return unix.B1200, true
	case 2400:
		return unix.B2400, true
	case 4800:
		return unix.B4800, true
	case 9600:
		return unix.B9600, true
	case 19200:
		return unix.B19200, true
	case 38400:
		return unix.B38400, true
	case 57600:
		return unix.B57600, true
	case 115200:
		return unix.B115200, true
	case 230400:
		return unix.B230400, true
	case 460800:
		return unix.B460800, true
	case 921600:
		return unix.B921600, true
	default:
		return 0, false
	}
}
