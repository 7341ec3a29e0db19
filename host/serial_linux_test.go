//go:build linux

package host

import (
	"golang.org/x/sys/unix"
	"testing"
)

func TestBaudFlag(t *testing.T) {
	cases := []struct {
		baud uint32
		want uint32
		ok   bool
	}{
		{9600, unix.B9600, true},
		{115200, unix.B115200, true},
		{921600, unix.B921600, true},
		{31337, 0, false},
		{1, 0, false},
	}
	for _, tc := range cases {
		got, ok := baudFlag(tc.baud)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("baudFlag(%d) = (%#x, %v), want (%#x, %v)", tc.baud, got, ok, tc.want, tc.ok)
		}
	}
}

func TestNewSerialDefaultsBaud(t *testing.T) {
	// Rate zero must normalize to DefaultBaud before the open attempt; the
	// open itself fails on the missing device, which is fine here.
	if _, err := NewSerial("/dev/serlog-test-does-not-exist", 0); err == nil {
		t.Fatal("expected open failure")
	}
}
