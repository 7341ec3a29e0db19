package host

import (
	"testing"
)

func TestConsoleSelectOutput(t *testing.T) {
	c := NewConsole()
	if err := c.SelectOutput("stderr"); err != nil {
		t.Fatalf("stderr selection failed: %v", err)
	}
	if err := c.SelectOutput("stdout"); err != nil {
		t.Fatalf("stdout selection failed: %v", err)
	}
	if err := c.SelectOutput(""); err != nil {
		t.Fatalf("empty selector should mean stdout: %v", err)
	}
	if err := c.SelectOutput("lp0"); err == nil {
		t.Fatal("unknown selector must be rejected")
	}
}

func TestSerialRejectsMissingDevice(t *testing.T) {
	if _, err := NewSerial("/dev/serlog-test-does-not-exist", 115200); err == nil {
		t.Fatal("expected open failure for missing device")
	}
}
