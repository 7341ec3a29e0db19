package ansi

import "testing"

func TestFg256(t *testing.T) {
	if got, want := Fg256(202), "\x1b[38;5;202m"; got != want {
		t.Fatalf("Fg256(202) = %q, want %q", got, want)
	}
	if got, want := Fg256(0), "\x1b[38;5;0m"; got != want {
		t.Fatalf("Fg256(0) = %q, want %q", got, want)
	}
}

func TestPaletteByName(t *testing.T) {
	if PaletteByName("default") != &PaletteDefault {
		t.Fatal("default palette not resolvable")
	}
	if PaletteByName("16") != &Palette16 || PaletteByName("16color") != &Palette16 {
		t.Fatal("16-color palette aliases not resolvable")
	}
	if PaletteByName("mono") != &PaletteMono || PaletteByName("none") != &PaletteMono {
		t.Fatal("mono palette aliases not resolvable")
	}
	if PaletteByName("synthwave") != nil {
		t.Fatal("unknown palette must resolve to nil")
	}
}

func TestStrip(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain passthrough", "hello", "hello"},
		{"single sequence", Fg256(202) + "ERROR" + Reset, "ERROR"},
		{"interleaved", "\x1b[93m      1500\x1b[0m [\x1b[38;5;136mINFO \x1b[0m] - boot: up", "      1500 [INFO ] - boot: up"},
		{"unterminated dropped", "ok\x1b[38;5", "ok"},
		{"bare escape kept", "a\x1bb", "a\x1bb"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Strip(tc.in); got != tc.want {
				t.Fatalf("Strip(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}
