// Package ansi provides the escape sequences and palettes used by serlog's
// colored line rendering. The defaults assume an xterm-256-capable terminal
// emulator on the other end of the line; Palette16 exists for dumb serial
// consoles that only understand the classic 16 colors.
package ansi

import "strconv"

// Reset clears all terminal styling.
const Reset = "\x1b[0m"

// Classic 16-color foreground sequences.
const (
	Red          = "\x1b[31m"
	Green        = "\x1b[32m"
	Yellow       = "\x1b[33m"
	Blue         = "\x1b[34m"
	Magenta      = "\x1b[35m"
	Cyan         = "\x1b[36m"
	BrightRed    = "\x1b[91m"
	BrightYellow = "\x1b[93m"
	BrightBlue   = "\x1b[94m"
	BrightCyan   = "\x1b[96m"
	BrightWhite  = "\x1b[97m"
)

// Fg256 returns the xterm-256 foreground sequence for color index n.
func Fg256(n uint8) string {
	return "\x1b[38;5;" + strconv.Itoa(int(n)) + "m"
}

// Palette maps serlog's rendering roles to escape sequences. Empty strings
// disable decoration for that role.
type Palette struct {
	Error   string
	Warn    string
	Info    string
	Debug   string
	Trace   string
	Elapsed string
	Message string
}

// PaletteDefault is the 256-color scheme serlog ships with: warm-to-cold
// level colors, bright yellow elapsed column, bright white message.
var PaletteDefault = Palette{
	Error:   Fg256(202),
	Warn:    Fg256(167),
	Info:    Fg256(136),
	Debug:   Fg256(64),
	Trace:   Fg256(32),
	Elapsed: BrightYellow,
	Message: BrightWhite,
}

// Palette16 approximates the default scheme with classic 16-color sequences
// for terminals without 256-color support.
var Palette16 = Palette{
	Error:   BrightRed,
	Warn:    Red,
	Info:    Yellow,
	Debug:   Green,
	Trace:   Blue,
	Elapsed: BrightYellow,
	Message: BrightWhite,
}

// PaletteMono disables all decoration while keeping the color code path.
var PaletteMono = Palette{}

var namedPalettes = map[string]*Palette{
	"default": &PaletteDefault,
	"16":      &Palette16,
	"16color": &Palette16,
	"mono":    &PaletteMono,
	"none":    &PaletteMono,
}

// PaletteByName resolves a built-in palette by name, nil when unknown. Names
// are case-sensitive short identifiers ("default", "16", "mono").
func PaletteByName(name string) *Palette {
	return namedPalettes[name]
}
