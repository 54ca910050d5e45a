package render

import (
	"fmt"
	"io"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Color is a complete SGR escape sequence; the empty Color writes nothing.
type Color string

func sgr(color termenv.ANSIColor) Color {
	return Color(termenv.CSI + color.Sequence(false) + "m")
}

var (
	Reset   = Color(termenv.CSI + termenv.ResetSeq + "m")
	Red     = sgr(termenv.ANSIRed)
	Green   = sgr(termenv.ANSIGreen)
	Yellow  = sgr(termenv.ANSIYellow)
	Blue    = sgr(termenv.ANSIBlue)
	Magenta = sgr(termenv.ANSIMagenta)
	Cyan    = sgr(termenv.ANSICyan)
	White   = sgr(termenv.ANSIWhite)
)

type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

func ParseColorMode(value string) (ColorMode, error) {
	switch ColorMode(value) {
	case ColorAuto, ColorAlways, ColorNever:
		return ColorMode(value), nil
	case "yes", "force":
		return ColorAlways, nil
	case "no", "none":
		return ColorNever, nil
	case "tty", "if-tty":
		return ColorAuto, nil
	}
	return "", fmt.Errorf("invalid color mode %q (want auto, always or never)", value)
}

type fdWriter interface {
	Fd() uintptr
}

// ColorEnabled reports whether escape sequences should be written to out.
// In auto mode that requires a terminal and no NO_COLOR / CLICOLOR=0.
func ColorEnabled(out io.Writer, mode ColorMode) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	file, ok := out.(fdWriter)
	if !ok {
		return false
	}
	fd := file.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return false
	}
	return !termenv.EnvNoColor()
}
