// Package lscolors reads the LS_COLORS color database used by ls.
package lscolors

import (
	"io/fs"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/mordilloSan/go-logger/logger"
)

const (
	Directory   = "di"
	Symlink     = "ln"
	Pipe        = "pi"
	Socket      = "so"
	BlockDevice = "bd"
	CharDevice  = "cd"
	Executable  = "ex"
	Orphan      = "or"
	Missing     = "mi"
	File        = "fi"
	Normal      = "no"
)

// defaultIndicators follows coreutils ls.c.
var defaultIndicators = map[string]string{
	"lc": "\033[",
	"rc": "m",
	"ec": "0",
	"rs": "0",
	"no": "0",
	"fi": "0",
	"di": "01;34",
	"ln": "01;36",
	"pi": "33",
	"so": "01;35",
	"bd": "01;33",
	"cd": "01;33",
	"mi": "0",
	"or": "0",
	"ex": "01;32",
	"do": "01;35",
	"su": "37;41",
	"sg": "30;43",
	"st": "37;44",
	"ow": "34;42",
	"tw": "30;42",
	"ca": "30;41",
	"mh": "0",
	"cl": "\033[K",
}

type Glob struct {
	Pattern string
	Value   string
}

// Scheme maps indicator codes and file name globs to color sequences.
type Scheme struct {
	indicators map[string]string
	globs      []Glob
}

func Default() *Scheme {
	return Parse("")
}

// Parse reads the LS_COLORS syntax, "key=value" pairs joined by ':'. Known
// indicator codes override the defaults; every other key is a glob, kept in
// the order it appears.
func Parse(text string) *Scheme {
	scheme := &Scheme{indicators: make(map[string]string, len(defaultIndicators))}
	for key, value := range defaultIndicators {
		scheme.indicators[key] = value
	}
	for _, field := range strings.Split(text, ":") {
		if field == "" {
			continue
		}
		key, value, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}
		if _, known := defaultIndicators[key]; known {
			scheme.indicators[key] = value
			continue
		}
		scheme.globs = append(scheme.globs, Glob{Pattern: key, Value: value})
	}
	return scheme
}

// runDircolors is replaced in tests.
var runDircolors = func() ([]byte, error) {
	return exec.Command("dircolors", "-b").Output()
}

// Load uses $LS_COLORS, then the output of dircolors, then the built in
// defaults.
func Load() *Scheme {
	return load(os.LookupEnv("LS_COLORS"))
}

func load(text string, set bool) *Scheme {
	if set {
		return Parse(text)
	}
	out, err := runDircolors()
	if err != nil {
		logger.Debugf("dircolors unavailable, using default colors: %v", err)
		return Default()
	}
	return Parse(dircolorsText(string(out)))
}

// dircolorsText extracts the quoted value of the first line of `dircolors -b`.
func dircolorsText(out string) string {
	line, _, _ := strings.Cut(out, "\n")
	start := strings.Index(line, "'")
	end := strings.LastIndex(line, "'")
	if start < 0 || end <= start {
		return ""
	}
	return line[start+1 : end]
}

func (scheme *Scheme) Globs() []Glob {
	return append([]Glob(nil), scheme.globs...)
}

// Resolve returns the full escape sequence for an indicator code or glob,
// or "" when the key is unknown.
func (scheme *Scheme) Resolve(key string) string {
	value, ok := scheme.indicators[key]
	if !ok {
		for _, glob := range scheme.globs {
			if glob.Pattern == key {
				value, ok = glob.Value, true
				break
			}
		}
	}
	if !ok {
		return ""
	}
	return scheme.indicators["lc"] + value + scheme.indicators["rc"]
}

// MatchGlob returns the first glob matching name.
func (scheme *Scheme) MatchGlob(name string) (string, bool) {
	for _, glob := range scheme.globs {
		if matched, err := filepath.Match(glob.Pattern, name); err == nil && matched {
			return glob.Pattern, true
		}
	}
	return "", false
}

// NameColor picks the color of a file name: a matching glob wins over the
// file type.
func (scheme *Scheme) NameColor(name string, mode fs.FileMode) string {
	if pattern, ok := scheme.MatchGlob(name); ok {
		return scheme.Resolve(pattern)
	}
	return scheme.Resolve(TypeIndicator(mode))
}

func TypeIndicator(mode fs.FileMode) string {
	switch {
	case mode.IsDir():
		return Directory
	case mode&fs.ModeSymlink != 0:
		return Symlink
	case mode&fs.ModeCharDevice != 0:
		return CharDevice
	case mode&fs.ModeDevice != 0:
		return BlockDevice
	case mode&fs.ModeNamedPipe != 0:
		return Pipe
	case mode&fs.ModeSocket != 0:
		return Socket
	case mode.IsRegular() && mode.Perm()&0o111 != 0:
		return Executable
	case mode.IsRegular():
		return File
	default:
		return Normal
	}
}
