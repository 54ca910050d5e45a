package render

import (
	"fmt"
	"io/fs"
	"math/bits"
	"time"

	"github.com/docker/go-units"
)

var binarySuffixes = []string{"B", "K", "M", "G", "T", "P", "E", "Z", "Y"}

// HumanSize formats n the way GNU tools do: 500B, 1.5K, 2.0M.
func HumanSize(n int64) string {
	if n < 1024 {
		return fmt.Sprintf("%dB", n)
	}
	return units.CustomSize("%.1f%s", float64(n), 1024.0, binarySuffixes)
}

// SizeBucket is min(3, floor(log2(n)/10)), 0 for empty files.
func SizeBucket(n int64) int {
	if n <= 0 {
		return 0
	}
	bucket := (bits.Len64(uint64(n)) - 1) / 10
	if bucket > 3 {
		return 3
	}
	return bucket
}

// delta is a calendar difference: whole months first, then the remainder.
type delta struct {
	years, months, days, hours, minutes, seconds int
	nanos                                        int
}

func addMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	total := int(month) - 1 + months
	year += total / 12
	total %= 12
	if total < 0 {
		total += 12
		year--
	}
	target := time.Month(total + 1)
	if last := daysIn(year, target); day > last {
		day = last
	}
	hour, minute, second := t.Clock()
	return time.Date(year, target, day, hour, minute, second, t.Nanosecond(), t.Location())
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// relativeDelta expects earlier <= later.
func relativeDelta(later, earlier time.Time) delta {
	months := (later.Year()-earlier.Year())*12 + int(later.Month()) - int(earlier.Month())
	anchor := addMonths(earlier, months)
	for months > 0 && anchor.After(later) {
		months--
		anchor = addMonths(earlier, months)
	}
	rest := later.Sub(anchor)
	result := delta{years: months / 12, months: months % 12}
	result.days = int(rest / (24 * time.Hour))
	rest -= time.Duration(result.days) * 24 * time.Hour
	result.hours = int(rest / time.Hour)
	rest -= time.Duration(result.hours) * time.Hour
	result.minutes = int(rest / time.Minute)
	rest -= time.Duration(result.minutes) * time.Minute
	result.seconds = int(rest / time.Second)
	rest -= time.Duration(result.seconds) * time.Second
	result.nanos = int(rest)
	return result
}

// Age renders how old then is at now in at most six characters, using the
// coarsest non-zero unit. Timestamps in the future get a "-" prefix.
func Age(then, now time.Time) (string, Color) {
	then = then.In(now.Location())
	if !then.After(now) {
		major, minor, color := ageParts(relativeDelta(now, then), "%5.2fs")
		return major + minor, color
	}
	// The sign takes a column; the minor unit goes when it would not fit.
	major, minor, color := ageParts(relativeDelta(then, now), "%.1fs")
	if text := "-" + major + minor; len(text) <= ageWidth {
		return text, color
	}
	return "-" + major, color
}

const ageWidth = 6

func ageParts(diff delta, secondsFormat string) (string, string, Color) {
	switch {
	case diff.years > 0:
		return fmt.Sprintf("%dY", diff.years), fmt.Sprintf("%dM", diff.months), Blue
	case diff.months > 0:
		return fmt.Sprintf("%dM", diff.months), fmt.Sprintf("%dd", diff.days), Cyan
	case diff.days > 0:
		return fmt.Sprintf("%dd", diff.days), fmt.Sprintf("%dh", diff.hours), Green
	case diff.hours > 0:
		return fmt.Sprintf("%dh", diff.hours), fmt.Sprintf("%dm", diff.minutes), Yellow
	case diff.minutes > 0:
		return fmt.Sprintf("%dm", diff.minutes), fmt.Sprintf("%ds", diff.seconds), Red
	}
	seconds := float64(diff.seconds) + float64(diff.nanos)/1e9
	return fmt.Sprintf(secondsFormat, seconds), "", Magenta
}

// FileMode renders mode like ls -l, including setuid, setgid and sticky.
func FileMode(mode fs.FileMode) string {
	buf := []byte("----------")
	switch {
	case mode.IsDir():
		buf[0] = 'd'
	case mode&fs.ModeSymlink != 0:
		buf[0] = 'l'
	case mode&fs.ModeNamedPipe != 0:
		buf[0] = 'p'
	case mode&fs.ModeSocket != 0:
		buf[0] = 's'
	case mode&fs.ModeCharDevice != 0:
		buf[0] = 'c'
	case mode&fs.ModeDevice != 0:
		buf[0] = 'b'
	}
	const rwx = "rwxrwxrwx"
	perm := mode.Perm()
	for i := 0; i < 9; i++ {
		if perm&(1<<uint(8-i)) != 0 {
			buf[i+1] = rwx[i]
		}
	}
	special := func(index int, set bool, lower, upper byte) {
		if !set {
			return
		}
		if buf[index] == 'x' {
			buf[index] = lower
		} else {
			buf[index] = upper
		}
	}
	special(3, mode&fs.ModeSetuid != 0, 's', 'S')
	special(6, mode&fs.ModeSetgid != 0, 's', 'S')
	special(9, mode&fs.ModeSticky != 0, 't', 'T')
	return string(buf)
}
