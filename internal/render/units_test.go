package render

import (
	"io/fs"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestHumanSize(t *testing.T) {
	tests := map[int64]string{
		0:               "0B",
		500:             "500B",
		1023:            "1023B",
		1024:            "1.0K",
		1536:            "1.5K",
		2 * 1024 * 1024: "2.0M",
		5 << 30:         "5.0G",
	}
	for size, want := range tests {
		assert.Equal(t, want, HumanSize(size), "size %d", size)
	}
}

func TestSizeBucket(t *testing.T) {
	assert.Equal(t, 0, SizeBucket(0))
	assert.Equal(t, 0, SizeBucket(1023))
	assert.Equal(t, 1, SizeBucket(1024))
	assert.Equal(t, 2, SizeBucket(1<<20))
	assert.Equal(t, 3, SizeBucket(1<<30))
	assert.Equal(t, 3, SizeBucket(1<<50))
}

func TestAge(t *testing.T) {
	now := time.Date(2024, time.March, 31, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		then  time.Time
		want  string
		color Color
	}{
		{"seconds", now.Add(-30 * time.Second), "30.00s", Magenta},
		{"sub second", now.Add(-250 * time.Millisecond), " 0.25s", Magenta},
		{"minutes", now.Add(-90 * time.Second), "1m30s", Red},
		{"hours", now.Add(-(2*time.Hour + 5*time.Minute)), "2h5m", Yellow},
		{"days", now.Add(-(3*24*time.Hour + 4*time.Hour)), "3d4h", Green},
		{"months", time.Date(2024, time.January, 31, 12, 0, 0, 0, time.UTC), "2M0d", Cyan},
		{"years", time.Date(2022, time.January, 15, 12, 0, 0, 0, time.UTC), "2Y2M", Blue},
		{"future", now.Add(90 * time.Second), "-1m30s", Red},
		{"future seconds", now.Add(30500 * time.Millisecond), "-30.5s", Magenta},
		{"future drops minor unit", now.Add(10*24*time.Hour + 12*time.Hour), "-10d", Green},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, color := Age(tc.then, now)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.color, color)
		})
	}
}

func TestMonthArithmeticClampsDay(t *testing.T) {
	jan31 := time.Date(2023, time.January, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2023, time.February, 28, 0, 0, 0, 0, time.UTC), addMonths(jan31, 1))
	assert.Equal(t, time.Date(2022, time.December, 31, 0, 0, 0, 0, time.UTC), addMonths(jan31, -1))

	got, _ := Age(jan31, time.Date(2023, time.March, 1, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, "1M1d", got)
}

func TestFileMode(t *testing.T) {
	tests := []struct {
		mode fs.FileMode
		want string
	}{
		{fs.ModeDir | 0o755, "drwxr-xr-x"},
		{0o644, "-rw-r--r--"},
		{fs.ModeSymlink | 0o777, "lrwxrwxrwx"},
		{fs.ModeSetuid | 0o755, "-rwsr-xr-x"},
		{fs.ModeSetuid | 0o644, "-rwSr--r--"},
		{fs.ModeSetgid | 0o750, "-rwxr-s---"},
		{fs.ModeDir | fs.ModeSticky | 0o777, "drwxrwxrwt"},
		{fs.ModeDir | fs.ModeSticky | 0o770, "drwxrwx--T"},
		{fs.ModeNamedPipe | 0o600, "prw-------"},
		{fs.ModeSocket | 0o755, "srwxr-xr-x"},
		{fs.ModeDevice | fs.ModeCharDevice | 0o666, "crw-rw-rw-"},
		{fs.ModeDevice | 0o660, "brw-rw----"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, FileMode(tc.mode))
	}
}
