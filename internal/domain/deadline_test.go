package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (clock *fakeClock) Now() time.Time {
	return clock.now
}

func TestDeadlineExpires(t *testing.T) {
	clock := &fakeClock{now: time.Unix(1000, 0)}
	deadline := newDeadlineWithClock(500*time.Millisecond, clock.Now)

	assert.False(t, deadline.Expired())
	clock.now = clock.now.Add(499 * time.Millisecond)
	assert.False(t, deadline.Expired())
	clock.now = clock.now.Add(time.Millisecond)
	assert.True(t, deadline.Expired())
	clock.now = clock.now.Add(time.Hour)
	assert.True(t, deadline.Expired())
}

func TestZeroDeadlineIsExpired(t *testing.T) {
	assert.True(t, NewDeadline(0).Expired())
	assert.True(t, NewDeadline(-time.Second).Expired())
}

func TestSortModeParsing(t *testing.T) {
	assert.Equal(t, SortByMod, ParseSortMode("mtime", SortByName))
	assert.Equal(t, SortByMod, ParseSortMode("time", SortByName))
	assert.Equal(t, SortBySize, ParseSortMode("size", SortByName))
	assert.Equal(t, SortByName, ParseSortMode("bogus", SortByName))
	assert.Equal(t, SortByMod, SortByName.Next())
	assert.Equal(t, SortBySize, SortByMod.Next())
	assert.Equal(t, SortByName, SortBySize.Next())
}
