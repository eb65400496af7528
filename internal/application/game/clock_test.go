package game

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSystemClock(t *testing.T) {
	now := time.Unix(1000, 0)
	c := newClock(func() time.Time { return now })

	assert.Equal(t, time.Duration(0), c.Elapsed())

	now = now.Add(16 * time.Millisecond)
	assert.Equal(t, 16*time.Millisecond, c.Elapsed())

	c.Restart()
	assert.Equal(t, time.Duration(0), c.Elapsed())

	now = now.Add(5 * time.Millisecond)
	assert.Equal(t, 5*time.Millisecond, c.Elapsed())
}

func TestNewSystemClock(t *testing.T) {
	c := NewSystemClock()
	assert.GreaterOrEqual(t, c.Elapsed(), time.Duration(0))
}
