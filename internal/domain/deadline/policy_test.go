package deadline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestPolicy_IsExpired(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := NewPolicy(fixedClock(now))

	assert.True(t, p.IsExpired(now.Add(-time.Nanosecond)))
	assert.False(t, p.IsExpired(now), "deadline equal to now is not expired")
	assert.False(t, p.IsExpired(now.Add(30*24*time.Hour)))
}

func TestPolicy_IsOpen_ExcludesDeadlineEqualToNow(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	p := NewPolicy(fixedClock(now))

	assert.True(t, p.IsOpen(now.Add(time.Second)))
	assert.False(t, p.IsOpen(now))
	assert.False(t, p.IsOpen(now.Add(-time.Second)))
}

func TestPolicy_IsExpired_Monotonic(t *testing.T) {
	deadlineAt := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	start := deadlineAt.Add(-3 * time.Hour)

	seenExpired := false
	for step := 0; step < 48; step++ {
		p := NewPolicy(fixedClock(start.Add(time.Duration(step) * 10 * time.Minute)))
		expired := p.IsExpired(deadlineAt)
		if seenExpired {
			assert.True(t, expired, "expired must stay true after first becoming true (step %d)", step)
		}
		seenExpired = seenExpired || expired
	}
	assert.True(t, seenExpired)
}

func TestNewPolicy_NilClockUsesWallTime(t *testing.T) {
	p := NewPolicy(nil)
	assert.True(t, p.IsExpired(time.Now().Add(-time.Minute)))
	assert.False(t, p.IsExpired(time.Now().Add(time.Hour)))
}
