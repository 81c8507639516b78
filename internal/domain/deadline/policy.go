// Package deadline decides whether a job is still open.
package deadline

import "time"

type Policy struct {
	now func() time.Time
}

func NewPolicy(now func() time.Time) Policy {
	if now == nil {
		now = time.Now
	}
	return Policy{now: now}
}

// IsExpired reports whether the current time is strictly after deadline.
func (p Policy) IsExpired(deadline time.Time) bool {
	return p.Now().After(deadline)
}

// IsOpen reports whether deadline is strictly in the future. A job whose deadline
// equals the current instant is neither open nor expired.
func (p Policy) IsOpen(deadline time.Time) bool {
	return deadline.After(p.Now())
}

func (p Policy) Now() time.Time {
	if p.now == nil {
		return time.Now()
	}
	return p.now()
}
