// Package clock provides an injectable time source so streak math and the
// nudge sweep stay deterministic under test.
package clock

import (
	"time"
)

type Clock interface {
	Now() time.Time
}

// Real reads the wall clock.
type Real struct{}

func (Real) Now() time.Time {
	return time.Now()
}
