// Package streak holds the pure check-in state machine. It does no I/O;
// callers persist the result.
package streak

import (
	"time"
)

type Status int

const (
	// AlreadyDone means the goal was already checked in on now's calendar
	// day. Not an error: the caller re-reports the existing streak and
	// writes nothing.
	AlreadyDone Status = iota
	// Incremented means the prior check-in fell on the calendar day before
	// now, extending the streak.
	Incremented
	// Reset covers everything else: first check-in ever, a gap of two or
	// more days, or a prior check-in in the future relative to now.
	Reset
)

func (s Status) String() string {
	switch s {
	case AlreadyDone:
		return "already-done"
	case Incremented:
		return "incremented"
	default:
		return "reset"
	}
}

type Result struct {
	Status      Status
	Streak      int
	CheckedInAt time.Time
}

// Compute transitions a goal's streak for a check-in at now.
//
// Everything hinges on calendar-date comparison, never elapsed-duration
// arithmetic: a check-in at 23:59 followed by one at 00:01 the next day must
// increment, which a 24-hour-window rule would get wrong.
func Compute(lastCheckIn *time.Time, priorStreak int, now time.Time) Result {
	if lastCheckIn == nil {
		return Result{Status: Reset, Streak: 1, CheckedInAt: now}
	}

	if sameDay(*lastCheckIn, now) {
		return Result{Status: AlreadyDone, Streak: priorStreak, CheckedInAt: *lastCheckIn}
	}

	if sameDay(*lastCheckIn, now.AddDate(0, 0, -1)) {
		return Result{Status: Incremented, Streak: priorStreak + 1, CheckedInAt: now}
	}

	return Result{Status: Reset, Streak: 1, CheckedInAt: now}
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
