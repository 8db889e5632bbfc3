package model

// Per-partner dispatch outcomes recorded during a nudge sweep.
const (
	OutcomeSent     = "sent"
	OutcomeRecorded = "recorded" // transport not configured; logged instead of delivered
	OutcomeSkipped  = "skipped"
	OutcomeFailed   = "failed"
)

type NudgeOutcome struct {
	GoalID          string `json:"goalId"`
	GoalDescription string `json:"goal"`
	Contact         string `json:"contact,omitempty"`
	Status          string `json:"status"`
	Reason          string `json:"reason"`
}

// SweepReport aggregates one full pass over all goals. Outcome order is not
// meaningful; only the multiset of results is.
type SweepReport struct {
	GoalsScanned int            `json:"goalsScanned"`
	UsersChecked int            `json:"usersChecked"`
	NudgesSent   int            `json:"nudgesSent"`
	Outcomes     []NudgeOutcome `json:"outcomes"`
}

// Record appends an outcome and keeps the sent counter in sync. Recorded
// outcomes count as sent: the sweep did everything deliverable in that
// configuration.
func (r *SweepReport) Record(o NudgeOutcome) {
	r.Outcomes = append(r.Outcomes, o)
	if o.Status == OutcomeSent || o.Status == OutcomeRecorded {
		r.NudgesSent++
	}
}
