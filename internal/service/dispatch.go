package service

import (
	"context"
	"log/slog"

	"goalnudge/internal/model"
)

// dispatch makes exactly one notification attempt for one partner.
//
// Channel selection is priority, not fan-out: email wins whenever present.
// A phone-only partner yields a skipped outcome (the SMS channel is reserved
// but not implemented), recorded distinctly from a real failure. Transport
// errors are swallowed into the outcome so the sweep keeps going.
func (s *NudgeService) dispatch(ctx context.Context, goal *model.Goal, partner *model.AccountabilityPartner, lastCheckInLabel string) model.NudgeOutcome {
	switch {
	case partner.HasEmail():
		to := *partner.Email

		if !s.mailer.Enabled() {
			slog.Info("nudge recorded, email delivery not configured",
				"goal_id", goal.ID, "to", to)
			return outcome(goal, to, model.OutcomeRecorded, "last check-in: "+lastCheckInLabel)
		}

		err := s.mailer.SendNudgeEmail(ctx, to, goal.Description, lastCheckInLabel)
		if err != nil {
			slog.Error("nudge email failed",
				"error", err, "goal_id", goal.ID, "to", to)
			return outcome(goal, to, model.OutcomeFailed, err.Error())
		}

		return outcome(goal, to, model.OutcomeSent, "last check-in: "+lastCheckInLabel)

	case partner.HasPhone():
		return outcome(goal, *partner.Phone, model.OutcomeSkipped, "sms-not-implemented")

	default:
		// Should not happen: partners without contact are never persisted.
		return outcome(goal, "", model.OutcomeSkipped, "no-contact-method")
	}
}

func outcome(goal *model.Goal, contact, status, reason string) model.NudgeOutcome {
	return model.NudgeOutcome{
		GoalID:          goal.ID,
		GoalDescription: goal.Description,
		Contact:         contact,
		Status:          status,
		Reason:          reason,
	}
}
