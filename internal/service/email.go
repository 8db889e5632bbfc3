package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// EmailService is the notification transport. The client is nil when the
// API key is absent or in development; that choice is made once here, at
// construction, and callers check Enabled instead of re-branching on
// configuration.
type EmailService struct {
	client    *resend.Client
	fromEmail string
	appName   string
	isDev     bool
}

func NewEmailService(apiKey, fromEmail, appName string, isDev bool) *EmailService {
	var client *resend.Client
	if apiKey != "" && !isDev {
		client = resend.NewClient(apiKey)
	}

	return &EmailService{
		client:    client,
		fromEmail: fromEmail,
		appName:   appName,
		isDev:     isDev,
	}
}

// Enabled reports whether email delivery is actually configured.
func (s *EmailService) Enabled() bool {
	return s.client != nil
}

func (s *EmailService) SendNudgeEmail(ctx context.Context, to, goalDescription, lastCheckInLabel string) error {
	subject, body := nudgeEmailTemplate(goalDescription, lastCheckInLabel, s.appName)

	if s.client == nil {
		return fmt.Errorf("email service not configured (missing RESEND_API_KEY)")
	}

	params := &resend.SendEmailRequest{
		From:    s.fromEmail,
		To:      []string{to},
		Subject: subject,
		Text:    body,
	}

	_, err := s.client.Emails.SendWithContext(ctx, params)
	if err == nil {
		slog.Info("email sent", "type", "nudge", "to", to)
	}
	return err
}
