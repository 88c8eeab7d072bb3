package services

import (
	"context"

	"sonna_backend/internal/email"
	"sonna_backend/internal/logger"
)

// NotificationService delivers best-effort administrator notifications.
// Sending never blocks the caller and failures never propagate: a lost
// notification must not fail the request that triggered it.
type NotificationService interface {
	NotifyAdmin(ctx context.Context, subject, body string)
}

type NotificationServiceImpl struct {
	provider   email.Provider
	from       string
	adminEmail string
}

func NewNotificationService(provider email.Provider, from, adminEmail string) NotificationService {
	return &NotificationServiceImpl{
		provider:   provider,
		from:       from,
		adminEmail: adminEmail,
	}
}

func (s *NotificationServiceImpl) NotifyAdmin(ctx context.Context, subject, body string) {
	if s.provider == nil || s.adminEmail == "" {
		logger.CtxWarn(ctx, "Admin notification skipped: no recipient configured", "subject", subject)
		return
	}

	msg := &email.Email{
		From:    s.from,
		To:      []string{s.adminEmail},
		Subject: subject,
		Body:    body,
	}

	log := logger.FromContext(ctx)
	go func() {
		if err := s.provider.Send(msg); err != nil {
			log.Warn("Failed to send admin notification", "subject", subject, "error", err.Error())
		}
	}()
}
