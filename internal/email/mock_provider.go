package email

import (
	"strings"

	"sonna_backend/internal/logger"
)

// MockProvider logs messages instead of delivering them. Used when SMTP
// is not configured, so a development environment never fails on email.
type MockProvider struct{}

func NewMockProvider() *MockProvider {
	return &MockProvider{}
}

func (p *MockProvider) Send(email *Email) error {
	logger.Info("[mock email]",
		"to", strings.Join(email.To, ","),
		"subject", email.Subject,
		"body", email.Body,
	)
	return nil
}

func (p *MockProvider) Validate() error {
	return nil
}
