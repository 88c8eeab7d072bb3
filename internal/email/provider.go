package email

// Provider sends email messages.
type Provider interface {
	// Send delivers a single message.
	Send(email *Email) error

	// Validate checks the provider configuration.
	Validate() error
}
