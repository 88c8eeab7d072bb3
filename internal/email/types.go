package email

// Email is a single outgoing message.
type Email struct {
	From     string
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}

// SMTPConfig holds SMTP provider settings.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
	UseTLS   bool
}

// IsConfigured reports whether the SMTP settings are complete enough to
// attempt delivery.
func (c *SMTPConfig) IsConfigured() bool {
	return c.Host != "" && c.From != ""
}
