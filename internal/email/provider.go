package email

// Provider sends outbound mail.
type Provider interface {
	// Send delivers a plain message.
	Send(email *Email) error

	// SendVerification delivers the account verification message carrying
	// the one-time token.
	SendVerification(to string, token string) error

	// Validate checks the provider configuration.
	Validate() error

	// Close releases provider resources.
	Close() error
}

// TemplateRenderer renders named message templates.
type TemplateRenderer interface {
	Render(templateName string, data TemplateData) (string, error)
	AddTemplate(name string, template string) error
}
