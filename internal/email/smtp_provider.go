package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	config   *SMTPConfig
	dialer   *gomail.Dialer
	renderer TemplateRenderer
}

func NewSMTPProvider(config *SMTPConfig, renderer TemplateRenderer) *SMTPProvider {
	return &SMTPProvider{
		config:   config,
		dialer:   gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
		renderer: renderer,
	}
}

// Send delivers a message over SMTP.
func (p *SMTPProvider) Send(email *Email) error {
	if err := p.Validate(); err != nil {
		return err
	}
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = m.FormatAddress(p.config.FromEmail, p.config.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.HTMLBody != "" {
		m.SetBody("text/html", email.HTMLBody)
		if email.Body != "" {
			m.AddAlternative("text/plain", email.Body)
		}
	} else {
		m.SetBody("text/plain", email.Body)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// SendVerification delivers the account verification message.
func (p *SMTPProvider) SendVerification(to string, token string) error {
	link := fmt.Sprintf("%s/api/users/verify/%s", p.config.VerifyBaseURL, token)

	htmlBody, err := p.renderer.Render("verification", TemplateData{
		"VerificationLink": link,
	})
	if err != nil {
		return fmt.Errorf("render verification mail: %w", err)
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  "ContactsApp says Hello!",
		Body:     fmt.Sprintf("Hello from ContactsApp\n\nClick the link below to validate your account:\n\n%s", link),
		HTMLBody: htmlBody,
	})
}

// Validate checks the SMTP configuration.
func (p *SMTPProvider) Validate() error {
	return p.config.Validate()
}

// Close is a no-op; gomail dials per message.
func (p *SMTPProvider) Close() error {
	return nil
}
