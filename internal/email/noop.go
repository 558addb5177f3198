package email

import "log/slog"

// NoopProvider logs instead of sending. Used when SMTP is not configured,
// so development setups work without a mail account.
type NoopProvider struct{}

func (NoopProvider) Send(email *Email) error {
	slog.Info("mail delivery skipped (no SMTP configured)", "to", email.To, "subject", email.Subject)
	return nil
}

func (NoopProvider) SendVerification(to string, token string) error {
	slog.Info("verification mail skipped (no SMTP configured)", "to", to)
	return nil
}

func (NoopProvider) Validate() error { return nil }

func (NoopProvider) Close() error { return nil }
