// Package mail sends transactional email through Microsoft Graph or SMTP.
package mail

import (
	"context"
	"fmt"

	"resumescope/internal/config"
	"resumescope/internal/errors"
)

// Sender delivers a plain-text message to one recipient.
type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

// NewSender creates the configured mail sender. Provider "none" returns a
// sender that only logs, which keeps OTP flows usable in development.
func NewSender(cfg config.MailConfig, logger *errors.Logger) (Sender, error) {
	switch cfg.Provider {
	case "graph":
		return NewGraphSender(cfg.Graph, logger), nil
	case "smtp":
		return NewSMTPSender(cfg.SMTP, logger), nil
	case "none", "":
		return &logSender{logger: logger}, nil
	default:
		return nil, errors.NewConfigError(errors.ErrCodeInvalidConfig,
			fmt.Sprintf("Unsupported mail provider: %s", cfg.Provider), nil)
	}
}

// logSender records the message instead of delivering it.
type logSender struct {
	logger *errors.Logger
}

func (l *logSender) Send(_ context.Context, to, subject, body string) error {
	l.logger.Info("Mail delivery disabled, logging message instead",
		"to", to,
		"subject", subject,
		"body_length", len(body))
	return nil
}
