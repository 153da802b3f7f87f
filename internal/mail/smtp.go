package mail

import (
	"context"
	"fmt"
	"net/smtp"

	"resumescope/internal/config"
	"resumescope/internal/errors"
)

// SMTPSender is a plain SMTP fallback for environments without a Graph
// application registration.
type SMTPSender struct {
	cfg    config.SMTPConfig
	logger *errors.Logger

	// sendMail is swapped out in tests.
	sendMail func(addr string, a smtp.Auth, from string, to []string, msg []byte) error
}

func NewSMTPSender(cfg config.SMTPConfig, logger *errors.Logger) *SMTPSender {
	return &SMTPSender{
		cfg:      cfg,
		logger:   logger,
		sendMail: smtp.SendMail,
	}
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return errors.NewNetworkError(errors.ErrCodeMailSendFailed, "Mail send cancelled", err)
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		s.cfg.From, to, subject, body)

	addr := fmt.Sprintf("%s:%d", s.cfg.Host, s.cfg.Port)
	var auth smtp.Auth
	if s.cfg.Username != "" {
		auth = smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	}

	if err := s.sendMail(addr, auth, s.cfg.From, []string{to}, []byte(msg)); err != nil {
		return errors.NewNetworkError(errors.ErrCodeMailSendFailed, "SMTP delivery failed", err).
			WithContext("host", s.cfg.Host)
	}

	s.logger.Debug("Mail sent through SMTP", "to", to, "subject", subject)
	return nil
}
