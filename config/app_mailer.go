package config

import (
	"github.com/arroyodev/illumibot-waitlist/internal/log"
	"github.com/arroyodev/illumibot-waitlist/internal/mail"
	"github.com/arroyodev/illumibot-waitlist/pkg/utils"
)

// NewMailer builds the SMTP mailer. SMTP_USER and SMTP_PASSWORD are
// required and have no functional default; startup fails fast when they
// are absent rather than shipping with embedded credentials.
func NewMailer(logger *log.Logger) (mail.Mailer, error) {
	cfg := &mail.Config{
		Host:     utils.GetEnvTrimmedOrDefault("SMTP_HOST", "smtp.gmail.com"),
		Port:     utils.GetEnvTrimmedOrDefault("SMTP_PORT", "465"),
		User:     utils.GetEnvTrimmed("SMTP_USER"),
		Password: utils.GetEnvTrimmed("SMTP_PASSWORD"),
	}

	mailer, err := mail.NewSMTPMailer(cfg, logger)
	if err != nil {
		logger.Error("Mail relay configuration invalid", "error", err)
		return nil, err
	}

	logger.Info("Mail relay configured", "host", cfg.Host, "port", cfg.Port, "user", cfg.User)
	return mailer, nil
}
