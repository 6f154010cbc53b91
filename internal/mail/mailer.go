package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"net/smtp"
	"strings"

	"github.com/arroyodev/illumibot-waitlist/internal/log"
	"github.com/arroyodev/illumibot-waitlist/pkg/circuitbreaker"
	apperrors "github.com/arroyodev/illumibot-waitlist/pkg/errors"
)

// Mailer sends the fixed contact-card message to a recipient. There is
// exactly one message; no templating inputs beyond the recipient address.
type Mailer interface {
	SendContactCard(ctx context.Context, toEmail string) error
}

type Config struct {
	Host     string
	Port     string
	User     string
	Password string
}

// Validate rejects configs with missing credentials. Credentials have no
// functional default; deployments must set them explicitly.
func (c *Config) Validate() error {
	missing := []string{}

	if strings.TrimSpace(c.User) == "" {
		missing = append(missing, "SMTP_USER")
	}
	if strings.TrimSpace(c.Password) == "" {
		missing = append(missing, "SMTP_PASSWORD")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required mail env vars: %s", strings.Join(missing, ", "))
	}

	return nil
}

type smtpMailer struct {
	cfg     *Config
	logger  *log.Logger
	breaker circuitbreaker.CircuitBreaker

	// Overridable in tests; delivers a composed message to one recipient.
	transport func(to string, msg []byte) error
}

// NewSMTPMailer returns a Mailer delivering over implicit-TLS SMTP.
// Sends pass through a circuit breaker so a dead relay fails fast after
// repeated errors; failures are still surfaced synchronously and never
// retried or queued.
func NewSMTPMailer(cfg *Config, logger *log.Logger) (Mailer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	m := &smtpMailer{
		cfg:     cfg,
		logger:  logger,
		breaker: circuitbreaker.NewCircuitBreaker(nil),
	}
	m.transport = m.deliver

	return m, nil
}

func (m *smtpMailer) SendContactCard(ctx context.Context, toEmail string) error {
	if err := ctx.Err(); err != nil {
		return apperrors.NewMailError("send canceled", err)
	}

	msg := buildContactCard(m.cfg.User, toEmail)

	err := m.breaker.Call(func() error {
		return m.transport(toEmail, msg)
	})
	if err != nil {
		if errors.Is(err, circuitbreaker.ErrCircuitOpen) {
			m.logger.Error("Mail relay circuit open, failing fast", "to", toEmail)
		}
		return apperrors.NewMailError("Failed to send email. Please try again.", err)
	}

	return nil
}

// deliver speaks implicit TLS on the relay port (465-style), authenticates
// with PLAIN, and writes the message for a single recipient.
func (m *smtpMailer) deliver(to string, msg []byte) error {
	serverAddr := m.cfg.Host + ":" + m.cfg.Port

	conn, err := tls.Dial("tcp", serverAddr, &tls.Config{ServerName: m.cfg.Host})
	if err != nil {
		return fmt.Errorf("relay connection failed: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, m.cfg.Host)
	if err != nil {
		return fmt.Errorf("relay handshake failed: %w", err)
	}
	defer client.Quit()

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Password, m.cfg.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("relay authentication failed: %w", err)
	}

	if err := client.Mail(m.cfg.User); err != nil {
		return fmt.Errorf("relay rejected sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("relay rejected recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return err
	}
	if _, err := w.Write(msg); err != nil {
		return err
	}

	return w.Close()
}
