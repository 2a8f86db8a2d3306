package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

// Config captures the SMTP settings for outbound email.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Mailer sends templated email over SMTP via gomail. Dial and send block,
// so Send runs them in a goroutine and honors the caller's context
// deadline: a hung provider turns into a context error, not a hung caller.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer builds a Mailer from cfg.
func NewMailer(cfg Config) *Mailer {
	from := cfg.From
	if from == "" {
		from = cfg.Username
	}
	return &Mailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   from,
	}
}

// Send delivers a plain-text message to a single recipient.
func (m *Mailer) Send(ctx context.Context, to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	done := make(chan error, 1)
	go func() {
		done <- m.dialer.DialAndSend(msg)
	}()

	select {
	case <-ctx.Done():
		return fmt.Errorf("mail send: %w", ctx.Err())
	case err := <-done:
		if err != nil {
			return fmt.Errorf("mail send: %w", err)
		}
		return nil
	}
}
