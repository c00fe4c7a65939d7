package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

type dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender is the fallback transport. gomail dials with a fixed 10s timeout.
type SMTPSender struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string

	dialer dialer
}

func NewSMTPSender(host string, port int, user, password, fromName string) *SMTPSender {
	return &SMTPSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		FromName: fromName,
		dialer:   gomail.NewDialer(host, port, user, password),
	}
}

func (s *SMTPSender) Send(ctx context.Context, msg Message) error {
	if s.Host == "" {
		return ErrNotConfigured
	}
	if err := msg.validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", msg.From, s.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)

	switch {
	case msg.Text != "" && msg.HTML != "":
		m.SetBody("text/plain", msg.Text)
		m.AddAlternative("text/html", msg.HTML)
	case msg.HTML != "":
		m.SetBody("text/html", msg.HTML)
	default:
		m.SetBody("text/plain", msg.Text)
	}

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("smtp send: %w", err)
	}
	return nil
}
