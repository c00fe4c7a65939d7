package mail

import (
	"context"
	"errors"
)

var (
	ErrNotConfigured = errors.New("email provider not configured")
	ErrEmptyMessage  = errors.New("email message needs a recipient and a body")
	// ErrQuotaExceeded marks provider failures caused by exhausted credits or
	// sending quota. Only these trigger the SMTP fallback.
	ErrQuotaExceeded = errors.New("email provider quota exceeded")
)

// Message is a single rendered email. Text and HTML are both optional but at
// least one must be set.
type Message struct {
	To      string
	From    string
	Subject string
	Text    string
	HTML    string
}

func (m Message) validate() error {
	if m.To == "" || (m.Text == "" && m.HTML == "") {
		return ErrEmptyMessage
	}
	return nil
}

// Sender delivers one message or returns why it could not.
type Sender interface {
	Send(ctx context.Context, msg Message) error
}
