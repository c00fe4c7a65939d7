package mail

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent []*gomail.Message
	err  error
}

func (d *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	if d.err != nil {
		return d.err
	}
	d.sent = append(d.sent, m...)
	return nil
}

func TestSMTPSenderBuildsMultipartMessage(t *testing.T) {
	d := &fakeDialer{}
	s := NewSMTPSender("smtp.example.com", 587, "apikey", "secret", "SAFe Team")
	s.dialer = d

	err := s.Send(context.Background(), Message{
		To:      "a@x.com",
		From:    "noreply@example.com",
		Subject: "Day 2",
		Text:    "plain body",
		HTML:    "<p>html body</p>",
	})
	require.NoError(t, err)
	require.Len(t, d.sent, 1)

	m := d.sent[0]
	assert.Equal(t, []string{"a@x.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"Day 2"}, m.GetHeader("Subject"))

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "text/plain")
	assert.Contains(t, buf.String(), "text/html")
}

func TestSMTPSenderErrors(t *testing.T) {
	s := NewSMTPSender("", 587, "", "", "")
	assert.ErrorIs(t, s.Send(context.Background(), testMessage()), ErrNotConfigured)

	s = NewSMTPSender("smtp.example.com", 587, "u", "p", "")
	s.dialer = &fakeDialer{err: errors.New("535 auth failed")}
	err := s.Send(context.Background(), testMessage())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "535 auth failed")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.ErrorIs(t, s.Send(ctx, testMessage()), context.Canceled)
}
