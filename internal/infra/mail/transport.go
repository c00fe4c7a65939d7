package mail

import (
	"context"
	"log"

	"github.com/xavierca1/safe-leads/internal/infra/metrics"
)

// Transport is the single entry point for outgoing email. Each Send is one
// synchronous best-effort attempt: nothing is queued, and a false result means
// the caller may try again later.
type Transport struct {
	primary       Sender
	fallback      Sender
	defaultFrom   string
	operatorEmail string
}

// NewTransport wires the HTTP API as primary and SMTP as fallback. A nil
// primary disables sending entirely; a nil fallback disables the retry.
func NewTransport(primary, fallback Sender, defaultFrom, operatorEmail string) *Transport {
	return &Transport{
		primary:       primary,
		fallback:      fallback,
		defaultFrom:   defaultFrom,
		operatorEmail: operatorEmail,
	}
}

func (t *Transport) Enabled() bool {
	return t != nil && t.primary != nil
}

func (t *Transport) Send(ctx context.Context, msg Message) bool {
	if !t.Enabled() {
		log.Printf("[MAIL] provider not configured, skipping %q to %s", msg.Subject, msg.To)
		return false
	}
	if msg.From == "" {
		msg.From = t.defaultFrom
	}

	err := t.primary.Send(ctx, msg)
	if err == nil {
		metrics.RecordEmail("api", true)
		return true
	}
	metrics.RecordEmail("api", false)

	if !IsQuotaExceeded(err) || t.fallback == nil {
		log.Printf("❌ [MAIL] delivery to %s failed: %v", msg.To, err)
		return false
	}

	log.Printf("⚠️ [MAIL] provider quota exhausted, retrying %s over SMTP", msg.To)
	metrics.RecordEmailFallback()
	if err := t.fallback.Send(ctx, msg); err != nil {
		metrics.RecordEmail("smtp", false)
		log.Printf("❌ [MAIL] SMTP fallback to %s failed: %v", msg.To, err)
		return false
	}
	metrics.RecordEmail("smtp", true)
	return true
}

// NotifyOperator mails the fixed operator inbox.
func (t *Transport) NotifyOperator(ctx context.Context, subject, html string) bool {
	if t == nil || t.operatorEmail == "" {
		log.Printf("[MAIL] operator address not configured, dropping %q", subject)
		return false
	}
	return t.Send(ctx, Message{To: t.operatorEmail, Subject: subject, HTML: html})
}
