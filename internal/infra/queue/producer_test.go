package queue

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type published struct {
	exchange string
	key      string
	msg      amqp.Publishing
}

type fakeChannel struct {
	calls []published
	err   error
}

func (f *fakeChannel) PublishWithContext(_ context.Context, exchange, key string, _, _ bool, msg amqp.Publishing) error {
	if f.err != nil {
		return f.err
	}
	f.calls = append(f.calls, published{exchange, key, msg})
	return nil
}

func TestPublishLeadCaptured(t *testing.T) {
	ch := &fakeChannel{}
	p := &RabbitMQProducer{ch: ch}

	event := LeadCapturedEvent{
		LeadID:     "lead-1",
		Name:       "Jo",
		Email:      "jo@x.com",
		LeadMagnet: "pi-planning-checklist",
		CreatedAt:  time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC),
	}
	require.NoError(t, p.PublishLeadCaptured(context.Background(), event))
	require.Len(t, ch.calls, 1)

	call := ch.calls[0]
	assert.Equal(t, ExchangeName, call.exchange)
	assert.Equal(t, RoutingKeyLeadCaptured, call.key)
	assert.Equal(t, "lead-1", call.msg.MessageId)
	assert.Equal(t, amqp.Persistent, call.msg.DeliveryMode)

	var body map[string]any
	require.NoError(t, json.Unmarshal(call.msg.Body, &body))
	assert.Equal(t, "jo@x.com", body["email"])
	assert.Equal(t, "pi-planning-checklist", body["lead_magnet"])
	assert.NotContains(t, body, "company")
}

func TestPublishInquiryReceivedError(t *testing.T) {
	p := &RabbitMQProducer{ch: &fakeChannel{err: errors.New("channel closed")}}

	err := p.PublishInquiryReceived(context.Background(), InquiryReceivedEvent{InquiryID: "inq-1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), RoutingKeyInquiryReceived)
}
