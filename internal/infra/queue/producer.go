package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

type LeadCapturedEvent struct {
	LeadID     string    `json:"lead_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Company    string    `json:"company,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Service    string    `json:"service,omitempty"`
	LeadMagnet string    `json:"lead_magnet,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type InquiryReceivedEvent struct {
	InquiryID string    `json:"inquiry_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	CreatedAt time.Time `json:"created_at"`
}

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

type RabbitMQProducer struct {
	ch publisher
}

func NewProducer(ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{ch: ch}
}

func (p *RabbitMQProducer) PublishLeadCaptured(ctx context.Context, event LeadCapturedEvent) error {
	return p.publish(ctx, RoutingKeyLeadCaptured, event.LeadID, event)
}

func (p *RabbitMQProducer) PublishInquiryReceived(ctx context.Context, event InquiryReceivedEvent) error {
	return p.publish(ctx, RoutingKeyInquiryReceived, event.InquiryID, event)
}

func (p *RabbitMQProducer) publish(ctx context.Context, key, messageID string, payload any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal %s event: %w", key, err)
	}

	err = p.ch.PublishWithContext(ctx,
		ExchangeName,
		key,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			MessageId:    messageID,
			Type:         key,
			Timestamp:    time.Now().UTC(),
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("publish %s to rabbitmq: %w", key, err)
	}
	return nil
}
