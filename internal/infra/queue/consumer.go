package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CRMSyncer pushes website events into the CRM.
type CRMSyncer interface {
	SyncLead(ctx context.Context, event LeadCapturedEvent) error
	SyncInquiry(ctx context.Context, event InquiryReceivedEvent) error
}

type consumer interface {
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
}

// CRMSyncWorker drains the CRM sync queue. Failed messages are rejected
// without requeue so they land in the dead letter queue.
type CRMSyncWorker struct {
	ch     consumer
	syncer CRMSyncer
}

func NewCRMSyncWorker(ch *amqp.Channel, syncer CRMSyncer) *CRMSyncWorker {
	return &CRMSyncWorker{ch: ch, syncer: syncer}
}

// Start blocks until ctx is cancelled or the channel closes.
func (w *CRMSyncWorker) Start(ctx context.Context) error {
	msgs, err := w.ch.Consume(
		QueueName,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return fmt.Errorf("register consumer: %w", err)
	}

	log.Printf(" [*] [CRM] worker waiting on queue '%s'", QueueName)
	for {
		select {
		case <-ctx.Done():
			return nil
		case d, ok := <-msgs:
			if !ok {
				log.Println("⚠️ [CRM] delivery channel closed")
				return nil
			}
			w.handle(ctx, d)
		}
	}
}

func (w *CRMSyncWorker) handle(ctx context.Context, d amqp.Delivery) {
	if err := w.process(ctx, d); err != nil {
		log.Printf("❌ [CRM] %s %s: %v", d.RoutingKey, d.MessageId, err)
		d.Nack(false, false)
		return
	}
	d.Ack(false)
}

func (w *CRMSyncWorker) process(ctx context.Context, d amqp.Delivery) error {
	switch d.RoutingKey {
	case RoutingKeyLeadCaptured:
		var event LeadCapturedEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			return fmt.Errorf("invalid payload: %w", err)
		}
		return w.syncer.SyncLead(ctx, event)

	case RoutingKeyInquiryReceived:
		var event InquiryReceivedEvent
		if err := json.Unmarshal(d.Body, &event); err != nil {
			return fmt.Errorf("invalid payload: %w", err)
		}
		return w.syncer.SyncInquiry(ctx, event)

	default:
		log.Printf("⚠️ [CRM] unknown routing key %q, dropping", d.RoutingKey)
		return nil
	}
}
