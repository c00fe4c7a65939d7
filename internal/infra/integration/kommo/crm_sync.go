package kommo

import (
	"context"

	"github.com/xavierca1/safe-leads/internal/infra/queue"
)

// Syncer turns website events into Kommo leads.
type Syncer struct {
	Client *Client
}

func NewSyncer(client *Client) *Syncer {
	return &Syncer{Client: client}
}

func (s *Syncer) SyncLead(ctx context.Context, event queue.LeadCapturedEvent) error {
	tags := []string{"website"}
	if event.LeadMagnet != "" {
		tags = append(tags, event.LeadMagnet)
	}
	if event.Service != "" {
		tags = append(tags, event.Service)
	}
	title := "Website lead: " + event.Name
	if event.Company != "" {
		title += " (" + event.Company + ")"
	}
	_, err := s.Client.CreateLead(ctx, CreateLeadInput{
		Name:   event.Name,
		Email:  event.Email,
		Phone:  event.Phone,
		Title:  title,
		Source: queue.RoutingKeyLeadCaptured,
		Tags:   tags,
	})
	return err
}

func (s *Syncer) SyncInquiry(ctx context.Context, event queue.InquiryReceivedEvent) error {
	_, err := s.Client.CreateLead(ctx, CreateLeadInput{
		Name:   event.Name,
		Email:  event.Email,
		Title:  "Inquiry: " + event.Subject,
		Source: queue.RoutingKeyInquiryReceived,
		Tags:   []string{"website", "inquiry"},
	})
	return err
}
