package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Lead is a single form submission. It is never updated after insert.
type Lead struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Company    string    `json:"company,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Service    string    `json:"service,omitempty"`
	Message    string    `json:"message,omitempty"`
	LeadMagnet string    `json:"lead_magnet,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

func NewLead(name, email, company, phone, service, message, leadMagnet string) *Lead {
	return &Lead{
		ID:         uuid.New().String(),
		Name:       name,
		Email:      email,
		Company:    company,
		Phone:      phone,
		Service:    service,
		Message:    message,
		LeadMagnet: leadMagnet,
		CreatedAt:  time.Now().UTC(),
	}
}

type LeadRepositoryInterface interface {
	Create(ctx context.Context, lead *Lead) error
}
