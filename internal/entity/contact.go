package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Contact struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Subject   string    `json:"subject,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func NewContact(name, email, company, phone, subject, message string) *Contact {
	return &Contact{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Company:   company,
		Phone:     phone,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

type ContactRepositoryInterface interface {
	Create(ctx context.Context, contact *Contact) error
}
