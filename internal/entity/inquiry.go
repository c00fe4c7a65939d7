package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrInquiryNotFound = errors.New("inquiry not found")

type Inquiry struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

func NewInquiry(name, email, subject, message string) *Inquiry {
	return &Inquiry{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

// InquirySort controls the listing order on the admin page.
type InquirySort string

const (
	InquirySortNewest InquirySort = "newest"
	InquirySortOldest InquirySort = "oldest"
)

func ParseInquirySort(s string) InquirySort {
	if InquirySort(s) == InquirySortOldest {
		return InquirySortOldest
	}
	return InquirySortNewest
}

type InquiryRepositoryInterface interface {
	Create(ctx context.Context, inquiry *Inquiry) error
	List(ctx context.Context, sort InquirySort) ([]*Inquiry, error)
	FindByID(ctx context.Context, id string) (*Inquiry, error)
	SetRead(ctx context.Context, id string, read bool) error
}
