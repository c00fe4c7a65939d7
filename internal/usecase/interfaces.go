package usecase

import (
	"context"

	"github.com/xavierca1/safe-leads/internal/content"
	"github.com/xavierca1/safe-leads/internal/infra/mail"
	"github.com/xavierca1/safe-leads/internal/infra/queue"
)

// Mailer is satisfied by *mail.Transport. Send never returns an error: false
// means not delivered and safe to retry later.
type Mailer interface {
	Send(ctx context.Context, msg mail.Message) bool
	NotifyOperator(ctx context.Context, subject, html string) bool
}

type LessonCatalog interface {
	Course(t content.CourseType) (content.Course, bool)
	LessonFor(t content.CourseType, day int) (content.Lesson, error)
	LeadMagnetMessageFor(id content.LeadMagnetID, leadName string) (content.Message, bool)
}

type EventPublisher interface {
	PublishLeadCaptured(ctx context.Context, event queue.LeadCapturedEvent) error
	PublishInquiryReceived(ctx context.Context, event queue.InquiryReceivedEvent) error
}
