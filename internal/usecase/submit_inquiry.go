package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/xavierca1/safe-leads/internal/content"
	"github.com/xavierca1/safe-leads/internal/entity"
	"github.com/xavierca1/safe-leads/internal/infra/metrics"
	"github.com/xavierca1/safe-leads/internal/infra/queue"
)

type SubmitInquiryUseCase struct {
	Repo   entity.InquiryRepositoryInterface
	Mailer Mailer
	Events EventPublisher
}

func NewSubmitInquiryUseCase(repo entity.InquiryRepositoryInterface, mailer Mailer, events EventPublisher) *SubmitInquiryUseCase {
	return &SubmitInquiryUseCase{Repo: repo, Mailer: mailer, Events: events}
}

func ValidateSubmitInquiryInput(input SubmitInquiryInput) ValidationErrors {
	var errs ValidationErrors
	errs = validateName(errs, "name", input.Name)
	errs = validateEmail(errs, "email", input.Email)
	errs = validateRequiredText(errs, "subject", input.Subject, maxShortField)
	errs = validateRequiredText(errs, "message", input.Message, maxMessageLength)
	return errs
}

func (uc *SubmitInquiryUseCase) Execute(ctx context.Context, input SubmitInquiryInput) (*entity.Inquiry, error) {
	if err := ValidateSubmitInquiryInput(input).orNil(); err != nil {
		return nil, err
	}

	inquiry := entity.NewInquiry(
		strings.TrimSpace(input.Name),
		normalizeEmail(input.Email),
		strings.TrimSpace(input.Subject),
		strings.TrimSpace(input.Message),
	)
	if err := uc.Repo.Create(ctx, inquiry); err != nil {
		return nil, storeFailure("save inquiry", err)
	}
	metrics.RecordSubmission("inquiry")

	msg, err := content.InquiryNotification(content.InquiryNotificationData{
		Name:       inquiry.Name,
		Email:      inquiry.Email,
		Subject:    inquiry.Subject,
		Message:    inquiry.Message,
		ReceivedAt: inquiry.CreatedAt,
	})
	if err != nil {
		log.Printf("❌ [INQUIRY] render notification for %s: %v", inquiry.ID, err)
	} else if !uc.Mailer.NotifyOperator(ctx, msg.Subject, msg.HTML) {
		log.Printf("⚠️ [INQUIRY] operator notification for %s not delivered", inquiry.ID)
	}

	if uc.Events != nil {
		event := queue.InquiryReceivedEvent{
			InquiryID: inquiry.ID,
			Name:      inquiry.Name,
			Email:     inquiry.Email,
			Subject:   inquiry.Subject,
			CreatedAt: inquiry.CreatedAt,
		}
		if err := uc.Events.PublishInquiryReceived(ctx, event); err != nil {
			metrics.RecordIntegrationError("rabbitmq")
			log.Printf("⚠️ [INQUIRY] event for %s not published: %v", inquiry.ID, err)
		}
	}

	return inquiry, nil
}
