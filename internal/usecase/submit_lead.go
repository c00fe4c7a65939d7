package usecase

import (
	"context"
	"log"
	"strings"

	"github.com/xavierca1/safe-leads/internal/content"
	"github.com/xavierca1/safe-leads/internal/entity"
	"github.com/xavierca1/safe-leads/internal/infra/mail"
	"github.com/xavierca1/safe-leads/internal/infra/metrics"
	"github.com/xavierca1/safe-leads/internal/infra/queue"
)

type SubmitLeadUseCase struct {
	Repo    entity.LeadRepositoryInterface
	Catalog LessonCatalog
	Mailer  Mailer
	Events  EventPublisher
}

func NewSubmitLeadUseCase(repo entity.LeadRepositoryInterface, catalog LessonCatalog, mailer Mailer, events EventPublisher) *SubmitLeadUseCase {
	return &SubmitLeadUseCase{Repo: repo, Catalog: catalog, Mailer: mailer, Events: events}
}

func ValidateSubmitLeadInput(input SubmitLeadInput) ValidationErrors {
	var errs ValidationErrors
	errs = validateName(errs, "name", input.Name)
	errs = validateEmail(errs, "email", input.Email)
	errs = validateOptionalText(errs, "company", input.Company, maxShortField)
	errs = validateOptionalPhone(errs, "phone", input.Phone)
	errs = validateOptionalText(errs, "service", input.Service, maxShortField)
	errs = validateOptionalText(errs, "message", input.Message, maxMessageLength)
	errs = validateOptionalText(errs, "leadMagnet", input.LeadMagnet, maxShortField)
	return errs
}

// Execute persists the lead; the lead magnet email is best-effort and never
// fails the submission.
func (uc *SubmitLeadUseCase) Execute(ctx context.Context, input SubmitLeadInput) (*entity.Lead, error) {
	if err := ValidateSubmitLeadInput(input).orNil(); err != nil {
		return nil, err
	}

	lead := entity.NewLead(
		strings.TrimSpace(input.Name),
		normalizeEmail(input.Email),
		strings.TrimSpace(input.Company),
		strings.TrimSpace(input.Phone),
		strings.TrimSpace(input.Service),
		strings.TrimSpace(input.Message),
		strings.TrimSpace(input.LeadMagnet),
	)

	if err := uc.Repo.Create(ctx, lead); err != nil {
		return nil, storeFailure("save lead", err)
	}
	metrics.RecordSubmission("lead")

	if lead.LeadMagnet != "" {
		uc.sendLeadMagnet(ctx, lead)
	}

	if uc.Events != nil {
		event := queue.LeadCapturedEvent{
			LeadID:     lead.ID,
			Name:       lead.Name,
			Email:      lead.Email,
			Company:    lead.Company,
			Phone:      lead.Phone,
			Service:    lead.Service,
			LeadMagnet: lead.LeadMagnet,
			CreatedAt:  lead.CreatedAt,
		}
		if err := uc.Events.PublishLeadCaptured(ctx, event); err != nil {
			metrics.RecordIntegrationError("rabbitmq")
			log.Printf("⚠️ [LEAD] event for %s not published: %v", lead.ID, err)
		}
	}

	return lead, nil
}

func (uc *SubmitLeadUseCase) sendLeadMagnet(ctx context.Context, lead *entity.Lead) {
	msg, ok := uc.Catalog.LeadMagnetMessageFor(content.LeadMagnetID(lead.LeadMagnet), lead.Name)
	if !ok {
		log.Printf("[LEAD] no email template for lead magnet %q", lead.LeadMagnet)
		return
	}
	if !uc.Mailer.Send(ctx, mail.Message{To: lead.Email, Subject: msg.Subject, HTML: msg.HTML}) {
		log.Printf("⚠️ [LEAD] lead magnet %q not delivered to %s", lead.LeadMagnet, lead.Email)
	}
}
