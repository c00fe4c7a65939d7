package usecase

import (
	"context"
	"strings"

	"github.com/xavierca1/safe-leads/internal/entity"
	"github.com/xavierca1/safe-leads/internal/infra/metrics"
)

type SubmitContactUseCase struct {
	Repo entity.ContactRepositoryInterface
}

func NewSubmitContactUseCase(repo entity.ContactRepositoryInterface) *SubmitContactUseCase {
	return &SubmitContactUseCase{Repo: repo}
}

func ValidateSubmitContactInput(input SubmitContactInput) ValidationErrors {
	var errs ValidationErrors
	errs = validateName(errs, "name", input.Name)
	errs = validateEmail(errs, "email", input.Email)
	errs = validateOptionalText(errs, "company", input.Company, maxShortField)
	errs = validateOptionalPhone(errs, "phone", input.Phone)
	errs = validateOptionalText(errs, "subject", input.Subject, maxShortField)
	errs = validateRequiredText(errs, "message", input.Message, maxMessageLength)
	return errs
}

func (uc *SubmitContactUseCase) Execute(ctx context.Context, input SubmitContactInput) (*entity.Contact, error) {
	if err := ValidateSubmitContactInput(input).orNil(); err != nil {
		return nil, err
	}

	contact := entity.NewContact(
		strings.TrimSpace(input.Name),
		normalizeEmail(input.Email),
		strings.TrimSpace(input.Company),
		strings.TrimSpace(input.Phone),
		strings.TrimSpace(input.Subject),
		strings.TrimSpace(input.Message),
	)
	if err := uc.Repo.Create(ctx, contact); err != nil {
		return nil, storeFailure("save contact", err)
	}
	metrics.RecordSubmission("contact")
	return contact, nil
}
