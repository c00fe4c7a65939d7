package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/xavierca1/safe-leads/internal/entity"
)

type InquiryAdminUseCase struct {
	Repo entity.InquiryRepositoryInterface
}

func NewInquiryAdminUseCase(repo entity.InquiryRepositoryInterface) *InquiryAdminUseCase {
	return &InquiryAdminUseCase{Repo: repo}
}

// List accepts "newest" or "oldest"; anything else falls back to newest.
func (uc *InquiryAdminUseCase) List(ctx context.Context, sort string) ([]*entity.Inquiry, error) {
	inquiries, err := uc.Repo.List(ctx, entity.ParseInquirySort(sort))
	if err != nil {
		return nil, storeFailure("list inquiries", err)
	}
	return inquiries, nil
}

// Get returns ErrInquiryNotFound for ids that are not uuids without asking
// the store.
func (uc *InquiryAdminUseCase) Get(ctx context.Context, id string) (*entity.Inquiry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, entity.ErrInquiryNotFound
	}
	inquiry, err := uc.Repo.FindByID(ctx, id)
	if err != nil {
		return nil, inquiryStoreError(err)
	}
	return inquiry, nil
}

func (uc *InquiryAdminUseCase) SetRead(ctx context.Context, id string, read bool) (*entity.Inquiry, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, entity.ErrInquiryNotFound
	}
	if err := uc.Repo.SetRead(ctx, id, read); err != nil {
		return nil, inquiryStoreError(err)
	}
	return uc.Get(ctx, id)
}

// The repository already prefixes its errors with the failed operation.
func inquiryStoreError(err error) error {
	if errors.Is(err, entity.ErrInquiryNotFound) {
		return err
	}
	return storeFailure("inquiry store", err)
}
