package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/safe-leads/internal/entity"
)

func TestSubmitInquiryNotifiesOperator(t *testing.T) {
	repo := new(MockInquiryRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Inquiry")).Return(nil)
	events := new(MockEventPublisher)
	events.On("PublishInquiryReceived", mock.Anything, mock.Anything).Return(nil)
	mailer := &fakeMailer{}

	uc := NewSubmitInquiryUseCase(repo, mailer, events)
	inquiry, err := uc.Execute(context.Background(), SubmitInquiryInput{
		Name:    "Sam",
		Email:   "sam@x.com",
		Subject: "Team training",
		Message: "We have 40 people <b>ready</b>.",
	})

	require.NoError(t, err)
	assert.False(t, inquiry.IsRead)
	assert.Equal(t, []string{"New inquiry: Team training"}, mailer.operator)
	events.AssertExpectations(t)
}

func TestSubmitInquiryNotificationFailureStillSucceeds(t *testing.T) {
	repo := new(MockInquiryRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	uc := NewSubmitInquiryUseCase(repo, &fakeMailer{fail: true}, nil)
	_, err := uc.Execute(context.Background(), SubmitInquiryInput{Name: "Sam", Email: "sam@x.com", Subject: "Hi", Message: "Hello"})

	assert.NoError(t, err)
}

func TestSubmitInquiryValidation(t *testing.T) {
	uc := NewSubmitInquiryUseCase(new(MockInquiryRepository), &fakeMailer{}, nil)

	_, err := uc.Execute(context.Background(), SubmitInquiryInput{Name: "Sam", Email: "sam@x.com"})

	var verrs ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Len(t, verrs, 2)
}

func TestInquiryAdmin(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInquiryRepository)
	inquiry := entity.NewInquiry("Sam", "sam@x.com", "Hi", "Hello")
	uc := NewInquiryAdminUseCase(repo)

	repo.On("List", ctx, entity.InquirySortNewest).Return([]*entity.Inquiry{inquiry}, nil).Once()
	list, err := uc.List(ctx, "bogus")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	repo.On("List", ctx, entity.InquirySortOldest).Return([]*entity.Inquiry{}, nil).Once()
	_, err = uc.List(ctx, "oldest")
	require.NoError(t, err)

	repo.On("SetRead", ctx, inquiry.ID, true).Return(nil).Once()
	read := *inquiry
	read.IsRead = true
	repo.On("FindByID", ctx, inquiry.ID).Return(&read, nil).Once()
	updated, err := uc.SetRead(ctx, inquiry.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.IsRead)

	missing := uuid.NewString()
	repo.On("FindByID", ctx, missing).Return(nil, entity.ErrInquiryNotFound).Once()
	_, err = uc.Get(ctx, missing)
	assert.ErrorIs(t, err, entity.ErrInquiryNotFound)

	repo.On("SetRead", ctx, missing, false).Return(entity.ErrInquiryNotFound).Once()
	_, err = uc.SetRead(ctx, missing, false)
	assert.ErrorIs(t, err, entity.ErrInquiryNotFound)

	broken := uuid.NewString()
	repo.On("FindByID", ctx, broken).Return(nil, errors.New("find inquiry: db down")).Once()
	_, err = uc.Get(ctx, broken)
	var techErr *TechnicalError
	require.ErrorAs(t, err, &techErr)
	assert.Equal(t, "inquiry store: find inquiry: db down", err.Error())

	repo.AssertExpectations(t)
}

func TestInquiryAdminMalformedIDIsNotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockInquiryRepository)
	uc := NewInquiryAdminUseCase(repo)

	for _, id := range []string{"missing", "42", "", "not-a-uuid-at-all"} {
		_, err := uc.Get(ctx, id)
		assert.ErrorIs(t, err, entity.ErrInquiryNotFound, "get %q", id)

		_, err = uc.SetRead(ctx, id, true)
		assert.ErrorIs(t, err, entity.ErrInquiryNotFound, "set read %q", id)
	}

	repo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	repo.AssertNotCalled(t, "SetRead", mock.Anything, mock.Anything, mock.Anything)
}
