package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/safe-leads/internal/entity"
	"github.com/xavierca1/safe-leads/internal/infra/queue"
)

func TestValidateSubmitLeadInputBoundary(t *testing.T) {
	errs := ValidateSubmitLeadInput(SubmitLeadInput{Name: "", Email: "not-an-email"})
	require.Len(t, errs, 2)
	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "email", errs[1].Field)

	assert.Empty(t, ValidateSubmitLeadInput(SubmitLeadInput{Name: "Jo", Email: "jo@x.com"}))
}

func TestValidateSubmitLeadInputRejects(t *testing.T) {
	cases := map[string]SubmitLeadInput{
		"display name email": {Name: "Jo", Email: "Jo <jo@x.com>"},
		"no dot in domain":   {Name: "Jo", Email: "jo@localhost"},
		"short phone":        {Name: "Jo", Email: "jo@x.com", Phone: "12-34"},
	}
	for name, input := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Len(t, ValidateSubmitLeadInput(input), 1)
		})
	}
}

func TestSubmitLeadSendsLeadMagnetAndPublishes(t *testing.T) {
	repo := new(MockLeadRepository)
	events := new(MockEventPublisher)
	mailer := &fakeMailer{}
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Lead")).Return(nil)
	events.On("PublishLeadCaptured", mock.Anything, mock.MatchedBy(func(e queue.LeadCapturedEvent) bool {
		return e.Email == "jo@x.com" && e.LeadMagnet == "pi-planning-checklist"
	})).Return(nil)

	uc := NewSubmitLeadUseCase(repo, testCatalog(t), mailer, events)
	lead, err := uc.Execute(context.Background(), SubmitLeadInput{
		Name:       "Jo",
		Email:      "JO@x.com",
		LeadMagnet: "pi-planning-checklist",
	})

	require.NoError(t, err)
	assert.Equal(t, "jo@x.com", lead.Email)
	assert.Equal(t, []string{"Your PI Planning Checklist"}, mailer.subjects())
	repo.AssertExpectations(t)
	events.AssertExpectations(t)
}

func TestSubmitLeadEmailFailureDoesNotFail(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer := &fakeMailer{fail: true}

	uc := NewSubmitLeadUseCase(repo, testCatalog(t), mailer, nil)
	_, err := uc.Execute(context.Background(), SubmitLeadInput{Name: "Jo", Email: "jo@x.com", LeadMagnet: "pi-planning-checklist"})

	assert.NoError(t, err)
}

func TestSubmitLeadUnknownMagnetIsAccepted(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mailer := &fakeMailer{}

	uc := NewSubmitLeadUseCase(repo, testCatalog(t), mailer, nil)
	_, err := uc.Execute(context.Background(), SubmitLeadInput{Name: "Jo", Email: "jo@x.com", LeadMagnet: "mystery-ebook"})

	assert.NoError(t, err)
	assert.Empty(t, mailer.subjects())
}

func TestSubmitLeadStoreFailure(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("db down"))
	mailer := &fakeMailer{}

	uc := NewSubmitLeadUseCase(repo, testCatalog(t), mailer, nil)
	_, err := uc.Execute(context.Background(), SubmitLeadInput{Name: "Jo", Email: "jo@x.com", LeadMagnet: "pi-planning-checklist"})

	var techErr *TechnicalError
	assert.ErrorAs(t, err, &techErr)
	assert.Empty(t, mailer.subjects())
}

func TestSubmitLeadPublishFailureIsIgnored(t *testing.T) {
	repo := new(MockLeadRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	events := new(MockEventPublisher)
	events.On("PublishLeadCaptured", mock.Anything, mock.Anything).Return(errors.New("channel closed"))

	uc := NewSubmitLeadUseCase(repo, testCatalog(t), &fakeMailer{}, events)
	lead, err := uc.Execute(context.Background(), SubmitLeadInput{Name: "Jo", Email: "jo@x.com"})

	require.NoError(t, err)
	assert.IsType(t, &entity.Lead{}, lead)
}
