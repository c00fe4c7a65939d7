package mail

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockSender struct {
	mock.Mock
}

func (m *MockSender) Send(ctx context.Context, msg Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func testMessage() Message {
	return Message{To: "a@x.com", Subject: "hello", Text: "hi"}
}

func TestTransportPrimarySuccess(t *testing.T) {
	primary := new(MockSender)
	fallback := new(MockSender)
	primary.On("Send", mock.Anything, mock.MatchedBy(func(m Message) bool {
		return m.From == "noreply@example.com"
	})).Return(nil)

	tr := NewTransport(primary, fallback, "noreply@example.com", "ops@example.com")

	assert.True(t, tr.Send(context.Background(), testMessage()))
	primary.AssertExpectations(t)
	fallback.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestTransportFallsBackOnQuota(t *testing.T) {
	primary := new(MockSender)
	fallback := new(MockSender)
	primary.On("Send", mock.Anything, mock.Anything).Return(&ProviderError{StatusCode: http.StatusPaymentRequired})
	fallback.On("Send", mock.Anything, mock.Anything).Return(nil)

	tr := NewTransport(primary, fallback, "noreply@example.com", "")

	assert.True(t, tr.Send(context.Background(), testMessage()))
	fallback.AssertNumberOfCalls(t, "Send", 1)
}

func TestTransportFallbackFailureReturnsFalse(t *testing.T) {
	primary := new(MockSender)
	fallback := new(MockSender)
	primary.On("Send", mock.Anything, mock.Anything).Return(&ProviderError{StatusCode: http.StatusTooManyRequests})
	fallback.On("Send", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	tr := NewTransport(primary, fallback, "noreply@example.com", "")

	assert.False(t, tr.Send(context.Background(), testMessage()))
	fallback.AssertNumberOfCalls(t, "Send", 1)
}

func TestTransportOtherErrorsDoNotFallBack(t *testing.T) {
	for name, err := range map[string]error{
		"unauthorized": &ProviderError{StatusCode: http.StatusUnauthorized, Messages: []string{"Maximum credits exceeded"}},
		"server error": &ProviderError{StatusCode: http.StatusInternalServerError},
		"network":      errors.New("dial tcp: timeout"),
	} {
		t.Run(name, func(t *testing.T) {
			primary := new(MockSender)
			fallback := new(MockSender)
			primary.On("Send", mock.Anything, mock.Anything).Return(err)

			tr := NewTransport(primary, fallback, "noreply@example.com", "")

			assert.False(t, tr.Send(context.Background(), testMessage()))
			fallback.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
		})
	}
}

func TestTransportDisabledWithoutPrimary(t *testing.T) {
	fallback := new(MockSender)
	tr := NewTransport(nil, fallback, "noreply@example.com", "ops@example.com")

	assert.False(t, tr.Enabled())
	assert.False(t, tr.Send(context.Background(), testMessage()))
	fallback.AssertNotCalled(t, "Send", mock.Anything, mock.Anything)
}

func TestNotifyOperator(t *testing.T) {
	primary := new(MockSender)
	primary.On("Send", mock.Anything, mock.MatchedBy(func(m Message) bool {
		return m.To == "ops@example.com" && m.HTML == "<p>new</p>"
	})).Return(nil)

	tr := NewTransport(primary, nil, "noreply@example.com", "ops@example.com")
	assert.True(t, tr.NotifyOperator(context.Background(), "New inquiry", "<p>new</p>"))

	noOperator := NewTransport(primary, nil, "noreply@example.com", "")
	assert.False(t, noOperator.NotifyOperator(context.Background(), "New inquiry", "<p>new</p>"))
	primary.AssertNumberOfCalls(t, "Send", 1)
}
