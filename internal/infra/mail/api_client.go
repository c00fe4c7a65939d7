package mail

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/sendgrid/rest"
	"github.com/sendgrid/sendgrid-go"
	sgmail "github.com/sendgrid/sendgrid-go/helpers/mail"
)

const (
	DefaultAPIBaseURL = "https://api.sendgrid.com"
	sendEndpoint      = "/v3/mail/send"
)

// APIClient sends through the SendGrid v3 API, or any host speaking the same
// /v3/mail/send dialect.
type APIClient struct {
	host     string
	apiKey   string
	fromName string
	rest     *rest.Client
}

func NewAPIClient(apiKey, baseURL, fromName string) *APIClient {
	if baseURL == "" {
		baseURL = DefaultAPIBaseURL
	}
	return &APIClient{
		host:     strings.TrimRight(baseURL, "/"),
		apiKey:   apiKey,
		fromName: fromName,
		rest:     &rest.Client{HTTPClient: &http.Client{Timeout: 10 * time.Second}},
	}
}

// ProviderError is a non-2xx answer from the email API.
type ProviderError struct {
	StatusCode int
	Messages   []string
}

func (e *ProviderError) Error() string {
	if len(e.Messages) == 0 {
		return fmt.Sprintf("email api rejected request (status %d)", e.StatusCode)
	}
	return fmt.Sprintf("email api rejected request (status %d): %s", e.StatusCode, strings.Join(e.Messages, "; "))
}

// Is classifies by status code: 402 means the account ran out of credits and
// 429 means the sending quota for the period is used up.
func (e *ProviderError) Is(target error) bool {
	if target != ErrQuotaExceeded {
		return false
	}
	return e.StatusCode == http.StatusPaymentRequired || e.StatusCode == http.StatusTooManyRequests
}

func (c *APIClient) Send(ctx context.Context, msg Message) error {
	if c.apiKey == "" {
		return ErrNotConfigured
	}
	if err := msg.validate(); err != nil {
		return err
	}

	request := sendgrid.GetRequest(c.apiKey, sendEndpoint, c.host)
	request.Method = rest.Post
	request.Body = sgmail.GetRequestBody(c.buildMail(msg))

	resp, err := c.rest.SendWithContext(ctx, request)
	if err != nil {
		return fmt.Errorf("email api request: %w", err)
	}
	if resp.StatusCode >= 200 && resp.StatusCode <= 299 {
		return nil
	}
	return newProviderError(resp)
}

func (c *APIClient) buildMail(msg Message) *sgmail.SGMailV3 {
	m := sgmail.NewV3Mail()
	m.SetFrom(sgmail.NewEmail(c.fromName, msg.From))
	m.Subject = msg.Subject

	p := sgmail.NewPersonalization()
	p.AddTos(sgmail.NewEmail("", msg.To))
	m.AddPersonalizations(p)

	// SendGrid wants text/plain ahead of text/html.
	if msg.Text != "" {
		m.AddContent(sgmail.NewContent("text/plain", msg.Text))
	}
	if msg.HTML != "" {
		m.AddContent(sgmail.NewContent("text/html", msg.HTML))
	}
	return m
}

func newProviderError(resp *rest.Response) *ProviderError {
	perr := &ProviderError{StatusCode: resp.StatusCode}
	var parsed errorResponse
	if err := json.Unmarshal([]byte(resp.Body), &parsed); err == nil {
		for _, e := range parsed.Errors {
			perr.Messages = append(perr.Messages, e.Message)
		}
	}
	return perr
}

// IsQuotaExceeded reports whether err came from an exhausted provider quota.
func IsQuotaExceeded(err error) bool {
	return errors.Is(err, ErrQuotaExceeded)
}

type errorResponse struct {
	Errors []struct {
		Message string  `json:"message"`
		Field   *string `json:"field"`
	} `json:"errors"`
}
