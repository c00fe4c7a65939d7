package kommo

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrNotConfigured = errors.New("kommo not configured")

type Client struct {
	apiToken   string
	baseURL    string
	pipelineID int
	http       *http.Client
}

// NewClient expects baseURL like https://<account>.kommo.com/api/v4. A zero
// pipelineID leaves the lead in the account's default pipeline.
func NewClient(apiToken, baseURL string, pipelineID int) *Client {
	return &Client{
		apiToken:   apiToken,
		baseURL:    strings.TrimRight(baseURL, "/"),
		pipelineID: pipelineID,
		http:       &http.Client{Timeout: 15 * time.Second},
	}
}

func (c *Client) CreateLead(ctx context.Context, input CreateLeadInput) (int, error) {
	if c.apiToken == "" || c.baseURL == "" {
		return 0, ErrNotConfigured
	}

	contactID, err := c.findOrCreateContact(ctx, input)
	if err != nil {
		return 0, fmt.Errorf("find or create contact: %w", err)
	}

	tags := make([]map[string]any, 0, len(input.Tags))
	for _, tag := range input.Tags {
		tags = append(tags, map[string]any{"name": tag})
	}
	lead := map[string]any{
		"name": input.Title,
		"_embedded": map[string]any{
			"tags":     tags,
			"contacts": []map[string]any{{"id": contactID}},
		},
	}
	if c.pipelineID != 0 {
		lead["pipeline_id"] = c.pipelineID
	}

	var result embeddedIDs
	if err := c.post(ctx, "/leads", []map[string]any{lead}, &result); err != nil {
		return 0, fmt.Errorf("create lead: %w", err)
	}
	if len(result.Embedded.Leads) == 0 {
		return 0, errors.New("create lead: empty response")
	}

	leadID := result.Embedded.Leads[0].ID
	log.Printf("✅ [CRM] Kommo lead #%d created for %s (%s)", leadID, input.Email, input.Source)
	return leadID, nil
}

func (c *Client) findOrCreateContact(ctx context.Context, input CreateLeadInput) (int, error) {
	contactID, err := c.findContact(ctx, input.Email)
	if err == nil && contactID > 0 {
		return contactID, nil
	}
	return c.createContact(ctx, input)
}

func (c *Client) findContact(ctx context.Context, query string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/contacts?query="+url.QueryEscape(query), nil)
	if err != nil {
		return 0, err
	}
	c.addAuthHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	// Kommo answers 204 when the search has no hits.
	if resp.StatusCode == http.StatusNoContent {
		return 0, nil
	}
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("search contact: status %d", resp.StatusCode)
	}

	var result embeddedIDs
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return 0, err
	}
	if len(result.Embedded.Contacts) > 0 {
		return result.Embedded.Contacts[0].ID, nil
	}
	return 0, nil
}

func (c *Client) createContact(ctx context.Context, input CreateLeadInput) (int, error) {
	fields := []map[string]any{
		{
			"field_code": "EMAIL",
			"values":     []map[string]any{{"value": input.Email, "enum_code": "WORK"}},
		},
	}
	if input.Phone != "" {
		fields = append(fields, map[string]any{
			"field_code": "PHONE",
			"values":     []map[string]any{{"value": input.Phone, "enum_code": "WORK"}},
		})
	}
	contact := map[string]any{
		"name":                 input.Name,
		"custom_fields_values": fields,
	}

	var result embeddedIDs
	if err := c.post(ctx, "/contacts", []map[string]any{contact}, &result); err != nil {
		return 0, err
	}
	if len(result.Embedded.Contacts) == 0 {
		return 0, errors.New("create contact: empty response")
	}
	return result.Embedded.Contacts[0].ID, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return err
	}
	c.addAuthHeaders(req)

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("status %d: %s", resp.StatusCode, strings.TrimSpace(string(respBody)))
	}
	return json.Unmarshal(respBody, out)
}

func (c *Client) addAuthHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+c.apiToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
}
