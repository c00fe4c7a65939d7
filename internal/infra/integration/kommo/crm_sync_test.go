package kommo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xavierca1/safe-leads/internal/infra/queue"
)

func TestSyncerBuildsLeadFromEvents(t *testing.T) {
	var titles []string
	var tags [][]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			w.Write([]byte(`{"_embedded":{"contacts":[{"id":3}]}}`))
		case r.URL.Path == "/leads":
			var body []map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			titles = append(titles, body[0]["name"].(string))
			tags = append(tags, body[0]["_embedded"].(map[string]any)["tags"].([]any))
			w.Write([]byte(`{"_embedded":{"leads":[{"id":1}]}}`))
		}
	}))
	defer srv.Close()

	s := NewSyncer(NewClient("tok", srv.URL, 0))
	require.NoError(t, s.SyncLead(context.Background(), queue.LeadCapturedEvent{
		Name: "Jo", Email: "jo@x.com", Company: "Acme", LeadMagnet: "pi-planning-checklist",
	}))
	require.NoError(t, s.SyncInquiry(context.Background(), queue.InquiryReceivedEvent{
		Name: "Sam", Email: "sam@x.com", Subject: "Team training",
	}))

	assert.Equal(t, []string{"Website lead: Jo (Acme)", "Inquiry: Team training"}, titles)
	assert.Len(t, tags[0], 2)
	assert.Len(t, tags[1], 2)
}
