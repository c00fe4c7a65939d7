package handlers

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rabbitmq/amqp091-go"
)

const healthTimeout = 2 * time.Second

// dependencyCheck returns a short state. Anything starting with "unhealthy"
// degrades the service.
type dependencyCheck func(ctx context.Context) string

type HealthHandler struct {
	checks    map[string]dependencyCheck
	version   string
	startedAt time.Time
}

type HealthResponse struct {
	Status       string            `json:"status"`
	Version      string            `json:"version"`
	Uptime       string            `json:"uptime"`
	Dependencies map[string]string `json:"dependencies"`
}

func NewHealthHandler(db *sql.DB, rabbitConn *amqp091.Connection, mailEnabled, dripEnabled bool) *HealthHandler {
	return &HealthHandler{
		checks: map[string]dependencyCheck{
			"database":       databaseCheck(db),
			"rabbitmq":       brokerCheck(rabbitConn),
			"email":          flagCheck(mailEnabled, "configured", "not configured"),
			"drip_scheduler": flagCheck(dripEnabled, "running", "disabled"),
		},
		version:   "1.0.0",
		startedAt: time.Now(),
	}
}

// Handle serves GET /health: 200 when every dependency is usable, 503 otherwise.
func (h *HealthHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:       "healthy",
		Version:      h.version,
		Uptime:       time.Since(h.startedAt).Round(time.Second).String(),
		Dependencies: make(map[string]string, len(h.checks)),
	}
	for name, check := range h.checks {
		state := check(ctx)
		resp.Dependencies[name] = state
		if strings.HasPrefix(state, "unhealthy") {
			resp.Status = "degraded"
		}
	}

	code := http.StatusOK
	if resp.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(resp)
}

func databaseCheck(db *sql.DB) dependencyCheck {
	return func(ctx context.Context) string {
		if db == nil {
			return "not configured"
		}
		if err := db.PingContext(ctx); err != nil {
			return "unhealthy: " + err.Error()
		}
		return "healthy"
	}
}

func brokerCheck(conn *amqp091.Connection) dependencyCheck {
	return func(context.Context) string {
		switch {
		case conn == nil:
			return "not configured"
		case conn.IsClosed():
			return "unhealthy: connection closed"
		default:
			return "healthy"
		}
	}
}

func flagCheck(on bool, onState, offState string) dependencyCheck {
	return func(context.Context) string {
		if on {
			return onState
		}
		return offState
	}
}
