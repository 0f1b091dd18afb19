package rest

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"os"
	"time"
)

type HealthStatus string

const (
	HealthHealthy   HealthStatus = "healthy"
	HealthUnhealthy HealthStatus = "unhealthy"
)

type HealthResponse struct {
	Status     HealthStatus          `json:"status"`
	CheckedAt  time.Time             `json:"checked_at"`
	Components map[string]CheckEntry `json:"components"`
}

type CheckEntry struct {
	Status     HealthStatus `json:"status"`
	Message    string       `json:"message,omitempty"`
	CheckedAt  time.Time    `json:"checked_at"`
	DurationMs int64        `json:"duration_ms"`
}

// HealthHandler reports readiness of whichever storage backend is wired:
// Postgres when db is non-nil, the JSON-file store otherwise.
type HealthHandler struct {
	db      *sql.DB
	dataDir string
}

func NewHealthHandler(db *sql.DB, dataDir string) *HealthHandler {
	return &HealthHandler{db: db, dataDir: dataDir}
}

// liveness: just says the service is up
func (h *HealthHandler) PingHandler(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "OK"}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resp)
}

// readiness: checks the storage backend
func (h *HealthHandler) HealthCheckHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	component := "jsonstore"
	start := time.Now()
	var err error
	if h.db != nil {
		component = "postgres"
		err = h.db.PingContext(ctx)
	} else {
		_, err = os.Stat(h.dataDir)
	}

	entry := CheckEntry{
		Status:     HealthHealthy,
		CheckedAt:  time.Now(),
		DurationMs: time.Since(start).Milliseconds(),
	}

	if err != nil {
		entry.Status = HealthUnhealthy
		entry.Message = err.Error()
	}

	resp := HealthResponse{
		Status:     entry.Status,
		CheckedAt:  time.Now(),
		Components: map[string]CheckEntry{component: entry},
	}

	statusCode := http.StatusOK
	if entry.Status == HealthUnhealthy {
		statusCode = http.StatusServiceUnavailable
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(resp)
}
