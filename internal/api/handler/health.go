package handler

import (
	"context"
	"net/http"

	"github.com/warnaku/warnaku/internal/api/response"
)

// DBPinger checks database connectivity.
type DBPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler reports service liveness and database connectivity.
type HealthHandler struct {
	db DBPinger
}

// NewHealthHandler creates a new HealthHandler.
func NewHealthHandler(db DBPinger) *HealthHandler {
	return &HealthHandler{db: db}
}

type healthResponse struct {
	Status   string `json:"status"`
	Message  string `json:"message"`
	Database string `json:"database"`
}

// ServeHTTP handles GET /api/health.
func (h *HealthHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	dbStatus := "up"
	if h.db != nil {
		if err := h.db.Ping(r.Context()); err != nil {
			dbStatus = "down"
		}
	}

	response.JSON(w, http.StatusOK, healthResponse{
		Status:   "OK",
		Message:  "Server is running",
		Database: dbStatus,
	})
}
