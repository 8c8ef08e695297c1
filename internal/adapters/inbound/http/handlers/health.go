package handlers

import (
	"net/http"
	"time"

	"github.com/architeacher/device-registry/internal/ports"
	"github.com/architeacher/device-registry/internal/usecases"
	"github.com/architeacher/device-registry/internal/usecases/queries"
)

type (
	statusResponse struct {
		Status    string    `json:"status"`
		Timestamp time.Time `json:"timestamp"`
	}

	healthResponse struct {
		Status       string                            `json:"status"`
		Version      string                            `json:"version"`
		Uptime       string                            `json:"uptime"`
		Timestamp    time.Time                         `json:"timestamp"`
		Dependencies map[string]ports.DependencyStatus `json:"dependencies"`
	}

	HealthHandler struct {
		app *usecases.Application
	}
)

func NewHealthHandler(app *usecases.Application) *HealthHandler {
	return &HealthHandler{app: app}
}

func (h *HealthHandler) LivenessCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchLiveness.Execute(r.Context(), queries.FetchLivenessQuery{})
	if err != nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, statusResponse{Status: "down", Timestamp: time.Now().UTC()})

		return
	}

	writeJSONResponse(w, http.StatusOK, statusResponse{Status: result.Status, Timestamp: time.Now().UTC()})
}

// ReadinessCheck answers 503 until the store is reachable.
func (h *HealthHandler) ReadinessCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchReadiness.Execute(r.Context(), queries.FetchReadinessQuery{})
	if err != nil || !result.Ready {
		writeJSONResponse(w, http.StatusServiceUnavailable, statusResponse{Status: "unavailable", Timestamp: time.Now().UTC()})

		return
	}

	writeJSONResponse(w, http.StatusOK, statusResponse{Status: result.Status, Timestamp: time.Now().UTC()})
}

// HealthCheck reports every dependency. A degraded cache still answers 200.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	result, err := h.app.Queries.FetchHealthReport.Execute(r.Context(), queries.FetchHealthReportQuery{})
	if err != nil {
		writeJSONResponse(w, http.StatusServiceUnavailable, healthResponse{
			Status:    queries.HealthStatusUnhealthy,
			Timestamp: time.Now().UTC(),
		})

		return
	}

	status := http.StatusOK
	if result.Status == queries.HealthStatusUnhealthy {
		status = http.StatusServiceUnavailable
	}

	writeJSONResponse(w, status, healthResponse{
		Status:       result.Status,
		Version:      result.Version,
		Uptime:       result.Uptime,
		Timestamp:    time.Now().UTC(),
		Dependencies: result.Dependencies,
	})
}
