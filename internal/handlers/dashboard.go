package handlers

import (
	"net/http"

	"mgnrega-dash/internal/models"
	"mgnrega-dash/internal/services"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const (
	apiMessage = "MGNREGA Karnataka Dashboard API"
	apiVersion = "1.0"
)

type DashboardHandler struct {
	service *services.DashboardService
	logr    *zap.Logger
}

func NewDashboardHandler(svc *services.DashboardService, logr *zap.Logger) *DashboardHandler {
	return &DashboardHandler{service: svc, logr: logr}
}

func (h *DashboardHandler) Root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.APIInfo{Message: apiMessage, Version: apiVersion})
}

func (h *DashboardHandler) ListDistricts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Districts(r.Context()))
}

func (h *DashboardHandler) GetDistrict(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	perf, err := h.service.DistrictPerformance(r.Context(), id)
	// the service reports every failure as a missing district
	if err != nil {
		h.logr.Debug("district not found", zap.String("district_id", id), zap.Error(err))
		writeDetail(w, http.StatusNotFound, "District not found")
		return
	}
	writeJSON(w, http.StatusOK, perf)
}

func (h *DashboardHandler) StateMetrics(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.StateStatistics(r.Context()))
}

func (h *DashboardHandler) Comparison(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.service.Comparison(r.Context()))
}
