package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// DashboardHandler serves the summary view and the vocabulary lists.
type DashboardHandler struct {
	svc ports.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(svc ports.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Summary handles GET /api/v1/dashboard.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToDashboardResponse(s))
}

// Choices handles GET /api/v1/choices.
func (h *DashboardHandler) Choices(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, dto.NewChoicesResponse())
}
