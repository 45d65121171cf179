package handlers

import (
	"net/http"

	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// CollaboratorHandler handles HTTP requests for team members.
type CollaboratorHandler struct {
	svc ports.CollaboratorService
}

// NewCollaboratorHandler creates a new CollaboratorHandler with the given
// service port.
func NewCollaboratorHandler(svc ports.CollaboratorService) *CollaboratorHandler {
	return &CollaboratorHandler{svc: svc}
}

// ListCollaborators handles GET /api/v1/collaborators.
func (h *CollaboratorHandler) ListCollaborators(w http.ResponseWriter, r *http.Request) {
	role, err := queryChoice[collaborator.Role](r, "role")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	q, err := querySearch(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	cs, err := h.svc.ListCollaborators(r.Context(), collaborator.Filter{Role: role, Query: q})
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCollaboratorListResponse(cs))
}

// CreateCollaborator handles POST /api/v1/collaborators.
func (h *CollaboratorHandler) CreateCollaborator(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateCollaboratorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateCollaborator(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusCreated,
		domain.Message(domain.KindCollaborator, domain.ActionCreated, created.String()),
		dto.ToCollaboratorResponse(created))
}

// GetCollaborator handles GET /api/v1/collaborators/{id}.
func (h *CollaboratorHandler) GetCollaborator(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.GetCollaborator(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToCollaboratorResponse(c))
}

// UpdateCollaborator handles PATCH /api/v1/collaborators/{id}.
func (h *CollaboratorHandler) UpdateCollaborator(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateCollaboratorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateCollaborator(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK,
		domain.Message(domain.KindCollaborator, domain.ActionUpdated, updated.String()),
		dto.ToCollaboratorResponse(updated))
}

// DeleteCollaborator handles DELETE /api/v1/collaborators/{id}. A member
// still assigned to listings or tasks is refused with 409.
func (h *CollaboratorHandler) DeleteCollaborator(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	deleted, err := h.svc.DeleteCollaborator(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK,
		domain.Message(domain.KindCollaborator, domain.ActionDeleted, deleted.String()),
		dto.ToCollaboratorResponse(deleted))
}

// Workload handles GET /api/v1/collaborators/{id}/workload.
func (h *CollaboratorHandler) Workload(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	wl, err := h.svc.Workload(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToWorkloadResponse(wl))
}
