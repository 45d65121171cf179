package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// PropertyHandler handles HTTP requests for listings.
type PropertyHandler struct {
	svc ports.PropertyService
}

// NewPropertyHandler creates a new PropertyHandler with the given service port.
func NewPropertyHandler(svc ports.PropertyService) *PropertyHandler {
	return &PropertyHandler{svc: svc}
}

func parsePropertyFilter(r *http.Request) (property.Filter, error) {
	var (
		f   property.Filter
		err error
	)
	if f.Status, err = queryChoice[property.Status](r, "status"); err != nil {
		return f, err
	}
	if f.Type, err = queryChoice[property.Type](r, "type"); err != nil {
		return f, err
	}
	if f.CollaboratorID, err = queryRef(r, "collaborator_id"); err != nil {
		return f, err
	}
	f.Query, err = querySearch(r)
	return f, err
}

// ListProperties handles GET /api/v1/properties.
func (h *PropertyHandler) ListProperties(w http.ResponseWriter, r *http.Request) {
	filter, err := parsePropertyFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	props, err := h.svc.ListProperties(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPropertyListResponse(props))
}

// CreateProperty handles POST /api/v1/properties.
func (h *PropertyHandler) CreateProperty(w http.ResponseWriter, r *http.Request) {
	var req dto.CreatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	p, err := req.ToDomain()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.svc.CreateProperty(r.Context(), p)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusCreated,
		domain.Message(domain.KindProperty, domain.ActionCreated, created.String()),
		dto.ToPropertyResponse(created))
}

// GetProperty handles GET /api/v1/properties/{id}.
func (h *PropertyHandler) GetProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := h.svc.GetProperty(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPropertyResponse(p))
}

// UpdateProperty handles PATCH /api/v1/properties/{id}.
func (h *PropertyHandler) UpdateProperty(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdatePropertyRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, err := h.svc.UpdateProperty(r.Context(), id, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK,
		domain.Message(domain.KindProperty, domain.ActionUpdated, updated.String()),
		dto.ToPropertyResponse(updated))
}

// DeleteProperty handles DELETE /api/v1/properties/{id}.
func (h *PropertyHandler) DeleteProperty(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.DeleteProperty, domain.ActionDeleted)
}

// MarkAsSold handles POST /api/v1/properties/{id}/sold.
func (h *PropertyHandler) MarkAsSold(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.MarkAsSold, domain.ActionSold)
}

// MarkAsPending handles POST /api/v1/properties/{id}/pending.
func (h *PropertyHandler) MarkAsPending(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.MarkAsPending, domain.ActionPending)
}

func (h *PropertyHandler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id int64) (*property.Property, error),
	action domain.Action,
) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	p, err := op(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK,
		domain.Message(domain.KindProperty, action, p.String()),
		dto.ToPropertyResponse(p))
}

// Stats handles GET /api/v1/properties/stats.
func (h *PropertyHandler) Stats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	byStatus, err := h.svc.CountByStatus(ctx)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	byType, err := h.svc.CountByType(ctx)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	available, err := h.svc.TotalValue(ctx, property.StatusAvailable)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToPropertyStatsResponse(byStatus, byType, available))
}
