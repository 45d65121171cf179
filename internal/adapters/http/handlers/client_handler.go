package handlers

import (
	"context"
	"net/http"

	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// ClientHandler handles HTTP requests for buyers and sellers.
type ClientHandler struct {
	svc ports.ClientService
}

// NewClientHandler creates a new ClientHandler with the given service port.
func NewClientHandler(svc ports.ClientService) *ClientHandler {
	return &ClientHandler{svc: svc}
}

func parseClientFilter(r *http.Request) (client.Filter, error) {
	var (
		f   client.Filter
		err error
	)
	if f.Type, err = queryChoice[client.Type](r, "type"); err != nil {
		return f, err
	}
	if f.InterestedIn, err = queryRef(r, "property_id"); err != nil {
		return f, err
	}
	f.Query, err = querySearch(r)
	return f, err
}

// ListClients handles GET /api/v1/clients.
func (h *ClientHandler) ListClients(w http.ResponseWriter, r *http.Request) {
	filter, err := parseClientFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	cs, err := h.svc.ListClients(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToClientListResponse(cs))
}

// Buyers handles GET /api/v1/clients/buyers.
func (h *ClientHandler) Buyers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.Buyers)
}

// Sellers handles GET /api/v1/clients/sellers.
func (h *ClientHandler) Sellers(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.svc.Sellers)
}

func (h *ClientHandler) list(w http.ResponseWriter, r *http.Request, op func(context.Context) ([]client.Client, error)) {
	cs, err := op(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToClientListResponse(cs))
}

// CreateClient handles POST /api/v1/clients.
func (h *ClientHandler) CreateClient(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	created, err := h.svc.CreateClient(r.Context(), req.ToDomain())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusCreated,
		domain.Message(domain.KindClient, domain.ActionCreated, created.String()),
		dto.ToClientResponse(created))
}

// GetClient handles GET /api/v1/clients/{id}.
func (h *ClientHandler) GetClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	c, err := h.svc.GetClient(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToClientResponse(c))
}

// UpdateClient handles PATCH /api/v1/clients/{id}.
func (h *ClientHandler) UpdateClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateClientRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.svc.UpdateClient(r.Context(), id, req.ToPatch())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK,
		domain.Message(domain.KindClient, domain.ActionUpdated, updated.String()),
		dto.ToClientResponse(updated))
}

// DeleteClient handles DELETE /api/v1/clients/{id}.
func (h *ClientHandler) DeleteClient(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	deleted, err := h.svc.DeleteClient(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK,
		domain.Message(domain.KindClient, domain.ActionDeleted, deleted.String()),
		dto.ToClientResponse(deleted))
}
