package handlers

import (
	"context"
	"net/http"
	"strconv"

	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// TaskHandler handles HTTP requests for follow-up tasks.
type TaskHandler struct {
	svc          ports.TaskService
	clock        ports.Clock
	upcomingDays int
}

// NewTaskHandler creates a new TaskHandler. upcomingDays is the window used
// by GET /tasks/upcoming when the days parameter is absent.
func NewTaskHandler(svc ports.TaskService, clock ports.Clock, upcomingDays int) *TaskHandler {
	return &TaskHandler{svc: svc, clock: clock, upcomingDays: upcomingDays}
}

func parseTaskFilter(r *http.Request) (task.Filter, error) {
	var (
		f   task.Filter
		err error
	)
	if f.Status, err = queryChoice[task.Status](r, "status"); err != nil {
		return f, err
	}
	if f.Priority, err = queryChoice[task.Priority](r, "priority"); err != nil {
		return f, err
	}
	if f.AssignedTo, err = queryRef(r, "assigned_to"); err != nil {
		return f, err
	}
	if f.RelatedPropertyID, err = queryRef(r, "property_id"); err != nil {
		return f, err
	}
	if f.ClientID, err = queryRef(r, "client_id"); err != nil {
		return f, err
	}
	f.Query, err = querySearch(r)
	return f, err
}

// ListTasks handles GET /api/v1/tasks.
func (h *TaskHandler) ListTasks(w http.ResponseWriter, r *http.Request) {
	filter, err := parseTaskFilter(r)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	ts, err := h.svc.ListTasks(r.Context(), filter)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(ts, h.clock.Now()))
}

// Overdue handles GET /api/v1/tasks/overdue.
func (h *TaskHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	ts, err := h.svc.Overdue(r.Context())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(ts, h.clock.Now()))
}

// Upcoming handles GET /api/v1/tasks/upcoming?days=N.
func (h *TaskHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	days := h.upcomingDays
	if raw := r.URL.Query().Get("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			dto.WriteErrorResponse(w, r,
				domain.InvalidCriteria("days", domain.NewFieldError("days", "must be an integer")))
			return
		}
		days = n
	}

	ts, err := h.svc.Upcoming(r.Context(), days)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dto.ToTaskListResponse(ts, h.clock.Now()))
}

// CreateTask handles POST /api/v1/tasks.
func (h *TaskHandler) CreateTask(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	t, err := req.ToDomain(h.clock.Now())
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	created, err := h.svc.CreateTask(r.Context(), t)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusCreated,
		domain.Message(domain.KindTask, domain.ActionCreated, created.String()),
		dto.ToTaskResponse(created, h.clock.Now()))
}

// GetTask handles GET /api/v1/tasks/{id}.
func (h *TaskHandler) GetTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := h.svc.GetTask(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, dto.ToTaskResponse(t, h.clock.Now()))
}

// UpdateTask handles PATCH /api/v1/tasks/{id}.
func (h *TaskHandler) UpdateTask(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	var req dto.UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}
	patch, err := req.ToPatch()
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	updated, err := h.svc.UpdateTask(r.Context(), id, patch)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK,
		domain.Message(domain.KindTask, domain.ActionUpdated, updated.String()),
		dto.ToTaskResponse(updated, h.clock.Now()))
}

// DeleteTask handles DELETE /api/v1/tasks/{id}.
func (h *TaskHandler) DeleteTask(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.DeleteTask, domain.ActionDeleted)
}

// MarkComplete handles POST /api/v1/tasks/{id}/complete.
func (h *TaskHandler) MarkComplete(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.MarkComplete, domain.ActionComplete)
}

// MarkInProgress handles POST /api/v1/tasks/{id}/start.
func (h *TaskHandler) MarkInProgress(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, h.svc.MarkInProgress, domain.ActionInProgress)
}

func (h *TaskHandler) mutate(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id int64) (*task.Task, error),
	action domain.Action,
) {
	id, err := parseID(r, "id")
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	t, err := op(r.Context(), id)
	if err != nil {
		dto.WriteErrorResponse(w, r, err)
		return
	}

	writeMessage(w, http.StatusOK,
		domain.Message(domain.KindTask, action, t.String()),
		dto.ToTaskResponse(t, h.clock.Now()))
}
