package handlers_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/mock"

	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/dto"
	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/mocks"
)

func newCollaboratorHandler(t *testing.T) (*handlers.CollaboratorHandler, *mocks.MockCollaboratorService) {
	t.Helper()
	svc := mocks.NewMockCollaboratorService(t)
	return handlers.NewCollaboratorHandler(svc), svc
}

func TestListCollaborators_RoleFilter(t *testing.T) {
	t.Parallel()
	h, svc := newCollaboratorHandler(t)

	svc.EXPECT().ListCollaborators(mock.Anything, collaborator.Filter{Role: collaborator.RoleManager}).
		Return([]collaborator.Collaborator{validCollaborator()}, nil)

	rec := httptest.NewRecorder()
	h.ListCollaborators(rec, httptest.NewRequest(http.MethodGet, "/api/v1/collaborators?role=manager", nil))

	requireStatus(t, rec, http.StatusOK)
}

func TestListCollaborators_InvalidRole(t *testing.T) {
	t.Parallel()
	h, _ := newCollaboratorHandler(t)

	rec := httptest.NewRecorder()
	h.ListCollaborators(rec, httptest.NewRequest(http.MethodGet, "/api/v1/collaborators?role=intern", nil))

	requireStatus(t, rec, http.StatusBadRequest)
}

func TestCreateCollaborator_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCollaboratorHandler(t)

	created := validCollaborator()
	svc.EXPECT().CreateCollaborator(mock.Anything, mock.MatchedBy(func(c *collaborator.Collaborator) bool {
		return c.Name == "Ann Agent" && c.Role == ""
	})).Return(&created, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/collaborators",
		jsonBody(t, map[string]any{"name": "Ann Agent", "email": "ann@example.com"}))
	h.CreateCollaborator(rec, req)

	requireStatus(t, rec, http.StatusCreated)
	resp := decodeJSON[dto.MessageResponse[dto.CollaboratorResponse]](t, rec)
	if resp.Data.Role != "AGENT" || resp.Data.RoleDisplay != "Agent" {
		t.Errorf("Role = %q/%q, want AGENT/Agent", resp.Data.Role, resp.Data.RoleDisplay)
	}
}

func TestUpdateCollaborator_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCollaboratorHandler(t)

	updated := validCollaborator()
	updated.Role = collaborator.RoleAdmin
	svc.EXPECT().UpdateCollaborator(mock.Anything, int64(4), mock.MatchedBy(func(p collaborator.Patch) bool {
		return p.Role != nil && *p.Role == collaborator.RoleAdmin
	})).Return(&updated, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/collaborators/4", jsonBody(t, map[string]any{"role": "admin"}))
	req = withChiParams(req, map[string]string{"id": "4"})
	h.UpdateCollaborator(rec, req)

	requireStatus(t, rec, http.StatusOK)
}

func TestDeleteCollaborator_Blocked(t *testing.T) {
	t.Parallel()
	h, svc := newCollaboratorHandler(t)

	blocked := domain.DeleteBlocked(domain.PropertyRefs(3), domain.TaskRefs(2))
	svc.EXPECT().DeleteCollaborator(mock.Anything, int64(4)).Return(nil, blocked)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/collaborators/4", nil)
	req = withChiParams(req, map[string]string{"id": "4"})
	h.DeleteCollaborator(rec, req)

	requireStatus(t, rec, http.StatusConflict)
	resp := decodeJSON[dto.ErrorResponse](t, rec)
	if resp.Detail != blocked.Error() {
		t.Errorf("Detail = %q, want %q", resp.Detail, blocked.Error())
	}
}

func TestDeleteCollaborator_Success(t *testing.T) {
	t.Parallel()
	h, svc := newCollaboratorHandler(t)

	deleted := validCollaborator()
	svc.EXPECT().DeleteCollaborator(mock.Anything, int64(4)).Return(&deleted, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/v1/collaborators/4", nil)
	req = withChiParams(req, map[string]string{"id": "4"})
	h.DeleteCollaborator(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.MessageResponse[dto.CollaboratorResponse]](t, rec)
	if resp.Message != `Collaborator "Ann Agent" deleted successfully!` {
		t.Errorf("Message = %q", resp.Message)
	}
}

func TestWorkload(t *testing.T) {
	t.Parallel()
	h, svc := newCollaboratorHandler(t)

	svc.EXPECT().Workload(mock.Anything, int64(4)).Return(&collaborator.Workload{
		CollaboratorID: 4, Name: "Ann Agent", Properties: 3, Tasks: 2,
	}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/collaborators/4/workload", nil)
	req = withChiParams(req, map[string]string{"id": "4"})
	h.Workload(rec, req)

	requireStatus(t, rec, http.StatusOK)
	resp := decodeJSON[dto.WorkloadResponse](t, rec)
	if resp.Properties != 3 || resp.Tasks != 2 || resp.Total != 5 {
		t.Errorf("Workload = %+v, want 3/2/5", resp)
	}
}
