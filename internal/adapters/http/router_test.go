package http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	adapthttp "github.com/jsamuelsen11/realestate-crm/internal/adapters/http"
	"github.com/jsamuelsen11/realestate-crm/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
	"github.com/jsamuelsen11/realestate-crm/mocks"
)

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2026, 2, 12, 15, 0, 0, 0, time.UTC) }

type testServices struct {
	property     *mocks.MockPropertyService
	client       *mocks.MockClientService
	task         *mocks.MockTaskService
	collaborator *mocks.MockCollaboratorService
	dashboard    *mocks.MockDashboardService
	registry     *mocks.MockHealthRegistry
}

func newTestHandlers(t *testing.T) (adapthttp.Handlers, testServices) {
	t.Helper()
	s := testServices{
		property:     mocks.NewMockPropertyService(t),
		client:       mocks.NewMockClientService(t),
		task:         mocks.NewMockTaskService(t),
		collaborator: mocks.NewMockCollaboratorService(t),
		dashboard:    mocks.NewMockDashboardService(t),
		registry:     mocks.NewMockHealthRegistry(t),
	}
	return adapthttp.Handlers{
		Property:     handlers.NewPropertyHandler(s.property),
		Client:       handlers.NewClientHandler(s.client),
		Task:         handlers.NewTaskHandler(s.task, fixedClock{}, 7),
		Collaborator: handlers.NewCollaboratorHandler(s.collaborator),
		Dashboard:    handlers.NewDashboardHandler(s.dashboard),
		Health:       handlers.NewHealthHandler(s.registry),
	}, s
}

func newTestRouter(t *testing.T) (http.Handler, testServices) {
	t.Helper()
	h, s := newTestHandlers(t)
	return adapthttp.NewRouter(h), s
}

func TestRouter_AllRoutesRegistered(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	expectedRoutes := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/health/live"},
		{http.MethodGet, "/health/ready"},
		{http.MethodGet, "/api/v1/properties/"},
		{http.MethodPost, "/api/v1/properties/"},
		{http.MethodGet, "/api/v1/properties/stats"},
		{http.MethodGet, "/api/v1/properties/{id}"},
		{http.MethodPatch, "/api/v1/properties/{id}"},
		{http.MethodDelete, "/api/v1/properties/{id}"},
		{http.MethodPost, "/api/v1/properties/{id}/sold"},
		{http.MethodPost, "/api/v1/properties/{id}/pending"},
		{http.MethodGet, "/api/v1/clients/"},
		{http.MethodPost, "/api/v1/clients/"},
		{http.MethodGet, "/api/v1/clients/buyers"},
		{http.MethodGet, "/api/v1/clients/sellers"},
		{http.MethodGet, "/api/v1/clients/{id}"},
		{http.MethodPatch, "/api/v1/clients/{id}"},
		{http.MethodDelete, "/api/v1/clients/{id}"},
		{http.MethodGet, "/api/v1/tasks/"},
		{http.MethodPost, "/api/v1/tasks/"},
		{http.MethodGet, "/api/v1/tasks/overdue"},
		{http.MethodGet, "/api/v1/tasks/upcoming"},
		{http.MethodGet, "/api/v1/tasks/{id}"},
		{http.MethodPatch, "/api/v1/tasks/{id}"},
		{http.MethodDelete, "/api/v1/tasks/{id}"},
		{http.MethodPost, "/api/v1/tasks/{id}/complete"},
		{http.MethodPost, "/api/v1/tasks/{id}/start"},
		{http.MethodGet, "/api/v1/collaborators/"},
		{http.MethodPost, "/api/v1/collaborators/"},
		{http.MethodGet, "/api/v1/collaborators/{id}"},
		{http.MethodPatch, "/api/v1/collaborators/{id}"},
		{http.MethodDelete, "/api/v1/collaborators/{id}"},
		{http.MethodGet, "/api/v1/collaborators/{id}/workload"},
		{http.MethodGet, "/api/v1/dashboard"},
		{http.MethodGet, "/api/v1/choices"},
	}

	chiRouter, ok := router.(*chi.Mux)
	if !ok {
		t.Fatal("router is not *chi.Mux")
	}

	registered := make(map[string]bool)
	err := chi.Walk(chiRouter, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		registered[method+" "+route] = true
		return nil
	})
	if err != nil {
		t.Fatalf("chi.Walk error: %v", err)
	}

	for _, expected := range expectedRoutes {
		key := expected.method + " " + expected.path
		if !registered[key] {
			t.Errorf("route %s not registered", key)
		}
	}
}

func TestRouter_MiddlewareApplied(t *testing.T) {
	t.Parallel()

	h, s := newTestHandlers(t)

	called := false
	testMW := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			called = true
			next.ServeHTTP(w, r)
		})
	}

	router := adapthttp.NewRouter(h, testMW)

	s.registry.EXPECT().CheckAll(mock.Anything).Return(map[string]error{})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
	router.ServeHTTP(rec, req)

	if !called {
		t.Error("middleware was not called")
	}
}

func TestRouter_IntegrationListProperties(t *testing.T) {
	t.Parallel()

	router, s := newTestRouter(t)

	s.property.EXPECT().ListProperties(mock.Anything, property.Filter{Status: property.StatusSold}).
		Return([]property.Property{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/properties?status=sold", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusOK)
	}
}

func TestRouter_StaticSegmentBeatsID(t *testing.T) {
	t.Parallel()

	router, s := newTestRouter(t)

	s.task.EXPECT().Overdue(mock.Anything).Return([]task.Task{}, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/tasks/overdue", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_PathIDReachesHandler(t *testing.T) {
	t.Parallel()

	router, s := newTestRouter(t)

	p := property.Property{ID: 42, Address: "1 Main St", Type: property.TypeLand, Status: property.StatusAvailable}
	s.property.EXPECT().MarkAsSold(mock.Anything, int64(42)).Return(&p, nil)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties/42/sold", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, http.StatusOK, rec.Body.String())
	}
}

func TestRouter_NotFoundReturns404(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/nonexistent", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusNotFound)
	}
}

func TestRouter_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	router, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, "/api/v1/properties/1", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("status = %d, want %d", rec.Code, http.StatusMethodNotAllowed)
	}
}
