package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
)

var testTime = time.Date(2026, 2, 12, 15, 4, 5, 0, time.UTC)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

func withChiParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

func validProperty() property.Property {
	return property.Property{
		ID:        1,
		Address:   "12 Oak Lane",
		Price:     domain.MoneyFromFloat(350000),
		Type:      property.TypeHouse,
		Status:    property.StatusAvailable,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validClient() client.Client {
	return client.Client{
		ID:        2,
		Name:      "Dana Reyes",
		Email:     "dana@example.com",
		Type:      client.TypeBuyer,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validTask() task.Task {
	return task.Task{
		ID:        3,
		Title:     "Call lender",
		DueDate:   testTime.Add(24 * time.Hour),
		Priority:  task.PriorityHigh,
		Status:    task.StatusPending,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func validCollaborator() collaborator.Collaborator {
	return collaborator.Collaborator{
		ID:        4,
		Name:      "Ann Agent",
		Email:     "ann@example.com",
		Role:      collaborator.RoleAgent,
		CreatedAt: testTime,
		UpdatedAt: testTime,
	}
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(v); err != nil {
		t.Fatalf("failed to encode JSON body: %v", err)
	}
	return buf
}

func decodeJSON[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var result T
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode JSON response: %v", err)
	}
	return result
}

func requireStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Errorf("status = %d, want %d; body = %s", rec.Code, want, rec.Body.String())
	}
}
