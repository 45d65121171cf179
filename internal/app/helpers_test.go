package app

import (
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/jsamuelsen11/realestate-crm/internal/adapters/store/memory"
	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/platform/clock"
)

var testNow = time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func int64Ptr(v int64) *int64 { return &v }

// services wires every service over one fresh memory store.
type services struct {
	store         *memory.Store
	properties    *PropertyService
	clients       *ClientService
	tasks         *TaskService
	collaborators *CollaboratorService
}

func newServices(t *testing.T) services {
	t.Helper()

	c := clock.Fixed(testNow)
	store := memory.New(c)
	log := discardLogger()
	return services{
		store:         store,
		properties:    NewPropertyService(store, c, log),
		clients:       NewClientService(store, log),
		tasks:         NewTaskService(store, c, log),
		collaborators: NewCollaboratorService(store, log),
	}
}

func requireField(t *testing.T, err error, field string) {
	t.Helper()

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("error = %v, want *domain.ValidationError", err)
	}
	if _, ok := verr.Fields[field]; !ok {
		t.Errorf("ValidationError.Fields missing key %q, got %v", field, verr.Fields)
	}
}
