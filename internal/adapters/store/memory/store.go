// Package memory is an in-process implementation of ports.Store. It backs
// the service when no database is configured and is the store used by the
// application-layer tests.
package memory

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/client"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/collaborator"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/property"
	"github.com/jsamuelsen11/realestate-crm/internal/domain/task"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// Compile-time check that Store implements ports.Store.
var _ ports.Store = (*Store)(nil)

// Store keeps every entity set in maps guarded by a single RWMutex. Values
// are copied on the way in and out so callers never share memory with the
// store.
type Store struct {
	mu    sync.RWMutex
	clock ports.Clock

	lastID        int64
	properties    map[int64]property.Property
	clients       map[int64]client.Client
	tasks         map[int64]task.Task
	collaborators map[int64]collaborator.Collaborator
}

// New creates an empty Store. The clock stamps CreatedAt and UpdatedAt.
func New(clock ports.Clock) *Store {
	return &Store{
		clock:         clock,
		properties:    make(map[int64]property.Property),
		clients:       make(map[int64]client.Client),
		tasks:         make(map[int64]task.Task),
		collaborators: make(map[int64]collaborator.Collaborator),
	}
}

// nextID must be called with mu held for writing. IDs are unique across all
// entity sets.
func (s *Store) nextID() int64 {
	s.lastID++
	return s.lastID
}

func notFound(kind string, id int64) error {
	return fmt.Errorf("%s %d: %w", kind, id, domain.ErrNotFound)
}

func emailTaken(email string) error {
	return fmt.Errorf("email %q already in use: %w", email, domain.ErrConflict)
}

// emailInUse reports whether any value other than self has the email,
// compared case-insensitively.
func emailInUse[V any](m map[int64]V, self int64, email string, emailOf func(V) string) bool {
	for id, v := range m {
		if id != self && strings.EqualFold(emailOf(v), email) {
			return true
		}
	}
	return false
}

// selectSorted returns copies of the values that match, in ID order.
func selectSorted[V any](m map[int64]V, match func(*V) bool, clone func(V) V) []V {
	out := make([]V, 0, len(m))
	for _, id := range slices.Sorted(maps.Keys(m)) {
		v := m[id]
		if match(&v) {
			out = append(out, clone(v))
		}
	}
	return out
}

// Reference rules are enforced again here, under the write lock, so a write
// that races a service-level check cannot leave a dangling ID behind.

func stillReferenced(kind string, id int64) error {
	return fmt.Errorf("%s %d is still referenced: %w", kind, id, domain.ErrConflict)
}

// checkRef must be called with mu held.
func checkRef[V any](m map[int64]V, field string, id *int64) error {
	if id == nil {
		return nil
	}
	if _, ok := m[*id]; !ok {
		return fmt.Errorf("%s %d no longer exists: %w", field, *id, domain.ErrConflict)
	}
	return nil
}

func refersTo(ref *int64, id int64) bool {
	return ref != nil && *ref == id
}

// anyRefers reports whether some value in m points at id through ref.
func anyRefers[V any](m map[int64]V, id int64, ref func(V) *int64) bool {
	for _, v := range m {
		if refersTo(ref(v), id) {
			return true
		}
	}
	return false
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
