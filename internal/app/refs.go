// Package app provides application services that orchestrate use cases by
// coordinating between domain logic and the store through port interfaces.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/jsamuelsen11/realestate-crm/internal/domain"
	"github.com/jsamuelsen11/realestate-crm/internal/ports"
)

// ref is one outgoing reference of an entity being written.
type ref struct {
	field  string
	id     *int64
	lookup func(context.Context, int64) error
}

// checkRefs verifies every set reference exists. Missing targets become
// field errors on the referencing field; any other store failure is
// returned unchanged.
func checkRefs(ctx context.Context, refs ...ref) error {
	fields := make(map[string]string)
	for _, r := range refs {
		if r.id == nil {
			continue
		}
		if _, seen := fields[r.field]; seen {
			continue
		}
		if err := r.lookup(ctx, *r.id); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				fields[r.field] = fmt.Sprintf("%d does not exist", *r.id)
				continue
			}
			return err
		}
	}
	return domain.Fail(fields)
}

func collaboratorRef(store ports.CollaboratorRepository, field string, id *int64) ref {
	return ref{field: field, id: id, lookup: func(ctx context.Context, id int64) error {
		_, err := store.GetCollaborator(ctx, id)
		return err
	}}
}

func propertyRef(store ports.PropertyRepository, field string, id *int64) ref {
	return ref{field: field, id: id, lookup: func(ctx context.Context, id int64) error {
		_, err := store.GetProperty(ctx, id)
		return err
	}}
}

func clientRef(store ports.ClientRepository, field string, id *int64) ref {
	return ref{field: field, id: id, lookup: func(ctx context.Context, id int64) error {
		_, err := store.GetClient(ctx, id)
		return err
	}}
}
