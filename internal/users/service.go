// Package users implements the record service: create, list, get,
// update, and delete operations over a storage.Store, plus the
// service-side validator that guards every write.
//
// Every mutating operation is a load-modify-save cycle over the whole
// collection, serialized by a mutex so concurrent in-process mutations
// cannot lose updates. Writers in other processes still race at file
// granularity; cross-process consistency is out of scope.
package users

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/aanand-mishra/users-api/internal/storage"
	"github.com/aanand-mishra/users-api/internal/types"
)

// Service exposes the record operations. It is safe for concurrent use.
type Service struct {
	store    storage.Store
	validate *validator.Validate

	// mu covers each load-modify-save cycle as a whole.
	mu sync.Mutex
}

// New returns a Service persisting through store.
func New(store storage.Store) *Service {
	return &Service{
		store:    store,
		validate: newValidator(),
	}
}

// Create validates the payload, assigns a fresh id, and appends the
// record to the collection. Returns the created record, id included.
//
// The id is a random UUID (version 4): cryptographically strong, never
// derived from record content or position, and distinct from every
// previously assigned id with overwhelming probability.
func (s *Service) Create(ctx context.Context, payload types.NewUser) (types.User, error) {
	u := types.User{
		ID:        uuid.NewString(),
		Gender:    payload.Gender,
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Age:       int(payload.Age),
	}

	if err := s.checkUser(u); err != nil {
		return types.User{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.LoadAll(ctx)
	if err != nil {
		return types.User{}, err
	}

	if err := s.store.SaveAll(ctx, append(all, u)); err != nil {
		return types.User{}, err
	}

	return u, nil
}

// List returns the full collection in persisted order. The slice is
// never nil, so an empty collection encodes as [] in JSON.
func (s *Service) List(ctx context.Context) ([]types.User, error) {
	return s.store.LoadAll(ctx)
}

// GetByID returns the record with the given id, or ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (types.User, error) {
	all, err := s.store.LoadAll(ctx)
	if err != nil {
		return types.User{}, err
	}

	for _, u := range all {
		if u.ID == id {
			return u, nil
		}
	}

	return types.User{}, ErrNotFound
}

// Update merges the patch onto the stored record: a field present in
// the patch overwrites, an absent field keeps its prior value, and the
// id is immutable. The merged record must satisfy the full rule set
// before anything is written.
//
// An unknown id returns ErrNotFound without touching the store.
func (s *Service) Update(ctx context.Context, id string, patch types.Patch) (types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.LoadAll(ctx)
	if err != nil {
		return types.User{}, err
	}

	for i, u := range all {
		if u.ID != id {
			continue
		}

		merged := patch.Apply(u)
		if err := s.checkUser(merged); err != nil {
			return types.User{}, err
		}

		all[i] = merged
		if err := s.store.SaveAll(ctx, all); err != nil {
			return types.User{}, err
		}
		return merged, nil
	}

	return types.User{}, ErrNotFound
}

// Delete removes the record with the given id. Deleting an id that does
// not exist is a no-op, not an error, so the operation is idempotent.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	all, err := s.store.LoadAll(ctx)
	if err != nil {
		return err
	}

	kept := make([]types.User, 0, len(all))
	for _, u := range all {
		if u.ID != id {
			kept = append(kept, u)
		}
	}

	return s.store.SaveAll(ctx, kept)
}
