// Package storage defines the Store interface — a contract that any
// persistence backend must satisfy to work with this application.
//
// WHY AN INTERFACE?
// ─────────────────
// The service layer should not know or care which backend it is
// talking to. By depending only on this interface:
//
//   - Switching backends = implement the interface for the new store,
//     change one line in main.go. Zero service changes.
//
//   - Writing tests = pass a fake that satisfies the interface.
//     No real file or database needed for unit tests.
//
// WHY WHOLE-COLLECTION OPERATIONS?
// ────────────────────────────────
// The persisted state is one small collection, read and written as a
// unit. Every mutation in the service layer is a load-modify-save
// cycle over the full collection, so the contract is deliberately just
// LoadAll and SaveAll — no per-record operations at the storage layer.
package storage

import (
	"context"

	"github.com/aanand-mishra/users-api/internal/types"
)

// Store is the persistence contract.
// Any concrete type that implements both methods automatically
// satisfies this interface — Go does this implicitly.
type Store interface {
	// LoadAll reads the full collection. A missing or unreadable
	// backing store is NOT an error: implementations log it and return
	// an empty (non-nil) slice, so a fresh deployment starts from
	// nothing instead of crashing.
	LoadAll(ctx context.Context) ([]types.User, error)

	// SaveAll overwrites the entire persisted collection. From the
	// caller's perspective the write is all-or-nothing: a concurrent
	// reader must never observe a partially written collection.
	SaveAll(ctx context.Context, users []types.User) error
}
