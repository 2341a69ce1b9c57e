// Package jsonfile provides the flat-file implementation of the
// storage.Store interface: the whole collection lives in a single JSON
// array file (users.json by convention).
//
// This is the primary backend. There is no schema version and no index;
// the file IS the database. That keeps the tooling trivial — the seeder
// writes the same file, and `cat users.json | jq` is the admin console.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/aanand-mishra/users-api/internal/types"
)

// Store reads and writes the JSON collection file at Path.
// It holds no open file handle; every operation opens the file fresh,
// so a Store value is cheap and safe to share.
type Store struct {
	path string
	log  *slog.Logger
}

// New returns a Store for the collection file at path. The file does
// not need to exist yet — a missing file reads as an empty collection.
func New(path string, log *slog.Logger) *Store {
	return &Store{path: path, log: log}
}

// LoadAll reads and decodes the full collection.
//
// A missing or corrupt file is the one deliberate silent-recovery case
// in this application: it is logged and treated as an empty collection.
// This is first-run tolerance (the file simply hasn't been written
// yet), not a general error-swallowing policy — write failures in
// SaveAll are real errors.
func (s *Store) LoadAll(ctx context.Context) ([]types.User, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		s.log.Warn("collection file unreadable, starting empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return []types.User{}, nil
	}

	// Non-nil so an empty collection encodes as [] rather than null.
	users := make([]types.User, 0)
	if err := json.Unmarshal(data, &users); err != nil {
		s.log.Warn("collection file corrupt, starting empty",
			slog.String("path", s.path),
			slog.String("error", err.Error()))
		return []types.User{}, nil
	}

	return users, nil
}

// SaveAll overwrites the collection file with the given records.
//
// The write goes to a temporary file in the same directory which is
// then renamed over the target. Rename within one filesystem is atomic
// on POSIX systems, so a concurrent reader sees either the old file or
// the new one, never a half-written collection.
func (s *Store) SaveAll(ctx context.Context, users []types.User) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if users == nil {
		users = []types.User{}
	}

	data, err := json.Marshal(users)
	if err != nil {
		return fmt.Errorf("SaveAll: encode collection: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".users-*.json")
	if err != nil {
		return fmt.Errorf("SaveAll: create temp file: %w", err)
	}

	// On any failure below, remove the temp file so aborted writes
	// don't accumulate next to the collection.
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("SaveAll: write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("SaveAll: close temp file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("SaveAll: replace collection file: %w", err)
	}

	return nil
}
