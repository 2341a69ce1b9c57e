// Package sqlite provides a SQLite-backed implementation of the
// storage.Store interface using Go's standard database/sql package.
//
// It exists for deployments that outgrow a bare JSON file but keeps the
// same whole-collection contract: LoadAll selects every row, SaveAll
// replaces the entire table inside one transaction. That preserves the
// "collection as the unit of write" semantics of the flat file while
// gaining real durability.
//
// The blank import below registers the sqlite3 driver with database/sql.
// The driver's init() function does this automatically when the package
// is loaded — we never call anything from it directly.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/aanand-mishra/users-api/internal/types"

	// Side-effect only: registers the "sqlite3" driver. Without this
	// sql.Open("sqlite3", ...) fails with "unknown driver".
	_ "github.com/mattn/go-sqlite3"
)

// Store is the concrete SQLite implementation of storage.Store.
// A single *sql.DB is a connection pool and safe for concurrent use.
type Store struct {
	db *sql.DB
}

// New opens the SQLite database at path, creates the users table if it
// does not already exist, and returns a ready-to-use *Store.
func New(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// CREATE TABLE IF NOT EXISTS is idempotent — safe on every startup.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS users (
			id         TEXT    PRIMARY KEY,
			gender     TEXT    NOT NULL,
			first_name TEXT    NOT NULL,
			last_name  TEXT    NOT NULL,
			age        INTEGER NOT NULL
		)
	`)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: create table: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the underlying connection pool.
func (s *Store) Close() error {
	return s.db.Close()
}

// LoadAll returns every user row. rowid ordering keeps the sequence
// stable across reads, matching the flat file's persisted order.
func (s *Store) LoadAll(ctx context.Context) ([]types.User, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, gender, first_name, last_name, age FROM users ORDER BY rowid",
	)
	if err != nil {
		return nil, fmt.Errorf("LoadAll: query: %w", err)
	}
	defer rows.Close()

	users := make([]types.User, 0)

	for rows.Next() {
		var u types.User
		if err := rows.Scan(&u.ID, &u.Gender, &u.FirstName, &u.LastName, &u.Age); err != nil {
			return nil, fmt.Errorf("LoadAll: scan row: %w", err)
		}
		users = append(users, u)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("LoadAll: rows iteration: %w", err)
	}

	return users, nil
}

// SaveAll replaces the whole table with the given records in one
// transaction, so readers see the old collection or the new one, never
// a mix.
func (s *Store) SaveAll(ctx context.Context, users []types.User) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("SaveAll: begin tx: %w", err)
	}
	// Rollback is a no-op after a successful Commit.
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM users"); err != nil {
		return fmt.Errorf("SaveAll: clear table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		"INSERT INTO users (id, gender, first_name, last_name, age) VALUES (?, ?, ?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("SaveAll: prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, u := range users {
		if _, err := stmt.ExecContext(ctx, u.ID, string(u.Gender), u.FirstName, u.LastName, u.Age); err != nil {
			return fmt.Errorf("SaveAll: insert user %s: %w", u.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("SaveAll: commit: %w", err)
	}

	return nil
}
