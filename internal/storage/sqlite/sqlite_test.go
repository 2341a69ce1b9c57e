package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/users-api/internal/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users.db")

	store, err := New(path)
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleUsers() []types.User {
	return []types.User{
		{ID: "id-1", Gender: types.GenderMale, FirstName: "Johnny", LastName: "Appleseed", Age: 40},
		{ID: "id-2", Gender: types.GenderFemale, FirstName: "Rosalind", LastName: "Franklin", Age: 41},
	}
}

func TestLoadAll_FreshDatabaseIsEmpty(t *testing.T) {
	store := newTestStore(t)

	users, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestSaveAll_LoadAll_RoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()
	want := sampleUsers()

	require.NoError(t, store.SaveAll(ctx, want))

	got, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

// SaveAll replaces the whole collection, matching the flat file's
// semantics: records absent from the new collection are gone.
func TestSaveAll_ReplacesWholeCollection(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, sampleUsers()))
	require.NoError(t, store.SaveAll(ctx, sampleUsers()[1:]))

	got, err := store.LoadAll(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "id-2", got[0].ID)
}

func TestSaveAll_EmptyCollection(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveAll(ctx, sampleUsers()))
	require.NoError(t, store.SaveAll(ctx, nil))

	got, err := store.LoadAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}
