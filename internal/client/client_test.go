package client

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/users-api/internal/http/handlers/user"
	"github.com/aanand-mishra/users-api/internal/http/middleware"
	"github.com/aanand-mishra/users-api/internal/storage/jsonfile"
	"github.com/aanand-mishra/users-api/internal/types"
	"github.com/aanand-mishra/users-api/internal/users"
)

// newTestServer runs the real API (router, service, jsonfile store) on
// an httptest server, so client tests exercise the actual wire format.
func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	path := filepath.Join(t.TempDir(), "users.json")
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := users.New(jsonfile.New(path, log))

	router := http.NewServeMux()
	router.HandleFunc("POST /api/users", user.New(svc))
	router.HandleFunc("GET /api/users", user.GetList(svc))
	router.HandleFunc("GET /api/users/{id}", user.GetByID(svc))
	router.HandleFunc("PATCH /api/users/{id}", user.Update(svc))
	router.HandleFunc("DELETE /api/users/{id}", user.Delete(svc))

	srv := httptest.NewServer(middleware.CORS(router))
	t.Cleanup(srv.Close)
	return srv
}

func validPayload() types.NewUser {
	return types.NewUser{
		Gender:    types.GenderMale,
		FirstName: "Johnny",
		LastName:  "Appleseed",
		Age:       40,
	}
}

func TestClient_CRUDRoundTrip(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, srv.Client())
	ctx := context.Background()

	// Empty collection to start with.
	all, err := c.FetchUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)

	// Create.
	created, err := c.AddUser(ctx, validPayload())
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "Johnny", created.FirstName)

	// Read back, single and list.
	got, err := c.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)

	all, err = c.FetchUsers(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, created, all[0])

	// Patch one field.
	name := "Richard"
	require.NoError(t, c.UpdateUser(ctx, created.ID, types.Patch{FirstName: &name}))

	got, err = c.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Richard", got.FirstName)
	assert.Equal(t, created.LastName, got.LastName)

	// Delete.
	require.NoError(t, c.DeleteUser(ctx, created.ID))
	_, err = c.GetUser(ctx, created.ID)
	assert.Error(t, err)
}

func TestClient_ErrorsAreLabeledPerOperation(t *testing.T) {
	srv := newTestServer(t)
	c := New(srv.URL, srv.Client())
	ctx := context.Background()

	payload := validPayload()
	payload.FirstName = "Amy" // too short
	_, err := c.AddUser(ctx, payload)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "add user:")
	assert.Contains(t, err.Error(), "field firstName must be at least 5 characters")

	_, err = c.GetUser(ctx, "no-such-id")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "get user:")
	assert.Contains(t, err.Error(), "404")

	name := "Richard"
	err = c.UpdateUser(ctx, "no-such-id", types.Patch{FirstName: &name})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "edit user:")
}

func TestClient_TransportFailure(t *testing.T) {
	// A server that is already closed: every request fails at the
	// transport level, and the client wraps rather than panics.
	srv := newTestServer(t)
	url := srv.URL
	srv.Close()

	c := New(url, nil)
	_, err := c.FetchUsers(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "fetch users:")
}
