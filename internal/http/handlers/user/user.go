// Package user contains all HTTP handlers related to the user resource.
//
// HANDLER PATTERN USED HERE — THE CLOSURE / FACTORY PATTERN:
// ────────────────────────────────────────────────────────────
// Go's router expects handler functions with the signature:
//
//	func(http.ResponseWriter, *http.Request)
//
// That signature has no room for extra parameters like the service.
// To inject dependencies we use a factory function that:
//  1. Accepts dependencies (the *users.Service)
//  2. Returns a function with the exact signature the router needs
//
// Because the inner function "closes over" the outer parameters, it can
// access the service even after the factory call has returned:
//
//	router.HandleFunc("POST /api/users", user.New(svc))
//	//                                   ^^^^^^^^^^^^^
//	//                New(svc) is called ONCE at startup; the handler
//	//                it returns runs on EVERY incoming request.
//
// The handlers themselves stay thin: decode the payload, call the
// service, map the service's error taxonomy onto HTTP status codes.
// All record rules live in internal/users.
package user

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aanand-mishra/users-api/internal/users"
	"github.com/aanand-mishra/users-api/internal/utils/response"
)

// statusFor maps a service error to the HTTP status the REST surface
// promises: 400 for rejected payloads, 404 for unknown ids, 500 for
// anything unexpected (storage write failures, mostly).
func statusFor(err error) int {
	switch {
	case users.IsInvalidInput(err):
		return http.StatusBadRequest
	case errors.Is(err, users.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// New handles POST /api/users
// Creates a new user from the JSON request body.
//
// Request body (JSON):
//
//	{ "gender": "MALE", "firstName": "Johnny", "lastName": "Appleseed", "age": 40 }
//
// The age value may be a number or a numeric string — browser forms
// submit strings.
//
// Success response (201 Created) — the created record with its id:
//
//	{ "id": "4b2f…", "gender": "MALE", "firstName": "Johnny", ... }
//
// Error responses:
//
//	400 Bad Request — empty body, malformed JSON, an unrecognized field
//	                  name, or a field value outside the record rules
//	500 Internal    — storage failure
//
// ─────────────────────────────────────────────────────────────────────────────
func New(svc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("creating a user")

		payload, err := users.DecodeNewUser(r.Body)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		created, err := svc.Create(r.Context(), payload)
		if err != nil {
			slog.Error("error creating user", slog.String("error", err.Error()))
			response.WriteJSON(w, statusFor(err), response.GeneralError(err))
			return
		}

		slog.Info("user created", slog.String("id", created.ID))
		response.WriteJSON(w, http.StatusCreated, created)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetList handles GET /api/users
// Returns a JSON array of all users in the collection, in persisted
// order. Returns an empty array [] (not null) when there are none —
// including on a first run when the collection file doesn't exist yet.
// ─────────────────────────────────────────────────────────────────────────────
func GetList(svc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		slog.Info("getting all users")

		all, err := svc.List(r.Context())
		if err != nil {
			slog.Error("error getting users", slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, all)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// GetByID handles GET /api/users/{id}
// Fetches a single user by id.
//
// Success response (200 OK): the user record.
// Error response (404 Not Found): no record has that id.
// ─────────────────────────────────────────────────────────────────────────────
func GetByID(svc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// r.PathValue("id") extracts the {id} segment from the URL
		// (Go 1.22+ named path parameters in ServeMux patterns).
		id := r.PathValue("id")
		slog.Info("getting a user", slog.String("id", id))

		u, err := svc.GetByID(r.Context(), id)
		if err != nil {
			slog.Error("error getting user",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, statusFor(err), response.GeneralError(err))
			return
		}

		response.WriteJSON(w, http.StatusOK, u)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Update handles PATCH /api/users/{id}
// Merges the partial payload onto the stored record: present fields
// overwrite, absent fields keep their prior values, id never changes.
//
// Request body (JSON) — any subset of the record fields:
//
//	{ "firstName": "Johnny" }
//
// Success response: 204 No Content, empty body.
//
// Error responses:
//
//	400 Bad Request — unrecognized field name, or the merged record
//	                  would break a record rule
//	404 Not Found   — no record has that id
//	500 Internal    — storage failure
//
// ─────────────────────────────────────────────────────────────────────────────
func Update(svc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("updating a user", slog.String("id", id))

		patch, err := users.DecodePatch(r.Body)
		if err != nil {
			response.WriteJSON(w, http.StatusBadRequest, response.GeneralError(err))
			return
		}

		if _, err := svc.Update(r.Context(), id, patch); err != nil {
			slog.Error("error updating user",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, statusFor(err), response.GeneralError(err))
			return
		}

		slog.Info("user updated", slog.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Delete handles DELETE /api/users/{id}
// Removes the record with the given id. Deleting an absent id is a
// no-op, so the operation is idempotent and always answers 204.
// ─────────────────────────────────────────────────────────────────────────────
func Delete(svc *users.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := r.PathValue("id")
		slog.Info("deleting a user", slog.String("id", id))

		if err := svc.Delete(r.Context(), id); err != nil {
			slog.Error("error deleting user",
				slog.String("id", id),
				slog.String("error", err.Error()))
			response.WriteJSON(w, http.StatusInternalServerError,
				response.GeneralError(err))
			return
		}

		slog.Info("user deleted", slog.String("id", id))
		w.WriteHeader(http.StatusNoContent)
	}
}
