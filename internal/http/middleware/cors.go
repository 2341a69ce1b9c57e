// Package middleware holds the small ServeMux middlewares the server
// wraps around its router.
package middleware

import "net/http"

// CORS allows the browser UI, served from a different origin during
// development, to call the API. The policy is deliberately permissive:
// this service carries no credentials and no authentication, so there
// is nothing an origin restriction would protect.
func CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		// Preflight requests end here; the router never sees them.
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
