// main is the entry point of the Users API application.
//
// STARTUP SEQUENCE:
//  1. Load configuration from a YAML file
//  2. Initialise the logger
//  3. Open the storage backend (flat JSON file, or SQLite)
//  4. Build the record service and register all HTTP routes
//  5. Start the HTTP server in a separate goroutine
//  6. Block the main goroutine until an OS signal (Ctrl+C / kill) arrives
//  7. Gracefully shut down: finish in-flight requests, then exit
//
// RUNNING THE SERVER:
//
//	go run ./cmd/users-api --config=config/local.yaml
//
// or (with the environment variable):
//
//	CONFIG_PATH=config/local.yaml go run ./cmd/users-api
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/aanand-mishra/users-api/internal/config"
	"github.com/aanand-mishra/users-api/internal/http/handlers/user"
	"github.com/aanand-mishra/users-api/internal/http/middleware"
	"github.com/aanand-mishra/users-api/internal/storage"
	"github.com/aanand-mishra/users-api/internal/storage/jsonfile"
	"github.com/aanand-mishra/users-api/internal/storage/sqlite"
	"github.com/aanand-mishra/users-api/internal/users"
)

func main() {
	// ── 1. Load Config ────────────────────────────────────────────────────
	// MustLoad reads the YAML config and exits if anything is wrong.
	// The name "Must" signals: if this returns, config is guaranteed valid.
	cfg := config.MustLoad()

	// ── 2. Initialise Logger ──────────────────────────────────────────────
	// slog is Go's structured logger (stdlib since Go 1.21). Structured
	// logging writes key=value pairs rather than plain strings, making
	// logs easy to filter/search in tools like Loki or Datadog.
	log := setupLogger(cfg.Env)
	slog.SetDefault(log)

	log.Info("starting users-api",
		slog.String("env", cfg.Env),
		slog.String("version", "1.0.0"),
	)

	// ── 3. Initialise Storage ─────────────────────────────────────────────
	// We keep the result as the storage.Store INTERFACE, not the concrete
	// type. The rest of the code only knows about the interface, which is
	// exactly what lets one config key switch between backends.
	var store storage.Store
	switch cfg.StorageType {
	case config.StorageSQLite:
		s, err := sqlite.New(cfg.StoragePath)
		if err != nil {
			log.Error("failed to initialise storage",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
		store = s
	default:
		store = jsonfile.New(cfg.StoragePath, log)
	}

	log.Info("storage initialised",
		slog.String("type", cfg.StorageType),
		slog.String("path", cfg.StoragePath))

	// ── 4. Build the Service and Register HTTP Routes ─────────────────────
	// The handler functions (user.New, user.GetByID, etc.) are FACTORIES —
	// they receive the service and return the actual handler. This is the
	// dependency injection / closure pattern.
	//
	// Route table:
	//   POST   /api/users        → create a new user
	//   GET    /api/users        → list all users
	//   GET    /api/users/{id}   → get one user by id
	//   PATCH  /api/users/{id}   → merge a partial update onto a user
	//   DELETE /api/users/{id}   → delete a user
	svc := users.New(store)

	router := http.NewServeMux()

	router.HandleFunc("POST /api/users", user.New(svc))
	router.HandleFunc("GET /api/users", user.GetList(svc))
	router.HandleFunc("GET /api/users/{id}", user.GetByID(svc))
	router.HandleFunc("PATCH /api/users/{id}", user.Update(svc))
	router.HandleFunc("DELETE /api/users/{id}", user.Delete(svc))

	// ── 5. Create the HTTP Server ─────────────────────────────────────────
	// The CORS middleware wraps the whole router: the browser UI is
	// served from a different origin during development.
	server := &http.Server{
		Addr:    cfg.HTTPServer.Addr, // e.g. "localhost:3000"
		Handler: middleware.CORS(router),

		// Production hardening — timeouts against slow-client attacks.
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// ── 6. Start Server in a Goroutine ────────────────────────────────────
	// ListenAndServe blocks forever. If we called it here in main(), the
	// graceful-shutdown code below would never run.
	go func() {
		log.Info("server started", slog.String("address", cfg.HTTPServer.Addr))

		// ListenAndServe returns http.ErrServerClosed when Shutdown() is
		// called. That's expected — not an error worth logging.
		if err := server.ListenAndServe(); err != nil &&
			err != http.ErrServerClosed {
			log.Error("server encountered an error",
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// ── 7. Wait for Shutdown Signal ───────────────────────────────────────
	// Buffered channel of size 1 so we don't miss the signal if main is
	// briefly busy.
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	<-done

	log.Info("shutdown signal received, stopping server...")

	// ── 8. Graceful Shutdown ──────────────────────────────────────────────
	// context.WithTimeout gives the shutdown a 5-second deadline: stop
	// accepting new connections, wait for in-flight requests, then exit.
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("failed to shutdown server gracefully",
			slog.String("error", err.Error()))
		os.Exit(1)
	}

	// The SQLite backend holds a connection pool worth closing; the flat
	// file backend has nothing to release.
	if closer, ok := store.(interface{ Close() error }); ok {
		if err := closer.Close(); err != nil {
			log.Error("failed to close storage",
				slog.String("error", err.Error()))
		}
	}

	log.Info("server stopped gracefully")
}

// setupLogger returns a *slog.Logger configured for the given environment.
//
// Development (dev): human-readable text output at DEBUG level.
// Production (prod): machine-readable JSON output at INFO level —
// easy to ingest by log aggregators (Loki, CloudWatch, etc.)
func setupLogger(env string) *slog.Logger {
	switch env {
	case "prod":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelInfo,
			}),
		)
	case "staging":
		return slog.New(
			slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	default: // "dev" and anything unrecognised
		return slog.New(
			slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			}),
		)
	}
}
