package web

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stayease/navbar/model"
	"github.com/stayease/navbar/web/live"
	"github.com/stayease/navbar/web/metrics"
	"github.com/stayease/navbar/web/routes"
)

//go:embed static
var staticFiles embed.FS

const (
	liveURL         = "/live"
	shutdownTimeout = 5 * time.Second
)

// Config is what the serve command hands over.
type Config struct {
	Port      int
	Dev       bool
	AssetsDir string
}

func disableCacheInDevMode(dev bool, next http.Handler) http.Handler {
	if !dev {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		next.ServeHTTP(w, r)
	})
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r)

		slog.Debug("Served request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", ww.Status(),
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}

// BuildServer wires pages, the live endpoint, static files and metrics into one router.
func BuildServer(cfg Config, m *metrics.Metrics, hub *live.Hub) (http.Handler, error) {
	static, err := fs.Sub(staticFiles, "static")
	if err != nil {
		return nil, fmt.Errorf("could not open embedded static files: %w", err)
	}

	handler := routes.ServerHandler{
		Metrics: m,
		LiveURL: liveURL,
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger)

	for _, item := range model.Navigation() {
		r.Get(item.Path, handler.PageHandle)
	}

	r.NotFound(handler.PageHandle)

	r.Get(liveURL, hub.ServeHTTP)
	r.Handle("/metrics", m.Handler())
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})

	r.Handle("/static/*",
		disableCacheInDevMode(cfg.Dev,
			http.StripPrefix("/static",
				http.FileServer(http.FS(static)))))

	// Serve the logo and other site assets.
	r.Handle("/assets/*",
		disableCacheInDevMode(cfg.Dev,
			http.StripPrefix("/assets",
				http.FileServer(http.Dir(cfg.AssetsDir)))))

	return r, nil
}

// StartServer serves until ctx is cancelled, then closes live sessions and shuts down.
func StartServer(ctx context.Context, cfg Config) error {
	m := metrics.New()
	hub := live.NewHub(m, cfg.Dev)

	handler, err := BuildServer(cfg, m, hub)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)

	go func() {
		slog.Info("Running interface", "port", cfg.Port, "dev", cfg.Dev, "assets", cfg.AssetsDir)
		errs <- srv.ListenAndServe()
	}()

	select {
	case err := <-errs:
		hub.Close()

		return fmt.Errorf("could not run server: %w", err)
	case <-ctx.Done():
	}

	slog.Info("Shutting down", "sessions", hub.Count())
	hub.Close()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("could not shut down server: %w", err)
	}

	if err := <-errs; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("could not run server: %w", err)
	}

	return nil
}
