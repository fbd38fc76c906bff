package routes

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/stayease/navbar/web/metrics"
)

// ServerHandler holds all dependencies needed for the page handlers.
type ServerHandler struct {
	Metrics *metrics.Metrics
	// LiveURL is handed to the client script to open the live session.
	LiveURL string
}

// SafeRenderTemplate renders a templ component into a buffer first and only then writes
// the status and body, so a failed render never leaves a partial page behind.
func SafeRenderTemplate(ctx context.Context, component templ.Component, w http.ResponseWriter, status int) error {
	// Do not write to w because it implies 200 status
	var buf bytes.Buffer

	err := component.Render(ctx, &buf)
	if err != nil {
		return fmt.Errorf("could not render template: %w", err)
	}

	w.Header().Set("Content-Type", "text/html; charset=UTF-8")
	w.WriteHeader(status)

	if _, err := buf.WriteTo(w); err != nil {
		slog.Error("Failed to write response", "error", err)

		return fmt.Errorf("could not write to response writer: %w", err)
	}

	return nil
}
