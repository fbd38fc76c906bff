package routes

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/a-h/templ"
	"github.com/stayease/navbar/navbar"
	cs "github.com/stayease/navbar/web/components"
)

const (
	partialParam = "partial"
	menuParam    = "menu"
)

// BuildPage builds the render input for path. The menu starts open only when the
// no-script toggle link asked for it.
func (s *ServerHandler) BuildPage(path string, menuOpen bool) (cs.Page, bool) {
	content, found := cs.ContentFor(path)

	state := navbar.NewState()
	state.MenuOpen = menuOpen

	return cs.Page{
		Navbar: cs.NewNavbarContext(navbar.Snapshot{
			MenuOpen:      state.MenuOpen,
			HeaderVisible: state.HeaderVisible,
			Path:          path,
		}),
		Content: content,
		LiveURL: s.LiveURL,
	}, found
}

// PageHandle renders the page for the request path. With ?partial=1 only the page
// body is returned, for client-side navigation.
func (s *ServerHandler) PageHandle(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	query := r.URL.Query()

	page, found := s.BuildPage(path, query.Get(menuParam) == "open")

	status := http.StatusOK
	if !found {
		status = http.StatusNotFound
	}

	slog.Debug("Handling page request", "path", path, "status", status)

	var component templ.Component
	if query.Get(partialParam) == "1" {
		component = cs.PageBody(page.Content)
	} else {
		component = cs.Layout(page)
	}

	err := SafeRenderTemplate(r.Context(), component, w, status)
	if err != nil {
		slog.Error("Failed to render page", "path", path, "error", err)

		if s.Metrics != nil {
			s.Metrics.RenderErrors.Inc()
		}

		http.Error(w, err.Error(), http.StatusInternalServerError)

		return
	}

	if s.Metrics != nil {
		label := path
		if !found {
			// keep label cardinality bounded
			label = "unknown"
		}

		s.Metrics.PageViews.WithLabelValues(label, strconv.Itoa(status)).Inc()
	}
}
