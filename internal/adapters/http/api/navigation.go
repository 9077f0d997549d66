// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/vpenugonda/portfolio/internal/domain/nav"
)

// NavigationDependencies defines the interface for scroll-tracking operations.
type NavigationDependencies interface {
	HandleScroll(ctx context.Context, y int) string
	NavigateTo(ctx context.Context, id string) error
	SetSections(ctx context.Context, sections []nav.Section)
	Sections(ctx context.Context) []nav.Section
	ActiveSection(ctx context.Context) string
	NavState(ctx context.Context) nav.State
}

// NavigationHandler owns the scroll and navigation routes. The client reports
// measured geometry and scroll offsets; the tracker state machine lives
// server-side.
type NavigationHandler struct {
	deps NavigationDependencies
}

// NewNavigationHandler creates a new navigation handler.
func NewNavigationHandler(deps NavigationDependencies) *NavigationHandler {
	return &NavigationHandler{deps: deps}
}

type scrollRequest struct {
	Y int `json:"y"`
}

type navigateRequest struct {
	Section string `json:"section"`
}

type activeResponse struct {
	Active string    `json:"active"`
	State  nav.State `json:"state"`
}

// HandleSections handles GET and POST /api/navigation/sections. POST replaces
// the tracked geometry with client-measured offsets.
func (h *NavigationHandler) HandleSections(w http.ResponseWriter, r *http.Request) {
	const op = "api.nav_sections"
	switch r.Method {
	case http.MethodGet:
		writeJSON(w, http.StatusOK, h.deps.Sections(r.Context()))
	case http.MethodPost:
		var sections []nav.Section
		if err := json.NewDecoder(r.Body).Decode(&sections); err != nil {
			writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
			return
		}
		if len(sections) == 0 {
			writeError(w, http.StatusBadRequest, "bad_request", NewKind(op, ErrBadRequest))
			return
		}
		h.deps.SetSections(r.Context(), sections)
		writeJSON(w, http.StatusOK, h.deps.Sections(r.Context()))
	default:
		http.NotFound(w, r)
	}
}

// HandlePostScroll handles POST /api/navigation/scroll requests, reporting a
// passive scroll offset and returning the resulting active section.
func (h *NavigationHandler) HandlePostScroll(w http.ResponseWriter, r *http.Request) {
	const op = "api.nav_scroll"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req scrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	active := h.deps.HandleScroll(r.Context(), req.Y)
	writeJSON(w, http.StatusOK, activeResponse{Active: active, State: h.deps.NavState(r.Context())})
}

// HandlePostNavigate handles POST /api/navigation/navigate requests, starting
// a programmatic navigation to the named section.
func (h *NavigationHandler) HandlePostNavigate(w http.ResponseWriter, r *http.Request) {
	const op = "api.nav_navigate"
	if r.Method != http.MethodPost {
		http.NotFound(w, r)
		return
	}
	var req navigateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_request", WrapKind(op, ErrBadRequest, err))
		return
	}
	if err := h.deps.NavigateTo(r.Context(), req.Section); err != nil {
		if errors.Is(err, nav.ErrUnknownSection) {
			writeError(w, http.StatusNotFound, "not_found", WrapKind(op, ErrNotFound, err))
			return
		}
		writeError(w, http.StatusInternalServerError, "internal_error", Wrap(op, err))
		return
	}
	writeJSON(w, http.StatusOK, activeResponse{
		Active: h.deps.ActiveSection(r.Context()),
		State:  h.deps.NavState(r.Context()),
	})
}

// HandleGetActive handles GET /api/navigation/active requests.
func (h *NavigationHandler) HandleGetActive(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, activeResponse{
		Active: h.deps.ActiveSection(r.Context()),
		State:  h.deps.NavState(r.Context()),
	})
}
