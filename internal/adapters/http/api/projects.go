// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/vpenugonda/portfolio/internal/domain/filter"
)

// ProjectDependencies defines the interface for project gallery operations.
type ProjectDependencies interface {
	SelectProjects(ctx context.Context, category, technology string) filter.ProjectResult
	ClearProjectFilter(ctx context.Context) filter.ProjectResult
	Technologies(ctx context.Context) []string
}

// ProjectsHandler serves the filtered project gallery.
type ProjectsHandler struct {
	deps ProjectDependencies
}

// NewProjectsHandler creates a new projects handler.
func NewProjectsHandler(deps ProjectDependencies) *ProjectsHandler {
	return &ProjectsHandler{deps: deps}
}

// HandleGetProjects handles GET /api/projects?category=&technology= requests.
// Absent facets default to "all"; both facets are applied conjunctively.
func (h *ProjectsHandler) HandleGetProjects(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	category := r.URL.Query().Get("category")
	technology := r.URL.Query().Get("technology")
	if category == "" {
		category = filter.All
	}
	if technology == "" {
		technology = filter.All
	}

	result := h.deps.SelectProjects(r.Context(), category, technology)
	writeJSON(w, http.StatusOK, result)
}

// HandleGetTechnologies handles GET /api/technologies requests, returning
// the distinct technology facet values across all projects.
func (h *ProjectsHandler) HandleGetTechnologies(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Technologies(r.Context()))
}
