// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/vpenugonda/portfolio/internal/domain/filter"
	"github.com/vpenugonda/portfolio/internal/domain/model"
)

// SkillDependencies defines the interface for skill browser operations.
type SkillDependencies interface {
	SelectSkills(ctx context.Context, category string) filter.SkillResult
	FeaturedSkills(ctx context.Context) []model.Skill
}

// SkillsHandler serves the filtered skill inventory.
type SkillsHandler struct {
	deps SkillDependencies
}

// NewSkillsHandler creates a new skills handler.
func NewSkillsHandler(deps SkillDependencies) *SkillsHandler {
	return &SkillsHandler{deps: deps}
}

// HandleGetSkills handles GET /api/skills?category= requests. An absent
// category defaults to "all"; featured=true returns the proficiency-4+
// subset instead.
func (h *SkillsHandler) HandleGetSkills(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	if r.URL.Query().Get("featured") == "true" {
		writeJSON(w, http.StatusOK, h.deps.FeaturedSkills(r.Context()))
		return
	}

	category := r.URL.Query().Get("category")
	if category == "" {
		category = filter.All
	}
	writeJSON(w, http.StatusOK, h.deps.SelectSkills(r.Context(), category))
}
