// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/vpenugonda/portfolio/internal/domain/model"
)

// ProfileDependencies defines the interface for owner-record operations.
type ProfileDependencies interface {
	PersonalInfo(ctx context.Context) model.PersonalInfo
	Experience(ctx context.Context) []model.Experience
	Certifications(ctx context.Context) []model.Certification
}

// ProfileHandler serves the owner record and its satellite collections.
type ProfileHandler struct {
	deps ProfileDependencies
}

// NewProfileHandler creates a new profile handler.
func NewProfileHandler(deps ProfileDependencies) *ProfileHandler {
	return &ProfileHandler{deps: deps}
}

// HandleGetProfile handles GET /api/profile requests.
func (h *ProfileHandler) HandleGetProfile(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.PersonalInfo(r.Context()))
}

// HandleGetExperience handles GET /api/experience requests.
func (h *ProfileHandler) HandleGetExperience(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Experience(r.Context()))
}

// HandleGetCertifications handles GET /api/certifications requests.
func (h *ProfileHandler) HandleGetCertifications(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.Certifications(r.Context()))
}
