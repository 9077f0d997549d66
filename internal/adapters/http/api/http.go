// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"encoding/json"
	"net/http"
)

// Dependencies required by HTTP handlers. Using an interface bundle keeps
// the handler layer loosely coupled to implementations in other packages.
type Dependencies interface {
	ProfileDependencies
	ProjectDependencies
	SkillDependencies
	ContactDependencies
	NavigationDependencies
	ResumeDependencies
}

// Server wires HTTP routes for the business API.
type Server struct {
	healthHandler     *HealthHandler
	statsHandler      *StatsHandler
	profileHandler    *ProfileHandler
	projectsHandler   *ProjectsHandler
	skillsHandler     *SkillsHandler
	contactHandler    *ContactHandler
	navigationHandler *NavigationHandler
	resumeHandler     *ResumeHandler
}

// NewServer creates a new API server with all handlers.
func NewServer(deps Dependencies, statsProvider StatsProvider) *Server {
	return &Server{
		healthHandler:     NewHealthHandler(),
		statsHandler:      NewStatsHandler(statsProvider),
		profileHandler:    NewProfileHandler(deps),
		projectsHandler:   NewProjectsHandler(deps),
		skillsHandler:     NewSkillsHandler(deps),
		contactHandler:    NewContactHandler(deps),
		navigationHandler: NewNavigationHandler(deps),
		resumeHandler:     NewResumeHandler(deps),
	}
}

// Register attaches all HTTP routes to mux.
func (s *Server) Register(ctx context.Context, mux *http.ServeMux) {
	mux.HandleFunc("/healthz", MetricsMiddleware(s.healthHandler.HandleHealth, "healthz"))
	mux.HandleFunc("/stats", MetricsMiddleware(s.statsHandler.HandleStats, "stats"))

	mux.HandleFunc("/api/profile", MetricsMiddleware(s.profileHandler.HandleGetProfile, "profile"))
	mux.HandleFunc("/api/experience", MetricsMiddleware(s.profileHandler.HandleGetExperience, "experience"))
	mux.HandleFunc("/api/certifications", MetricsMiddleware(s.profileHandler.HandleGetCertifications, "certifications"))

	mux.HandleFunc("/api/projects", MetricsMiddleware(s.projectsHandler.HandleGetProjects, "projects"))
	mux.HandleFunc("/api/technologies", MetricsMiddleware(s.projectsHandler.HandleGetTechnologies, "technologies"))
	mux.HandleFunc("/api/skills", MetricsMiddleware(s.skillsHandler.HandleGetSkills, "skills"))

	mux.HandleFunc("/api/contact", MetricsMiddleware(s.contactHandler.HandlePostContact, "contact"))

	mux.HandleFunc("/api/navigation/sections", MetricsMiddleware(s.navigationHandler.HandleSections, "nav_sections"))
	mux.HandleFunc("/api/navigation/scroll", MetricsMiddleware(s.navigationHandler.HandlePostScroll, "nav_scroll"))
	mux.HandleFunc("/api/navigation/navigate", MetricsMiddleware(s.navigationHandler.HandlePostNavigate, "nav_navigate"))
	mux.HandleFunc("/api/navigation/active", MetricsMiddleware(s.navigationHandler.HandleGetActive, "nav_active"))

	mux.HandleFunc("/api/resume/formats", MetricsMiddleware(s.resumeHandler.HandleGetFormats, "resume_formats"))
	mux.HandleFunc("/api/resume/download", MetricsMiddleware(s.resumeHandler.HandleGetDownload, "resume_download"))
	mux.HandleFunc("/api/resume/preview", MetricsMiddleware(s.resumeHandler.HandleGetPreview, "resume_preview"))
	mux.HandleFunc("/api/resume/banner", MetricsMiddleware(s.resumeHandler.HandleGetBanner, "resume_banner"))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code string, err error) {
	msg := http.StatusText(status)
	if err != nil {
		msg = err.Error()
	}
	writeJSON(w, status, errorResponse{Code: code, Message: msg})
}
