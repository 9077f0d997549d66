// Package api declares HTTP contracts and route registration helpers.
package api

import (
	"context"
	"net/http"

	"github.com/vpenugonda/portfolio/internal/resume"
)

// ResumeDependencies defines the interface for resume delivery operations.
type ResumeDependencies interface {
	AvailableResumeFormats(ctx context.Context) []resume.Descriptor
	DownloadResume(ctx context.Context, format resume.Format) resume.DownloadResult
	PreviewResume(ctx context.Context, format resume.Format) string
	ResumeBanner(ctx context.Context) resume.Banner
}

// ResumeHandler serves resume format discovery, download, and preview.
type ResumeHandler struct {
	deps ResumeDependencies
}

// NewResumeHandler creates a new resume handler.
func NewResumeHandler(deps ResumeDependencies) *ResumeHandler {
	return &ResumeHandler{deps: deps}
}

// HandleGetFormats handles GET /api/resume/formats requests.
func (h *ResumeHandler) HandleGetFormats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.AvailableResumeFormats(r.Context()))
}

// HandleGetDownload handles GET /api/resume/download?format= requests. On
// success the file itself is served as an attachment with the dashed
// download filename; failures return the error envelope and are also
// reflected in the banner state.
func (h *ResumeHandler) HandleGetDownload(w http.ResponseWriter, r *http.Request) {
	const op = "api.resume_download"
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	format := resume.Format(r.URL.Query().Get("format"))
	if format == "" {
		format = resume.FormatPDF
	}

	result := h.deps.DownloadResume(r.Context(), format)
	if !result.Success {
		writeError(w, http.StatusNotFound, "not_found", NewKind(op, ErrNotFound))
		return
	}

	w.Header().Set("Content-Disposition", `attachment; filename="`+result.Filename+`"`)
	http.ServeFile(w, r, result.Path)
}

// HandleGetPreview handles GET /api/resume/preview?format= requests. The
// resource is served inline; an unknown format falls back to the PDF.
func (h *ResumeHandler) HandleGetPreview(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}

	format := resume.Format(r.URL.Query().Get("format"))
	path := h.deps.PreviewResume(r.Context(), format)

	w.Header().Set("Content-Disposition", "inline")
	http.ServeFile(w, r, path)
}

// HandleGetBanner handles GET /api/resume/banner requests, exposing the
// transient download feedback state.
func (h *ResumeHandler) HandleGetBanner(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, http.StatusOK, h.deps.ResumeBanner(r.Context()))
}
