// Package site serves the static assets referenced by the portfolio data:
// profile and project images under /images/ and the downloadable resume
// files under /resume/.
package site

import (
	"context"
	"errors"
	"net/http"
	"path/filepath"
)

// Error constants
var (
	ErrServe = errors.New("asset serve failed")
)

// Config points the asset routes at their backing directories.
type Config struct {
	// AssetsDir holds the images/ tree referenced by profile_image, project
	// image, and logo paths.
	AssetsDir string

	// ResumeDir holds the downloadable resume files.
	ResumeDir string
}

// Register attaches the static asset routes to mux.
func Register(_ context.Context, mux *http.ServeMux, cfg Config) {
	if mux == nil {
		panic("mux is nil")
	}

	images := http.FileServer(http.Dir(filepath.Join(cfg.AssetsDir, "images")))
	mux.Handle("/images/", http.StripPrefix("/images/", images))

	resumes := http.FileServer(http.Dir(cfg.ResumeDir))
	mux.Handle("/resume/", http.StripPrefix("/resume/", resumes))
}
