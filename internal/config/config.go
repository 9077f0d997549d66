// Package config defines service configuration structures and loading hooks.
//
// Conventions:
// - Provide New(ctx) to build a Config with defaults.
// - Layer overrides on top via Load (file, then environment).
// - External errors must be wrapped via this package's error helpers.
package config

import (
	"context"
)

// Transport names for the contact sender.
const (
	TransportSimulated = "simulated"
	TransportSMTP      = "smtp"
)

// Config contains process configuration. Extend as needed.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// Addr configures the HTTP listen address, e.g. ":8080".
	Addr string `koanf:"addr"`

	// ResumeDir is the directory holding the downloadable resume files.
	ResumeDir string `koanf:"resume_dir"`

	// ResumeBaseName is the resume file name without extension.
	ResumeBaseName string `koanf:"resume_base_name"`

	// AssetsDir is the directory holding profile images and other static assets.
	AssetsDir string `koanf:"assets_dir"`

	// HeaderHeight is the fixed header height in pixels, subtracted from
	// programmatic scroll targets.
	HeaderHeight int `koanf:"header_height"`

	// ScrollOffset is added to raw scroll positions before section matching.
	ScrollOffset int `koanf:"scroll_offset"`

	// ScrollSettleMS is the post-navigation window during which passive
	// scroll tracking stays suppressed.
	ScrollSettleMS int `koanf:"scroll_settle_ms"`

	// SubmitDelayMS is the simulated contact-send latency.
	SubmitDelayMS int `koanf:"submit_delay_ms"`

	// ContactTransport selects the contact sender: simulated or smtp.
	ContactTransport string `koanf:"contact_transport"`

	// SMTP settings, used only when ContactTransport is smtp.
	SMTPHost     string `koanf:"smtp_host"`
	SMTPPort     string `koanf:"smtp_port"`
	SMTPUsername string `koanf:"smtp_username"`
	SMTPPassword string `koanf:"smtp_password"`
	SMTPTo       string `koanf:"smtp_to"`

	// BannerSuccessMS and BannerErrorMS control how long resume download
	// feedback stays visible before reverting to idle.
	BannerSuccessMS int `koanf:"banner_success_ms"`
	BannerErrorMS   int `koanf:"banner_error_ms"`
}

// New creates a Config with defaults. Context is accepted first to satisfy
// the project-wide convention; it is reserved for future use and is
// currently unused.
func New(_ context.Context) *Config {
	return &Config{
		LogLevel:         "info",
		Addr:             ":9080",
		ResumeDir:        "resume",
		ResumeBaseName:   "Venkata_Data_Engineer",
		AssetsDir:        "assets",
		HeaderHeight:     80,
		ScrollOffset:     100,
		ScrollSettleMS:   1000,
		SubmitDelayMS:    2000,
		ContactTransport: TransportSimulated,
		SMTPHost:         "smtp.gmail.com",
		SMTPPort:         "587",
		BannerSuccessMS:  3000,
		BannerErrorMS:    5000,
	}
}
