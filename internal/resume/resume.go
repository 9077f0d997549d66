// Package resume resolves which downloadable resume formats exist and
// performs download and preview.
package resume

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/vpenugonda/portfolio/pkg/logger"
)

// Format tags a resume file format.
type Format string

// Supported formats, in probe/fallback order.
const (
	FormatPDF  Format = "pdf"
	FormatDOCX Format = "docx"
)

// Banner auto-revert delays.
const (
	defaultSuccessRevert = 3 * time.Second
	defaultErrorRevert   = 5 * time.Second
)

// Descriptor describes one offerable resume format.
type Descriptor struct {
	Format    Format `json:"format"`
	Label     string `json:"label"`
	MIMEType  string `json:"mime_type"`
	Extension string `json:"extension"`
}

// Formats returns the fixed ordered candidate list. PDF comes first; it is
// also the fallback when probing fails entirely.
func Formats() []Descriptor {
	return []Descriptor{
		{
			Format:    FormatPDF,
			Label:     "PDF",
			MIMEType:  "application/pdf",
			Extension: "pdf",
		},
		{
			Format:    FormatDOCX,
			Label:     "Word Document",
			MIMEType:  "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
			Extension: "docx",
		},
	}
}

// DownloadResult reports a download attempt. Error is a user-presentable
// message; failures never propagate as faults.
type DownloadResult struct {
	Success  bool   `json:"success"`
	Error    string `json:"error,omitempty"`
	Path     string `json:"path,omitempty"`
	Filename string `json:"filename,omitempty"`
	Format   Format `json:"format,omitempty"`
}

// Prober is a HEAD-style existence check against a resource path.
type Prober interface {
	Exists(ctx context.Context, path string) (bool, error)
}

// FileProber probes the local filesystem.
type FileProber struct{}

// Exists reports whether path names a regular file.
func (FileProber) Exists(_ context.Context, path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, fmt.Errorf("probe %s: %w", path, err)
	}
	return info.Mode().IsRegular(), nil
}

// Opener is the new-browsing-context primitive used for preview.
// Fire-and-forget; failures are invisible to the caller.
type Opener interface {
	Open(path string)
}

// Timer is a cancelable pending callback.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks; tests inject a fake to drive banner reverts.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realTimer struct{ t *time.Timer }

func (r realTimer) Stop() bool { return r.t.Stop() }

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return realTimer{t: time.AfterFunc(d, f)}
}

// Status is the tri-state banner result.
type Status string

// Banner statuses.
const (
	StatusIdle    Status = "idle"
	StatusSuccess Status = "success"
	StatusError   Status = "error"
)

// Banner is the published download/preview feedback state.
type Banner struct {
	Status  Status `json:"status"`
	Message string `json:"message,omitempty"`
}

// Service enumerates available resume formats and performs download and
// preview against a known resource location.
type Service struct {
	mu         sync.Mutex
	banner     Banner
	timer      Timer
	generation uint64

	dir           string
	baseName      string
	ownerName     string
	prober        Prober
	opener        Opener
	clock         Clock
	successRevert time.Duration
	errorRevert   time.Duration
	log           logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithDir sets the directory holding the resume files.
func WithDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.dir = dir
		}
	}
}

// WithBaseName sets the resume file base name (without extension).
func WithBaseName(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.baseName = name
		}
	}
}

// WithOwnerName sets the display name used for the download filename.
func WithOwnerName(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.ownerName = name
		}
	}
}

// WithProber sets the existence-check implementation.
func WithProber(p Prober) Option {
	return func(s *Service) {
		if p != nil {
			s.prober = p
		}
	}
}

// WithOpener sets the preview primitive.
func WithOpener(o Opener) Option {
	return func(s *Service) {
		if o != nil {
			s.opener = o
		}
	}
}

// WithClock sets the timer source.
func WithClock(clock Clock) Option {
	return func(s *Service) {
		if clock != nil {
			s.clock = clock
		}
	}
}

// WithRevertDelays sets the banner auto-revert delays for success and error.
func WithRevertDelays(success, failure time.Duration) Option {
	return func(s *Service) {
		if success > 0 {
			s.successRevert = success
		}
		if failure > 0 {
			s.errorRevert = failure
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

// New constructs a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		banner:        Banner{Status: StatusIdle},
		dir:           "resume",
		baseName:      "resume",
		ownerName:     "Resume",
		prober:        FileProber{},
		clock:         realClock{},
		successRevert: defaultSuccessRevert,
		errorRevert:   defaultErrorRevert,
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// AvailableFormats probes each candidate format and returns those present.
// If every probe fails, the PDF descriptor is asserted available so the
// caller never ends up with zero options.
func (s *Service) AvailableFormats(ctx context.Context) []Descriptor {
	available := make([]Descriptor, 0, 2)
	for _, d := range Formats() {
		ok, err := s.prober.Exists(ctx, s.path(d))
		if err != nil {
			if s.log != nil {
				s.log.Warn(ctx, "resume format probe failed",
					logger.String("format", string(d.Format)),
					logger.Error(err),
				)
			}
			continue
		}
		if ok {
			available = append(available, d)
		}
	}

	if len(available) == 0 {
		// Fallback guarantee: PDF is always offered.
		available = append(available, Formats()[0])
	}
	return available
}

// Download resolves the requested format, falling back one hop from docx to
// pdf when the docx resource is absent, and publishes a success or error
// banner with timed auto-revert.
func (s *Service) Download(ctx context.Context, format Format) DownloadResult {
	result := s.resolve(ctx, format)

	if result.Success {
		s.setBanner(Banner{Status: StatusSuccess}, s.successRevert)
		if s.log != nil {
			s.log.Info(ctx, "resume downloaded",
				logger.String("format", string(result.Format)),
				logger.String("filename", result.Filename),
			)
		}
	} else {
		s.setBanner(Banner{Status: StatusError, Message: result.Error}, s.errorRevert)
		if s.log != nil {
			s.log.Warn(ctx, "resume download failed",
				logger.String("format", string(format)),
				logger.String("error", result.Error),
			)
		}
	}
	return result
}

func (s *Service) resolve(ctx context.Context, format Format) DownloadResult {
	desc, ok := descriptor(format)
	if !ok {
		return DownloadResult{Error: fmt.Sprintf("unsupported format: %s", format)}
	}

	path := s.path(desc)
	exists, err := s.prober.Exists(ctx, path)
	if err == nil && !exists {
		// One-level fallback only; never recursive beyond this hop.
		if desc.Format == FormatDOCX {
			return s.resolve(ctx, FormatPDF)
		}
		err = fmt.Errorf("resume file not found: %s", path)
	}
	if err != nil {
		return DownloadResult{Error: err.Error()}
	}

	return DownloadResult{
		Success:  true,
		Path:     path,
		Filename: s.downloadFilename(desc),
		Format:   desc.Format,
	}
}

// Preview resolves the resource and hands it to the opener. Fire-and-forget:
// there is no error channel, a failed preview is invisible to the caller.
func (s *Service) Preview(ctx context.Context, format Format) string {
	desc, ok := descriptor(format)
	if !ok {
		desc = Formats()[0]
	}
	path := s.path(desc)
	if s.opener != nil {
		s.opener.Open(path)
	}
	if s.log != nil {
		s.log.Debug(ctx, "resume preview", logger.String("format", string(desc.Format)))
	}
	return path
}

// Banner returns the current download feedback state.
func (s *Service) Banner() Banner {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.banner
}

// setBanner publishes a banner and schedules its auto-revert. A newer banner
// supersedes the pending revert timer; timers never stack.
func (s *Service) setBanner(b Banner, revert time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.generation++
	gen := s.generation

	s.banner = b
	s.timer = s.clock.AfterFunc(revert, func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.generation {
			return
		}
		s.banner = Banner{Status: StatusIdle}
		s.timer = nil
	})
}

func (s *Service) path(d Descriptor) string {
	return filepath.Join(s.dir, s.baseName+"."+d.Extension)
}

func (s *Service) downloadFilename(d Descriptor) string {
	dashed := strings.Join(strings.Fields(s.ownerName), "-")
	return dashed + "-Resume." + d.Extension
}

func descriptor(format Format) (Descriptor, bool) {
	for _, d := range Formats() {
		if d.Format == format {
			return d, true
		}
	}
	return Descriptor{}, false
}
