// Package service provides the core business service that implements
// the dependencies required by the HTTP API.
package service

import (
	"context"
	"sync"
	"time"

	"github.com/vpenugonda/portfolio/internal/content"
	"github.com/vpenugonda/portfolio/internal/domain/contact"
	"github.com/vpenugonda/portfolio/internal/domain/filter"
	"github.com/vpenugonda/portfolio/internal/domain/model"
	"github.com/vpenugonda/portfolio/internal/domain/nav"
	"github.com/vpenugonda/portfolio/internal/domain/validate"
	"github.com/vpenugonda/portfolio/internal/resume"
	"github.com/vpenugonda/portfolio/pkg/logger"
	"github.com/vpenugonda/portfolio/pkg/metrics"
)

// Service wires the content store, filter views, contact controller, scroll
// tracker, and resume service behind one facade for the HTTP API.
type Service struct {
	mu sync.RWMutex

	// Core components
	store       *content.Store
	projectView *filter.ProjectView
	skillView   *filter.SkillView
	contactCtl  *contact.Controller
	tracker     *nav.Tracker
	resumeSvc   *resume.Service

	// Validation outcome captured at startup.
	report validate.Report

	// Configuration
	resumeDir      string
	resumeBaseName string
	ownerName      string
	headerHeight   int
	scrollOffset   int
	settleDelay    time.Duration
	successRevert  time.Duration
	errorRevert    time.Duration
	sender         contact.Sender

	// State
	started bool

	// Logging
	logger logger.Logger
}

// Option applies a configuration option to the Service.
type Option func(*Service)

// WithResumeDir sets the directory holding the resume files.
func WithResumeDir(dir string) Option {
	return func(s *Service) {
		if dir != "" {
			s.resumeDir = dir
		}
	}
}

// WithResumeBaseName sets the resume file name without extension.
func WithResumeBaseName(name string) Option {
	return func(s *Service) {
		if name != "" {
			s.resumeBaseName = name
		}
	}
}

// WithHeaderHeight sets the fixed header height in pixels.
func WithHeaderHeight(height int) Option {
	return func(s *Service) {
		if height >= 0 {
			s.headerHeight = height
		}
	}
}

// WithScrollOffset sets the scroll-position compensation.
func WithScrollOffset(offset int) Option {
	return func(s *Service) {
		if offset >= 0 {
			s.scrollOffset = offset
		}
	}
}

// WithSettleDelay sets the post-navigation suppression window.
func WithSettleDelay(d time.Duration) Option {
	return func(s *Service) {
		if d > 0 {
			s.settleDelay = d
		}
	}
}

// WithBannerDelays sets the resume banner auto-revert delays.
func WithBannerDelays(success, failure time.Duration) Option {
	return func(s *Service) {
		if success > 0 {
			s.successRevert = success
		}
		if failure > 0 {
			s.errorRevert = failure
		}
	}
}

// WithSender sets the contact message transport.
func WithSender(sender contact.Sender) Option {
	return func(s *Service) {
		if sender != nil {
			s.sender = sender
		}
	}
}

// WithLogger sets a custom logger for the service.
func WithLogger(log logger.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.logger = log
		}
	}
}

// New constructs a new Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		resumeDir:      "resume",
		resumeBaseName: "Venkata_Data_Engineer",
		headerHeight:   80,
		scrollOffset:   100,
		settleDelay:    time.Second,
		logger:         nil, // Will be replaced when service starts
	}

	// Apply all options
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Start initializes the service components and validates the shipped data.
// Validation diagnostics are logged and published, never fatal: the site
// renders whatever data is present.
func (s *Service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return nil
	}

	// Initialize logger if not already set
	if s.logger == nil {
		s.logger = logger.Get()
	}

	s.logger.Info(ctx, "starting portfolio service...")

	s.store = content.NewStore()
	s.projectView = filter.NewProjectView(s.store.Projects())
	s.skillView = filter.NewSkillView(s.store.Skills())

	contactOpts := []contact.Option{contact.WithLogger(s.logger.Named("contact"))}
	if s.sender != nil {
		contactOpts = append(contactOpts, contact.WithSender(s.sender))
	}
	s.contactCtl = contact.New(contactOpts...)

	s.tracker = nav.New(
		nav.WithFixedOffset(s.scrollOffset),
		nav.WithHeaderHeight(s.headerHeight),
		nav.WithSettleDelay(s.settleDelay),
		nav.WithLogger(s.logger.Named("nav")),
	)

	s.resumeSvc = resume.New(
		resume.WithDir(s.resumeDir),
		resume.WithBaseName(s.resumeBaseName),
		resume.WithOwnerName(s.store.PersonalInfo().Name),
		resume.WithRevertDelays(s.successRevert, s.errorRevert),
		resume.WithLogger(s.logger.Named("resume")),
	)

	s.report = validate.All(s.store.Projects(), s.store.Experience(), s.store.Skills(), s.store.PersonalInfo())
	metrics.UpdateDataDiagnostics(len(s.report.Errors))
	if !s.report.Valid {
		for _, diag := range s.report.Errors {
			s.logger.Warn(ctx, "data validation issue", logger.String("issue", diag))
		}
	}
	if rs := validate.ResumeSync(s.store.PersonalInfo()); !rs.Valid {
		for _, diag := range rs.Errors {
			s.logger.Warn(ctx, "resume consistency issue", logger.String("issue", diag))
		}
	}

	s.started = true
	s.logger.Info(ctx, "portfolio service started",
		logger.Int("projects", len(s.store.Projects())),
		logger.Int("experience", len(s.store.Experience())),
		logger.Int("skills", len(s.store.Skills())),
		logger.Bool("dataValid", s.report.Valid),
	)

	return nil
}

// Stop gracefully shuts down the service.
func (s *Service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.started {
		return
	}

	s.logger.Info(context.Background(), "stopping portfolio service...")

	if s.tracker != nil {
		s.tracker.Stop()
	}

	s.started = false
	s.logger.Info(context.Background(), "portfolio service stopped")
}

// PersonalInfo returns the owner record.
func (s *Service) PersonalInfo(_ context.Context) model.PersonalInfo {
	return s.store.PersonalInfo()
}

// Experience returns the work history, most recent first.
func (s *Service) Experience(_ context.Context) []model.Experience {
	return s.store.Experience()
}

// Certifications returns the professional certifications.
func (s *Service) Certifications(_ context.Context) []model.Certification {
	return s.store.Certifications()
}

// Technologies returns the distinct technology facet values.
func (s *Service) Technologies(_ context.Context) []string {
	return filter.Technologies(s.store.Projects())
}

// SelectProjects sets the project gallery facets and returns the view.
func (s *Service) SelectProjects(ctx context.Context, category, technology string) filter.ProjectResult {
	s.projectView.Select(category, technology)
	result := s.projectView.Result()
	metrics.RecordFilterQuery("projects")
	if result.NoMatches {
		metrics.RecordFilterNoMatches("projects")
		s.logger.Debug(ctx, "project filter produced no matches",
			logger.String("category", category),
			logger.String("technology", technology),
		)
	}
	return result
}

// ClearProjectFilter resets both project facets to "all".
func (s *Service) ClearProjectFilter(_ context.Context) filter.ProjectResult {
	s.projectView.Clear()
	return s.projectView.Result()
}

// ProjectResult returns the current filtered project view.
func (s *Service) ProjectResult(_ context.Context) filter.ProjectResult {
	return s.projectView.Result()
}

// SelectSkills sets the skill category facet and returns the view.
func (s *Service) SelectSkills(ctx context.Context, category string) filter.SkillResult {
	s.skillView.Select(category)
	result := s.skillView.Result()
	metrics.RecordFilterQuery("skills")
	if result.NoMatches {
		metrics.RecordFilterNoMatches("skills")
		s.logger.Debug(ctx, "skill filter produced no matches",
			logger.String("category", category),
		)
	}
	return result
}

// SkillResult returns the current filtered skill view.
func (s *Service) SkillResult(_ context.Context) filter.SkillResult {
	return s.skillView.Result()
}

// FeaturedSkills returns skills with proficiency 4 and up.
func (s *Service) FeaturedSkills(_ context.Context) []model.Skill {
	return s.store.FeaturedSkills()
}

// UpdateContactField sets one contact form field.
func (s *Service) UpdateContactField(_ context.Context, field, value string) (contact.State, error) {
	if err := s.contactCtl.UpdateField(field, value); err != nil {
		return s.contactCtl.State(), err
	}
	return s.contactCtl.State(), nil
}

// SubmitContact validates and submits the contact form.
func (s *Service) SubmitContact(ctx context.Context) (contact.State, error) {
	state, err := s.contactCtl.Submit(ctx)
	switch {
	case err == nil:
		metrics.RecordContactSubmission("success")
	case state.Status == contact.StatusError:
		metrics.RecordContactSubmission("error")
	default:
		metrics.RecordContactSubmission("rejected")
	}
	return state, err
}

// ContactState returns a snapshot of the contact form.
func (s *Service) ContactState(_ context.Context) contact.State {
	return s.contactCtl.State()
}

// HandleScroll processes a passive scroll event and returns the active
// section id.
func (s *Service) HandleScroll(_ context.Context, y int) string {
	metrics.RecordScrollEvent()
	return s.tracker.HandleScroll(y)
}

// NavigateTo starts a programmatic navigation to the named section.
func (s *Service) NavigateTo(_ context.Context, id string) error {
	if err := s.tracker.NavigateTo(id); err != nil {
		return err
	}
	metrics.RecordNavigation(id)
	return nil
}

// SetSections replaces the tracked section geometry.
func (s *Service) SetSections(_ context.Context, sections []nav.Section) {
	s.tracker.SetSections(sections)
}

// Sections returns the tracked section geometry.
func (s *Service) Sections(_ context.Context) []nav.Section {
	return s.tracker.Sections()
}

// ActiveSection returns the published active section id.
func (s *Service) ActiveSection(_ context.Context) string {
	return s.tracker.Active()
}

// NavState returns the tracker state.
func (s *Service) NavState(_ context.Context) nav.State {
	return s.tracker.State()
}

// AvailableResumeFormats probes and returns the offerable resume formats.
func (s *Service) AvailableResumeFormats(ctx context.Context) []resume.Descriptor {
	return s.resumeSvc.AvailableFormats(ctx)
}

// DownloadResume performs a resume download in the requested format.
func (s *Service) DownloadResume(ctx context.Context, format resume.Format) resume.DownloadResult {
	result := s.resumeSvc.Download(ctx, format)
	if result.Success {
		metrics.RecordResumeDownload(string(result.Format), "success")
	} else {
		metrics.RecordResumeDownload(string(format), "error")
	}
	return result
}

// PreviewResume opens the resume in the requested format.
func (s *Service) PreviewResume(ctx context.Context, format resume.Format) string {
	path := s.resumeSvc.Preview(ctx, format)
	metrics.RecordResumePreview(string(format))
	return path
}

// ResumeBanner returns the current download feedback state.
func (s *Service) ResumeBanner(_ context.Context) resume.Banner {
	return s.resumeSvc.Banner()
}

// ValidationReport returns the startup data validation outcome.
func (s *Service) ValidationReport(_ context.Context) validate.Report {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.report
}

// GetStats returns service statistics for monitoring.
func (s *Service) GetStats() map[string]interface{} {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := map[string]interface{}{
		"started": s.started,
	}

	if s.started {
		stats["projects"] = len(s.store.Projects())
		stats["experience"] = len(s.store.Experience())
		stats["skills"] = len(s.store.Skills())
		stats["certifications"] = len(s.store.Certifications())
		stats["dataValid"] = s.report.Valid
		stats["dataDiagnostics"] = len(s.report.Errors)
		stats["activeSection"] = s.tracker.Active()

		metrics.UpdateDataDiagnostics(len(s.report.Errors))
	}

	return stats
}
