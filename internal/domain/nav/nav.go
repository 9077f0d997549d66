// Package nav tracks the active page section from scroll position and
// performs programmatic section navigation.
//
// The tracker is an explicit state machine with two states, tracking and
// suppressed. While a programmatic smooth scroll is in flight the animation
// itself fires scroll events; the suppression window keeps those events from
// thrashing the active-section calculation. The window must outlast the
// animation: too short causes visible flicker of the active indicator, too
// long leaves it stale if the user scrolls again quickly. It is a tuned
// constant, not a derived value.
package nav

import (
	"sync"
	"time"

	"github.com/vpenugonda/portfolio/pkg/logger"
)

// Default geometry and timing constants, matching a fixed 80px header and a
// smooth scroll that settles well inside one second.
const (
	defaultFixedOffset  = 100
	defaultHeaderHeight = 80
	defaultSettleDelay  = 1 * time.Second
)

// State names the tracker's two states.
type State string

// Tracker states.
const (
	StateTracking   State = "tracking"
	StateSuppressed State = "suppressed"
)

// Section is one page section marker: an id and its top offset in pixels.
type Section struct {
	ID  string `json:"id"`
	Top int    `json:"top"`
}

// Scroller is the smooth-scroll-to-offset primitive. Fire-and-forget.
type Scroller interface {
	ScrollTo(offset int)
}

// Timer is a cancelable pending callback.
type Timer interface {
	Stop() bool
}

// Clock schedules callbacks. Tests inject a fake to drive the suppression
// window deterministically.
type Clock interface {
	AfterFunc(d time.Duration, f func()) Timer
}

type realTimer struct{ t *time.Timer }

func (r realTimer) Stop() bool { return r.t.Stop() }

type realClock struct{}

func (realClock) AfterFunc(d time.Duration, f func()) Timer {
	return realTimer{t: time.AfterFunc(d, f)}
}

// DefaultSections lists the known page sections in display order. Offsets
// are placeholders until the client reports real geometry.
func DefaultSections() []Section {
	return []Section{
		{ID: "hero", Top: 0},
		{ID: "about", Top: 900},
		{ID: "experience", Top: 1800},
		{ID: "projects", Top: 2700},
		{ID: "skills", Top: 3600},
		{ID: "contact", Top: 4500},
	}
}

// Tracker owns the scroll-tracking state for one page visit. All mutable
// state is private to the instance; consumers read the published active id.
type Tracker struct {
	mu       sync.Mutex
	sections []Section
	active   string
	state    State

	// Pending programmatic navigation.
	pendingTarget string
	timer         Timer
	generation    uint64

	fixedOffset  int
	headerHeight int
	settleDelay  time.Duration
	clock        Clock
	scroller     Scroller
	log          logger.Logger
}

// Option applies a configuration option to the Tracker.
type Option func(*Tracker)

// WithSections sets the ordered section list.
func WithSections(sections []Section) Option {
	return func(t *Tracker) {
		if len(sections) > 0 {
			t.sections = sections
		}
	}
}

// WithFixedOffset sets the scroll-position compensation for the fixed header.
func WithFixedOffset(offset int) Option {
	return func(t *Tracker) {
		if offset >= 0 {
			t.fixedOffset = offset
		}
	}
}

// WithHeaderHeight sets the header height subtracted from navigation targets.
func WithHeaderHeight(height int) Option {
	return func(t *Tracker) {
		if height >= 0 {
			t.headerHeight = height
		}
	}
}

// WithSettleDelay sets the suppression window duration.
func WithSettleDelay(d time.Duration) Option {
	return func(t *Tracker) {
		if d > 0 {
			t.settleDelay = d
		}
	}
}

// WithClock sets the timer source.
func WithClock(clock Clock) Option {
	return func(t *Tracker) {
		if clock != nil {
			t.clock = clock
		}
	}
}

// WithScroller sets the smooth-scroll primitive.
func WithScroller(scroller Scroller) Option {
	return func(t *Tracker) {
		if scroller != nil {
			t.scroller = scroller
		}
	}
}

// WithLogger sets a custom logger for the tracker.
func WithLogger(log logger.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// New constructs a Tracker with default configuration.
func New(opts ...Option) *Tracker {
	t := &Tracker{
		sections:     DefaultSections(),
		state:        StateTracking,
		fixedOffset:  defaultFixedOffset,
		headerHeight: defaultHeaderHeight,
		settleDelay:  defaultSettleDelay,
		clock:        realClock{},
	}

	// Apply all options
	for _, opt := range opts {
		opt(t)
	}

	if len(t.sections) > 0 {
		t.active = t.sections[0].ID
	}
	return t
}

// SetSections replaces the section geometry, e.g. when the client reports
// measured offsets. The active id is preserved when still present.
func (t *Tracker) SetSections(sections []Section) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.sections = make([]Section, len(sections))
	copy(t.sections, sections)

	for _, s := range t.sections {
		if s.ID == t.active {
			return
		}
	}
	if len(t.sections) > 0 {
		t.active = t.sections[0].ID
	} else {
		t.active = ""
	}
}

// Sections returns a copy of the current section list.
func (t *Tracker) Sections() []Section {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Section, len(t.sections))
	copy(out, t.sections)
	return out
}

// HandleScroll processes a passive scroll event at vertical offset y and
// returns the active section id. Events arriving during a suppression
// window are ignored.
func (t *Tracker) HandleScroll(y int) string {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.state == StateSuppressed {
		return t.active
	}

	position := y + t.fixedOffset
	// Scan last to first: the active section is the lowest one whose start
	// has been passed.
	for i := len(t.sections) - 1; i >= 0; i-- {
		if t.sections[i].Top <= position {
			t.active = t.sections[i].ID
			break
		}
	}
	return t.active
}

// NavigateTo starts a programmatic smooth scroll to the named section. The
// target becomes active immediately, passive tracking is suppressed for the
// settle delay, and when the window elapses the target is force-set as
// active regardless of the actual final scroll position. A newer NavigateTo
// supersedes a pending one.
func (t *Tracker) NavigateTo(id string) error {
	t.mu.Lock()

	var target *Section
	for i := range t.sections {
		if t.sections[i].ID == id {
			target = &t.sections[i]
			break
		}
	}
	if target == nil {
		t.mu.Unlock()
		return NewUnknownSectionError(id)
	}

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.generation++
	gen := t.generation

	t.state = StateSuppressed
	t.pendingTarget = id
	t.active = id
	offset := target.Top - t.headerHeight
	scroller := t.scroller
	t.timer = t.clock.AfterFunc(t.settleDelay, func() { t.settle(gen) })
	t.mu.Unlock()

	if scroller != nil {
		scroller.ScrollTo(offset)
	}
	return nil
}

// settle ends the suppression window started by the matching NavigateTo.
// A superseded window is a no-op.
func (t *Tracker) settle(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.generation {
		return
	}
	t.state = StateTracking
	t.active = t.pendingTarget
	t.pendingTarget = ""
	t.timer = nil
}

// Active returns the published active section id.
func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// State returns the tracker state.
func (t *Tracker) State() State {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Stop tears the tracker down, cancelling any pending suppression timer.
func (t *Tracker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()

	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.generation++
	t.state = StateTracking
	t.pendingTarget = ""
}
