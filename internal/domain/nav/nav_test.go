package nav_test

import (
	"errors"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vpenugonda/portfolio/internal/domain/nav"
)

// fakeTimer is a scheduled callback controlled by fakeClock.
type fakeTimer struct {
	when    time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (t *fakeTimer) Stop() bool {
	already := t.stopped || t.fired
	t.stopped = true
	return !already
}

// fakeClock drives timers deterministically via Advance.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) nav.Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &fakeTimer{when: c.now + d, f: f}
	c.timers = append(c.timers, t)
	return t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now += d
	var due []*fakeTimer
	for _, t := range c.timers {
		if !t.stopped && !t.fired && t.when <= c.now {
			t.fired = true
			due = append(due, t)
		}
	}
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}

// fakeScroller records smooth-scroll targets.
type fakeScroller struct {
	mu      sync.Mutex
	offsets []int
}

func (s *fakeScroller) ScrollTo(offset int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offsets = append(s.offsets, offset)
}

func (s *fakeScroller) last() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.offsets) == 0 {
		return 0, false
	}
	return s.offsets[len(s.offsets)-1], true
}

func threeSections() []nav.Section {
	return []nav.Section{
		{ID: "hero", Top: 0},
		{ID: "projects", Top: 800},
		{ID: "skills", Top: 1600},
	}
}

func TestHandleScroll(t *testing.T) {
	Convey("Given sections at offsets 0, 800, 1600 and a fixed offset of 100", t, func() {
		tracker := nav.New(
			nav.WithSections(threeSections()),
			nav.WithFixedOffset(100),
		)

		Convey("When the computed scroll position is 750", func() {
			active := tracker.HandleScroll(650)

			Convey("Then the section at offset 0 should be active", func() {
				So(active, ShouldEqual, "hero")
			})
		})

		Convey("When the computed scroll position is 1550", func() {
			active := tracker.HandleScroll(1450)

			Convey("Then the section at offset 800 should be active", func() {
				So(active, ShouldEqual, "projects")
			})
		})

		Convey("When the position passes the last section's start", func() {
			active := tracker.HandleScroll(1600)

			Convey("Then the last section should be active", func() {
				So(active, ShouldEqual, "skills")
			})
		})

		Convey("When scrolling back above every section start", func() {
			tracker.HandleScroll(1600)
			active := tracker.HandleScroll(0)

			Convey("Then the first section should be active again", func() {
				So(active, ShouldEqual, "hero")
			})
		})
	})
}

func TestNavigateTo(t *testing.T) {
	Convey("Given a tracker with a fake clock and scroller", t, func() {
		clock := &fakeClock{}
		scroller := &fakeScroller{}
		tracker := nav.New(
			nav.WithSections(threeSections()),
			nav.WithFixedOffset(100),
			nav.WithHeaderHeight(80),
			nav.WithSettleDelay(time.Second),
			nav.WithClock(clock),
			nav.WithScroller(scroller),
		)

		Convey("When navigating to a known section", func() {
			err := tracker.NavigateTo("skills")

			Convey("Then the target becomes active and tracking is suppressed", func() {
				So(err, ShouldBeNil)
				So(tracker.Active(), ShouldEqual, "skills")
				So(tracker.State(), ShouldEqual, nav.StateSuppressed)
			})

			Convey("Then the scroll target compensates for the header", func() {
				offset, ok := scroller.last()
				So(ok, ShouldBeTrue)
				So(offset, ShouldEqual, 1600-80)
			})

			Convey("And intervening scroll events are ignored until the window elapses", func() {
				active := tracker.HandleScroll(0)
				So(active, ShouldEqual, "skills")
				So(tracker.Active(), ShouldEqual, "skills")

				clock.Advance(time.Second)

				So(tracker.State(), ShouldEqual, nav.StateTracking)
				So(tracker.Active(), ShouldEqual, "skills")

				// Passive tracking resumes after the window.
				So(tracker.HandleScroll(0), ShouldEqual, "hero")
			})
		})

		Convey("When a second navigation supersedes a pending one", func() {
			So(tracker.NavigateTo("projects"), ShouldBeNil)
			clock.Advance(500 * time.Millisecond)
			So(tracker.NavigateTo("skills"), ShouldBeNil)

			Convey("Then the first window must not end the second", func() {
				clock.Advance(600 * time.Millisecond)
				So(tracker.State(), ShouldEqual, nav.StateSuppressed)
				So(tracker.Active(), ShouldEqual, "skills")

				clock.Advance(400 * time.Millisecond)
				So(tracker.State(), ShouldEqual, nav.StateTracking)
				So(tracker.Active(), ShouldEqual, "skills")
			})
		})

		Convey("When navigating to an unknown section", func() {
			err := tracker.NavigateTo("blog")

			Convey("Then it should fail with the unknown-section kind", func() {
				So(errors.Is(err, nav.ErrUnknownSection), ShouldBeTrue)
			})
		})

		Convey("When the tracker is stopped mid-window", func() {
			So(tracker.NavigateTo("projects"), ShouldBeNil)
			tracker.Stop()

			Convey("Then tracking resumes and the pending timer is cancelled", func() {
				So(tracker.State(), ShouldEqual, nav.StateTracking)
				clock.Advance(2 * time.Second)
				So(tracker.State(), ShouldEqual, nav.StateTracking)
			})
		})
	})
}

func TestSetSections(t *testing.T) {
	Convey("Given a tracker with default sections", t, func() {
		tracker := nav.New()

		Convey("When the client reports measured geometry", func() {
			tracker.SetSections(threeSections())

			Convey("Then the new geometry drives tracking", func() {
				So(tracker.Sections(), ShouldHaveLength, 3)
				So(tracker.HandleScroll(800), ShouldEqual, "projects")
			})
		})

		Convey("When the active section disappears from the geometry", func() {
			tracker.SetSections(threeSections())
			tracker.HandleScroll(1600)
			So(tracker.Active(), ShouldEqual, "skills")

			tracker.SetSections([]nav.Section{{ID: "home", Top: 0}})

			Convey("Then the active id falls back to the first section", func() {
				So(tracker.Active(), ShouldEqual, "home")
			})
		})
	})
}
