package resume_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vpenugonda/portfolio/internal/resume"
)

// fakeProber answers existence checks from a fixed map; missing keys fail
// the probe itself.
type fakeProber struct {
	present map[string]bool
	err     error
	probes  []string
}

func (p *fakeProber) Exists(_ context.Context, path string) (bool, error) {
	p.probes = append(p.probes, path)
	if p.err != nil {
		return false, p.err
	}
	return p.present[filepath.Base(path)], nil
}

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

type fakeClock struct {
	mu     sync.Mutex
	now    time.Duration
	timers []*fakeTimer
}

func (c *fakeClock) AfterFunc(d time.Duration, f func()) resume.Timer {
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

type fakeOpener struct {
	opened []string
}

func (o *fakeOpener) Open(path string) { o.opened = append(o.opened, path) }

func newService(prober resume.Prober, clock resume.Clock, opts ...resume.Option) *resume.Service {
	base := []resume.Option{
		resume.WithDir("/srv/resume"),
		resume.WithBaseName("Jane_Data_Engineer"),
		resume.WithOwnerName("Jane Doe"),
		resume.WithProber(prober),
		resume.WithClock(clock),
	}
	return resume.New(append(base, opts...)...)
}

func TestAvailableFormats(t *testing.T) {
	ctx := context.Background()

	Convey("Given both resume files exist", t, func() {
		prober := &fakeProber{present: map[string]bool{
			"Jane_Data_Engineer.pdf":  true,
			"Jane_Data_Engineer.docx": true,
		}}
		svc := newService(prober, &fakeClock{})

		Convey("When enumerating formats", func() {
			formats := svc.AvailableFormats(ctx)

			Convey("Then both descriptors come back in candidate order", func() {
				So(formats, ShouldHaveLength, 2)
				So(formats[0].Format, ShouldEqual, resume.FormatPDF)
				So(formats[1].Format, ShouldEqual, resume.FormatDOCX)
				So(formats[1].MIMEType, ShouldEqual, "application/vnd.openxmlformats-officedocument.wordprocessingml.document")
			})
		})
	})

	Convey("Given only the PDF exists", t, func() {
		prober := &fakeProber{present: map[string]bool{"Jane_Data_Engineer.pdf": true}}
		svc := newService(prober, &fakeClock{})

		Convey("Then only the PDF descriptor comes back", func() {
			formats := svc.AvailableFormats(ctx)
			So(formats, ShouldHaveLength, 1)
			So(formats[0].Format, ShouldEqual, resume.FormatPDF)
		})
	})

	Convey("Given every probe fails outright", t, func() {
		prober := &fakeProber{err: errors.New("probe transport down")}
		svc := newService(prober, &fakeClock{})

		Convey("Then the PDF descriptor is still asserted available", func() {
			formats := svc.AvailableFormats(ctx)
			So(formats, ShouldHaveLength, 1)
			So(formats[0].Format, ShouldEqual, resume.FormatPDF)
			So(formats[0].Label, ShouldEqual, "PDF")
		})
	})
}

func TestDownload(t *testing.T) {
	ctx := context.Background()

	Convey("Given the requested format exists", t, func() {
		prober := &fakeProber{present: map[string]bool{"Jane_Data_Engineer.pdf": true}}
		clock := &fakeClock{}
		svc := newService(prober, clock)

		Convey("When downloading the PDF", func() {
			result := svc.Download(ctx, resume.FormatPDF)

			Convey("Then it succeeds with the dashed download filename", func() {
				So(result.Success, ShouldBeTrue)
				So(result.Filename, ShouldEqual, "Jane-Doe-Resume.pdf")
				So(result.Path, ShouldEqual, filepath.Join("/srv/resume", "Jane_Data_Engineer.pdf"))
			})

			Convey("And the success banner auto-reverts after 3 seconds", func() {
				So(svc.Banner().Status, ShouldEqual, resume.StatusSuccess)
				clock.Advance(3 * time.Second)
				So(svc.Banner().Status, ShouldEqual, resume.StatusIdle)
			})
		})
	})

	Convey("Given the docx is absent but the pdf exists", t, func() {
		prober := &fakeProber{present: map[string]bool{"Jane_Data_Engineer.pdf": true}}
		svc := newService(prober, &fakeClock{})

		Convey("When downloading the docx", func() {
			result := svc.Download(ctx, resume.FormatDOCX)

			Convey("Then it falls back one hop to the pdf", func() {
				So(result.Success, ShouldBeTrue)
				So(result.Format, ShouldEqual, resume.FormatPDF)
				So(result.Filename, ShouldEqual, "Jane-Doe-Resume.pdf")
			})
		})
	})

	Convey("Given neither file exists", t, func() {
		prober := &fakeProber{present: map[string]bool{}}
		clock := &fakeClock{}
		svc := newService(prober, clock)

		Convey("When downloading the docx", func() {
			result := svc.Download(ctx, resume.FormatDOCX)

			Convey("Then the fallback stops after one hop and reports an error", func() {
				So(result.Success, ShouldBeFalse)
				So(result.Error, ShouldContainSubstring, "resume file not found")
			})

			Convey("And the error banner auto-reverts after 5 seconds", func() {
				So(svc.Banner().Status, ShouldEqual, resume.StatusError)
				clock.Advance(3 * time.Second)
				So(svc.Banner().Status, ShouldEqual, resume.StatusError)
				clock.Advance(2 * time.Second)
				So(svc.Banner().Status, ShouldEqual, resume.StatusIdle)
			})
		})
	})

	Convey("Given an unsupported format", t, func() {
		svc := newService(&fakeProber{}, &fakeClock{})

		Convey("Then the result is a descriptive failure", func() {
			result := svc.Download(ctx, resume.Format("odt"))
			So(result.Success, ShouldBeFalse)
			So(result.Error, ShouldContainSubstring, "unsupported format")
		})
	})

	Convey("Given a new action lands before the previous banner reverts", t, func() {
		prober := &fakeProber{present: map[string]bool{"Jane_Data_Engineer.pdf": true}}
		clock := &fakeClock{}
		svc := newService(prober, clock)

		_ = svc.Download(ctx, resume.FormatPDF)
		clock.Advance(2 * time.Second)
		_ = svc.Download(ctx, resume.FormatPDF)

		Convey("Then the superseded timer must not revert the new banner", func() {
			// First timer would have fired at t=3s.
			clock.Advance(1500 * time.Millisecond)
			So(svc.Banner().Status, ShouldEqual, resume.StatusSuccess)

			// Second timer fires at t=5s.
			clock.Advance(1500 * time.Millisecond)
			So(svc.Banner().Status, ShouldEqual, resume.StatusIdle)
		})
	})
}

func TestPreview(t *testing.T) {
	ctx := context.Background()

	Convey("Given a service with an opener", t, func() {
		opener := &fakeOpener{}
		svc := newService(&fakeProber{}, &fakeClock{}, resume.WithOpener(opener))

		Convey("When previewing the pdf", func() {
			path := svc.Preview(ctx, resume.FormatPDF)

			Convey("Then the resource is handed to the opener", func() {
				So(opener.opened, ShouldHaveLength, 1)
				So(opener.opened[0], ShouldEqual, path)
			})
		})

		Convey("When previewing an unknown format", func() {
			path := svc.Preview(ctx, resume.Format("odt"))

			Convey("Then it defaults to the pdf resource", func() {
				So(path, ShouldEndWith, ".pdf")
			})
		})
	})
}

func TestFileProber(t *testing.T) {
	Convey("Given a real file on disk", t, func() {
		dir := t.TempDir()
		path := filepath.Join(dir, "resume.pdf")
		So(os.WriteFile(path, []byte("%PDF-1.4"), 0o600), ShouldBeNil)

		prober := resume.FileProber{}

		Convey("Then Exists reports it present", func() {
			ok, err := prober.Exists(context.Background(), path)
			So(err, ShouldBeNil)
			So(ok, ShouldBeTrue)
		})

		Convey("Then a missing file is absent without error", func() {
			ok, err := prober.Exists(context.Background(), filepath.Join(dir, "missing.pdf"))
			So(err, ShouldBeNil)
			So(ok, ShouldBeFalse)
		})
	})
}
