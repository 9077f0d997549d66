package metrics

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestManager(t *testing.T) {
	Convey("Given a new metrics Manager", t, func() {
		Convey("When creating a manager with default options", func() {
			m := NewManager()

			Convey("Then it should have a registry with registered collectors", func() {
				So(m, ShouldNotBeNil)
				So(m.Registry(), ShouldNotBeNil)

				families, err := m.Registry().Gather()
				So(err, ShouldBeNil)
				// Gauges register eagerly; counter vecs appear after first use.
				So(families, ShouldNotBeEmpty)
			})
		})

		Convey("When creating a manager with a custom namespace", func() {
			m := NewManager(WithNamespace("custom"))

			Convey("Then metric names should carry the namespace", func() {
				m.httpRequests.WithLabelValues("profile", "GET", "200").Inc()
				families, err := m.Registry().Gather()
				So(err, ShouldBeNil)

				found := false
				for _, f := range families {
					if f.GetName() == "custom_http_requests_total" {
						found = true
					}
				}
				So(found, ShouldBeTrue)
			})
		})
	})
}

func TestPackageHelpers(t *testing.T) {
	Convey("Given the default manager", t, func() {
		Convey("When recording metrics through package helpers", func() {
			RecordHTTPRequest("projects", "GET", "200")
			RecordHTTPRequestDuration("projects", "GET", "200", 12.5)
			RecordContactSubmission("success")
			RecordResumeDownload("pdf", "success")
			RecordResumePreview("pdf")
			RecordFilterQuery("projects")
			RecordFilterNoMatches("projects")
			RecordNavigation("skills")
			RecordScrollEvent()
			UpdateDataDiagnostics(0)
			UpdateSystemMemoryUsage(1024)
			UpdateSystemGoroutineCount(8)

			Convey("Then the registry should gather without error", func() {
				families, err := GetRegistry().Gather()
				So(err, ShouldBeNil)
				So(families, ShouldNotBeEmpty)
			})
		})
	})
}
