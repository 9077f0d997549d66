package main

import (
	"context"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/smartystreets/goconvey/convey"
	"github.com/vpenugonda/portfolio/internal/adapters/http/api"
	"github.com/vpenugonda/portfolio/internal/adapters/http/site"
	app "github.com/vpenugonda/portfolio/internal/app"
	"github.com/vpenugonda/portfolio/internal/config"
	"github.com/vpenugonda/portfolio/internal/domain/contact"
	"github.com/vpenugonda/portfolio/pkg/metrics"
)

func TestMainFunction(t *testing.T) {
	convey.Convey("Given the main application", t, func() {
		convey.Convey("When testing configuration loading", func() {
			_ = os.Setenv("PORTFOLIO_ADDR", ":8080")
			_ = os.Setenv("PORTFOLIO_RESUME_DIR", "/srv/resume")
			defer func() {
				_ = os.Unsetenv("PORTFOLIO_ADDR")
				_ = os.Unsetenv("PORTFOLIO_RESUME_DIR")
			}()

			convey.Convey("Then configuration should be loadable", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)
				convey.So(cfg.Addr, convey.ShouldEqual, ":8080")
				convey.So(cfg.ResumeDir, convey.ShouldEqual, "/srv/resume")
			})
		})

		convey.Convey("When testing service creation", func() {
			convey.Convey("Then service should be creatable with default options", func() {
				svc := app.New()
				convey.So(svc, convey.ShouldNotBeNil)
			})

			convey.Convey("And service should be creatable with custom options", func() {
				svc := app.New(
					app.WithResumeDir("/srv/resume"),
					app.WithHeaderHeight(64),
					app.WithSettleDelay(500*time.Millisecond),
				)
				convey.So(svc, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing HTTP server creation", func() {
			svc := app.New()
			convey.So(svc, convey.ShouldNotBeNil)

			convey.Convey("Then HTTP server should be creatable", func() {
				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)
			})
		})

		convey.Convey("When testing metrics initialization", func() {
			convey.Convey("Then metrics manager should be creatable", func() {
				manager := metrics.NewManager()
				convey.So(manager, convey.ShouldNotBeNil)
			})
		})
	})
}

func TestSenderSelection(t *testing.T) {
	convey.Convey("Given the sender factory", t, func() {
		ctx := context.Background()

		convey.Convey("When the transport is simulated", func() {
			cfg := config.New(ctx)

			convey.Convey("Then the simulated sender is built", func() {
				_, ok := newSender(cfg).(*contact.SimulatedSender)
				convey.So(ok, convey.ShouldBeTrue)
			})
		})

		convey.Convey("When the transport is smtp", func() {
			cfg := config.New(ctx)
			cfg.ContactTransport = config.TransportSMTP

			convey.Convey("Then the SMTP sender is built", func() {
				_, ok := newSender(cfg).(*contact.SMTPSender)
				convey.So(ok, convey.ShouldBeTrue)
			})
		})
	})
}

func TestMainApplicationComponents(t *testing.T) {
	convey.Convey("Given main application components", t, func() {
		convey.Convey("When testing system metrics updater", func() {
			convey.Convey("Then it should stop with its context", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
				defer cancel()

				convey.So(func() {
					startSystemMetricsUpdater(ctx)
				}, convey.ShouldNotPanic)
			})
		})

		convey.Convey("When testing system metrics update", func() {
			convey.Convey("Then it should update metrics without panicking", func() {
				convey.So(func() {
					updateSystemMetrics()
				}, convey.ShouldNotPanic)
			})
		})
	})
}

func TestMainApplicationIntegration(t *testing.T) {
	convey.Convey("Given main application integration", t, func() {
		convey.Convey("When testing full application setup", func() {
			_ = os.Setenv("PORTFOLIO_ADDR", ":8080")
			defer func() { _ = os.Unsetenv("PORTFOLIO_ADDR") }()

			convey.Convey("Then all components should work together", func() {
				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()

				// Load configuration
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldBeNil)
				convey.So(cfg, convey.ShouldNotBeNil)

				// Create service (without starting to avoid logger dependency)
				svc := app.New(
					app.WithResumeDir(cfg.ResumeDir),
					app.WithHeaderHeight(cfg.HeaderHeight),
					app.WithSender(newSender(cfg)),
				)
				convey.So(svc, convey.ShouldNotBeNil)

				// Create HTTP server
				server := api.NewServer(svc, svc)
				convey.So(server, convey.ShouldNotBeNil)

				// Create HTTP mux
				mux := http.NewServeMux()
				convey.So(mux, convey.ShouldNotBeNil)

				// Register routes
				server.Register(ctx, mux)
				site.Register(ctx, mux, site.Config{AssetsDir: cfg.AssetsDir, ResumeDir: cfg.ResumeDir})

				// Stop service
				svc.Stop()
			})
		})
	})
}

func TestMainApplicationErrorHandling(t *testing.T) {
	convey.Convey("Given main application error handling", t, func() {
		convey.Convey("When testing invalid configuration", func() {
			_ = os.Setenv("PORTFOLIO_ADDR", "")
			defer func() { _ = os.Unsetenv("PORTFOLIO_ADDR") }()

			convey.Convey("Then configuration loading should fail", func() {
				ctx := context.Background()
				cfg, err := config.Load(ctx)
				convey.So(err, convey.ShouldNotBeNil)
				convey.So(cfg, convey.ShouldBeNil)
			})
		})
	})
}
