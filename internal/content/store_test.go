package content_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vpenugonda/portfolio/internal/content"
	"github.com/vpenugonda/portfolio/internal/domain/model"
	"github.com/vpenugonda/portfolio/internal/domain/validate"
)

func TestShippedDataIsValid(t *testing.T) {
	Convey("Given the shipped store", t, func() {
		store := content.NewStore()

		Convey("When validating every collection", func() {
			report := validate.All(store.Projects(), store.Experience(), store.Skills(), store.PersonalInfo())

			Convey("Then there are zero diagnostics", func() {
				So(report.Valid, ShouldBeTrue)
				So(report.Errors, ShouldBeEmpty)
			})
		})

		Convey("When checking resume consistency", func() {
			report := validate.ResumeSync(store.PersonalInfo())

			Convey("Then the owner record and resume reference line up", func() {
				So(report.Valid, ShouldBeTrue)
			})
		})
	})
}

func TestCollections(t *testing.T) {
	store := content.NewStore()

	Convey("Given the project collection", t, func() {
		projects := store.Projects()

		Convey("Then ids are unique", func() {
			seen := make(map[string]bool, len(projects))
			for _, p := range projects {
				So(seen[p.ID], ShouldBeFalse)
				seen[p.ID] = true
			}
		})

		Convey("Then every category and status is a known value", func() {
			for _, p := range projects {
				So(p.Category.Valid(), ShouldBeTrue)
				So(p.Status.Valid(), ShouldBeTrue)
			}
		})

		Convey("Then mutating the returned slice does not affect the store", func() {
			projects[0] = model.Project{}
			So(store.Projects()[0].ID, ShouldEqual, "real-time-analytics-pipeline")
		})
	})

	Convey("Given the work history", t, func() {
		experience := store.Experience()

		Convey("Then it is ordered most recent first with one current role", func() {
			So(experience[0].Current, ShouldBeTrue)
			So(experience[0].EndDate, ShouldBeBlank)
			for _, e := range experience[1:] {
				So(e.Current, ShouldBeFalse)
				So(e.EndDate, ShouldNotBeBlank)
			}
		})
	})

	Convey("Given the skill inventory", t, func() {
		skills := store.Skills()

		Convey("Then every category is a known value", func() {
			for _, s := range skills {
				So(s.Category.Valid(), ShouldBeTrue)
			}
		})
	})
}

func TestDerivedViews(t *testing.T) {
	store := content.NewStore()

	Convey("Given the skill helpers", t, func() {
		Convey("Then SkillsByCategory partitions the inventory", func() {
			total := 0
			for _, c := range []model.SkillCategory{
				model.SkillProgramming,
				model.SkillDatabases,
				model.SkillCloud,
				model.SkillTools,
				model.SkillFrameworks,
			} {
				subset := store.SkillsByCategory(c)
				for _, s := range subset {
					So(s.Category, ShouldEqual, c)
				}
				total += len(subset)
			}
			So(total, ShouldEqual, len(store.Skills()))
		})

		Convey("Then FeaturedSkills only carries proficiency 4 and up", func() {
			featured := store.FeaturedSkills()
			So(featured, ShouldNotBeEmpty)
			for _, s := range featured {
				So(s.Proficiency, ShouldBeGreaterThanOrEqualTo, 4)
			}
		})

		Convey("Then no shipped skill carries certification labels yet", func() {
			So(store.SkillsWithCertifications(), ShouldBeEmpty)
		})
	})

	Convey("Given the featured projects view", t, func() {
		featured := store.FeaturedProjects()

		Convey("Then only flagged projects appear", func() {
			So(featured, ShouldHaveLength, 3)
			for _, p := range featured {
				So(p.Featured, ShouldBeTrue)
			}
		})
	})
}
