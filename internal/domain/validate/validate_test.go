package validate_test

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	"github.com/vpenugonda/portfolio/internal/domain/model"
	"github.com/vpenugonda/portfolio/internal/domain/validate"
)

func completeProject() model.Project {
	return model.Project{
		ID:              "etl-platform",
		Title:           "ETL Platform",
		Description:     "Batch ETL platform",
		LongDescription: "A batch ETL platform with orchestration and lineage.",
		Technologies:    []string{"Python", "Apache Airflow"},
		Category:        model.CategoryDataPipeline,
		Image:           "/images/projects/etl.png",
		Achievements:    []string{"Cut batch runtime in half"},
		Timeline:        "6 months",
		Status:          model.StatusCompleted,
	}
}

func completeExperience() model.Experience {
	return model.Experience{
		ID:           "data-engineer-acme",
		Company:      "Acme",
		Role:         "Data Engineer",
		Duration:     "Jan 2022 - Present",
		StartDate:    "2022-01",
		Location:     "Seattle, WA",
		Description:  "Warehouse modernization",
		Achievements: []string{"Migrated the warehouse"},
		Technologies: []string{"Snowflake"},
		Logo:         "/images/acme.png",
		Current:      true,
	}
}

func completeInfo() model.PersonalInfo {
	return model.PersonalInfo{
		Name:              "Jane Doe",
		Title:             "Data Engineer",
		Email:             "jane@example.com",
		Location:          "Seattle, WA",
		YearsOfExperience: 5,
		Summary:           "Five years building data platforms.",
		ProfileImage:      "/images/profile.png",
		ResumeURL:         "/resume/Jane-Doe.pdf",
		SocialLinks:       []model.SocialLink{{Name: "LinkedIn", URL: "https://linkedin.com/in/janedoe", Icon: "SiLinkedin"}},
	}
}

func TestPredicates(t *testing.T) {
	Convey("Given complete records", t, func() {
		Convey("Then each predicate should accept them", func() {
			So(validate.Project(completeProject()), ShouldBeTrue)
			So(validate.Experience(completeExperience()), ShouldBeTrue)
			So(validate.Skill(model.Skill{Name: "Python", Category: model.SkillProgramming, Proficiency: 5, Icon: "SiPython"}), ShouldBeTrue)
			So(validate.PersonalInfo(completeInfo()), ShouldBeTrue)
		})
	})

	Convey("Given records with missing required fields", t, func() {
		Convey("When a project has no technologies", func() {
			p := completeProject()
			p.Technologies = nil
			So(validate.Project(p), ShouldBeFalse)
		})

		Convey("When a project has no achievements", func() {
			p := completeProject()
			p.Achievements = nil
			So(validate.Project(p), ShouldBeFalse)
		})

		Convey("When an experience is missing its location", func() {
			e := completeExperience()
			e.Location = ""
			So(validate.Experience(e), ShouldBeFalse)
		})

		Convey("When a skill proficiency is outside the 1-5 scale", func() {
			s := model.Skill{Name: "Python", Category: model.SkillProgramming, Icon: "SiPython"}
			s.Proficiency = 0
			So(validate.Skill(s), ShouldBeFalse)
			s.Proficiency = 6
			So(validate.Skill(s), ShouldBeFalse)
			s.Proficiency = 1
			So(validate.Skill(s), ShouldBeTrue)
			s.Proficiency = 5
			So(validate.Skill(s), ShouldBeTrue)
		})

		Convey("When the personal info has no social links", func() {
			info := completeInfo()
			info.SocialLinks = nil
			So(validate.PersonalInfo(info), ShouldBeFalse)
		})
	})
}

func TestAll(t *testing.T) {
	Convey("Given fully valid collections", t, func() {
		report := validate.All(
			[]model.Project{completeProject()},
			[]model.Experience{completeExperience()},
			[]model.Skill{{Name: "Python", Category: model.SkillProgramming, Proficiency: 5, Icon: "SiPython"}},
			completeInfo(),
		)

		Convey("Then the report should be valid with no diagnostics", func() {
			So(report.Valid, ShouldBeTrue)
			So(report.Errors, ShouldBeEmpty)
		})
	})

	Convey("Given an invalid record in each collection", t, func() {
		badProject := completeProject()
		badProject.Timeline = ""
		badExperience := completeExperience()
		badExperience.Description = ""
		badSkill := model.Skill{Category: model.SkillTools, Proficiency: 3, Icon: "SiDocker"}
		badInfo := completeInfo()
		badInfo.Summary = ""

		report := validate.All(
			[]model.Project{completeProject(), badProject},
			[]model.Experience{badExperience},
			[]model.Skill{badSkill},
			badInfo,
		)

		Convey("Then each invalid record should produce one diagnostic", func() {
			So(report.Valid, ShouldBeFalse)
			So(report.Errors, ShouldHaveLength, 4)
			So(report.Errors[0], ShouldEqual, "invalid project at index 1: ETL Platform")
			So(report.Errors[1], ShouldEqual, "invalid experience at index 0: Acme")
			So(report.Errors[2], ShouldEqual, "invalid skill at index 0: Unknown")
			So(report.Errors[3], ShouldEqual, "invalid personal information")
		})
	})

	Convey("Given a record whose identifying field is also missing", t, func() {
		report := validate.All([]model.Project{{}}, nil, nil, completeInfo())

		Convey("Then the diagnostic should name it Unknown", func() {
			So(report.Errors[0], ShouldEqual, "invalid project at index 0: Unknown")
		})
	})
}

func TestResumeSync(t *testing.T) {
	Convey("Given a complete owner record with a PDF resume", t, func() {
		report := validate.ResumeSync(completeInfo())

		Convey("Then the sync report should be clean", func() {
			So(report.Valid, ShouldBeTrue)
		})
	})

	Convey("Given an owner record without a resume URL", t, func() {
		info := completeInfo()
		info.ResumeURL = ""
		report := validate.ResumeSync(info)

		Convey("Then it should flag the missing URL", func() {
			So(report.Valid, ShouldBeFalse)
			So(report.Errors, ShouldContain, "resume URL not configured in personal info")
		})
	})

	Convey("Given a resume URL that is not a PDF", t, func() {
		info := completeInfo()
		info.ResumeURL = "/resume/resume.docx"
		report := validate.ResumeSync(info)

		Convey("Then it should flag the format", func() {
			So(report.Errors, ShouldContain, "resume URL should point to a PDF file")
		})
	})

	Convey("Given implausible years of experience", t, func() {
		info := completeInfo()
		info.YearsOfExperience = 70
		report := validate.ResumeSync(info)

		Convey("Then it should flag the value", func() {
			So(report.Errors, ShouldContain, "years of experience seems unrealistic")
		})
	})
}
