// Package validate checks structural completeness of the static portfolio data.
//
// All functions are pure and deterministic: the same input collections always
// produce the same report. Diagnostics are developer-facing; callers decide
// whether to log or expose them, and rendering never blocks on an invalid
// record.
package validate

import (
	"fmt"
	"strings"

	"github.com/vpenugonda/portfolio/internal/domain/model"
)

// Report aggregates diagnostics across all collections.
type Report struct {
	Valid  bool     `json:"valid"`
	Errors []string `json:"errors"`
}

// Project reports whether every required project field is present.
func Project(p model.Project) bool {
	return p.ID != "" &&
		p.Title != "" &&
		p.Description != "" &&
		p.LongDescription != "" &&
		len(p.Technologies) > 0 &&
		p.Category != "" &&
		len(p.Achievements) > 0 &&
		p.Timeline != "" &&
		p.Status != ""
}

// Experience reports whether every required experience field is present.
func Experience(e model.Experience) bool {
	return e.ID != "" &&
		e.Company != "" &&
		e.Role != "" &&
		e.Duration != "" &&
		e.StartDate != "" &&
		e.Location != "" &&
		e.Description != "" &&
		len(e.Achievements) > 0 &&
		len(e.Technologies) > 0
}

// Skill reports whether every required skill field is present and the
// proficiency is within the 1-5 scale.
func Skill(s model.Skill) bool {
	return s.Name != "" &&
		s.Category != "" &&
		s.Proficiency >= 1 &&
		s.Proficiency <= 5 &&
		s.Icon != ""
}

// PersonalInfo reports whether the owner record is complete.
func PersonalInfo(info model.PersonalInfo) bool {
	return info.Name != "" &&
		info.Title != "" &&
		info.Email != "" &&
		info.Location != "" &&
		info.YearsOfExperience > 0 &&
		info.Summary != "" &&
		len(info.SocialLinks) > 0
}

// All validates every collection and aggregates diagnostics. Each invalid
// record is identified by its title/company/name, or "Unknown" when the
// identifying field itself is missing.
func All(projects []model.Project, experience []model.Experience, skills []model.Skill, info model.PersonalInfo) Report {
	var errs []string

	for i, p := range projects {
		if !Project(p) {
			errs = append(errs, fmt.Sprintf("invalid project at index %d: %s", i, orUnknown(p.Title)))
		}
	}

	for i, e := range experience {
		if !Experience(e) {
			errs = append(errs, fmt.Sprintf("invalid experience at index %d: %s", i, orUnknown(e.Company)))
		}
	}

	for i, s := range skills {
		if !Skill(s) {
			errs = append(errs, fmt.Sprintf("invalid skill at index %d: %s", i, orUnknown(s.Name)))
		}
	}

	if !PersonalInfo(info) {
		errs = append(errs, "invalid personal information")
	}

	return Report{
		Valid:  len(errs) == 0,
		Errors: errs,
	}
}

// ResumeSync checks that the owner record and resume reference are consistent
// with each other. These are softer consistency checks than All; issues here
// mean the published resume may be out of step with the portfolio.
func ResumeSync(info model.PersonalInfo) Report {
	var issues []string

	if info.ResumeURL == "" {
		issues = append(issues, "resume URL not configured in personal info")
	}
	if info.ResumeURL != "" && !strings.Contains(info.ResumeURL, ".pdf") {
		issues = append(issues, "resume URL should point to a PDF file")
	}
	if info.Name == "" || info.Title == "" || info.Email == "" {
		issues = append(issues, "personal information is incomplete")
	}
	if info.YearsOfExperience < 0 || info.YearsOfExperience > 50 {
		issues = append(issues, "years of experience seems unrealistic")
	}

	return Report{
		Valid:  len(issues) == 0,
		Errors: issues,
	}
}

func orUnknown(id string) string {
	if id == "" {
		return "Unknown"
	}
	return id
}
