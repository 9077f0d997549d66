// Package model contains domain models passed between layers.
package model

// ProjectCategory is the closed set of project categories.
type ProjectCategory string

// Project categories.
const (
	CategoryDataPipeline   ProjectCategory = "data-pipeline"
	CategoryAnalytics      ProjectCategory = "analytics"
	CategoryMLOps          ProjectCategory = "ml-ops"
	CategoryInfrastructure ProjectCategory = "infrastructure"
)

// Valid reports whether the category is one of the known values.
func (c ProjectCategory) Valid() bool {
	switch c {
	case CategoryDataPipeline, CategoryAnalytics, CategoryMLOps, CategoryInfrastructure:
		return true
	}
	return false
}

// ProjectStatus is the closed set of project delivery states.
type ProjectStatus string

// Project statuses.
const (
	StatusCompleted  ProjectStatus = "completed"
	StatusInProgress ProjectStatus = "in-progress"
	StatusPlanned    ProjectStatus = "planned"
)

// Valid reports whether the status is one of the known values.
func (s ProjectStatus) Valid() bool {
	switch s {
	case StatusCompleted, StatusInProgress, StatusPlanned:
		return true
	}
	return false
}

// SkillCategory is the closed set of skill categories.
type SkillCategory string

// Skill categories.
const (
	SkillProgramming SkillCategory = "programming"
	SkillDatabases   SkillCategory = "databases"
	SkillCloud       SkillCategory = "cloud"
	SkillTools       SkillCategory = "tools"
	SkillFrameworks  SkillCategory = "frameworks"
)

// Valid reports whether the category is one of the known values.
func (c SkillCategory) Valid() bool {
	switch c {
	case SkillProgramming, SkillDatabases, SkillCloud, SkillTools, SkillFrameworks:
		return true
	}
	return false
}

// Metric is a (label, value) pair describing a project outcome.
type Metric struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Project describes one portfolio project.
// IDs are unique across the collection; technologies and achievements are
// never empty for a valid record.
type Project struct {
	ID              string          `json:"id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	LongDescription string          `json:"long_description"`
	Technologies    []string        `json:"technologies"`
	Category        ProjectCategory `json:"category"`
	Image           string          `json:"image"`
	LiveURL         string          `json:"live_url,omitempty"`
	GitHubURL       string          `json:"github_url,omitempty"`
	Achievements    []string        `json:"achievements"`
	Timeline        string          `json:"timeline"`
	Featured        bool            `json:"featured"`
	Status          ProjectStatus   `json:"status"`
	Metrics         []Metric        `json:"metrics,omitempty"`
}

// Experience describes one work-history entry. Entries are ordered
// most-recent-first for display. Current implies no EndDate; an empty
// EndDate means not-yet-applicable, not unknown.
type Experience struct {
	ID           string   `json:"id"`
	Company      string   `json:"company"`
	Role         string   `json:"role"`
	Duration     string   `json:"duration"`
	StartDate    string   `json:"start_date"`
	EndDate      string   `json:"end_date,omitempty"`
	Location     string   `json:"location"`
	Description  string   `json:"description"`
	Achievements []string `json:"achievements"`
	Technologies []string `json:"technologies"`
	Logo         string   `json:"logo"`
	CompanyURL   string   `json:"company_url,omitempty"`
	Current      bool     `json:"current"`
}

// Skill describes one inventory entry. Proficiency is on a 1-5 scale.
type Skill struct {
	Name              string        `json:"name"`
	Category          SkillCategory `json:"category"`
	Proficiency       int           `json:"proficiency"`
	Icon              string        `json:"icon"`
	Description       string        `json:"description,omitempty"`
	YearsOfExperience int           `json:"years_of_experience,omitempty"`
	Certifications    []string      `json:"certifications,omitempty"`
}

// SocialLink is one external profile reference.
type SocialLink struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Icon string `json:"icon"`
}

// PersonalInfo is the singleton owner record.
type PersonalInfo struct {
	Name              string       `json:"name"`
	Title             string       `json:"title"`
	Email             string       `json:"email"`
	Location          string       `json:"location"`
	YearsOfExperience int          `json:"years_of_experience"`
	Summary           string       `json:"summary"`
	ProfileImage      string       `json:"profile_image"`
	ResumeURL         string       `json:"resume_url,omitempty"`
	SocialLinks       []SocialLink `json:"social_links"`
}

// Certification is one professional certification.
type Certification struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Issuer        string `json:"issuer"`
	Date          string `json:"date"`
	CredentialID  string `json:"credential_id,omitempty"`
	CredentialURL string `json:"credential_url,omitempty"`
	Logo          string `json:"logo"`
}
