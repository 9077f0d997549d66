// Package content is the static domain data store: the single source of
// truth for projects, work history, skills, and owner metadata.
//
// Collections are built once and never mutated afterwards; accessors return
// fresh slice headers so callers cannot reorder the canonical data.
package content

import (
	"github.com/vpenugonda/portfolio/internal/domain/model"
)

// Store holds the portfolio collections for the process lifetime.
type Store struct {
	projects       []model.Project
	experience     []model.Experience
	skills         []model.Skill
	personal       model.PersonalInfo
	certifications []model.Certification
}

// NewStore builds the store from the shipped static dataset.
func NewStore() *Store {
	return &Store{
		projects:       projectData(),
		experience:     experienceData(),
		skills:         skillData(),
		personal:       personalData(),
		certifications: certificationData(),
	}
}

// Projects returns the project collection in display order.
func (s *Store) Projects() []model.Project {
	out := make([]model.Project, len(s.projects))
	copy(out, s.projects)
	return out
}

// Experience returns the work history, most recent first.
func (s *Store) Experience() []model.Experience {
	out := make([]model.Experience, len(s.experience))
	copy(out, s.experience)
	return out
}

// Skills returns the full skill inventory.
func (s *Store) Skills() []model.Skill {
	out := make([]model.Skill, len(s.skills))
	copy(out, s.skills)
	return out
}

// PersonalInfo returns the singleton owner record.
func (s *Store) PersonalInfo() model.PersonalInfo {
	return s.personal
}

// Certifications returns the professional certifications.
func (s *Store) Certifications() []model.Certification {
	out := make([]model.Certification, len(s.certifications))
	copy(out, s.certifications)
	return out
}

// SkillsByCategory returns the skills in one category, in inventory order.
func (s *Store) SkillsByCategory(category model.SkillCategory) []model.Skill {
	var out []model.Skill
	for _, skill := range s.skills {
		if skill.Category == category {
			out = append(out, skill)
		}
	}
	return out
}

// FeaturedSkills returns skills with proficiency 4 or higher.
func (s *Store) FeaturedSkills() []model.Skill {
	var out []model.Skill
	for _, skill := range s.skills {
		if skill.Proficiency >= 4 {
			out = append(out, skill)
		}
	}
	return out
}

// SkillsWithCertifications returns skills carrying certification labels.
func (s *Store) SkillsWithCertifications() []model.Skill {
	var out []model.Skill
	for _, skill := range s.skills {
		if len(skill.Certifications) > 0 {
			out = append(out, skill)
		}
	}
	return out
}

// FeaturedProjects returns the projects flagged for the featured row.
func (s *Store) FeaturedProjects() []model.Project {
	var out []model.Project
	for _, p := range s.projects {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}
