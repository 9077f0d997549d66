// Package filter derives facet-filtered views of projects and skills.
//
// Filtering never mutates the source collections. A facet set to the
// sentinel "all" applies no restriction; both project facets combine
// conjunctively.
package filter

import (
	"sort"

	"github.com/vpenugonda/portfolio/internal/domain/model"
)

// All is the sentinel facet value meaning "no restriction".
const All = "all"

// Selection holds the current facet choices for the project view.
type Selection struct {
	Category   string `json:"category"`
	Technology string `json:"technology"`
}

// Unrestricted reports whether no facet restricts the view.
func (s Selection) Unrestricted() bool {
	return s.Category == All && s.Technology == All
}

// Technologies returns the distinct technology names across all projects,
// case-sensitive, lexicographically sorted for stable presentation.
func Technologies(projects []model.Project) []string {
	set := make(map[string]struct{})
	for _, p := range projects {
		for _, tech := range p.Technologies {
			set[tech] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for tech := range set {
		out = append(out, tech)
	}
	sort.Strings(out)
	return out
}

// Projects returns the subset matching both facets. A project passes iff its
// category matches (or category is "all") and its technology list contains
// the selected technology exactly (or technology is "all").
func Projects(projects []model.Project, category, technology string) []model.Project {
	out := make([]model.Project, 0, len(projects))
	for _, p := range projects {
		if !matchesCategory(p, category) {
			continue
		}
		if !matchesTechnology(p, technology) {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Skills returns the subset matching the category facet.
func Skills(skills []model.Skill, category string) []model.Skill {
	out := make([]model.Skill, 0, len(skills))
	for _, s := range skills {
		if category == All || string(s.Category) == category {
			out = append(out, s)
		}
	}
	return out
}

func matchesCategory(p model.Project, category string) bool {
	return category == All || string(p.Category) == category
}

func matchesTechnology(p model.Project, technology string) bool {
	if technology == All {
		return true
	}
	for _, tech := range p.Technologies {
		if tech == technology {
			return true
		}
	}
	return false
}
