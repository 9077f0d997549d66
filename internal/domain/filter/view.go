package filter

import (
	"sync"

	"github.com/vpenugonda/portfolio/internal/domain/model"
)

// ProjectResult is a filtered project view. NoMatches distinguishes "zero
// results for these facets" from Loading, "source data not yet available".
type ProjectResult struct {
	Projects  []model.Project `json:"projects"`
	Selection Selection       `json:"selection"`
	NoMatches bool            `json:"no_matches"`
	Loading   bool            `json:"loading"`
}

// SkillResult is a filtered skill view, with the same empty/loading split.
type SkillResult struct {
	Skills    []model.Skill `json:"skills"`
	Category  string        `json:"category"`
	NoMatches bool          `json:"no_matches"`
	Loading   bool          `json:"loading"`
}

// ProjectView owns the facet selection for the project gallery and memoizes
// the filtered sequence. The memo is invalidated on every selection change,
// so a stale result is never returned.
type ProjectView struct {
	mu     sync.Mutex
	source []model.Project
	sel    Selection
	cached []model.Project
	fresh  bool
}

// NewProjectView creates a view over source with both facets unrestricted.
func NewProjectView(source []model.Project) *ProjectView {
	return &ProjectView{
		source: source,
		sel:    Selection{Category: All, Technology: All},
	}
}

// Select sets both facets in one update and invalidates the memo.
func (v *ProjectView) Select(category, technology string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.sel = Selection{Category: category, Technology: technology}
	v.fresh = false
}

// Clear resets every facet to "all" atomically.
func (v *ProjectView) Clear() {
	v.Select(All, All)
}

// Selection returns the current facet choices.
func (v *ProjectView) Selection() Selection {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.sel
}

// Result recomputes the filtered sequence if the selection changed since the
// last call, and reports the empty/loading distinction.
func (v *ProjectView) Result() ProjectResult {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.fresh {
		v.cached = Projects(v.source, v.sel.Category, v.sel.Technology)
		v.fresh = true
	}

	return ProjectResult{
		Projects:  v.cached,
		Selection: v.sel,
		NoMatches: len(v.cached) == 0 && len(v.source) > 0,
		Loading:   len(v.source) == 0,
	}
}

// SkillView owns the category facet for the skills browser.
type SkillView struct {
	mu       sync.Mutex
	source   []model.Skill
	category string
	cached   []model.Skill
	fresh    bool
}

// NewSkillView creates a view over source with the category unrestricted.
func NewSkillView(source []model.Skill) *SkillView {
	return &SkillView{source: source, category: All}
}

// Select sets the category facet and invalidates the memo.
func (v *SkillView) Select(category string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.category = category
	v.fresh = false
}

// Clear resets the category facet to "all".
func (v *SkillView) Clear() {
	v.Select(All)
}

// Result recomputes the filtered sequence if the selection changed since the
// last call.
func (v *SkillView) Result() SkillResult {
	v.mu.Lock()
	defer v.mu.Unlock()

	if !v.fresh {
		v.cached = Skills(v.source, v.category)
		v.fresh = true
	}

	return SkillResult{
		Skills:    v.cached,
		Category:  v.category,
		NoMatches: len(v.cached) == 0 && len(v.source) > 0,
		Loading:   len(v.source) == 0,
	}
}
