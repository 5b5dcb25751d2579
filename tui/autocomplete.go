// ABOUTME: Suggestion state for the skill input
// ABOUTME: Pure functions so highlight and commit behavior are testable
package tui

import (
	"github.com/Jeonsowon/Portfolio-Project/catalog"
	"github.com/Jeonsowon/Portfolio-Project/models"
)

// autocomplete tracks the open suggestion list under the skill input.
// highlight == -1 means nothing is highlighted yet.
type autocomplete struct {
	suggestions []models.Skill
	highlight   int
}

// refresh recomputes suggestions for the current query and resets the
// highlight.
func (a autocomplete) refresh(query string) autocomplete {
	return autocomplete{
		suggestions: catalog.FilterSkills(query),
		highlight:   -1,
	}
}

func (a autocomplete) open() bool {
	return len(a.suggestions) > 0
}

// moveDown advances the highlight, wrapping past the end back to the top.
func (a autocomplete) moveDown() autocomplete {
	if !a.open() {
		return a
	}
	a.highlight = (a.highlight + 1) % len(a.suggestions)
	return a
}

// moveUp retreats the highlight, wrapping past the top to the bottom.
func (a autocomplete) moveUp() autocomplete {
	if !a.open() {
		return a
	}
	if a.highlight <= 0 {
		a.highlight = len(a.suggestions) - 1
	} else {
		a.highlight--
	}
	return a
}

// commit picks the skill a confirm key adds: the highlighted suggestion
// when there is one, otherwise the typed text resolved against the
// catalog.
func (a autocomplete) commit(query string) (models.Skill, bool) {
	if a.open() && a.highlight >= 0 {
		return a.suggestions[a.highlight], true
	}
	s := catalog.ResolveSkill(query)
	if s.Name == "" {
		return models.Skill{}, false
	}
	return s, true
}

func (a autocomplete) closed() autocomplete {
	return autocomplete{highlight: -1}
}
