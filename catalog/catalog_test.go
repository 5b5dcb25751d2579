// ABOUTME: Tests for the static skill and contact catalogs
// ABOUTME: Validates lookup, suggestion filtering, and icon fallback
package catalog

import (
	"strings"
	"testing"
)

func TestLookupSkillIsCaseInsensitive(t *testing.T) {
	s, ok := LookupSkill("react")
	if !ok {
		t.Fatal("expected a match for 'react'")
	}
	if s.Name != "React" {
		t.Errorf("expected canonical name React, got %q", s.Name)
	}
	if s.Icon == "" {
		t.Error("catalog match should carry an icon")
	}
}

func TestResolveSkillFallsBackToTrimmedInput(t *testing.T) {
	s := ResolveSkill("  MyInternalTool  ")
	if s.Name != "MyInternalTool" {
		t.Errorf("expected trimmed input, got %q", s.Name)
	}
	if s.Icon != "" {
		t.Errorf("unmatched skill should have empty icon, got %q", s.Icon)
	}
}

func TestFilterSkillsCapsSuggestions(t *testing.T) {
	// "a" matches far more than five entries.
	got := FilterSkills("a")
	if len(got) != MaxSuggestions {
		t.Errorf("expected %d suggestions, got %d", MaxSuggestions, len(got))
	}
	for _, s := range got {
		if !strings.Contains(strings.ToLower(s.Name), "a") {
			t.Errorf("suggestion %q does not match query", s.Name)
		}
	}
}

func TestFilterSkillsEmptyQuery(t *testing.T) {
	if got := FilterSkills("   "); got != nil {
		t.Errorf("blank query should yield nil, got %v", got)
	}
}

func TestContactIconUnmatchedTypeIsEmpty(t *testing.T) {
	if icon := ContactIcon("carrier-pigeon"); icon != "" {
		t.Errorf("unknown contact type should have no icon, got %q", icon)
	}
	if icon := ContactIcon("github"); icon == "" {
		t.Error("github should resolve to an icon")
	}
}
