// ABOUTME: Tests for the portfolio document model
// ABOUTME: Validates defaults, clone independence, and shallow merge semantics
package models

import "testing"

func TestDefaultHasPlaceholderProject(t *testing.T) {
	p := Default()

	if len(p.Projects) != 1 {
		t.Fatalf("expected 1 placeholder project, got %d", len(p.Projects))
	}
	if p.Projects[0].Title != "" {
		t.Errorf("placeholder project should be empty, got title %q", p.Projects[0].Title)
	}
	if !p.IsEmpty() {
		t.Error("default document should report empty")
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := Default()
	p.Name = "Ann"
	p = p.AddProjectTech(0, "Go")

	c := p.Clone()
	c.Projects[0].Techs[0] = "Rust"
	c.Name = "Bob"

	if p.Projects[0].Techs[0] != "Go" {
		t.Errorf("clone mutation leaked into original: %q", p.Projects[0].Techs[0])
	}
	if p.Name != "Ann" {
		t.Errorf("expected original name Ann, got %q", p.Name)
	}
}

func TestMergedReplacesPresentListsWholesale(t *testing.T) {
	base := Default()
	partial := PortfolioData{
		Name:     "Ann",
		Projects: []Project{{Title: "Demo"}, {Title: "Other"}},
	}

	out := Merged(base, partial)

	if out.Name != "Ann" {
		t.Errorf("expected name Ann, got %q", out.Name)
	}
	// The default placeholder project must not survive a present projects list.
	if len(out.Projects) != 2 || out.Projects[0].Title != "Demo" {
		t.Errorf("projects should be replaced wholesale, got %+v", out.Projects)
	}
	// Absent lists keep the base value.
	if out.Skills == nil || len(out.Skills) != 0 {
		t.Errorf("absent skills should keep base empty list, got %+v", out.Skills)
	}
}

func TestMergedKeepsBaseListWhenAbsent(t *testing.T) {
	base := Default()
	base.Skills = []Skill{{Name: "Go"}}

	out := Merged(base, PortfolioData{Name: "Ann"})

	if len(out.Skills) != 1 || out.Skills[0].Name != "Go" {
		t.Errorf("absent skills field should keep base skills, got %+v", out.Skills)
	}
}

func TestTitleDerivation(t *testing.T) {
	cases := []struct {
		name, role, want string
	}{
		{"Ann", "Backend Developer", "Ann - Backend Developer"},
		{"Ann", "", "Ann"},
		{"", "Backend Developer", "Backend Developer"},
		{"", "", ""},
	}
	for _, c := range cases {
		got := PortfolioData{Name: c.name, Role: c.role}.Title()
		if got != c.want {
			t.Errorf("Title(%q, %q) = %q, want %q", c.name, c.role, got, c.want)
		}
	}
}
