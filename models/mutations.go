// ABOUTME: List mutation operations over the portfolio document
// ABOUTME: Immutable-replace discipline so renders can detect changes by reference
package models

import "strings"

// appended, removedAt and replacedAt are the only three shapes a list
// mutation can take: append at the tail, remove with left shift, replace
// in position. All of them copy; the input slice is never touched.

func appended[T any](s []T, v T) []T {
	out := make([]T, len(s), len(s)+1)
	copy(out, s)
	return append(out, v)
}

func removedAt[T any](s []T, i int) []T {
	if i < 0 || i >= len(s) {
		return s
	}
	out := make([]T, 0, len(s)-1)
	out = append(out, s[:i]...)
	return append(out, s[i+1:]...)
}

func replacedAt[T any](s []T, i int, v T) []T {
	if i < 0 || i >= len(s) {
		return s
	}
	out := make([]T, len(s))
	copy(out, s)
	out[i] = v
	return out
}

// --- Contacts ---

func (p PortfolioData) AddContact(c Contact) PortfolioData {
	c.Value = strings.TrimSpace(c.Value)
	if c.Value == "" {
		return p
	}
	p.Contacts = appended(p.Contacts, c)
	return p
}

func (p PortfolioData) RemoveContact(i int) PortfolioData {
	p.Contacts = removedAt(p.Contacts, i)
	return p
}

// --- Skills ---

// AddSkill appends a skill unless one with the same name already exists,
// compared case-insensitively. The first write wins on casing.
func (p PortfolioData) AddSkill(s Skill) PortfolioData {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		return p
	}
	for _, have := range p.Skills {
		if strings.EqualFold(have.Name, s.Name) {
			return p
		}
	}
	p.Skills = appended(p.Skills, s)
	return p
}

func (p PortfolioData) RemoveSkill(i int) PortfolioData {
	p.Skills = removedAt(p.Skills, i)
	return p
}

// --- Experiences ---

func (p PortfolioData) AddExperience() PortfolioData {
	p.Experiences = appended(p.Experiences, Experience{Techs: []string{}})
	return p
}

// UpdateExperience replaces the experience at i with a copy modified by fn.
func (p PortfolioData) UpdateExperience(i int, fn func(*Experience)) PortfolioData {
	if i < 0 || i >= len(p.Experiences) {
		return p
	}
	e := p.Experiences[i]
	e.Techs = append([]string(nil), e.Techs...)
	fn(&e)
	p.Experiences = replacedAt(p.Experiences, i, e)
	return p
}

func (p PortfolioData) RemoveExperience(i int) PortfolioData {
	p.Experiences = removedAt(p.Experiences, i)
	return p
}

// AddExperienceTech appends a trimmed tag to the experience's tech list.
// Empty input is a no-op; duplicates are allowed.
func (p PortfolioData) AddExperienceTech(i int, text string) PortfolioData {
	text = strings.TrimSpace(text)
	if text == "" {
		return p
	}
	return p.UpdateExperience(i, func(e *Experience) {
		e.Techs = appended(e.Techs, text)
	})
}

func (p PortfolioData) RemoveExperienceTech(i, j int) PortfolioData {
	return p.UpdateExperience(i, func(e *Experience) {
		e.Techs = removedAt(e.Techs, j)
	})
}

// --- Projects ---

func (p PortfolioData) AddProject() PortfolioData {
	p.Projects = appended(p.Projects, Project{Techs: []string{}, Images: []string{}})
	return p
}

func (p PortfolioData) UpdateProject(i int, fn func(*Project)) PortfolioData {
	if i < 0 || i >= len(p.Projects) {
		return p
	}
	pr := p.Projects[i]
	pr.Techs = append([]string(nil), pr.Techs...)
	pr.Images = append([]string(nil), pr.Images...)
	pr.Contributions = append([]string(nil), pr.Contributions...)
	fn(&pr)
	p.Projects = replacedAt(p.Projects, i, pr)
	return p
}

// RemoveProject removes the project at i. Every image reference the project
// owns is passed to release before the entry goes away, so temporary blob
// references cannot outlive their owner.
func (p PortfolioData) RemoveProject(i int, release func(string)) PortfolioData {
	if i < 0 || i >= len(p.Projects) {
		return p
	}
	if release != nil {
		for _, img := range p.Projects[i].Images {
			release(img)
		}
	}
	p.Projects = removedAt(p.Projects, i)
	return p
}

func (p PortfolioData) AddProjectTech(i int, text string) PortfolioData {
	text = strings.TrimSpace(text)
	if text == "" {
		return p
	}
	return p.UpdateProject(i, func(pr *Project) {
		pr.Techs = appended(pr.Techs, text)
	})
}

func (p PortfolioData) RemoveProjectTech(i, j int) PortfolioData {
	return p.UpdateProject(i, func(pr *Project) {
		pr.Techs = removedAt(pr.Techs, j)
	})
}

func (p PortfolioData) AddContribution(i int, text string) PortfolioData {
	text = strings.TrimSpace(text)
	if text == "" {
		return p
	}
	return p.UpdateProject(i, func(pr *Project) {
		pr.Contributions = appended(pr.Contributions, text)
	})
}

func (p PortfolioData) RemoveContribution(i, j int) PortfolioData {
	return p.UpdateProject(i, func(pr *Project) {
		pr.Contributions = removedAt(pr.Contributions, j)
	})
}

// AddProjectImages appends image references to the project. Zero refs is a
// no-op, matching a file dialog dismissed without a selection.
func (p PortfolioData) AddProjectImages(i int, refs []string) PortfolioData {
	if len(refs) == 0 {
		return p
	}
	return p.UpdateProject(i, func(pr *Project) {
		for _, r := range refs {
			pr.Images = appended(pr.Images, r)
		}
	})
}

// RemoveProjectImage removes the image at position j, releasing it first.
func (p PortfolioData) RemoveProjectImage(i, j int, release func(string)) PortfolioData {
	if i < 0 || i >= len(p.Projects) {
		return p
	}
	if j < 0 || j >= len(p.Projects[i].Images) {
		return p
	}
	if release != nil {
		release(p.Projects[i].Images[j])
	}
	return p.UpdateProject(i, func(pr *Project) {
		pr.Images = removedAt(pr.Images, j)
	})
}

// --- Educations ---

func (p PortfolioData) AddEducation() PortfolioData {
	p.Educations = appended(p.Educations, Education{})
	return p
}

func (p PortfolioData) UpdateEducation(i int, fn func(*Education)) PortfolioData {
	if i < 0 || i >= len(p.Educations) {
		return p
	}
	e := p.Educations[i]
	fn(&e)
	p.Educations = replacedAt(p.Educations, i, e)
	return p
}

func (p PortfolioData) RemoveEducation(i int) PortfolioData {
	p.Educations = removedAt(p.Educations, i)
	return p
}

// --- Certifications ---

func (p PortfolioData) AddCertification() PortfolioData {
	p.Certifications = appended(p.Certifications, Certification{})
	return p
}

func (p PortfolioData) UpdateCertification(i int, fn func(*Certification)) PortfolioData {
	if i < 0 || i >= len(p.Certifications) {
		return p
	}
	c := p.Certifications[i]
	fn(&c)
	p.Certifications = replacedAt(p.Certifications, i, c)
	return p
}

func (p PortfolioData) RemoveCertification(i int) PortfolioData {
	p.Certifications = removedAt(p.Certifications, i)
	return p
}

// --- Awards ---

func (p PortfolioData) AddAward() PortfolioData {
	p.Awards = appended(p.Awards, Award{})
	return p
}

func (p PortfolioData) UpdateAward(i int, fn func(*Award)) PortfolioData {
	if i < 0 || i >= len(p.Awards) {
		return p
	}
	a := p.Awards[i]
	fn(&a)
	p.Awards = replacedAt(p.Awards, i, a)
	return p
}

func (p PortfolioData) RemoveAward(i int) PortfolioData {
	p.Awards = removedAt(p.Awards, i)
	return p
}

// ReleaseAllImages passes every image reference owned by any surviving
// project to release. Used at edit-surface teardown.
func (p PortfolioData) ReleaseAllImages(release func(string)) {
	if release == nil {
		return
	}
	for _, pr := range p.Projects {
		for _, img := range pr.Images {
			release(img)
		}
	}
}
