// ABOUTME: Data models for portfolio documents
// ABOUTME: Defines the PortfolioData aggregate and its nested record types
package models

// Portfolio kind constants.
const (
	KindBasic   = "BASIC"
	KindRemodel = "REMODEL"
)

// Contact type constants. A contact type selects a display icon from the
// catalog by exact match; unmatched types render without an icon.
const (
	ContactEmail     = "email"
	ContactGitHub    = "github"
	ContactBlog      = "blog"
	ContactNotion    = "notion"
	ContactLinkedIn  = "linkedin"
	ContactVelog     = "velog"
	ContactInstagram = "instagram"
	ContactEtc       = "etc"
)

type Contact struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type Skill struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

type Experience struct {
	Company     string   `json:"company"`
	Period      string   `json:"period"`
	Position    string   `json:"position"`
	Description string   `json:"description"`
	Techs       []string `json:"techs"`
}

type Project struct {
	Title         string   `json:"title"`
	Description   string   `json:"description"`
	Link          string   `json:"link"`
	Techs         []string `json:"techs"`
	Images        []string `json:"images"`
	TeamSize      int      `json:"teamSize,omitempty"`
	MyRole        string   `json:"myRole,omitempty"`
	Contributions []string `json:"contributions,omitempty"`
}

type Education struct {
	School      string `json:"school"`
	Degree      string `json:"degree,omitempty"`
	Major       string `json:"major,omitempty"`
	Start       string `json:"start,omitempty"` // year-month, e.g. "2021-03"
	End         string `json:"end,omitempty"`
	Description string `json:"description,omitempty"`
}

type Certification struct {
	Name         string `json:"name"`
	Issuer       string `json:"issuer,omitempty"`
	Date         string `json:"date,omitempty"`
	Expires      string `json:"expires,omitempty"`
	CredentialID string `json:"credentialId,omitempty"`
}

type Award struct {
	Title       string `json:"title"`
	Issuer      string `json:"issuer,omitempty"`
	Date        string `json:"date,omitempty"`
	Description string `json:"description,omitempty"`
}

// PortfolioData is the full document aggregate. Insertion order of every
// list field is display order. The aggregate is owned by exactly one
// surface at a time; list mutations go through the operations in
// mutations.go, which never modify a slice or record in place.
type PortfolioData struct {
	Name           string          `json:"name"`
	Role           string          `json:"role"`
	Contacts       []Contact       `json:"contacts"`
	Introduction   string          `json:"introduction"`
	Skills         []Skill         `json:"skills"`
	Experiences    []Experience    `json:"experiences"`
	Projects       []Project       `json:"projects"`
	Educations     []Education     `json:"educations,omitempty"`
	Certifications []Certification `json:"certifications,omitempty"`
	Awards         []Award         `json:"awards,omitempty"`
}

// Default returns a fresh document: empty sequences and one placeholder
// project, matching the server's create-default template.
func Default() PortfolioData {
	return PortfolioData{
		Contacts:       []Contact{},
		Skills:         []Skill{},
		Experiences:    []Experience{},
		Projects:       []Project{{Techs: []string{}, Images: []string{}}},
		Educations:     []Education{},
		Certifications: []Certification{},
		Awards:         []Award{},
	}
}

// IsEmpty reports whether the document has no user-entered content at all.
// A lone placeholder project does not count.
func (p PortfolioData) IsEmpty() bool {
	if p.Name != "" || p.Role != "" || p.Introduction != "" {
		return false
	}
	if len(p.Contacts) > 0 || len(p.Skills) > 0 || len(p.Experiences) > 0 {
		return false
	}
	for _, pr := range p.Projects {
		if pr.Title != "" || pr.Description != "" || pr.Link != "" ||
			len(pr.Techs) > 0 || len(pr.Images) > 0 {
			return false
		}
	}
	return len(p.Educations) == 0 && len(p.Certifications) == 0 && len(p.Awards) == 0
}

// Clone returns a deep copy of the document.
func (p PortfolioData) Clone() PortfolioData {
	out := p
	out.Contacts = append([]Contact(nil), p.Contacts...)
	out.Skills = append([]Skill(nil), p.Skills...)
	out.Experiences = make([]Experience, len(p.Experiences))
	for i, e := range p.Experiences {
		e.Techs = append([]string(nil), e.Techs...)
		out.Experiences[i] = e
	}
	out.Projects = make([]Project, len(p.Projects))
	for i, pr := range p.Projects {
		pr.Techs = append([]string(nil), pr.Techs...)
		pr.Images = append([]string(nil), pr.Images...)
		pr.Contributions = append([]string(nil), pr.Contributions...)
		out.Projects[i] = pr
	}
	out.Educations = append([]Education(nil), p.Educations...)
	out.Certifications = append([]Certification(nil), p.Certifications...)
	out.Awards = append([]Award(nil), p.Awards...)
	return out
}

// Merged overlays a partial document on a base skeleton. Scalar fields are
// taken from the partial; each list field present in the partial (non-nil)
// fully replaces the base list, and each absent list field keeps the base
// list. This is a shallow field merge: lists are never merged element-wise,
// so stale placeholder entries in the base cannot survive a richer partial.
func Merged(base, partial PortfolioData) PortfolioData {
	out := base
	out.Name = partial.Name
	out.Role = partial.Role
	out.Introduction = partial.Introduction
	if partial.Contacts != nil {
		out.Contacts = partial.Contacts
	}
	if partial.Skills != nil {
		out.Skills = partial.Skills
	}
	if partial.Experiences != nil {
		out.Experiences = partial.Experiences
	}
	if partial.Projects != nil {
		out.Projects = partial.Projects
	}
	if partial.Educations != nil {
		out.Educations = partial.Educations
	}
	if partial.Certifications != nil {
		out.Certifications = partial.Certifications
	}
	if partial.Awards != nil {
		out.Awards = partial.Awards
	}
	return out
}

// Title derives the list title shown for a stored document.
func (p PortfolioData) Title() string {
	if p.Name == "" && p.Role == "" {
		return ""
	}
	if p.Role == "" {
		return p.Name
	}
	if p.Name == "" {
		return p.Role
	}
	return p.Name + " - " + p.Role
}
