// ABOUTME: Read-only preview of a portfolio document
// ABOUTME: Renders every section and a per-project image carousel
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jeonsowon/Portfolio-Project/blob"
	"github.com/Jeonsowon/Portfolio-Project/catalog"
	"github.com/Jeonsowon/Portfolio-Project/models"
	"github.com/Jeonsowon/Portfolio-Project/reconcile"
)

type previewState struct {
	id     *int64
	doc    models.PortfolioData
	source reconcile.Source

	// One remembered carousel position per project, keyed by index.
	carousel map[int]int
	project  int
}

func (m *Model) initPreview(res reconcile.Resolution) {
	m.preview = previewState{
		id:       res.ID,
		doc:      res.Doc,
		source:   res.Source,
		carousel: make(map[int]int),
	}
}

// resolveForPreview applies the preview resolution order. In-app handoffs
// pass the document directly; a preview reached without one falls back to
// the server copy, then any local draft, then the empty template.
func resolveForPreview(m Model, id *int64, nav *models.PortfolioData) reconcile.Resolution {
	fetch := func(fetchID int64) (models.PortfolioData, error) {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		detail, err := m.api.Get(ctx, fetchID)
		return detail.Data, err
	}
	return reconcile.Resolve(nav, id, nil, fetch, m.drafts.Load)
}

func (m Model) renderPreviewView() string {
	doc := m.preview.doc
	var s strings.Builder

	s.WriteString(titleStyle.Render("PREVIEW"))
	if m.preview.source == reconcile.FromDraft {
		s.WriteString("  " + statusStyle.Render("(unsaved draft)"))
	}
	s.WriteString("\n\n")

	name := doc.Name
	if name == "" {
		name = "(no name)"
	}
	s.WriteString(sectionHeaderStyle.Render(name))
	if doc.Role != "" {
		s.WriteString("  " + doc.Role)
	}
	s.WriteString("\n")
	if doc.Introduction != "" {
		s.WriteString(doc.Introduction + "\n")
	}

	if len(doc.Contacts) > 0 {
		s.WriteString("\n" + sectionHeaderStyle.Render("Contact") + "\n")
		for _, c := range doc.Contacts {
			s.WriteString(fmt.Sprintf("  %s: %s\n", catalog.ContactLabel(c.Type), c.Value))
		}
	}

	if len(doc.Skills) > 0 {
		s.WriteString("\n" + sectionHeaderStyle.Render("Skills") + "\n")
		s.WriteString("  " + strings.Join(skillNames(doc.Skills), ", ") + "\n")
	}

	if len(doc.Experiences) > 0 {
		s.WriteString("\n" + sectionHeaderStyle.Render("Experience") + "\n")
		for _, x := range doc.Experiences {
			s.WriteString(fmt.Sprintf("  %s", x.Company))
			if x.Position != "" {
				s.WriteString(" - " + x.Position)
			}
			if x.Period != "" {
				s.WriteString(" (" + x.Period + ")")
			}
			s.WriteString("\n")
			if x.Description != "" {
				s.WriteString("    " + x.Description + "\n")
			}
			if len(x.Techs) > 0 {
				s.WriteString("    " + suggestionStyle.Render(strings.Join(x.Techs, ", ")) + "\n")
			}
		}
	}

	if len(doc.Projects) > 0 {
		s.WriteString("\n" + sectionHeaderStyle.Render("Projects") + "\n")
		for i, p := range doc.Projects {
			s.WriteString(m.renderPreviewProject(i, p))
		}
	}

	if len(doc.Educations) > 0 {
		s.WriteString("\n" + sectionHeaderStyle.Render("Education") + "\n")
		for _, ed := range doc.Educations {
			s.WriteString("  " + ed.School)
			if ed.Major != "" {
				s.WriteString(", " + ed.Major)
			}
			if ed.Degree != "" {
				s.WriteString(" (" + ed.Degree + ")")
			}
			if ed.Start != "" || ed.End != "" {
				s.WriteString("  " + ed.Start + " ~ " + ed.End)
			}
			s.WriteString("\n")
		}
	}

	if len(doc.Certifications) > 0 {
		s.WriteString("\n" + sectionHeaderStyle.Render("Certifications") + "\n")
		for _, c := range doc.Certifications {
			s.WriteString("  " + c.Name)
			if c.Issuer != "" {
				s.WriteString(" - " + c.Issuer)
			}
			if c.Date != "" {
				s.WriteString(" (" + c.Date + ")")
			}
			s.WriteString("\n")
		}
	}

	if len(doc.Awards) > 0 {
		s.WriteString("\n" + sectionHeaderStyle.Render("Awards") + "\n")
		for _, a := range doc.Awards {
			s.WriteString("  " + a.Title)
			if a.Issuer != "" {
				s.WriteString(" - " + a.Issuer)
			}
			if a.Date != "" {
				s.WriteString(" (" + a.Date + ")")
			}
			s.WriteString("\n")
		}
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render(strings.Join([]string{
		"↑/↓: Project",
		"←/→: Image",
		"e: Edit",
		"Esc: Back",
	}, " • ")))

	return s.String()
}

func (m Model) renderPreviewProject(i int, p models.Project) string {
	var s strings.Builder

	marker := "  "
	if i == m.preview.project {
		marker = "> "
	}
	title := p.Title
	if title == "" {
		title = "(untitled project)"
	}
	s.WriteString(marker + title)
	if p.MyRole != "" {
		s.WriteString(" - " + p.MyRole)
	}
	if p.TeamSize > 0 {
		s.WriteString(fmt.Sprintf(" (team of %d)", p.TeamSize))
	}
	s.WriteString("\n")

	if p.Description != "" {
		s.WriteString("    " + p.Description + "\n")
	}
	if p.Link != "" {
		s.WriteString("    " + p.Link + "\n")
	}
	for _, c := range p.Contributions {
		s.WriteString("    - " + c + "\n")
	}
	if len(p.Techs) > 0 {
		s.WriteString("    " + suggestionStyle.Render(strings.Join(p.Techs, ", ")) + "\n")
	}

	if n := len(p.Images); n > 0 {
		pos := clampCarousel(m.preview.carousel[i], n)
		kind := "saved"
		if blob.IsBlobRef(p.Images[pos]) {
			kind = "unsaved"
		}
		s.WriteString(fmt.Sprintf("    [image %d/%d, %s]\n", pos+1, n, kind))
	}

	return s.String()
}

func (m Model) handlePreviewKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	p := &m.preview

	switch msg.String() {
	case "esc", "q":
		// Leaving preview abandons the document; any temporary refs it
		// carried over from an edit handoff die with it.
		p.doc.ReleaseAllImages(m.blobs.Release)
		m.viewMode = ViewHome
		m.loading = true
		return m, m.loadPortfoliosCmd()

	case "up", "k":
		if p.project > 0 {
			p.project--
		}
	case "down", "j":
		if p.project < len(p.doc.Projects)-1 {
			p.project++
		}

	case "left":
		if pr, ok := entryAt(p.doc.Projects, p.project); ok {
			p.carousel[p.project] = carouselPrev(
				clampCarousel(p.carousel[p.project], len(pr.Images)), len(pr.Images))
		}
	case "right":
		if pr, ok := entryAt(p.doc.Projects, p.project); ok {
			p.carousel[p.project] = carouselNext(
				clampCarousel(p.carousel[p.project], len(pr.Images)), len(pr.Images))
		}

	case "e":
		// Hand the document back unchanged; no fetch, no draft read.
		m.initEditView(p.id, p.doc)
		m.viewMode = ViewEdit
		return m, nil
	}

	return m, nil
}
