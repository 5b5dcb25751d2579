// ABOUTME: Edit view for a portfolio document, organized in section tabs
// ABOUTME: Every mutation goes through the document operations and lands in the draft store
package tui

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jeonsowon/Portfolio-Project/ai"
	"github.com/Jeonsowon/Portfolio-Project/catalog"
	"github.com/Jeonsowon/Portfolio-Project/models"
)

type editSection int

const (
	sectionBasics editSection = iota
	sectionContacts
	sectionSkills
	sectionExperiences
	sectionProjects
	sectionEducations
	sectionCertifications
	sectionAwards

	sectionCount
)

var sectionNames = []string{
	"Basics", "Contacts", "Skills", "Experience", "Projects", "Education", "Certs", "Awards",
}

type editState struct {
	id  *int64
	doc models.PortfolioData

	section    editSection
	entryIndex int
	focusIndex int
	inputs     []textinput.Model

	ac autocomplete

	// AI summary suggestion for the current project, shown until the
	// user accepts or dismisses it.
	suggestion     string
	suggestionOpen bool

	saving bool
	status string
}

func (m *Model) initEditView(id *int64, doc models.PortfolioData) {
	m.edit = editState{id: id, doc: doc}
	m.edit.buildInputs()
}

// buildInputs rebuilds the input fields for the current section and
// entry, seeding them from the document.
func (e *editState) buildInputs() {
	var specs []struct{ placeholder, value string }
	add := func(placeholder, value string) {
		specs = append(specs, struct{ placeholder, value string }{placeholder, value})
	}

	switch e.section {
	case sectionBasics:
		add("Name", e.doc.Name)
		add("Role", e.doc.Role)
		add("Introduction", e.doc.Introduction)
	case sectionContacts:
		add("Value (press enter to add)", "")
	case sectionSkills:
		add("Skill (press enter to add)", "")
	case sectionExperiences:
		if x, ok := entryAt(e.doc.Experiences, e.entryIndex); ok {
			add("Company", x.Company)
			add("Period", x.Period)
			add("Position", x.Position)
			add("Description", x.Description)
			add("Tech (press enter to add)", "")
		}
	case sectionProjects:
		if p, ok := entryAt(e.doc.Projects, e.entryIndex); ok {
			add("Title", p.Title)
			add("Description", p.Description)
			add("Link", p.Link)
			add("My role", p.MyRole)
			add("Team size", teamSizeString(p.TeamSize))
			add("Tech (press enter to add)", "")
			add("Contribution (press enter to add)", "")
			add("Image file path (press enter to add)", "")
		}
	case sectionEducations:
		if ed, ok := entryAt(e.doc.Educations, e.entryIndex); ok {
			add("School", ed.School)
			add("Degree", ed.Degree)
			add("Major", ed.Major)
			add("Start (YYYY-MM)", ed.Start)
			add("End (YYYY-MM)", ed.End)
			add("Description", ed.Description)
		}
	case sectionCertifications:
		if c, ok := entryAt(e.doc.Certifications, e.entryIndex); ok {
			add("Name", c.Name)
			add("Issuer", c.Issuer)
			add("Date", c.Date)
			add("Expires", c.Expires)
			add("Credential ID", c.CredentialID)
		}
	case sectionAwards:
		if a, ok := entryAt(e.doc.Awards, e.entryIndex); ok {
			add("Title", a.Title)
			add("Issuer", a.Issuer)
			add("Date", a.Date)
			add("Description", a.Description)
		}
	}

	inputs := make([]textinput.Model, len(specs))
	for i, spec := range specs {
		inputs[i] = textinput.New()
		inputs[i].Placeholder = spec.placeholder
		inputs[i].CharLimit = 500
		inputs[i].SetValue(spec.value)
	}
	e.inputs = inputs
	e.focusIndex = 0
	e.ac = e.ac.closed()
	e.updateFocus()
}

func (e *editState) updateFocus() {
	for i := range e.inputs {
		if i == e.focusIndex {
			e.inputs[i].Focus()
		} else {
			e.inputs[i].Blur()
		}
	}
}

func entryAt[T any](list []T, i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(list) {
		return zero, false
	}
	return list[i], true
}

func teamSizeString(n int) string {
	if n == 0 {
		return ""
	}
	return strconv.Itoa(n)
}

func (m Model) renderEditView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("EDIT PORTFOLIO"))
	s.WriteString("\n\n")
	s.WriteString(m.renderSectionTabs())
	s.WriteString("\n\n")

	if m.edit.status != "" {
		s.WriteString(statusStyle.Render(m.edit.status))
		s.WriteString("\n\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		s.WriteString("\n\n")
	}

	s.WriteString(m.renderSectionBody())
	s.WriteString("\n")
	s.WriteString(m.renderEditHelp())

	return s.String()
}

func (m Model) renderSectionTabs() string {
	var rendered []string
	for i, name := range sectionNames {
		if editSection(i) == m.edit.section {
			rendered = append(rendered, tabActiveStyle.Render(name))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderSectionBody() string {
	var s strings.Builder

	if n := sectionEntryCount(m.edit.doc, m.edit.section); n > 0 {
		s.WriteString(sectionHeaderStyle.Render(
			fmt.Sprintf("Entry %d/%d", m.edit.entryIndex+1, n)))
		s.WriteString("\n\n")
	}

	for i, input := range m.edit.inputs {
		if i == m.edit.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	switch m.edit.section {
	case sectionContacts:
		s.WriteString("\n")
		s.WriteString(m.renderContactList())
	case sectionSkills:
		s.WriteString(m.renderSuggestions())
		s.WriteString("\n")
		s.WriteString(renderInline("Skills", skillNames(m.edit.doc.Skills)))
	case sectionExperiences:
		if x, ok := entryAt(m.edit.doc.Experiences, m.edit.entryIndex); ok {
			s.WriteString("\n")
			s.WriteString(renderInline("Techs", x.Techs))
		}
	case sectionProjects:
		s.WriteString(m.renderProjectExtras())
	}

	return s.String()
}

func (m Model) renderContactList() string {
	e := m.edit
	typeName := catalog.ContactOptions[e.contactTypeIndex()].Type
	var s strings.Builder
	s.WriteString(fmt.Sprintf("Type: %s (ctrl+t to change)\n", typeName))
	for i, c := range e.doc.Contacts {
		s.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, catalog.ContactLabel(c.Type), c.Value))
	}
	return s.String()
}

func (e editState) contactTypeIndex() int {
	return e.entryIndex % len(catalog.ContactOptions)
}

func (m Model) renderSuggestions() string {
	if !m.edit.ac.open() {
		return ""
	}
	var s strings.Builder
	s.WriteString("\n")
	for i, sk := range m.edit.ac.suggestions {
		if i == m.edit.ac.highlight {
			s.WriteString(suggestionActiveStyle.Render("  » " + sk.Name))
		} else {
			s.WriteString(suggestionStyle.Render("    " + sk.Name))
		}
		s.WriteString("\n")
	}
	return s.String()
}

func (m Model) renderProjectExtras() string {
	p, ok := entryAt(m.edit.doc.Projects, m.edit.entryIndex)
	if !ok {
		return ""
	}
	var s strings.Builder
	s.WriteString("\n")
	s.WriteString(renderInline("Techs", p.Techs))
	s.WriteString(renderInline("Contributions", p.Contributions))
	s.WriteString(fmt.Sprintf("Images: %d attached\n", len(p.Images)))

	if m.edit.suggestionOpen {
		s.WriteString("\n")
		s.WriteString(sectionHeaderStyle.Render("AI summary suggestion"))
		s.WriteString("\n" + m.edit.suggestion + "\n")
		s.WriteString(suggestionStyle.Render("ctrl+y: use as description • esc: dismiss"))
		s.WriteString("\n")
	}
	return s.String()
}

func renderInline(label string, items []string) string {
	if len(items) == 0 {
		return ""
	}
	return fmt.Sprintf("%s: %s\n", label, strings.Join(items, ", "))
}

func skillNames(skills []models.Skill) []string {
	names := make([]string, len(skills))
	for i, s := range skills {
		names[i] = s.Name
	}
	return names
}

func (m Model) renderEditHelp() string {
	help := []string{
		"←/→: Section",
		"Tab: Next field",
		"[/]: Entry",
		"ctrl+a: Add entry",
		"ctrl+x: Remove entry",
		"ctrl+s: Save",
		"ctrl+p: Preview",
		"ctrl+g: AI summary",
		"Esc: Back",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	e := &m.edit

	switch msg.String() {
	case "esc":
		if e.suggestionOpen {
			e.suggestionOpen = false
			e.suggestion = ""
			return m, nil
		}
		// Leaving the edit surface tears it down: the draft already
		// holds materialized data URLs, so the temporary refs go now.
		m.drafts.Flush()
		e.doc.ReleaseAllImages(m.blobs.Release)
		m.viewMode = ViewHome
		m.loading = true
		return m, m.loadPortfoliosCmd()

	case "left":
		m.switchSection((e.section - 1 + sectionCount) % sectionCount)
		return m, nil
	case "right":
		m.switchSection((e.section + 1) % sectionCount)
		return m, nil

	case "tab":
		if len(e.inputs) > 0 {
			m.syncFocusedField()
			e.focusIndex = (e.focusIndex + 1) % len(e.inputs)
			e.updateFocus()
		}
		return m, nil
	case "shift+tab":
		if len(e.inputs) > 0 {
			m.syncFocusedField()
			e.focusIndex = (e.focusIndex - 1 + len(e.inputs)) % len(e.inputs)
			e.updateFocus()
		}
		return m, nil

	case "[":
		if m.edit.section != sectionSkills {
			m.switchEntry(-1)
			return m, nil
		}
	case "]":
		if m.edit.section != sectionSkills {
			m.switchEntry(1)
			return m, nil
		}

	case "ctrl+a":
		m.addEntry()
		return m, nil
	case "ctrl+x":
		m.removeEntry()
		return m, nil

	case "ctrl+t":
		if e.section == sectionContacts {
			e.entryIndex = (e.entryIndex + 1) % len(catalog.ContactOptions)
		}
		return m, nil

	case "ctrl+s":
		return m.saveDocument()

	case "ctrl+p":
		doc := m.edit.doc
		m.initPreview(resolveForPreview(m, m.edit.id, &doc))
		m.viewMode = ViewPreview
		return m, nil

	case "ctrl+g":
		return m.requestSummary()

	case "ctrl+y":
		if e.suggestionOpen && e.section == sectionProjects {
			m.applyMutation(e.doc.UpdateProject(e.entryIndex, func(p *models.Project) {
				p.Description = m.edit.suggestion
			}))
			m.edit.suggestionOpen = false
			m.edit.suggestion = ""
			m.edit.buildInputs()
		}
		return m, nil

	case "up":
		if e.section == sectionSkills && e.ac.open() {
			e.ac = e.ac.moveUp()
			return m, nil
		}
	case "down":
		if e.section == sectionSkills && e.ac.open() {
			e.ac = e.ac.moveDown()
			return m, nil
		}

	case "enter":
		return m.handleEditEnter()
	}

	// Update current input and mirror its value into the document.
	if len(e.inputs) == 0 {
		return m, nil
	}
	var cmd tea.Cmd
	e.inputs[e.focusIndex], cmd = e.inputs[e.focusIndex].Update(msg)
	m.syncFocusedField()

	if e.section == sectionSkills && e.focusIndex == 0 {
		e.ac = e.ac.refresh(e.inputs[0].Value())
	}
	return m, cmd
}

func (m *Model) switchSection(s editSection) {
	m.edit.section = s
	m.edit.entryIndex = 0
	m.edit.suggestionOpen = false
	m.edit.buildInputs()
}

func (m *Model) switchEntry(delta int) {
	n := sectionEntryCount(m.edit.doc, m.edit.section)
	if n == 0 {
		return
	}
	m.edit.entryIndex = (m.edit.entryIndex + delta + n) % n
	m.edit.buildInputs()
}

func sectionEntryCount(doc models.PortfolioData, s editSection) int {
	switch s {
	case sectionExperiences:
		return len(doc.Experiences)
	case sectionProjects:
		return len(doc.Projects)
	case sectionEducations:
		return len(doc.Educations)
	case sectionCertifications:
		return len(doc.Certifications)
	case sectionAwards:
		return len(doc.Awards)
	}
	return 0
}

func (m *Model) addEntry() {
	e := &m.edit
	switch e.section {
	case sectionExperiences:
		m.applyMutation(e.doc.AddExperience())
		e.entryIndex = len(e.doc.Experiences) - 1
	case sectionProjects:
		m.applyMutation(e.doc.AddProject())
		e.entryIndex = len(e.doc.Projects) - 1
	case sectionEducations:
		m.applyMutation(e.doc.AddEducation())
		e.entryIndex = len(e.doc.Educations) - 1
	case sectionCertifications:
		m.applyMutation(e.doc.AddCertification())
		e.entryIndex = len(e.doc.Certifications) - 1
	case sectionAwards:
		m.applyMutation(e.doc.AddAward())
		e.entryIndex = len(e.doc.Awards) - 1
	default:
		return
	}
	e.buildInputs()
}

func (m *Model) removeEntry() {
	e := &m.edit
	i := e.entryIndex
	switch e.section {
	case sectionContacts:
		if len(e.doc.Contacts) > 0 {
			m.applyMutation(e.doc.RemoveContact(len(e.doc.Contacts) - 1))
		}
		return
	case sectionSkills:
		if len(e.doc.Skills) > 0 {
			m.applyMutation(e.doc.RemoveSkill(len(e.doc.Skills) - 1))
		}
		return
	case sectionExperiences:
		m.applyMutation(e.doc.RemoveExperience(i))
	case sectionProjects:
		m.applyMutation(e.doc.RemoveProject(i, m.blobs.Release))
	case sectionEducations:
		m.applyMutation(e.doc.RemoveEducation(i))
	case sectionCertifications:
		m.applyMutation(e.doc.RemoveCertification(i))
	case sectionAwards:
		m.applyMutation(e.doc.RemoveAward(i))
	default:
		return
	}
	if n := sectionEntryCount(e.doc, e.section); e.entryIndex >= n {
		e.entryIndex = max(0, n-1)
	}
	e.buildInputs()
}

// handleEditEnter commits list-append inputs; on plain fields it just
// advances focus.
func (m Model) handleEditEnter() (tea.Model, tea.Cmd) {
	e := &m.edit

	switch e.section {
	case sectionContacts:
		value := e.inputs[0].Value()
		c := models.Contact{Type: catalog.ContactOptions[e.contactTypeIndex()].Type, Value: value}
		m.applyMutation(e.doc.AddContact(c))
		e.inputs[0].SetValue("")
		return m, nil

	case sectionSkills:
		if skill, ok := e.ac.commit(e.inputs[0].Value()); ok {
			m.applyMutation(e.doc.AddSkill(skill))
		}
		e.inputs[0].SetValue("")
		e.ac = e.ac.closed()
		return m, nil

	case sectionExperiences:
		if e.focusIndex == len(e.inputs)-1 { // tech input
			m.applyMutation(e.doc.AddExperienceTech(e.entryIndex, e.inputs[e.focusIndex].Value()))
			e.inputs[e.focusIndex].SetValue("")
			return m, nil
		}

	case sectionProjects:
		switch e.focusIndex {
		case 5: // tech
			m.applyMutation(e.doc.AddProjectTech(e.entryIndex, e.inputs[5].Value()))
			e.inputs[5].SetValue("")
			return m, nil
		case 6: // contribution
			m.applyMutation(e.doc.AddContribution(e.entryIndex, e.inputs[6].Value()))
			e.inputs[6].SetValue("")
			return m, nil
		case 7: // image path
			return m.attachImage(e.inputs[7].Value())
		}
	}

	if len(e.inputs) > 0 {
		e.focusIndex = (e.focusIndex + 1) % len(e.inputs)
		e.updateFocus()
	}
	return m, nil
}

// attachImage reads a file from disk and registers it as a temporary
// reference owned by the current project. The path input is cleared
// whether or not the read succeeds.
func (m Model) attachImage(path string) (tea.Model, tea.Cmd) {
	e := &m.edit
	e.inputs[7].SetValue("")

	path = strings.TrimSpace(path)
	if path == "" {
		return m, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		m.err = fmt.Errorf("failed to read image: %w", err)
		return m, nil
	}
	m.err = nil

	ref := m.blobs.Add(data)
	m.applyMutation(e.doc.AddProjectImages(e.entryIndex, []string{ref}))
	return m, nil
}

// syncFocusedField writes the focused input's value back into the
// document and persists the draft.
func (m *Model) syncFocusedField() {
	e := &m.edit
	if len(e.inputs) == 0 {
		return
	}
	v := e.inputs[e.focusIndex].Value()
	i := e.entryIndex

	switch e.section {
	case sectionBasics:
		doc := e.doc
		switch e.focusIndex {
		case 0:
			doc.Name = v
		case 1:
			doc.Role = v
		case 2:
			doc.Introduction = v
		}
		m.applyMutation(doc)

	case sectionExperiences:
		m.applyMutation(e.doc.UpdateExperience(i, func(x *models.Experience) {
			switch e.focusIndex {
			case 0:
				x.Company = v
			case 1:
				x.Period = v
			case 2:
				x.Position = v
			case 3:
				x.Description = v
			}
		}))

	case sectionProjects:
		m.applyMutation(e.doc.UpdateProject(i, func(p *models.Project) {
			switch e.focusIndex {
			case 0:
				p.Title = v
			case 1:
				p.Description = v
			case 2:
				p.Link = v
			case 3:
				p.MyRole = v
			case 4:
				if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
					p.TeamSize = n
				} else if strings.TrimSpace(v) == "" {
					p.TeamSize = 0
				}
			}
		}))

	case sectionEducations:
		m.applyMutation(e.doc.UpdateEducation(i, func(ed *models.Education) {
			switch e.focusIndex {
			case 0:
				ed.School = v
			case 1:
				ed.Degree = v
			case 2:
				ed.Major = v
			case 3:
				ed.Start = v
			case 4:
				ed.End = v
			case 5:
				ed.Description = v
			}
		}))

	case sectionCertifications:
		m.applyMutation(e.doc.UpdateCertification(i, func(c *models.Certification) {
			switch e.focusIndex {
			case 0:
				c.Name = v
			case 1:
				c.Issuer = v
			case 2:
				c.Date = v
			case 3:
				c.Expires = v
			case 4:
				c.CredentialID = v
			}
		}))

	case sectionAwards:
		m.applyMutation(e.doc.UpdateAward(i, func(a *models.Award) {
			switch e.focusIndex {
			case 0:
				a.Title = v
			case 1:
				a.Issuer = v
			case 2:
				a.Date = v
			case 3:
				a.Description = v
			}
		}))
	}
}

// applyMutation installs the next document state and schedules a draft
// write. The draft copy carries data URLs instead of temporary refs so
// it stays readable after the registry entries are released.
func (m *Model) applyMutation(doc models.PortfolioData) {
	m.edit.doc = doc
	m.edit.status = ""
	m.drafts.Persist(m.edit.id, m.materializeImages(doc))
}

// materializeImages replaces every temporary image reference with a
// self-contained data URL. Unknown refs are dropped; persisted data
// URLs pass through.
func (m Model) materializeImages(doc models.PortfolioData) models.PortfolioData {
	out := doc.Clone()
	for i := range out.Projects {
		images := make([]string, 0, len(out.Projects[i].Images))
		for _, ref := range out.Projects[i].Images {
			if url, ok := m.blobs.AsDataURL(ref); ok {
				images = append(images, url)
			}
		}
		out.Projects[i].Images = images
	}
	return out
}

// saveDocument pushes the document to the server. Temporary image
// references are materialized into persisted data URLs first.
func (m Model) saveDocument() (tea.Model, tea.Cmd) {
	if m.edit.id == nil || m.edit.saving {
		return m, nil
	}
	m.edit.saving = true
	m.edit.status = "Saving..."

	return m, m.savePortfolioCmd(*m.edit.id, m.materializeImages(m.edit.doc))
}

// handlePortfolioSaved finishes a confirmed save: the draft is cleared,
// the surface is torn down, and the user returns home. Failures keep
// the draft and stay on the edit view.
func (m Model) handlePortfolioSaved(msg portfolioSavedMsg) (tea.Model, tea.Cmd) {
	m.edit.saving = false
	if msg.err != nil {
		m.err = msg.err
		m.edit.status = ""
		return m, nil
	}
	m.err = nil
	m.drafts.Clear(m.edit.id)
	m.edit.doc.ReleaseAllImages(m.blobs.Release)
	m.status = "Saved"
	m.viewMode = ViewHome
	m.loading = true
	return m, m.loadPortfoliosCmd()
}

// requestSummary asks the model for a project overview draft. The reply
// carries the generation tag so a late answer for an older request is
// ignored.
func (m Model) requestSummary() (tea.Model, tea.Cmd) {
	e := &m.edit
	if e.section != sectionProjects {
		return m, nil
	}
	p, ok := entryAt(e.doc.Projects, e.entryIndex)
	if !ok || strings.TrimSpace(p.Title) == "" {
		e.status = "Give the project a title first"
		return m, nil
	}

	m.summaryGen++
	e.status = "Generating summary..."
	return m, m.generateSummaryCmd(m.summaryGen, ai.SummaryRequest{
		Title:   p.Title,
		Role:    p.MyRole,
		Bullets: p.Contributions,
		Techs:   p.Techs,
		Tone:    "concise",
	})
}

func (m Model) handleSummaryGenerated(msg summaryGeneratedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.summaryGen {
		// A newer request superseded this reply.
		return m, nil
	}
	m.edit.status = ""
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	m.err = nil
	m.edit.suggestion = msg.summary
	m.edit.suggestionOpen = true
	return m, nil
}
