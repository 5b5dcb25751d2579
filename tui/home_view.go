// ABOUTME: Home view listing the account's portfolios grouped by kind
// ABOUTME: Entry point for edit, preview, remodel, and delete flows
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jeonsowon/Portfolio-Project/client"
	"github.com/Jeonsowon/Portfolio-Project/models"
)

func (m Model) renderHomeView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PORTFOLIO"))
	s.WriteString("\n\n")

	if m.loading {
		s.WriteString("Loading...\n")
		return s.String()
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render("Error: " + m.err.Error()))
		s.WriteString("\n\n")
	}
	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n\n")
	}

	s.WriteString(m.renderPortfolioGroups())
	s.WriteString("\n")
	s.WriteString(m.renderHomeHelp())

	return s.String()
}

// renderPortfolioGroups shows the BASIC and REMODEL buckets as separate
// sections; the cursor moves across both in display order.
func (m Model) renderPortfolioGroups() string {
	if len(m.summaries) == 0 {
		return "No portfolios yet. Press n to create one.\n"
	}

	var s strings.Builder
	row := 0
	writeGroup := func(header string, items []client.Summary) {
		if len(items) == 0 {
			return
		}
		s.WriteString(sectionHeaderStyle.Render(header))
		s.WriteString("\n")
		for _, p := range items {
			marker := "  "
			if row == m.selectedRow {
				marker = "> "
			}
			s.WriteString(fmt.Sprintf("%s%-36.36s %s\n", marker, p.Title, p.UpdatedAt))
			row++
		}
		s.WriteString("\n")
	}

	writeGroup(models.KindBasic, m.listing.Basic)
	writeGroup(models.KindRemodel, m.listing.Remodel)
	return s.String()
}

func (m Model) renderHomeHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Enter: Edit",
		"p: Preview",
		"n: New",
		"r: Remodel",
		"d: Delete",
		"ctrl+r: Refresh",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleHomeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		m.teardown()
		return m, tea.Quit
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < len(m.summaries)-1 {
			m.selectedRow++
		}
	case "enter":
		if p, ok := m.selectedSummary(); ok {
			m.status = ""
			return m, m.openPortfolioCmd(p.ID, true)
		}
	case "p":
		if p, ok := m.selectedSummary(); ok {
			m.status = ""
			return m, m.openPortfolioCmd(p.ID, false)
		}
	case "n":
		m.status = ""
		return m, m.createDefaultCmd()
	case "r":
		if p, ok := m.selectedSummary(); ok {
			m.status = ""
			m.initRemodelForm(p)
			m.viewMode = ViewRemodel
		}
	case "d":
		if p, ok := m.selectedSummary(); ok {
			target := p
			m.deleteTarget = &target
			m.viewMode = ViewConfirmDelete
		}
	case "ctrl+r":
		m.err = nil
		m.status = ""
		m.loading = true
		return m, m.loadPortfoliosCmd()
	}

	return m, nil
}

func (m Model) selectedSummary() (client.Summary, bool) {
	if m.selectedRow < 0 || m.selectedRow >= len(m.summaries) {
		return client.Summary{}, false
	}
	return m.summaries[m.selectedRow], true
}

// handlePortfolioOpened routes a fetched document to the edit or preview
// view. For edits, a local draft newer than the server copy wins.
func (m Model) handlePortfolioOpened(msg portfolioOpenedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.err = msg.err
		m.viewMode = ViewHome
		return m, nil
	}
	m.err = nil

	id := msg.detail.ID
	if msg.forEdit {
		doc := msg.detail.Data
		if draftDoc, ok := m.drafts.Load(&id); ok {
			doc = models.Merged(models.Default(), draftDoc)
		}
		// The outgoing edit document is abandoned here; its image refs
		// must not outlive it.
		m.edit.doc.ReleaseAllImages(m.blobs.Release)
		m.initEditView(&id, doc)
		m.viewMode = ViewEdit
		return m, nil
	}

	m.initPreview(resolveForPreview(m, &id, &msg.detail.Data))
	m.viewMode = ViewPreview
	return m, m.loadPortfoliosCmd()
}
