// ABOUTME: Confirmation prompt before deleting a portfolio
// ABOUTME: Deletion also discards any local draft for the document
package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) renderConfirmDeleteView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DELETE PORTFOLIO"))
	s.WriteString("\n\n")

	if m.deleteTarget != nil {
		s.WriteString(fmt.Sprintf("Delete %q? This cannot be undone.\n", m.deleteTarget.Title))
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render("y: Delete • n/Esc: Cancel"))

	return s.String()
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y":
		if m.deleteTarget != nil {
			id := m.deleteTarget.ID
			m.drafts.Clear(&id)
			return m, m.deletePortfolioCmd(id)
		}
		m.viewMode = ViewHome
	case "n", "esc":
		m.deleteTarget = nil
		m.viewMode = ViewHome
	}
	return m, nil
}
