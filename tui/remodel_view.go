// ABOUTME: Remodel form for tailoring a portfolio to a job posting
// ABOUTME: The build runs server-side; the reply jumps straight to preview
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jeonsowon/Portfolio-Project/ai"
	"github.com/Jeonsowon/Portfolio-Project/client"
)

type remodelState struct {
	base       client.Summary
	sourceType string

	titleInput textinput.Model
	valueInput textinput.Model
	focusIndex int

	building bool
	status   string
}

func (m *Model) initRemodelForm(base client.Summary) {
	title := textinput.New()
	title.Placeholder = "Title for the remodeled portfolio"
	title.CharLimit = 200
	title.SetValue(base.Title + " (remodel)")
	title.Focus()

	value := textinput.New()
	value.Placeholder = "Job posting URL"
	value.CharLimit = 4000

	m.remodel = remodelState{
		base:       base,
		sourceType: ai.SourceURL,
		titleInput: title,
		valueInput: value,
	}
}

func (m Model) renderRemodelView() string {
	r := m.remodel
	var s strings.Builder

	s.WriteString(titleStyle.Render("REMODEL"))
	s.WriteString("\n\n")
	s.WriteString(fmt.Sprintf("Base: %s\n\n", r.base.Title))

	urlTab, textTab := tabInactiveStyle, tabInactiveStyle
	if r.sourceType == ai.SourceURL {
		urlTab = tabActiveStyle
	} else {
		textTab = tabActiveStyle
	}
	s.WriteString(urlTab.Render("URL") + textTab.Render("Pasted text"))
	s.WriteString("\n\n")

	cursor := func(i int) string {
		if r.focusIndex == i {
			return "> "
		}
		return "  "
	}
	s.WriteString(cursor(0) + r.titleInput.View() + "\n")
	s.WriteString(cursor(1) + r.valueInput.View() + "\n")

	if r.building {
		s.WriteString("\n" + statusStyle.Render("Building remodel, this can take a while...") + "\n")
	} else if r.status != "" {
		s.WriteString("\n" + statusStyle.Render(r.status) + "\n")
	}
	if m.err != nil {
		s.WriteString("\n" + errorStyle.Render("Error: "+m.err.Error()) + "\n")
	}

	s.WriteString("\n")
	s.WriteString(helpStyle.Render(strings.Join([]string{
		"Tab: Field",
		"ctrl+t: Source type",
		"Enter: Build",
		"Esc: Back",
	}, " • ")))

	return s.String()
}

func (m Model) handleRemodelKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	r := &m.remodel

	switch msg.String() {
	case "esc":
		m.viewMode = ViewHome
		m.err = nil
		return m, nil

	case "tab", "shift+tab":
		r.focusIndex = 1 - r.focusIndex
		if r.focusIndex == 0 {
			r.titleInput.Focus()
			r.valueInput.Blur()
		} else {
			r.titleInput.Blur()
			r.valueInput.Focus()
		}
		return m, nil

	case "ctrl+t":
		if r.sourceType == ai.SourceURL {
			r.sourceType = ai.SourceText
			r.valueInput.Placeholder = "Paste the job posting text"
		} else {
			r.sourceType = ai.SourceURL
			r.valueInput.Placeholder = "Job posting URL"
		}
		return m, nil

	case "enter":
		if r.building {
			return m, nil
		}
		value := strings.TrimSpace(r.valueInput.Value())
		if value == "" {
			r.status = "Provide a posting URL or text first"
			return m, nil
		}
		r.building = true
		r.status = ""
		m.err = nil
		m.remodelGen++
		return m, m.buildRemodelCmd(m.remodelGen, r.base.ID, r.sourceType,
			strings.TrimSpace(r.titleInput.Value()), value)
	}

	var cmd tea.Cmd
	if r.focusIndex == 0 {
		r.titleInput, cmd = r.titleInput.Update(msg)
	} else {
		r.valueInput, cmd = r.valueInput.Update(msg)
	}
	return m, cmd
}

// handleRemodelBuilt lands the finished build in the preview view. A
// reply for a superseded request is dropped.
func (m Model) handleRemodelBuilt(msg remodelBuiltMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.remodelGen {
		return m, nil
	}
	m.remodel.building = false
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	m.err = nil

	id := msg.detail.ID
	m.initPreview(resolveForPreview(m, &id, &msg.detail.Data))
	m.viewMode = ViewPreview
	return m, m.loadPortfoliosCmd()
}
