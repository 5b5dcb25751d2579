// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Provides interactive full-screen interface for portfolio editing
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Jeonsowon/Portfolio-Project/blob"
	"github.com/Jeonsowon/Portfolio-Project/client"
	"github.com/Jeonsowon/Portfolio-Project/draft"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewHome ViewMode = iota
	ViewEdit
	ViewPreview
	ViewRemodel
	ViewConfirmDelete
)

// Model is the main bubbletea model
type Model struct {
	api    *client.Client
	drafts *draft.Store
	blobs  *blob.Registry

	viewMode ViewMode

	// Home view state. summaries is the listing flattened in display
	// order so one cursor can move across both groups.
	listing     client.Listing
	summaries   []client.Summary
	selectedRow int
	loading     bool
	status      string

	// Edit view state
	edit editState

	// Preview view state
	preview previewState

	// Remodel view state
	remodel remodelState

	// Delete confirmation state
	deleteTarget *client.Summary

	// Request generation counters; a stale async reply is discarded
	// when its tag no longer matches.
	summaryGen int
	remodelGen int

	// UI state
	width  int
	height int
	err    error
}

// NewModel creates a new TUI model
func NewModel(api *client.Client, drafts *draft.Store) Model {
	return Model{
		api:    api,
		drafts: drafts,
		blobs:  blob.NewRegistry(),

		viewMode: ViewHome,
		loading:  true,
		width:    80,
		height:   24,
	}
}

func (m Model) Init() tea.Cmd {
	return m.loadPortfoliosCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case portfoliosLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		m.listing = msg.listing
		m.summaries = msg.listing.All()
		if m.selectedRow >= len(m.summaries) {
			m.selectedRow = max(0, len(m.summaries)-1)
		}
		return m, nil
	case portfolioOpenedMsg:
		return m.handlePortfolioOpened(msg)
	case portfolioSavedMsg:
		return m.handlePortfolioSaved(msg)
	case portfolioDeletedMsg:
		m.deleteTarget = nil
		m.viewMode = ViewHome
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.status = "Deleted"
		return m, m.loadPortfoliosCmd()
	case summaryGeneratedMsg:
		return m.handleSummaryGenerated(msg)
	case remodelBuiltMsg:
		return m.handleRemodelBuilt(msg)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewHome:
		return m.renderHomeView()
	case ViewEdit:
		return m.renderEditView()
	case ViewPreview:
		return m.renderPreviewView()
	case ViewRemodel:
		return m.renderRemodelView()
	case ViewConfirmDelete:
		return m.renderConfirmDeleteView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		m.teardown()
		return m, tea.Quit
	}

	// Delegate to view-specific handlers
	switch m.viewMode {
	case ViewHome:
		return m.handleHomeKeys(msg)
	case ViewEdit:
		return m.handleEditKeys(msg)
	case ViewPreview:
		return m.handlePreviewKeys(msg)
	case ViewRemodel:
		return m.handleRemodelKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	}

	return m, nil
}

// teardown releases every temporary image reference before the program
// exits.
func (m *Model) teardown() {
	m.edit.doc.ReleaseAllImages(m.blobs.Release)
	m.drafts.Flush()
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("78"))

	suggestionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243"))

	suggestionActiveStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	sectionHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("110"))
)
