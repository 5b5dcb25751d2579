// ABOUTME: Async messages and commands shared by the TUI views
// ABOUTME: Results of slow calls carry a generation tag where staleness matters
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jeonsowon/Portfolio-Project/ai"
	"github.com/Jeonsowon/Portfolio-Project/client"
	"github.com/Jeonsowon/Portfolio-Project/models"
)

const requestTimeout = 2 * time.Minute

type portfoliosLoadedMsg struct {
	listing client.Listing
	err     error
}

type portfolioOpenedMsg struct {
	detail  client.Detail
	forEdit bool
	err     error
}

type portfolioSavedMsg struct {
	id  int64
	err error
}

type portfolioDeletedMsg struct {
	err error
}

type summaryGeneratedMsg struct {
	gen     int
	summary string
	err     error
}

type remodelBuiltMsg struct {
	gen    int
	detail client.Detail
	err    error
}

func (m Model) loadPortfoliosCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		listing, err := api.ListMy(ctx)
		return portfoliosLoadedMsg{listing: listing, err: err}
	}
}

func (m Model) openPortfolioCmd(id int64, forEdit bool) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		detail, err := api.Get(ctx, id)
		return portfolioOpenedMsg{detail: detail, forEdit: forEdit, err: err}
	}
}

func (m Model) createDefaultCmd() tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		detail, err := api.CreateDefault(ctx, models.KindBasic)
		return portfolioOpenedMsg{detail: detail, forEdit: true, err: err}
	}
}

func (m Model) savePortfolioCmd(id int64, doc models.PortfolioData) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		err := api.Save(ctx, id, doc)
		return portfolioSavedMsg{id: id, err: err}
	}
}

func (m Model) deletePortfolioCmd(id int64) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return portfolioDeletedMsg{err: api.Delete(ctx, id)}
	}
}

func (m Model) generateSummaryCmd(gen int, req ai.SummaryRequest) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		summary, err := api.GenerateSummary(ctx, req)
		return summaryGeneratedMsg{gen: gen, summary: summary, err: err}
	}
}

func (m Model) buildRemodelCmd(gen int, baseID int64, sourceType, title, value string) tea.Cmd {
	api := m.api
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		detail, err := api.BuildRemodel(ctx, baseID, sourceType, title, value)
		return remodelBuiltMsg{gen: gen, detail: detail, err: err}
	}
}
