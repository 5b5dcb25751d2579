// ABOUTME: TUI command launching the full-screen editor
// ABOUTME: Requires a stored session; drafts live in the XDG state dir
package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Jeonsowon/Portfolio-Project/draft"
	"github.com/Jeonsowon/Portfolio-Project/tui"
)

// TUICommand runs the interactive editor until the user quits.
func TUICommand(cfg Config) error {
	api, _, err := loadAuthedClient(cfg)
	if err != nil {
		return err
	}

	drafts, err := draft.Open(cfg.DraftDir)
	if err != nil {
		return fmt.Errorf("failed to open draft store: %w", err)
	}
	defer drafts.Close()

	p := tea.NewProgram(tui.NewModel(api, drafts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
