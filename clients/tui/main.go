package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/todo"
)

// Run launches the TUI and blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, store *todo.Store, reloader *config.Reloader) error {
	m := New(store, reloader.Current(), reloader)
	defer m.Close()

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	stop := forwardReloads(reloader, p.Send)
	defer stop()
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
