package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/clients/tui"
	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/todofile"
)

// NewTUICommand returns the tui subcommand.
func NewTUICommand() *cli.Command {
	return &cli.Command{
		Name:   "tui",
		Usage:  "Launch the interactive todo list",
		Action: runTUI,
	}
}

func runTUI(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	closer, level, err := setupFileLogger(cmd, cfg)
	if err != nil {
		return err
	}
	defer closer.Close()

	initial, err := todofile.LoadSeedState(cfg.Seeds)
	if err != nil {
		return fmt.Errorf("load seeds: %w", err)
	}
	slog.Info("starting tui", "tasks", initial.Len(), "ids", cfg.IDs)

	reloader := config.NewReloader(cmd.String("config"), config.DotenvPath(), cfg)
	followLogLevel(cmd, reloader, level)
	return tui.Run(ctx, newStore(cfg, initial), reloader)
}
