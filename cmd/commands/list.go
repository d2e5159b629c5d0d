package commands

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/todofile"
)

// NewListCommand returns the list subcommand.
func NewListCommand() *cli.Command {
	return &cli.Command{
		Name:   "list",
		Usage:  "Print the seeded task list",
		Flags:  []cli.Flag{formatFlag()},
		Action: runList,
	}
}

func runList(_ context.Context, cmd *cli.Command) error {
	format, err := parseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cmd, cfg, cmd.Root().ErrWriter)

	state, err := todofile.LoadSeedState(cfg.Seeds)
	if err != nil {
		return fmt.Errorf("load seeds: %w", err)
	}
	return writeState(cmd.Root().Writer, format, cfg.UI.Title, state)
}
