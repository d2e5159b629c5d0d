package commands

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/todofile"
)

// NewReplayCommand returns the replay subcommand.
func NewReplayCommand() *cli.Command {
	return &cli.Command{
		Name:      "replay",
		Usage:     "Apply the actions of a script file and print the resulting list",
		ArgsUsage: "<script>",
		Flags:     []cli.Flag{formatFlag()},
		Action:    runReplay,
	}
}

func runReplay(_ context.Context, cmd *cli.Command) error {
	path := cmd.Args().First()
	if path == "" {
		return fmt.Errorf("usage: todo replay <script>")
	}
	format, err := parseFormat(cmd.String("format"))
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	setupLogger(cmd, cfg, cmd.Root().ErrWriter)

	script, err := todofile.LoadScript(path)
	if err != nil {
		return fmt.Errorf("load script: %w", err)
	}

	initial := script.SeedState()
	if !script.HasSeed() {
		initial, err = todofile.LoadSeedState(cfg.Seeds)
		if err != nil {
			return fmt.Errorf("load seeds: %w", err)
		}
	}

	store := newStore(cfg, initial)
	final := script.Replay(store)
	slog.Debug("replay finished", "actions", len(script.Actions), "tasks", final.Len())

	return writeState(cmd.Root().Writer, format, cfg.UI.Title, final)
}
