package commands

import (
	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/config"
)

// NewRootCommand returns the top-level CLI command.
func NewRootCommand() *cli.Command {
	return &cli.Command{
		Name:  "todo",
		Usage: "A small terminal todo list",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to config file",
				Value:   config.ConfigPath(),
				Sources: cli.EnvVars("TODO_CONFIG"),
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "Enable debug logging",
			},
		},
		Commands: []*cli.Command{
			NewTUICommand(),
			NewListCommand(),
			NewReplayCommand(),
		},
		DefaultCommand: "tui",
	}
}
