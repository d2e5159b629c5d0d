package commands

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/todo"
)

// loadConfig reads the config named by the --config flag.
func loadConfig(cmd *cli.Command) (*config.Config, error) {
	path := cmd.String("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("config loaded", "path", path, "ids", cfg.IDs, "seeds", len(cfg.Seeds))
	return cfg, nil
}

// logLevel resolves the level from --debug, then the config.
func logLevel(cmd *cli.Command, cfg *config.Config) slog.Level {
	if cmd.Bool("debug") {
		return slog.LevelDebug
	}
	level, err := config.ParseLevel(cfg.Log.Level)
	if err != nil {
		return slog.LevelInfo
	}
	return level
}

// setupLogger installs a text logger writing to w. The returned level can be
// changed while the logger is in use.
func setupLogger(cmd *cli.Command, cfg *config.Config, w io.Writer) *slog.LevelVar {
	level := new(slog.LevelVar)
	level.Set(logLevel(cmd, cfg))
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
	return level
}

// setupFileLogger installs a text logger writing to the configured log file.
// The TUI owns the terminal, so it cannot log to stderr.
func setupFileLogger(cmd *cli.Command, cfg *config.Config) (io.Closer, *slog.LevelVar, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Log.File), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, setupLogger(cmd, cfg, f), nil
}

// followLogLevel re-applies the log level each time the config is reloaded.
func followLogLevel(cmd *cli.Command, r *config.Reloader, level *slog.LevelVar) {
	r.OnReload(func(cfg *config.Config) {
		level.Set(logLevel(cmd, cfg))
	})
}

// newStore creates a store over initial using the configured id strategy.
func newStore(cfg *config.Config, initial todo.State) *todo.Store {
	opts := []todo.StoreOption{todo.WithLogger(slog.Default())}
	if cfg.IDs == config.IDsUUID {
		opts = append(opts, todo.WithIDGenerator(todo.UUIDGenerator()))
	}
	return todo.NewStore(initial, opts...)
}
