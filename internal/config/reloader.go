package config

import (
	"fmt"
	"log/slog"
	"slices"
	"sync"
	"sync/atomic"
)

// Reloader holds the live config. Reload re-reads .env and the config file
// and hands the result to every registered listener.
type Reloader struct {
	configPath string
	dotenvPath string
	current    atomic.Pointer[Config]

	mu        sync.Mutex // serializes reload and listener changes
	listeners []listener
	nextID    int
}

type listener struct {
	id int
	fn func(*Config)
}

// NewReloader starts from initial; nothing is read until Reload.
func NewReloader(configPath, dotenvPath string, initial *Config) *Reloader {
	r := &Reloader{
		configPath: configPath,
		dotenvPath: dotenvPath,
	}
	r.current.Store(initial)
	return r
}

// Current returns the config in effect.
func (r *Reloader) Current() *Config {
	return r.current.Load()
}

// OnReload registers fn to receive each successfully reloaded config.
// The returned function removes it.
func (r *Reloader) OnReload(fn func(*Config)) func() {
	r.mu.Lock()
	defer r.mu.Unlock()
	id := r.nextID
	r.nextID++
	r.listeners = append(r.listeners, listener{id: id, fn: fn})

	return func() {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.listeners = slices.DeleteFunc(r.listeners, func(l listener) bool { return l.id == id })
	}
}

// Reload overrides the environment from the .env file, then loads and
// validates the config. A failed reload keeps Current and notifies nobody.
func (r *Reloader) Reload() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ReloadDotenv(r.dotenvPath); err != nil {
		return fmt.Errorf("reload dotenv: %w", err)
	}

	cfg, err := Load(r.configPath)
	if err != nil {
		return fmt.Errorf("reload config: %w", err)
	}

	prev := r.current.Swap(cfg)
	slog.Info("config reloaded", "path", r.configPath, "ids", cfg.IDs, "ids_changed", prev != nil && prev.IDs != cfg.IDs)

	for _, l := range r.listeners {
		l.fn(cfg)
	}
	return nil
}
