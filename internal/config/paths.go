package config

import (
	"os"
	"path/filepath"
)

// TodoPath is the directory holding config.jsonc, .env and todo.log.
// $TODO_PATH overrides the ~/.todo default; when the home directory cannot be
// resolved, .todo under the working directory is used.
func TodoPath() string {
	if v := os.Getenv("TODO_PATH"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".todo")
	}
	return filepath.Join(home, ".todo")
}

// ConfigPath is the default value of the --config flag.
func ConfigPath() string {
	return filepath.Join(TodoPath(), "config.jsonc")
}

// DotenvPath is the env file loaded at startup and on every config reload.
func DotenvPath() string {
	return filepath.Join(TodoPath(), ".env")
}
