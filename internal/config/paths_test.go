package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestTodoPath_Default(t *testing.T) {
	t.Setenv("TODO_PATH", "")

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatal(err)
	}

	got := TodoPath()
	want := filepath.Join(home, ".todo")
	if got != want {
		t.Errorf("TodoPath() = %q, want %q", got, want)
	}
}

func TestTodoPath_EnvOverride(t *testing.T) {
	t.Setenv("TODO_PATH", "/tmp/custom-todo")

	if got := TodoPath(); got != "/tmp/custom-todo" {
		t.Errorf("TodoPath() = %q, want %q", got, "/tmp/custom-todo")
	}
}

func TestConfigPath(t *testing.T) {
	t.Setenv("TODO_PATH", "/tmp/test-todo")

	if got := ConfigPath(); got != "/tmp/test-todo/config.jsonc" {
		t.Errorf("ConfigPath() = %q", got)
	}
}

func TestDotenvPath(t *testing.T) {
	t.Setenv("TODO_PATH", "/tmp/test-todo")

	if got := DotenvPath(); got != "/tmp/test-todo/.env" {
		t.Errorf("DotenvPath() = %q", got)
	}
}
