package commands

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/todo"
)

// runRoot runs the CLI with args and returns stdout.
func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand()
	cmd.Writer = &stdout
	cmd.ErrWriter = &stderr
	err := cmd.Run(context.Background(), append([]string{"todo"}, args...))
	return stdout.String(), err
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReplayJSON(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.jsonc", `{}`)
	script := writeFile(t, dir, "script.yaml", `
seed: []
actions:
  - kind: add-task
    text: A
  - kind: add-task
    text: B
  - kind: toggle-complete
    id: "1"
  - kind: delete-task
    id: "2"
`)

	out, err := runRoot(t, "--config", cfgPath, "replay", "--format", "json", script)
	if err != nil {
		t.Fatal(err)
	}

	var tasks []todo.Task
	if err := json.Unmarshal([]byte(out), &tasks); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if len(tasks) != 1 || tasks[0] != (todo.Task{ID: "1", Text: "A", Completed: true}) {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestReplayUsesConfiguredSeedsAndUUIDs(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "seed.yaml", "- id: seeded\n  text: From seed\n")
	cfgPath := writeFile(t, dir, "config.jsonc", `{
		"ids": "uuid",
		"seeds": ["`+filepath.ToSlash(filepath.Join(dir, "*.yaml"))+`"],
	}`)
	script := writeFile(t, dir, "script.jsonc", `{"actions": [{"kind": "add-task", "text": "New"}]}`)

	out, err := runRoot(t, "--config", cfgPath, "replay", "-f", "json", script)
	if err != nil {
		t.Fatal(err)
	}

	var tasks []todo.Task
	if err := json.Unmarshal([]byte(out), &tasks); err != nil {
		t.Fatalf("invalid json %q: %v", out, err)
	}
	if len(tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %+v", tasks)
	}
	if len(tasks[0].ID) != 36 {
		t.Errorf("expected uuid id for new task, got %q", tasks[0].ID)
	}
	if tasks[1].ID != "seeded" {
		t.Errorf("expected seeded task last, got %+v", tasks[1])
	}
}

func TestReplayErrors(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.jsonc", `{}`)

	if _, err := runRoot(t, "--config", cfgPath, "replay"); err == nil {
		t.Error("expected usage error without script")
	}
	script := writeFile(t, dir, "script.yaml", "actions: []\n")
	if _, err := runRoot(t, "--config", cfgPath, "replay", "--format", "xml", script); err == nil {
		t.Error("expected error for unknown format")
	}
	if _, err := runRoot(t, "--config", cfgPath, "replay", filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing script")
	}
}

func TestListTable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "seed.yaml", "- text: Buy milk\n- title: Walk the dog\n  completed: true\n")
	cfgPath := writeFile(t, dir, "config.jsonc", `{"seeds": ["`+filepath.ToSlash(filepath.Join(dir, "seed.yaml"))+`"]}`)

	out, err := runRoot(t, "--config", cfgPath, "list")
	if err != nil {
		t.Fatal(err)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected header and 2 rows, got:\n%s", out)
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("expected header, got %q", lines[0])
	}
	if !strings.Contains(lines[1], "Buy milk") || !strings.Contains(lines[2], "Walk the dog") {
		t.Errorf("unexpected rows:\n%s", out)
	}
}

func TestListEmpty(t *testing.T) {
	cfgPath := writeFile(t, t.TempDir(), "config.jsonc", `{}`)

	out, err := runRoot(t, "--config", cfgPath, "list")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != "No tasks found." {
		t.Errorf("unexpected output %q", out)
	}
}

func TestListMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "seed.yaml", "- text: Buy milk\n")
	cfgPath := writeFile(t, dir, "config.jsonc", `{
		"seeds": ["`+filepath.ToSlash(filepath.Join(dir, "seed.yaml"))+`"],
		"ui": {"title": "Groceries"},
	}`)

	out, err := runRoot(t, "--config", cfgPath, "list", "--format", "markdown")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out, "Groceries") || !strings.Contains(out, "Buy milk") {
		t.Errorf("unexpected markdown output:\n%s", out)
	}
}

func TestParseFormat(t *testing.T) {
	for _, s := range []string{"table", "markdown", "json"} {
		if _, err := parseFormat(s); err != nil {
			t.Errorf("parseFormat(%q): %v", s, err)
		}
	}
	if _, err := parseFormat("yaml"); err == nil {
		t.Error("expected error")
	}
}

func TestFollowLogLevel(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.jsonc", `{"log": {"level": "warn"}}`)

	cmd := &cli.Command{}
	cfg := config.Default()
	level := new(slog.LevelVar)
	level.Set(logLevel(cmd, cfg))

	r := config.NewReloader(cfgPath, filepath.Join(dir, ".env"), cfg)
	followLogLevel(cmd, r, level)
	if err := r.Reload(); err != nil {
		t.Fatalf("Reload: %v", err)
	}

	if level.Level() != slog.LevelWarn {
		t.Errorf("expected level warn after reload, got %v", level.Level())
	}
}
