package todofile

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSeedFileYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "seed.yaml", `
- text: Buy milk
- id: "7"
  title: Walk the dog
  completed: true
`)

	entries, err := LoadSeedFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	task, err := entries[1].Task()
	if err != nil {
		t.Fatal(err)
	}
	if task.ID != "7" || task.Text != "Walk the dog" || !task.Completed {
		t.Errorf("unexpected task %+v", task)
	}
}

func TestLoadSeedFileJSONC(t *testing.T) {
	path := writeFile(t, t.TempDir(), "seed.jsonc", `[
	// first
	{"text": "Buy milk"},
	{"title": "Walk the dog", "completed": true},
]`)

	entries, err := LoadSeedFile(path)
	if err != nil {
		t.Fatal(err)
	}
	tasks := Tasks(entries)
	if len(tasks) != 2 || tasks[1].Text != "Walk the dog" {
		t.Errorf("unexpected tasks %+v", tasks)
	}
}

func TestLoadSeedFileErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadSeedFile(writeFile(t, dir, "seed.toml", `x = 1`)); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := LoadSeedFile(writeFile(t, dir, "unknown.yaml", "- txt: typo\n")); err == nil {
		t.Error("expected error for unknown field")
	}
	if _, err := LoadSeedFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestSeedEntryTask(t *testing.T) {
	if _, err := (SeedEntry{Text: "   "}).Task(); !errors.Is(err, ErrInvalidSeed) {
		t.Errorf("expected ErrInvalidSeed, got %v", err)
	}

	task, err := SeedEntry{Text: " kept ", Title: "ignored"}.Task()
	if err != nil {
		t.Fatal(err)
	}
	if task.Text != "kept" {
		t.Errorf("expected text to win over title, got %q", task.Text)
	}
}

func TestLoadSeeds(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.yaml", "- text: one\n- text: \"  \"\n")
	writeFile(t, dir, "nested/b.yml", "- text: two\n")
	writeFile(t, dir, "nested/deeper/c.json", `[{"text": "three"}]`)
	writeFile(t, dir, "empty.yaml", "")

	tasks, err := LoadSeeds([]string{
		filepath.Join(dir, "**", "*.yaml"),
		filepath.Join(dir, "**", "*.yml"),
		filepath.Join(dir, "**", "*.json"),
		filepath.Join(dir, "a.yaml"),
		filepath.Join(dir, "nothing-*.yaml"),
	})
	if err != nil {
		t.Fatal(err)
	}

	var texts []string
	for _, task := range tasks {
		texts = append(texts, task.Text)
	}
	want := []string{"one", "two", "three"}
	if len(texts) != len(want) {
		t.Fatalf("expected %v, got %v", want, texts)
	}
	for i := range want {
		if texts[i] != want[i] {
			t.Errorf("task %d: expected %q, got %q", i, want[i], texts[i])
		}
	}
}

func TestLoadSeedState(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "seed.yaml", "- id: \"2\"\n  text: two\n- text: fresh\n")

	s, err := LoadSeedState([]string{filepath.Join(dir, "*.yaml")})
	if err != nil {
		t.Fatal(err)
	}
	if s.Len() != 2 {
		t.Fatalf("expected 2 tasks, got %d", s.Len())
	}
	if s.At(1).ID == "2" {
		t.Error("generated id collided with seeded id")
	}
}
