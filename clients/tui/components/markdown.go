// Package components provides renderers shared by the TUI and the CLI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/ansi"
	"github.com/charmbracelet/glamour/styles"

	"github.com/dohr-michael/todo/internal/todo"
)

// TaskListMarkdown renders tasks as a GitHub-style task list under a heading.
func TaskListMarkdown(title string, tasks []todo.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", title)
	if len(tasks) == 0 {
		b.WriteString("_No tasks._\n")
		return b.String()
	}
	for _, t := range tasks {
		box := " "
		if t.Completed {
			box = "x"
		}
		fmt.Fprintf(&b, "- [%s] %s\n", box, escapeMarkdown(t.Text))
	}
	return b.String()
}

// styleConfig picks a colored or plain glamour style with ASCII checkboxes.
func styleConfig(tty bool) ansi.StyleConfig {
	cfg := styles.NoTTYStyleConfig
	if tty {
		cfg = styles.DarkStyleConfig
	}
	cfg.Task.Ticked = "[x] "
	cfg.Task.Unticked = "[ ] "
	return cfg
}

// RenderMarkdown renders markdown content for a terminal of the given width.
// tty selects colored output.
func RenderMarkdown(content string, width int, tty bool) (string, error) {
	if width <= 0 {
		width = 80
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStyles(styleConfig(tty)),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", fmt.Errorf("create markdown renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return out, nil
}

var markdownEscaper = strings.NewReplacer(
	`\`, `\\`,
	"*", `\*`,
	"_", `\_`,
	"`", "\\`",
	"[", `\[`,
	"]", `\]`,
	"#", `\#`,
	"<", `\<`,
	">", `\>`,
	"&", `\&`,
)

func escapeMarkdown(s string) string {
	return markdownEscaper.Replace(s)
}
