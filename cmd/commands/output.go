package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"

	"github.com/dohr-michael/todo/clients/tui/components"
	"github.com/dohr-michael/todo/internal/todo"
)

type outputFormat string

const (
	formatTable    outputFormat = "table"
	formatMarkdown outputFormat = "markdown"
	formatJSON     outputFormat = "json"
)

func formatFlag() cli.Flag {
	return &cli.StringFlag{
		Name:    "format",
		Aliases: []string{"f"},
		Usage:   "Output format: table, markdown or json",
		Value:   string(formatTable),
	}
}

func parseFormat(s string) (outputFormat, error) {
	switch f := outputFormat(s); f {
	case formatTable, formatMarkdown, formatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want table, markdown or json)", s)
	}
}

// writeState prints the tasks of s to w in the given format.
func writeState(w io.Writer, format outputFormat, title string, s todo.State) error {
	tasks := s.Tasks()

	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(tasks)

	case formatMarkdown:
		tty, width := terminalInfo(w)
		out, err := components.RenderMarkdown(components.TaskListMarkdown(title, tasks), width, tty)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err

	default:
		if len(tasks) == 0 {
			_, err := fmt.Fprintln(w, "No tasks found.")
			return err
		}
		tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "ID\tDONE\tTEXT")
		for _, t := range tasks {
			done := " "
			if t.Completed {
				done = "x"
			}
			fmt.Fprintf(tw, "%s\t%s\t%s\n", t.ID, done, t.Text)
		}
		return tw.Flush()
	}
}

// terminalInfo reports whether w is a terminal and its width.
func terminalInfo(w io.Writer) (bool, int) {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return false, 80
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return true, 80
	}
	return true, width
}
