package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// rowMode is the per-task view state.
type rowMode int

const (
	rowViewing rowMode = iota
	rowEditing
)

// row holds the UI-only state of one task line, keyed by task id.
type row struct {
	mode   rowMode
	editor textinput.Model
}

func newRow() *row {
	ed := textinput.New()
	ed.Prompt = ""
	ed.CharLimit = 0
	return &row{editor: ed}
}

// startEdit switches to editing with the editor prefilled with text.
func (r *row) startEdit(text string) tea.Cmd {
	r.mode = rowEditing
	r.editor.SetValue(text)
	r.editor.CursorEnd()
	return r.editor.Focus()
}

// stopEdit switches back to viewing and returns the edited text.
func (r *row) stopEdit() string {
	value := r.editor.Value()
	r.mode = rowViewing
	r.editor.Blur()
	r.editor.Reset()
	return value
}

func (r *row) editing() bool {
	return r.mode == rowEditing
}

func (r *row) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	r.editor, cmd = r.editor.Update(msg)
	return cmd
}
