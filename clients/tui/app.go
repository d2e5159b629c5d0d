package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/dohr-michael/todo/internal/config"
	"github.com/dohr-michael/todo/internal/todo"
)

// focus is the region receiving key presses when no row is being edited.
type focus int

const (
	focusInput focus = iota
	focusList
)

// Model is the root bubbletea model for the todo list.
// It reads tasks from the store and changes them only by dispatching actions;
// input text, focus, cursor and row edit state stay here.
type Model struct {
	store       *todo.Store
	unsubscribe func()
	reloader    *config.Reloader
	ui          config.UIConfig
	ids         string

	input textinput.Model
	list  *listState
	focus focus

	keys   keyMap
	help   help.Model
	status string
	isErr  bool
	width  int
}

// listState is the row state shared by every copy of the Model.
// It follows the store through a subscription.
type listState struct {
	rows   map[todo.ID]*row
	cursor int
}

// reconcile drops rows of deleted tasks and keeps the cursor on the list.
func (l *listState) reconcile(s todo.State) {
	for id := range l.rows {
		if _, ok := s.Find(id); !ok {
			delete(l.rows, id)
		}
	}
	l.cursor = min(l.cursor, max(s.Len()-1, 0))
}

// Messages produced by a config reload.
type (
	configReloadedMsg struct{ cfg *config.Config }
	configErrorMsg    struct{ err error }
)

// forwardReloads delivers every reloaded config to send as a configReloadedMsg
// until the returned function is called.
func forwardReloads(r *config.Reloader, send func(tea.Msg)) func() {
	return r.OnReload(func(cfg *config.Config) {
		send(configReloadedMsg{cfg: cfg})
	})
}

// New creates the model and subscribes it to store. reloader may be nil, which
// disables config reload. Close releases the subscription.
func New(store *todo.Store, cfg *config.Config, reloader *config.Reloader) Model {
	ti := textinput.New()
	ti.Placeholder = cfg.UI.Placeholder
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Focus()

	list := &listState{rows: make(map[todo.ID]*row)}
	m := Model{
		store:       store,
		unsubscribe: store.Subscribe(list.reconcile),
		reloader:    reloader,
		ui:          cfg.UI,
		ids:         cfg.IDs,
		input:       ti,
		list:        list,
		focus:       focusInput,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	m.syncKeys()
	return m
}

// Close stops following the store.
func (m Model) Close() {
	m.unsubscribe()
}

// Init starts the cursor blink of the focused input.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update processes all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.input.Width = max(msg.Width-8, 10)
		m.help.Width = msg.Width
		return m, nil

	case configReloadedMsg:
		m.applyConfig(msg.cfg)
		return m, nil

	case configErrorMsg:
		slog.Warn("config reload failed", "error", msg.err)
		m.setError(fmt.Sprintf("reload: %v", msg.err))
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if id, r, ok := m.editingRow(); ok {
			return m.handleEditKey(msg, id, r)
		}
		if m.focus == focusInput {
			return m.handleInputKey(msg)
		}
		return m.handleListKey(msg)
	}

	// Pass through to the focused text input (cursor blink).
	if _, r, ok := m.editingRow(); ok {
		return m, r.update(msg)
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			m.setError("Task text cannot be empty")
			return m, nil
		}
		m.store.Dispatch(todo.AddTask{Text: text, Position: todo.InsertTop})
		m.input.Reset()
		m.list.cursor = 0
		m.setStatus("Added task")
		return m, nil

	case key.Matches(msg, m.keys.Switch), key.Matches(msg, m.keys.Cancel):
		m.focus = focusList
		m.input.Blur()
		m.syncKeys()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.store.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.list.cursor > 0 {
			m.list.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.list.cursor < state.Len()-1 {
			m.list.cursor++
		}

	case key.Matches(msg, m.keys.Add), key.Matches(msg, m.keys.Switch):
		m.focus = focusInput
		m.syncKeys()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if task, ok := m.current(); ok {
			m.store.Dispatch(todo.ToggleComplete{ID: task.ID})
			m.setStatus("")
		}

	case key.Matches(msg, m.keys.Edit):
		if task, ok := m.current(); ok {
			m.setStatus("Editing task")
			return m, m.rowFor(task.ID).startEdit(task.Text)
		}

	case key.Matches(msg, m.keys.Delete):
		if task, ok := m.current(); ok {
			m.store.Dispatch(todo.DeleteTask{ID: task.ID})
			m.setStatus("Deleted task")
		}

	case msg.String() == "d" || msg.String() == "delete":
		// Delete binding is disabled for the selected task.
		if _, ok := m.current(); ok {
			m.setError("Complete the task before deleting it")
		}

	case key.Matches(msg, m.keys.Reload):
		if m.reloader == nil {
			m.setError("Config reload is not available")
			break
		}
		m.setStatus("Reloading config")
		return m, m.reloadConfig

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	m.syncKeys()
	return m, nil
}

func (m Model) handleEditKey(msg tea.KeyMsg, id todo.ID, r *row) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		text := strings.TrimSpace(r.stopEdit())
		if text == "" {
			m.setError("Task text cannot be empty; kept the previous text")
		} else {
			m.store.Dispatch(todo.SaveTask{ID: id, Text: text})
			m.setStatus("Saved task")
		}
		m.syncKeys()
		return m, nil

	case key.Matches(msg, m.keys.Cancel):
		r.stopEdit()
		m.setStatus("Edit cancelled")
		return m, nil
	}
	return m, r.update(msg)
}

// current returns the task under the cursor.
func (m *Model) current() (todo.Task, bool) {
	state := m.store.State()
	if m.list.cursor < 0 || m.list.cursor >= state.Len() {
		return todo.Task{}, false
	}
	return state.At(m.list.cursor), true
}

// rowFor returns the row state of id, stopping any other edit in progress.
func (m *Model) rowFor(id todo.ID) *row {
	for other, r := range m.list.rows {
		if other != id && r.editing() {
			r.stopEdit()
		}
	}
	r, ok := m.list.rows[id]
	if !ok {
		r = newRow()
		m.list.rows[id] = r
	}
	return r
}

func (m Model) editingRow() (todo.ID, *row, bool) {
	for id, r := range m.list.rows {
		if r.editing() {
			return id, r, true
		}
	}
	return "", nil, false
}

// syncKeys enables the delete binding only where the view allows deleting.
func (m *Model) syncKeys() {
	task, ok := m.current()
	canDelete := m.focus == focusList && ok && (task.Completed || m.ui.AllowDeleteIncomplete)
	m.keys.Delete.SetEnabled(canDelete)

	hasTasks := ok && m.focus == focusList
	m.keys.Toggle.SetEnabled(hasTasks)
	m.keys.Edit.SetEnabled(hasTasks)
}

// reloadConfig runs off the update loop; listeners deliver the new config.
func (m Model) reloadConfig() tea.Msg {
	if err := m.reloader.Reload(); err != nil {
		return configErrorMsg{err: err}
	}
	return nil
}

// applyConfig takes the ui settings of a reloaded config. The id strategy is
// fixed for the life of the store.
func (m *Model) applyConfig(cfg *config.Config) {
	m.ui = cfg.UI
	m.input.Placeholder = cfg.UI.Placeholder
	m.syncKeys()
	if cfg.IDs != m.ids {
		m.setStatus(fmt.Sprintf("Config reloaded; ids %q applies after restart", cfg.IDs))
		return
	}
	m.setStatus("Config reloaded")
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.isErr = false
}

func (m *Model) setError(s string) {
	m.status = s
	m.isErr = true
}

// View renders the title, the input form, the task list, status and help.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render(m.ui.Title))
	b.WriteString("\n")

	border := InputBorderStyle
	if m.focus == focusInput {
		border = InputFocusedBorderStyle
	}
	b.WriteString(border.Render(m.input.View()))
	b.WriteString("\n\n")

	state := m.store.State()
	if state.Len() == 0 {
		b.WriteString(EmptyStyle.Render(m.ui.EmptyText))
		b.WriteString("\n")
	}
	for i, task := range state.Tasks() {
		b.WriteString(m.renderTask(i, task))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		style := StatusStyle
		if m.isErr {
			style = ErrorStyle
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.helpKeys()))
	return b.String()
}

func (m Model) renderTask(i int, task todo.Task) string {
	marker := "  "
	if m.focus == focusList && i == m.list.cursor {
		marker = CursorStyle.Render("› ")
	}

	box := "[ ] "
	if task.Completed {
		box = CheckedStyle.Render("[x]") + " "
	}

	if r, ok := m.list.rows[task.ID]; ok && r.editing() {
		return marker + box + r.editor.View()
	}

	text := TaskStyle.Render(task.Text)
	if task.Completed {
		text = CompletedStyle.Render(task.Text)
	}
	return marker + box + text
}

func (m Model) helpKeys() bindings {
	if _, _, ok := m.editingRow(); ok {
		return m.keys.editHelp()
	}
	if m.focus == focusInput {
		return m.keys.inputHelp()
	}
	return m.keys.listHelp(m.help.ShowAll)
}
