// Package teaui hosts the Bubble Tea program for the hoist TUI. The root
// model is the renderer side of the state-hoisting contract: it owns no item
// state, routes component intents into store operations, and re-reads the
// snapshot after every mutation.
package teaui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"tableflip.dev/hoist/pkg/config"
	"tableflip.dev/hoist/pkg/todo"
	"tableflip.dev/hoist/pkg/tui/components/entrybar"
	"tableflip.dev/hoist/pkg/tui/components/rowlist"
	"tableflip.dev/hoist/pkg/tui/events"
	"tableflip.dev/hoist/pkg/tui/theme"
)

const (
	focusEntry = iota
	focusRows
)

type storeEventMsg struct {
	event todo.Event
}

// Model contains UI state. Item state lives in the store alone.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	store   *todo.Store
	storeCh <-chan todo.Event

	theme theme.Theme
	entry *entrybar.Model
	rows  *rowlist.Model
	focus int

	status     string
	termWidth  int
	termHeight int
}

// New builds the root model around an injected store.
func New(store *todo.Store, cfg *config.Config) *Model {
	if cfg == nil {
		cfg = &config.Config{}
	}
	ctx, cancel := context.WithCancel(context.Background())
	th := theme.Default()

	m := &Model{
		ctx:    ctx,
		cancel: cancel,
		store:  store,
		theme:  th,
		entry:  entrybar.NewModel(th, cfg.DefaultIcon),
		rows:   rowlist.NewModel(th),
		focus:  focusEntry,
	}
	m.entry.Focus()
	m.refresh()
	return m
}

func (m *Model) Init() tea.Cmd {
	m.storeCh = m.store.Subscribe(m.ctx)
	return m.waitForStore()
}

// waitForStore blocks on the subscription channel and surfaces the next store
// event as a message.
func (m *Model) waitForStore() tea.Cmd {
	ch := m.storeCh
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		return storeEventMsg{event: ev}
	}
}

// refresh re-reads the snapshot and pushes it into the row list.
func (m *Model) refresh() {
	m.rows.SetSnapshot(m.store.Snapshot())
}

func (m *Model) setFocus(target int) {
	if m.focus == target {
		return
	}
	m.focus = target
	switch target {
	case focusEntry:
		m.rows.Blur()
		m.entry.Focus()
	case focusRows:
		m.entry.Blur()
		m.rows.Focus()
	}
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.entry.SetWidth(msg.Width)
		m.rows.SetWidth(msg.Width)

	case storeEventMsg:
		// Events are a hint that the snapshot moved; re-read it rather than
		// patching local state from the event payload.
		m.refresh()
		cmds = append(cmds, m.waitForStore())

	case events.AddSubmitMsg:
		if _, ok := m.store.Add(msg.Item.Task, msg.Item.Icon); ok {
			m.status = "Added"
		}
		m.refresh()

	case events.EditRequestMsg:
		m.store.BeginEdit(msg.Item.ID)
		m.status = "Editing"
		m.refresh()

	case events.EditApplyMsg:
		if err := m.store.UpdateEditing(msg.Item); err != nil {
			m.status = "ERR: " + err.Error()
		}
		m.refresh()

	case events.EditDoneMsg:
		m.store.EndEdit()
		m.status = ""
		m.refresh()

	case events.RemoveRequestMsg:
		m.store.Remove(msg.Item.ID)
		m.status = "Removed"
		m.refresh()

	case tea.KeyPressMsg:
		if cmd, handled := m.handleKeyPress(msg); handled {
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) handleKeyPress(msg tea.KeyPressMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return tea.Quit, true
	case "tab", "shift+tab":
		if !m.rows.Editing() {
			if m.focus == focusEntry {
				m.setFocus(focusRows)
			} else {
				m.setFocus(focusEntry)
			}
			return nil, true
		}
	case "q":
		if m.focus == focusRows && !m.rows.Editing() {
			m.cancel()
			return tea.Quit, true
		}
	}

	switch m.focus {
	case focusEntry:
		return m.entry.Update(msg), true
	case focusRows:
		return m.rows.Update(msg), true
	}
	return nil, false
}

func (m *Model) helpLine() string {
	if m.rows.Editing() {
		return "type to edit · ctrl+b icon · enter/esc done"
	}
	if m.focus == focusEntry {
		return "type a task · ctrl+b icon · enter add · tab list"
	}
	return "j/k move · enter edit · x remove · tab entry · q quit"
}

func (m *Model) View() string {
	title := m.theme.Title.Render("hoist — to-do")
	footer := m.theme.Footer.Help.Render(m.helpLine())
	if m.status != "" {
		style := m.theme.Footer.Status
		if len(m.status) > 4 && m.status[:4] == "ERR:" {
			style = m.theme.Footer.Error
		}
		footer = footer + "  " + style.Render(m.status)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		"",
		m.entry.View(),
		"",
		m.rows.View(),
		"",
		footer,
	)
}

// Run launches the interactive TUI program.
func Run(store *todo.Store, cfg *config.Config) error {
	p := tea.NewProgram(New(store, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
