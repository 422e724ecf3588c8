// Package entrybar implements the stateless "new item" top slot. It owns only
// ephemeral input state (draft text, icon choice); the item list itself lives
// in the store.
package entrybar

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/hoist/pkg/glyph"
	"tableflip.dev/hoist/pkg/item"
	"tableflip.dev/hoist/pkg/tui/events"
	"tableflip.dev/hoist/pkg/tui/theme"
)

// Model renders the entry bar and emits AddSubmitMsg intents.
type Model struct {
	id      events.ComponentID
	theme   theme.Theme
	focused bool
	width   int

	input     textinput.Model
	icons     []glyph.Icon
	iconIndex int
}

// NewModel constructs the entry bar with the given default icon preselected.
func NewModel(th theme.Theme, defaultIcon glyph.Icon) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.Prompt = ""
	ti.CharLimit = 256

	m := &Model{
		id:    events.ComponentID("entrybar"),
		theme: th,
		input: ti,
		icons: glyph.Icons(),
	}
	m.selectIcon(defaultIcon)
	return m
}

func (m *Model) selectIcon(icon glyph.Icon) {
	for i, candidate := range m.icons {
		if candidate == icon {
			m.iconIndex = i
			return
		}
	}
	m.iconIndex = 0
}

// Icon returns the currently selected icon category.
func (m *Model) Icon() glyph.Icon {
	return m.icons[m.iconIndex]
}

// Draft returns the trimmed draft task text.
func (m *Model) Draft() string {
	return strings.TrimSpace(m.input.Value())
}

func (m *Model) Focus() tea.Cmd {
	m.focused = true
	return m.input.Focus()
}

func (m *Model) Blur() {
	m.focused = false
	m.input.Blur()
}

func (m *Model) Focused() bool {
	return m.focused
}

func (m *Model) SetWidth(w int) {
	m.width = w
	inner := w - 6
	if inner < 10 {
		inner = 10
	}
	m.input.SetWidth(inner)
}

// Update handles key input while the bar is focused.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused {
		return nil
	}

	switch key.String() {
	case "enter":
		task := m.Draft()
		if task == "" {
			// Blank drafts never submit; the store would reject them anyway.
			return nil
		}
		it := item.New(task, m.Icon())
		m.input.SetValue("")
		return events.AddSubmitCmd(m.id, it)
	case "esc":
		m.input.SetValue("")
		return nil
	case "ctrl+b":
		m.iconIndex = (m.iconIndex + 1) % len(m.icons)
		return nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return cmd
	}
}

// View renders the bar: prompt, selected icon, draft input.
func (m *Model) View() string {
	prompt := "+"
	if m.focused {
		prompt = m.theme.Entry.Prompt.Render("+")
	}
	icon := m.theme.Entry.Icon.Render(m.Icon().String())
	return m.theme.Entry.Frame.Render(prompt + " " + icon + " " + m.input.View())
}
