// Package rowlist renders the item rows as a pure function of the latest
// store snapshot. The only state it owns is presentation state: the cursor and
// the inline editor's draft. Edits are forwarded as intents, one per
// keystroke, each carrying a copy of the focused item with a field changed.
package rowlist

import (
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/hoist/pkg/glyph"
	"tableflip.dev/hoist/pkg/item"
	"tableflip.dev/hoist/pkg/todo"
	"tableflip.dev/hoist/pkg/tui/events"
	"tableflip.dev/hoist/pkg/tui/theme"
)

type Model struct {
	id      events.ComponentID
	theme   theme.Theme
	focused bool
	width   int

	items     []item.Item
	editingID string
	cursor    int

	input     textinput.Model
	icons     []glyph.Icon
	iconIndex int
}

func NewModel(th theme.Theme) *Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 256

	return &Model{
		id:    events.ComponentID("rowlist"),
		theme: th,
		input: ti,
		icons: glyph.Icons(),
	}
}

func (m *Model) Focus()        { m.focused = true }
func (m *Model) Blur()         { m.focused = false }
func (m *Model) Focused() bool { return m.focused }

func (m *Model) SetWidth(w int) {
	m.width = w
	inner := w - 8
	if inner < 10 {
		inner = 10
	}
	m.input.SetWidth(inner)
}

// SetSnapshot replaces the rendered rows with the given snapshot. Entering or
// leaving edit focus is detected here, so the component follows the store
// rather than tracking its own notion of which row is being edited.
func (m *Model) SetSnapshot(snap todo.Snapshot) {
	m.items = snap.Items

	switch {
	case snap.Editing == nil:
		if m.editingID != "" {
			m.editingID = ""
			m.input.Blur()
		}
	case snap.Editing.ID != m.editingID:
		m.editingID = snap.Editing.ID
		m.input.SetValue(snap.Editing.Task)
		m.input.CursorEnd()
		m.input.Focus()
		m.selectIcon(snap.Editing.Icon)
	}

	if m.editingID != "" {
		if idx := m.indexOf(m.editingID); idx >= 0 {
			m.cursor = idx
		}
	}
	if m.cursor >= len(m.items) {
		m.cursor = len(m.items) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// Current returns the item under the cursor.
func (m *Model) Current() (item.Item, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return item.Item{}, false
	}
	return m.items[m.cursor], true
}

// Editing reports whether the inline editor is open.
func (m *Model) Editing() bool {
	return m.editingID != ""
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

func (m *Model) indexOf(id string) int {
	for i, it := range m.items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

// editedItem builds the replacement: a copy of the item under edit with the
// draft text and selected icon applied. Identity is carried over unchanged.
func (m *Model) editedItem() (item.Item, bool) {
	idx := m.indexOf(m.editingID)
	if idx < 0 {
		return item.Item{}, false
	}
	return m.items[idx].WithTask(m.input.Value()).WithIcon(m.icons[m.iconIndex]), true
}

func (m *Model) Update(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok || !m.focused {
		return nil
	}

	if m.editingID != "" {
		return m.updateEditing(key)
	}
	return m.updateBrowsing(key)
}

func (m *Model) updateEditing(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "enter", "esc":
		// All field changes were already applied keystroke by keystroke;
		// finishing the edit only clears the focus.
		return events.EditDoneCmd(m.id)
	case "ctrl+b":
		m.iconIndex = (m.iconIndex + 1) % len(m.icons)
		if it, ok := m.editedItem(); ok {
			return events.EditApplyCmd(m.id, it)
		}
		return nil
	default:
		before := m.input.Value()
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(key)
		if m.input.Value() == before {
			return cmd
		}
		it, ok := m.editedItem()
		if !ok {
			return cmd
		}
		return tea.Batch(cmd, events.EditApplyCmd(m.id, it))
	}
}

func (m *Model) updateBrowsing(key tea.KeyPressMsg) tea.Cmd {
	switch key.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.items)-1 {
			m.cursor++
		}
	case "enter":
		if it, ok := m.Current(); ok {
			return events.EditRequestCmd(m.id, it)
		}
	case "x":
		if it, ok := m.Current(); ok {
			return events.RemoveRequestCmd(m.id, it)
		}
	}
	return nil
}

func (m *Model) View() string {
	if len(m.items) == 0 {
		return m.theme.List.Empty.Render("  nothing to do")
	}

	var b strings.Builder
	for i, it := range m.items {
		marker := "  "
		if m.focused && i == m.cursor {
			marker = m.theme.List.Cursor.Render("❯ ")
		}

		if it.ID == m.editingID {
			icon := m.theme.List.Editing.Render(m.icons[m.iconIndex].String())
			b.WriteString(marker + icon + " " + m.input.View())
		} else {
			icon := m.theme.List.Icon.Render(it.Icon.String())
			line := icon + " " + m.theme.List.Row.Render(it.Task)
			if m.focused && i == m.cursor {
				line = icon + " " + m.theme.List.Selected.Render(it.Task)
			}
			b.WriteString(marker + line)
		}

		if i < len(m.items)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
