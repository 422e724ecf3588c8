// Package events defines the typed messages exchanged between UI components
// and the root model. Components never touch the store; they emit intents and
// the root model routes them into store operations.
package events

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea/v2"

	"tableflip.dev/hoist/pkg/item"
)

// ComponentID uniquely identifies a component instance emitting events.
type ComponentID string

// AddSubmitMsg asks for a new item to be appended to the list.
type AddSubmitMsg struct {
	Component ComponentID
	Item      item.Item
}

// Describe renders the submission in a human-friendly format for logs.
func (m AddSubmitMsg) Describe() string {
	return fmt.Sprintf(`task:%q icon:%q`, m.Item.Task, m.Item.Icon.Key())
}

// AddSubmitCmd wraps AddSubmitMsg in a tea.Cmd.
func AddSubmitCmd(component ComponentID, it item.Item) tea.Cmd {
	return func() tea.Msg {
		return AddSubmitMsg{Component: component, Item: it}
	}
}

// EditRequestMsg asks for the given item to be opened for inline editing.
type EditRequestMsg struct {
	Component ComponentID
	Item      item.Item
}

// Describe implements the logging helper.
func (m EditRequestMsg) Describe() string {
	return fmt.Sprintf(`id:%q task:%q`, m.Item.ID, m.Item.Task)
}

// EditRequestCmd wraps EditRequestMsg in a tea.Cmd.
func EditRequestCmd(component ComponentID, it item.Item) tea.Cmd {
	return func() tea.Msg {
		return EditRequestMsg{Component: component, Item: it}
	}
}

// EditApplyMsg carries a field-level edit: a copy of the item under edit with
// one field changed. Emitted once per keystroke or icon selection.
type EditApplyMsg struct {
	Component ComponentID
	Item      item.Item
}

// Describe implements the logging helper.
func (m EditApplyMsg) Describe() string {
	return fmt.Sprintf(`id:%q task:%q icon:%q`, m.Item.ID, m.Item.Task, m.Item.Icon.Key())
}

// EditApplyCmd wraps EditApplyMsg in a tea.Cmd.
func EditApplyCmd(component ComponentID, it item.Item) tea.Cmd {
	return func() tea.Msg {
		return EditApplyMsg{Component: component, Item: it}
	}
}

// EditDoneMsg signals that inline editing is complete (commit or cancel; all
// field changes have already been applied).
type EditDoneMsg struct {
	Component ComponentID
}

// Describe implements the logging helper.
func (m EditDoneMsg) Describe() string {
	return fmt.Sprintf(`component:%q`, m.Component)
}

// EditDoneCmd wraps EditDoneMsg in a tea.Cmd.
func EditDoneCmd(component ComponentID) tea.Cmd {
	return func() tea.Msg {
		return EditDoneMsg{Component: component}
	}
}

// RemoveRequestMsg asks for the given item to be removed from the list.
type RemoveRequestMsg struct {
	Component ComponentID
	Item      item.Item
}

// Describe implements the logging helper.
func (m RemoveRequestMsg) Describe() string {
	return fmt.Sprintf(`id:%q task:%q`, m.Item.ID, m.Item.Task)
}

// RemoveRequestCmd wraps RemoveRequestMsg in a tea.Cmd.
func RemoveRequestCmd(component ComponentID, it item.Item) tea.Cmd {
	return func() tea.Msg {
		return RemoveRequestMsg{Component: component, Item: it}
	}
}
