// Package ui is the earlier terminal surface, kept alongside the Bubble Tea
// one. It follows the same contract: the table is repopulated from a fresh
// snapshot after every intent, never mutated in place.
package ui

import (
	"context"

	tui "github.com/marcusolsson/tui-go"

	"tableflip.dev/hoist/pkg/glyph"
	"tableflip.dev/hoist/pkg/todo"
)

func Do(ctx context.Context, store *todo.Store) error {
	table := tui.NewTable(1, 0)
	table.SetFocused(true)
	table.SetSizePolicy(tui.Expanding, tui.Maximum)

	view := tui.NewVBox(table, tui.NewSpacer())
	view.SetTitle("to-do")
	view.SetBorder(true)
	view.SetSizePolicy(tui.Preferred, tui.Expanding)

	status := tui.NewStatusBar("")
	status.SetPermanentText(`Enter toggles done, 'x' removes, ESC or 'q' to QUIT`)

	root := tui.NewVBox(
		view,
		tui.NewSpacer(),
		status,
	)

	u, err := tui.New(root)
	if err != nil {
		return err
	}

	d := impl{
		store: store,
		table: table,
	}
	d.populate()

	table.OnItemActivated(func(t *tui.Table) {
		d.toggleDone(t.Selected())
	})

	u.SetKeybinding("x", func() {
		d.remove(table.Selected())
	})

	u.SetKeybinding("Esc", func() { u.Quit() })
	u.SetKeybinding("q", func() { u.Quit() })

	return u.Run()
}

type impl struct {
	store *todo.Store
	table *tui.Table

	rows []string // ids in display order, parallel to table rows
}

func (d *impl) populate() {
	d.table.RemoveRows()

	snap := d.store.Snapshot()
	d.rows = make([]string, 0, len(snap.Items))
	for _, it := range snap.Items {
		d.rows = append(d.rows, it.ID)
		d.table.AppendRow(tui.NewLabel(it.String()))
	}
	if len(d.rows) > 0 {
		d.table.Select(0)
	}
}

// toggleDone flips the selected item between Done and Default through the
// editing operations, so the store keeps its single-edit invariant.
func (d *impl) toggleDone(selected int) {
	if selected < 0 || selected >= len(d.rows) {
		return
	}
	id := d.rows[selected]

	d.store.BeginEdit(id)
	it, ok := d.store.Editing()
	if !ok {
		return
	}
	next := glyph.Done
	if it.Icon == glyph.Done {
		next = glyph.Default
	}
	if err := d.store.UpdateEditing(it.WithIcon(next)); err != nil {
		d.store.EndEdit()
		return
	}
	d.store.EndEdit()
	d.populate()
}

func (d *impl) remove(selected int) {
	if selected < 0 || selected >= len(d.rows) {
		return
	}
	d.store.Remove(d.rows[selected])
	d.populate()
}
