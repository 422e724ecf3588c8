package demo

import (
	"context"

	"tableflip.dev/hoist/pkg/glyph"
	"tableflip.dev/hoist/pkg/printers"
	"tableflip.dev/hoist/pkg/todo"
)

// Demo runs a scripted intent sequence against a fresh store and prints the
// snapshot after each step. It walks the same path a renderer would: add,
// begin an edit, apply keystrokes, remove an unrelated item mid-edit, finish.
type Demo struct {
	ShowID bool
}

func (n *Demo) Do(ctx context.Context) error {
	store := todo.NewStore()
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	store.Add("Buy milk", glyph.Default)
	store.Add("Walk dog", glyph.Event)
	store.Add("File taxes", glyph.Square)
	pp.Snapshot("after three adds", store.Snapshot())

	// Blank tasks are a validation no-op, not an error.
	store.Add("   ", glyph.Default)
	pp.Snapshot("after a blank add (rejected)", store.Snapshot())

	items := store.Snapshot().Items
	walk := items[1]
	store.BeginEdit(walk.ID)
	pp.Snapshot("editing the second item", store.Snapshot())

	if err := store.UpdateEditing(walk.WithTask("Walk the dog twice")); err != nil {
		return err
	}
	pp.Snapshot("after applying an edit", store.Snapshot())

	// Removing an item above the edited one must not shift the focus.
	store.Remove(items[0].ID)
	pp.Snapshot("after removing an earlier item mid-edit", store.Snapshot())

	store.EndEdit()
	pp.Snapshot("after finishing the edit", store.Snapshot())

	remaining := store.Snapshot().Items
	store.BeginEdit(remaining[0].ID)
	store.Remove(remaining[0].ID)
	pp.Snapshot("after removing the item under edit", store.Snapshot())

	printers.Table("final list", store.Snapshot().Items...)

	return nil
}
