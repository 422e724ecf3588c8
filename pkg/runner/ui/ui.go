package ui

import (
	"context"

	"tableflip.dev/hoist/pkg/config"
	"tableflip.dev/hoist/pkg/glyph"
	"tableflip.dev/hoist/pkg/todo"
	teaui "tableflip.dev/hoist/pkg/tui/app"
)

type UI struct {
	Store  *todo.Store
	Config *config.Config
}

func (n *UI) Do(ctx context.Context) error {
	if n.Store == nil {
		n.Store = todo.NewStore()
	}
	if n.Config != nil && n.Config.Seed {
		Seed(n.Store)
	}
	return teaui.Run(n.Store, n.Config)
}

// Seed fills the store with a starter list for demos and screenshots.
func Seed(store *todo.Store) {
	store.Add("Learn state hoisting", glyph.Default)
	store.Add("Team standup", glyph.Event)
	store.Add("Read the renderer contract", glyph.Done)
	store.Add("Groceries", glyph.Square)
	store.Add("Renew passport", glyph.Privacy)
	store.Add("Old draft notes", glyph.Trash)
}
