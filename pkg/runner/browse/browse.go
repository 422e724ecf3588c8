package browse

import (
	"context"

	"tableflip.dev/hoist/pkg/config"
	"tableflip.dev/hoist/pkg/runner/ui"
	"tableflip.dev/hoist/pkg/todo"
	legacyui "tableflip.dev/hoist/pkg/ui"
)

type Browse struct {
	Store  *todo.Store
	Config *config.Config
}

func (n *Browse) Do(ctx context.Context) error {
	if n.Store == nil {
		n.Store = todo.NewStore()
	}
	if n.Config != nil && n.Config.Seed {
		ui.Seed(n.Store)
	}
	return legacyui.Do(ctx, n.Store)
}
