package icons

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"tableflip.dev/hoist/pkg/printers"
)

type Icons struct{}

func (n *Icons) Do(ctx context.Context) error {
	_, err := fmt.Fprintln(color.Output, printers.Legend())
	return err
}
