package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/hoist/pkg/glyph"
	"tableflip.dev/hoist/pkg/item"
)

// Table prints items as an aligned two-column table.
func Table(title string, items ...item.Item) {
	if len(items) == 0 {
		return
	}

	fmt.Println(glyph.Underline(glyph.Bold(title)))

	tbl := uitable.New()
	tbl.Separator = " "

	for _, it := range items {
		tbl.AddRow(it.Row())
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}

// Legend builds the icon reference table shown by `hoist icons`.
func Legend() *uitable.Table {
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("ALIAS", "ICON", "MEANING")
	for _, i := range glyph.Icons() {
		g := i.Glyph()
		tbl.AddRow(g.Key, g.Symbol, g.Meaning)
	}
	return tbl
}
