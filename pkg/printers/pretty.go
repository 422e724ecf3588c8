package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/hoist/pkg/glyph"
	"tableflip.dev/hoist/pkg/item"
	"tableflip.dev/hoist/pkg/todo"
)

type PrettyPrint struct {
	ShowID bool
}

var (
	spacing = strings.Repeat(" ", len("171dff69-f8b9-9dca  "))
)

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	if pp.ShowID {
		_, _ = t.Print(spacing)
	}
	_, _ = t.Print(title)
	_, _ = c.Printf(" - %d", count)

	switch count {
	case 1:
		_, _ = c.Println(" item")
	default:
		_, _ = c.Println(" items")
	}
}

// List prints the items in display order. Done items render struck through.
func (pp *PrettyPrint) List(items ...item.Item) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		if pp.ShowID {
			_, _ = f.Print(spacing)
		}
		_, _ = f.Print(" none\n\n")
		return
	}

	t := color.New()
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, it := range items {
		if pp.ShowID {
			short := shortID(it.ID)
			_, _ = y.Print(short)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(short)))
		}
		task := it.Task
		if it.Icon == glyph.Done {
			task = glyph.Strike(task)
		}
		_, _ = t.Printf("%s %s\n", it.Icon.String(), task)
	}
	_, _ = t.Println("")
}

// Snapshot prints a full store snapshot, marking the item under edit.
func (pp *PrettyPrint) Snapshot(title string, snap todo.Snapshot) {
	pp.TitleWithCount(title, len(snap.Items))
	if len(snap.Items) == 0 {
		pp.List()
		return
	}

	t := color.New()
	e := color.New(color.FgHiCyan)
	y := color.New(color.FgHiYellow, color.Italic, color.Faint)

	for _, it := range snap.Items {
		if pp.ShowID {
			short := shortID(it.ID)
			_, _ = y.Print(short)
			_, _ = y.Print(strings.Repeat(" ", len(spacing)-len(short)))
		}
		line := fmt.Sprintf("%s %s", it.Icon.String(), it.Task)
		if snap.Editing != nil && snap.Editing.ID == it.ID {
			_, _ = e.Printf("%s  (editing)\n", line)
			continue
		}
		_, _ = t.Println(line)
	}
	_, _ = t.Println("")
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
