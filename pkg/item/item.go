package item

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"tableflip.dev/hoist/pkg/glyph"
)

// New constructs an item with a freshly generated id. The id never changes
// for the lifetime of the item; edits produce copies via WithTask/WithIcon.
func New(task string, icon glyph.Icon) Item {
	return Item{
		ID:   uuid.NewString(),
		Task: task,
		Icon: icon,
	}
}

type Item struct {
	ID   string     `json:"id"`
	Task string     `json:"task"`
	Icon glyph.Icon `json:"icon,omitempty"`
}

// WithTask returns a copy of the item carrying the new task text.
func (i Item) WithTask(task string) Item {
	i.Task = task
	return i
}

// WithIcon returns a copy of the item carrying the new icon category.
func (i Item) WithIcon(icon glyph.Icon) Item {
	i.Icon = icon
	return i
}

// Blank reports whether the task text is empty or whitespace only.
func (i Item) Blank() bool {
	return strings.TrimSpace(i.Task) == ""
}

func (i Item) Row() (string, string) {
	return i.Icon.String(), i.Task
}

func (i Item) String() string {
	return fmt.Sprintf("%s  %s", i.Icon.String(), i.Task)
}
