package glyph

import (
	"fmt"
	"strings"
)

type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

func DefaultGlyphs() []Glyph {
	g := make([]Glyph, 0, 6)

	g = append(g, Glyph{
		Key:     "default",
		Symbol:  "●",
		Meaning: "plain task",
	}, Glyph{
		Key:     "event",
		Symbol:  "○",
		Meaning: "scheduled event",
	}, Glyph{
		Key:     "done",
		Symbol:  "✔",
		Meaning: "task completed",
	}, Glyph{
		Key:     "square",
		Symbol:  "■",
		Meaning: "checklist item",
	}, Glyph{
		Key:     "privacy",
		Symbol:  "◆",
		Meaning: "private task",
	}, Glyph{
		Key:     "trash",
		Symbol:  "✗",
		Meaning: "candidate for removal",
	})

	return g
}

func (g Glyph) String() string {
	return g.Symbol
}

// Icon is the category attached to a to-do item. The set is fixed.
type Icon int

const (
	Default Icon = iota
	Event
	Done
	Square
	Privacy
	Trash
)

func Icons() []Icon {
	return []Icon{Default, Event, Done, Square, Privacy, Trash}
}

func (i Icon) Glyph() Glyph {
	glyphs := DefaultGlyphs()
	if i < 0 || int(i) >= len(glyphs) {
		return glyphs[Default]
	}
	return glyphs[i]
}

func (i Icon) String() string {
	return i.Glyph().String()
}

// Key returns the CLI alias for the icon, e.g. "event".
func (i Icon) Key() string {
	return i.Glyph().Key
}

// IconForAlias resolves a CLI alias (case-insensitive) to an icon.
func IconForAlias(alias string) (Icon, error) {
	alias = strings.ToLower(strings.TrimSpace(alias))
	for _, i := range Icons() {
		if i.Glyph().Key == alias {
			return i, nil
		}
	}
	return Default, fmt.Errorf("glyph: unknown icon alias %q", alias)
}
