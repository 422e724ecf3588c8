package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Title  lipgloss.Style
	Entry  EntryTheme
	List   ListTheme
	Footer FooterTheme
}

// EntryTheme styles the new-item entry bar.
type EntryTheme struct {
	Frame       lipgloss.Style
	Prompt      lipgloss.Style
	Icon        lipgloss.Style
	Placeholder lipgloss.Style
}

// ListTheme styles the item rows.
type ListTheme struct {
	Row      lipgloss.Style
	Cursor   lipgloss.Style
	Selected lipgloss.Style
	Editing  lipgloss.Style
	Icon     lipgloss.Style
	Empty    lipgloss.Style
}

// FooterTheme groups styles used by the bottom status/help bar.
type FooterTheme struct {
	Help   lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
}

// Default returns the built-in theme used across the UI.
func Default() Theme {
	return Theme{
		Title: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		Entry: EntryTheme{
			Frame:       lipgloss.NewStyle().Padding(0, 1),
			Prompt:      lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Icon:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		List: ListTheme{
			Row:      lipgloss.NewStyle(),
			Cursor:   lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
			Selected: lipgloss.NewStyle().Bold(true),
			Editing:  lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			Icon:     lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
			Empty:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		},
		Footer: FooterTheme{
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Error:  lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
	}
}
