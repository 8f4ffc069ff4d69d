package theme

import "github.com/charmbracelet/lipgloss/v2"

// Theme centralizes Lip Gloss styles for the picker UI.
type Theme struct {
	Tabs   TabsTheme
	List   ListTheme
	Footer FooterTheme
}

// TabsTheme groups styles for the collection tab row.
type TabsTheme struct {
	Tab       lipgloss.Style
	ActiveTab lipgloss.Style
	Count     lipgloss.Style
}

// ListTheme styles the result rows.
type ListTheme struct {
	Row         lipgloss.Style
	Highlighted lipgloss.Style
	Icon        lipgloss.Style
	URL         lipgloss.Style
	Empty       lipgloss.Style
	Error       lipgloss.Style
}

// FooterTheme groups styles used by the bottom status bar.
type FooterTheme struct {
	Status lipgloss.Style
	Help   lipgloss.Style
	Multi  lipgloss.Style
}

// Default returns the built-in theme used across the picker.
func Default() Theme {
	return Theme{
		Tabs: TabsTheme{
			Tab:       lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Padding(0, 1),
			ActiveTab: lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true).Reverse(true).Padding(0, 1),
			Count:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		},
		List: ListTheme{
			Row:         lipgloss.NewStyle(),
			Highlighted: lipgloss.NewStyle().Reverse(true),
			Icon:        lipgloss.NewStyle().Bold(true),
			URL:         lipgloss.NewStyle().Foreground(lipgloss.Color("244")).Faint(true),
			Empty:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Italic(true),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		},
		Footer: FooterTheme{
			Status: lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
			Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Multi:  lipgloss.NewStyle().Foreground(lipgloss.Color("212")).Bold(true),
		},
	}
}
