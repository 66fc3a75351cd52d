package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Muted      lipgloss.Color
	Error      lipgloss.Color
	Success    lipgloss.Color
	Background lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	DescNormal    lipgloss.Color
	DescSelected  lipgloss.Color
}{
	Primary:    lipgloss.Color("#6C5CE7"), // Purple
	Secondary:  lipgloss.Color("#A29BFE"), // Lavender
	Muted:      lipgloss.Color("#636E72"), // Gray
	Error:      lipgloss.Color("#D63031"), // Red
	Success:    lipgloss.Color("#00B894"), // Green
	Background: lipgloss.Color("#2D3436"), // Dark gray

	TitleNormal:   lipgloss.Color("#DFE6E9"),
	TitleSelected: lipgloss.Color("#FFEAA7"),
	DescNormal:    lipgloss.Color("#636E72"),
	DescSelected:  lipgloss.Color("#B2BEC3"),
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App        lipgloss.Style
	Header     lipgloss.Style
	HeaderText lipgloss.Style

	// Issue list
	ItemTitle          lipgloss.Style
	ItemTitleSelected  lipgloss.Style
	ItemDesc           lipgloss.Style
	ItemDescSelected   lipgloss.Style
	ItemDate           lipgloss.Style
	SelectionIndicator lipgloss.Style

	// Detail
	DetailTitle lipgloss.Style
	DetailLabel lipgloss.Style
	DetailValue lipgloss.Style

	// Input
	InputPrompt lipgloss.Style
	InputBox    lipgloss.Style

	// Messages
	ErrorMsg   lipgloss.Style
	SuccessMsg lipgloss.Style
	Footer     lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().Padding(1, 2),
		Header: lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(Colors.Muted).
			MarginBottom(1),
		HeaderText: lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),

		ItemTitle:          lipgloss.NewStyle().Foreground(Colors.TitleNormal),
		ItemTitleSelected:  lipgloss.NewStyle().Foreground(Colors.TitleSelected).Bold(true),
		ItemDesc:           lipgloss.NewStyle().Foreground(Colors.DescNormal),
		ItemDescSelected:   lipgloss.NewStyle().Foreground(Colors.DescSelected),
		ItemDate:           lipgloss.NewStyle().Foreground(Colors.Secondary),
		SelectionIndicator: lipgloss.NewStyle().Foreground(Colors.Primary),

		DetailTitle: lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		DetailLabel: lipgloss.NewStyle().Foreground(Colors.Muted).Width(10),
		DetailValue: lipgloss.NewStyle().Foreground(Colors.TitleNormal),

		InputPrompt: lipgloss.NewStyle().Foreground(Colors.Primary).Bold(true),
		InputBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Colors.Primary).
			Padding(0, 1),

		ErrorMsg:   lipgloss.NewStyle().Foreground(Colors.Error),
		SuccessMsg: lipgloss.NewStyle().Foreground(Colors.Success),
		Footer:     lipgloss.NewStyle().Foreground(Colors.Muted),
	}
}
