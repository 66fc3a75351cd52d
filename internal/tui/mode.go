// Package tui provides the terminal browser for issue drafts.
package tui

// Mode represents the current UI mode.
type Mode int

const (
	ModeNormal Mode = iota // Default navigation mode
	ModeFilter             // Text filtering mode
	ModeInput              // New request input mode
	ModeDetail             // Issue detail view mode
	ModeHelp               // Help overlay mode
)

// String returns the string representation of the mode.
func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "normal"
	case ModeFilter:
		return "filter"
	case ModeInput:
		return "input"
	case ModeDetail:
		return "detail"
	case ModeHelp:
		return "help"
	default:
		return "unknown"
	}
}

// IsInputMode returns true if the mode accepts text input.
func (m Mode) IsInputMode() bool {
	switch m {
	case ModeFilter, ModeInput:
		return true
	case ModeNormal, ModeDetail, ModeHelp:
		return false
	}
	return false
}
