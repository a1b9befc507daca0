package state

// Mode represents the current interaction mode of the TUI.
// Each mode determines which keyboard shortcuts are active and what UI is displayed.
type Mode int

const (
	NormalMode          Mode = iota // Default navigation mode
	ConfirmMode                     // Confirming a quick disposition ([y]es [n]o)
	DispositionFormMode             // Choosing a disposition from the huh form
	HelpMode                        // Displaying help screen
)

// String returns a short name for the mode, used in logs and test failures
func (m Mode) String() string {
	switch m {
	case NormalMode:
		return "normal"
	case ConfirmMode:
		return "confirm"
	case DispositionFormMode:
		return "disposition-form"
	case HelpMode:
		return "help"
	default:
		return "unknown"
	}
}

// UIState manages the user interface state.
// This includes terminal dimensions and the current interaction mode.
type UIState struct {
	// width is the current terminal width in characters
	width int

	// height is the current terminal height in characters
	height int

	// mode is the current interaction mode
	mode Mode
}

// NewUIState creates a new UIState with default values.
func NewUIState() *UIState {
	return &UIState{mode: NormalMode}
}

// Width returns the current terminal width.
func (s *UIState) Width() int {
	return s.width
}

// SetWidth updates the terminal width.
func (s *UIState) SetWidth(width int) {
	s.width = width
}

// Height returns the current terminal height.
func (s *UIState) Height() int {
	return s.height
}

// SetHeight updates the terminal height.
func (s *UIState) SetHeight(height int) {
	s.height = height
}

// ContentHeight returns the rows available to the chore list.
// This is terminal height minus the header, hint lines and status bar, with a minimum of 3.
func (s *UIState) ContentHeight() int {
	const headerHeight = 2    // greeting + gap line
	const hintHeight = 3      // two hint lines + gap line
	const statusBarHeight = 2 // gap line + status bar
	const borderHeight = 2
	return max(s.height-headerHeight-hintHeight-statusBarHeight-borderHeight, 3)
}

// Mode returns the current interaction mode.
func (s *UIState) Mode() Mode {
	return s.mode
}

// SetMode updates the current interaction mode.
func (s *UIState) SetMode(mode Mode) {
	s.mode = mode
}
