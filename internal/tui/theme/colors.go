package theme

import "github.com/thenoetrevino/chorin/internal/config"

// Colors holds the current theme colors, initialized by Init
var (
	Highlight      string
	Background     string
	Subtle         string
	Normal         string
	Title          string
	Complete       string
	Obviate        string
	Abrogate       string
	PriorityLow    string
	PriorityMid    string
	PriorityHigh   string
	PanelBorder    string
	SelectedBorder string
	SelectedBg     string
	InfoFg         string
	InfoBg         string
	ErrorFg        string
	ErrorBg        string
	StatusBarBg    string
	StatusBarText  string
)

// Init initializes the theme colors from the given color scheme
func Init(colors config.ColorScheme) {
	Highlight = colors.Accent
	Background = colors.Background
	Subtle = colors.Subtle
	Normal = colors.Normal
	Title = colors.Title
	Complete = colors.Complete
	Obviate = colors.Obviate
	Abrogate = colors.Abrogate
	PriorityLow = colors.PriorityLow
	PriorityMid = colors.PriorityMid
	PriorityHigh = colors.PriorityHigh
	PanelBorder = colors.PanelBorder
	SelectedBorder = colors.SelectedBorder
	SelectedBg = colors.SelectedBg
	InfoFg = colors.InfoFg
	InfoBg = colors.InfoBg
	ErrorFg = colors.ErrorFg
	ErrorBg = colors.ErrorBg
	StatusBarBg = colors.StatusBarBg
	StatusBarText = colors.StatusBarText
}
