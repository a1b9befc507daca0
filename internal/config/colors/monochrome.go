package colors

// Monochrome returns a black and white color scheme
func Monochrome() *ColorScheme {
	return &ColorScheme{
		Preset: "monochrome",

		Accent:     "#FFFFFF",
		Background: "#000000",

		Complete: "#FFFFFF",
		Obviate:  "#BCBCBC",
		Abrogate: "#808080",

		PriorityLow:  "#808080",
		PriorityMid:  "#BCBCBC",
		PriorityHigh: "#FFFFFF",

		PanelBorder:    "#808080",
		SelectedBorder: "#FFFFFF",
		SelectedBg:     "#303030",

		Title:  "#FFFFFF",
		Subtle: "#626262",
		Normal: "#D0D0D0",

		InfoFg:  "#FFFFFF",
		InfoBg:  "#303030",
		ErrorFg: "#000000",
		ErrorBg: "#FFFFFF",

		StatusBarBg:   "#303030",
		StatusBarText: "#FFFFFF",
	}
}
