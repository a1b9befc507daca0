package colors

// Hayfield returns a warm earth-tone scheme
func Hayfield() *ColorScheme {
	return &ColorScheme{
		Preset: "hayfield",

		Accent:     "#D7AF5F",
		Background: "#1F1A14",

		Complete: "#87AF5F",
		Obviate:  "#87AFAF",
		Abrogate: "#AF5F5F",

		PriorityLow:  "#87875F",
		PriorityMid:  "#D7AF5F",
		PriorityHigh: "#D75F00",

		PanelBorder:    "#5F5F00",
		SelectedBorder: "#D7AF5F",
		SelectedBg:     "#3A3020",

		Title:  "#D7AF5F",
		Subtle: "#6C6048",
		Normal: "#E4D6B8",

		InfoFg:  "#87AFAF",
		InfoBg:  "#1C2B2B",
		ErrorFg: "#D75F5F",
		ErrorBg: "#3A1A1A",

		StatusBarBg:   "#5F5F00",
		StatusBarText: "#E4D6B8",
	}
}
