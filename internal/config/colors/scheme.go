package colors

// ColorScheme defines all configurable color values
type ColorScheme struct {
	// Preset name (e.g., "default", "monochrome", "hayfield")
	Preset string `yaml:"preset"`

	// Primary accent color (used for selections, titles, highlights)
	Accent     string `yaml:"accent"`
	Background string `yaml:"background"`

	// Disposition colors
	Complete string `yaml:"complete"`
	Obviate  string `yaml:"obviate"`
	Abrogate string `yaml:"abrogate"`

	// Priority colors
	PriorityLow  string `yaml:"priority_low"`
	PriorityMid  string `yaml:"priority_mid"`
	PriorityHigh string `yaml:"priority_high"`

	// UI element colors
	PanelBorder    string `yaml:"panel_border"`
	SelectedBorder string `yaml:"selected_border"`
	SelectedBg     string `yaml:"selected_bg"`

	// Text colors
	Title  string `yaml:"title"`
	Subtle string `yaml:"subtle"` // Muted/placeholder text
	Normal string `yaml:"normal"`

	// Notification colors (foreground/background pairs)
	InfoFg  string `yaml:"info_fg"`
	InfoBg  string `yaml:"info_bg"`
	ErrorFg string `yaml:"error_fg"`
	ErrorBg string `yaml:"error_bg"`

	// Status bar
	StatusBarBg   string `yaml:"status_bar_bg"`
	StatusBarText string `yaml:"status_bar_text"`
}

// GetPreset returns a preset color scheme by name
func GetPreset(name string) *ColorScheme {
	switch name {
	case "monochrome":
		return Monochrome()
	case "hayfield":
		return Hayfield()
	default:
		return Default()
	}
}

// fields lists every color slot so defaults and merges stay in sync with the struct
func (c *ColorScheme) fields() []*string {
	return []*string{
		&c.Accent, &c.Background,
		&c.Complete, &c.Obviate, &c.Abrogate,
		&c.PriorityLow, &c.PriorityMid, &c.PriorityHigh,
		&c.PanelBorder, &c.SelectedBorder, &c.SelectedBg,
		&c.Title, &c.Subtle, &c.Normal,
		&c.InfoFg, &c.InfoBg, &c.ErrorFg, &c.ErrorBg,
		&c.StatusBarBg, &c.StatusBarText,
	}
}

// ApplyDefaults fills in missing color values using the preset as base
// If preset is specified, loads that preset first, then overrides with custom values
func (c *ColorScheme) ApplyDefaults() {
	preset := GetPreset(c.Preset)
	if c.Preset == "" {
		c.Preset = preset.Preset
	}

	dst := c.fields()
	for i, src := range preset.fields() {
		if *dst[i] == "" {
			*dst[i] = *src
		}
	}
}

// MergeFrom overlays every non-empty value of other onto c.
// A preset change in other rebases c on that preset first.
func (c *ColorScheme) MergeFrom(other ColorScheme) {
	if other.Preset != "" && other.Preset != c.Preset {
		*c = *GetPreset(other.Preset)
	}

	dst := c.fields()
	for i, src := range other.fields() {
		if *src != "" {
			*dst[i] = *src
		}
	}
}
