package config

// KeyMappings defines all configurable key bindings
type KeyMappings struct {
	// Chores
	ResolveChore  string `yaml:"resolve_chore"`
	CompleteChore string `yaml:"complete_chore"`
	ObviateChore  string `yaml:"obviate_chore"`
	AbrogateChore string `yaml:"abrogate_chore"`

	// Navigation
	PrevChore string `yaml:"prev_chore"`
	NextChore string `yaml:"next_chore"`

	// Other
	ShowHelp string `yaml:"show_help"`
	Quit     string `yaml:"quit"`
}

// DefaultKeyMappings returns the default key mappings
func DefaultKeyMappings() KeyMappings {
	return KeyMappings{
		ResolveChore:  "enter",
		CompleteChore: "c",
		ObviateChore:  "o",
		AbrogateChore: "delete",

		PrevChore: "k",
		NextChore: "j",

		ShowHelp: "?",
		Quit:     "q",
	}
}

// applyDefaults fills in missing key mappings with defaults
func (k *KeyMappings) applyDefaults() {
	defaults := DefaultKeyMappings()

	if k.ResolveChore == "" {
		k.ResolveChore = defaults.ResolveChore
	}
	if k.CompleteChore == "" {
		k.CompleteChore = defaults.CompleteChore
	}
	if k.ObviateChore == "" {
		k.ObviateChore = defaults.ObviateChore
	}
	if k.AbrogateChore == "" {
		k.AbrogateChore = defaults.AbrogateChore
	}
	if k.PrevChore == "" {
		k.PrevChore = defaults.PrevChore
	}
	if k.NextChore == "" {
		k.NextChore = defaults.NextChore
	}
	if k.ShowHelp == "" {
		k.ShowHelp = defaults.ShowHelp
	}
	if k.Quit == "" {
		k.Quit = defaults.Quit
	}
}
