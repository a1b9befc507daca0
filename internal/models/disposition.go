package models

// Disposition is the terminal classification a due chore receives.
type Disposition int

const (
	Completed Disposition = iota + 1
	Obviated
	Abrogated
)

// Dispositions lists every disposition in menu order
var Dispositions = []Disposition{Completed, Obviated, Abrogated}

// String returns the name of the list a chore with this disposition lives in
func (d Disposition) String() string {
	switch d {
	case Completed:
		return "completed"
	case Obviated:
		return "obviated"
	case Abrogated:
		return "abrogated"
	default:
		return "unknown"
	}
}

// Verb returns the imperative used on buttons and confirmation prompts
func (d Disposition) Verb() string {
	switch d {
	case Completed:
		return "Complete"
	case Obviated:
		return "Obviate"
	case Abrogated:
		return "Abrogate"
	default:
		return ""
	}
}

// Valid reports whether d is one of the three terminal dispositions
func (d Disposition) Valid() bool {
	return d >= Completed && d <= Abrogated
}
