package state

import "github.com/thenoetrevino/chorin/internal/models"

// ConfirmState holds the pending quick disposition while the [y]es [n]o box is open.
// The index is captured when the box opens; nothing touches the store until
// the user answers yes.
type ConfirmState struct {
	index       int
	disposition models.Disposition
	label       string
	open        bool
}

// NewConfirmState creates a closed confirmation.
func NewConfirmState() *ConfirmState {
	return &ConfirmState{}
}

// Open records what will be resolved if the user confirms.
func (s *ConfirmState) Open(index int, d models.Disposition, label string) {
	s.index = index
	s.disposition = d
	s.label = label
	s.open = true
}

// IsOpen reports whether a confirmation is pending.
func (s *ConfirmState) IsOpen() bool {
	return s.open
}

// Index returns the due index captured when the box opened.
func (s *ConfirmState) Index() int {
	return s.index
}

// Disposition returns the pending disposition.
func (s *ConfirmState) Disposition() models.Disposition {
	return s.disposition
}

// Label returns the label of the chore being resolved.
func (s *ConfirmState) Label() string {
	return s.label
}

// Reset closes the confirmation.
func (s *ConfirmState) Reset() {
	*s = ConfirmState{}
}
