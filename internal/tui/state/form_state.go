package state

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/chorin/internal/models"
)

// FormState holds the disposition form and the values it writes into.
// The zero Disposition stands for Cancel.
type FormState struct {
	DispositionForm *huh.Form

	// Choice is bound to the form's select field
	Choice models.Disposition

	// Index is the due index captured when the form opened
	Index int

	// Label is the label of the chore the form is about
	Label string
}

// NewFormState creates an empty FormState.
func NewFormState() *FormState {
	return &FormState{}
}

// Clear drops the form and its values.
func (s *FormState) Clear() {
	s.DispositionForm = nil
	s.Choice = 0
	s.Index = 0
	s.Label = ""
}
