package huhforms

import (
	"charm.land/huh/v2"
	"github.com/thenoetrevino/chorin/internal/models"
)

// CancelLabel is the option that leaves the chore due.
const CancelLabel = "Cancel"

// DispositionOptions returns the four choices offered for a due chore.
// Cancel carries the zero Disposition, which is not valid and resolves nothing.
func DispositionOptions() []huh.Option[models.Disposition] {
	opts := make([]huh.Option[models.Disposition], 0, len(models.Dispositions)+1)
	for _, d := range models.Dispositions {
		opts = append(opts, huh.NewOption(d.Verb(), d))
	}
	return append(opts, huh.NewOption(CancelLabel, models.Disposition(0)))
}

// CreateDispositionForm creates a huh form asking what to do with one chore.
// The form holds a single select; choosing an option completes the form and
// writes the choice through the pointer.
func CreateDispositionForm(label string, choice *models.Disposition) *huh.Form {
	fields := []huh.Field{
		huh.NewSelect[models.Disposition]().
			Key("disposition").
			Title("What should be done with " + label + "?").
			Options(DispositionOptions()...).
			Value(choice),
	}

	return huh.NewForm(huh.NewGroup(fields...)).WithShowHelp(false)
}
