// Package store owns the chore lists for one profile and the handle through
// which UI callbacks share them.
package store

import (
	"fmt"
	"iter"
	"slices"

	"github.com/thenoetrevino/chorin/internal/models"
)

// ChoreStore is the single source of truth for one profile's chores.
// Every chore lives in exactly one of the four lists, and chores are only ever
// moved out of due, never deleted.
type ChoreStore struct {
	name string

	// due is user-visible; its order drives index-based selection
	due []models.Chore

	completed []models.Chore
	obviated  []models.Chore
	abrogated []models.Chore
}

// Counts holds the length of each list
type Counts struct {
	Due       int `json:"due"`
	Completed int `json:"completed"`
	Obviated  int `json:"obviated"`
	Abrogated int `json:"abrogated"`
}

// Total returns the number of chores across all four lists
func (c Counts) Total() int {
	return c.Due + c.Completed + c.Obviated + c.Abrogated
}

// New creates a store for the named profile with the given chores due, in order.
func New(name string, due ...models.Chore) *ChoreStore {
	return &ChoreStore{
		name: name,
		due:  slices.Clone(due),
	}
}

// ProfileName returns the display name of the profile
func (s *ChoreStore) ProfileName() string {
	return s.name
}

// ListDue yields (index, label) pairs for the due list.
// Each range over the sequence reads the list afresh; indices are only valid
// until the next transition.
func (s *ChoreStore) ListDue() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		for i, c := range s.due {
			if !yield(i, c.Label()) {
				return
			}
		}
	}
}

// TransitionDue removes the chore at index from due and appends it to the
// list named by d. The remaining due chores keep their relative order.
// On error the store is left untouched.
func (s *ChoreStore) TransitionDue(index int, d models.Disposition) (models.Chore, error) {
	if index < 0 || index >= len(s.due) {
		return models.Chore{}, fmt.Errorf("%w: index %d, %d due", ErrOutOfRange, index, len(s.due))
	}

	dest := s.terminal(d)
	if dest == nil {
		return models.Chore{}, fmt.Errorf("%w: %d", ErrInvalidDisposition, int(d))
	}

	chore := s.due[index]
	s.due = slices.Delete(s.due, index, index+1)
	*dest = append(*dest, chore)

	return chore, nil
}

// terminal returns the list for d, or nil for an invalid disposition
func (s *ChoreStore) terminal(d models.Disposition) *[]models.Chore {
	switch d {
	case models.Completed:
		return &s.completed
	case models.Obviated:
		return &s.obviated
	case models.Abrogated:
		return &s.abrogated
	default:
		return nil
	}
}

// Due returns a copy of the due list
func (s *ChoreStore) Due() []models.Chore {
	return slices.Clone(s.due)
}

// DueAt returns the due chore at index
func (s *ChoreStore) DueAt(index int) (models.Chore, error) {
	if index < 0 || index >= len(s.due) {
		return models.Chore{}, fmt.Errorf("%w: index %d, %d due", ErrOutOfRange, index, len(s.due))
	}
	return s.due[index], nil
}

// Resolved returns a copy of the terminal list for d.
// An invalid disposition yields nil.
func (s *ChoreStore) Resolved(d models.Disposition) []models.Chore {
	list := s.terminal(d)
	if list == nil {
		return nil
	}
	return slices.Clone(*list)
}

// Counts returns the current length of each list
func (s *ChoreStore) Counts() Counts {
	return Counts{
		Due:       len(s.due),
		Completed: len(s.completed),
		Obviated:  len(s.obviated),
		Abrogated: len(s.abrogated),
	}
}

// Total returns the number of chores the profile has ever had
func (s *ChoreStore) Total() int {
	return s.Counts().Total()
}
