package store

import "github.com/thenoetrevino/chorin/internal/models"

// SeedProfileName is the profile every run starts with
const SeedProfileName = "Username"

// Seed builds the startup fixture: one profile with three chores due
func Seed() *ChoreStore {
	return New(SeedProfileName,
		mustChore("Chore 1", 5, models.PriorityHigh),
		mustChore("Chore 2", 3, models.PriorityMid),
		mustChore("Chore 3", 1, models.PriorityLow),
	)
}

func mustChore(title string, cost int, priority models.Priority) models.Chore {
	c, err := models.NewChore(title, cost, priority)
	if err != nil {
		panic(err)
	}
	return c
}
