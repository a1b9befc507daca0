package models

import "errors"

// Chore validation errors
var (
	ErrEmptyTitle      = errors.New("chore title cannot be empty")
	ErrNegativeCost    = errors.New("chore cost cannot be negative")
	ErrInvalidPriority = errors.New("invalid priority: must be low, mid or high")
)
