package store

import "errors"

var (
	// ErrOutOfRange is returned when an index does not refer to a live due entry
	ErrOutOfRange = errors.New("index out of range")

	// ErrInvalidDisposition is returned when a transition names no terminal list
	ErrInvalidDisposition = errors.New("invalid disposition")

	// ErrLeaseHeld is the panic value raised when the store is accessed while
	// another callback still holds the exclusive lease
	ErrLeaseHeld = errors.New("chore store lease already held")
)
