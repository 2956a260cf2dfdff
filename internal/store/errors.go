package store

import (
	"errors"
)

var (
	// ErrNotFound is returned when no record exists for the given id.
	ErrNotFound = errors.New("record not found")

	// ErrGiftClaimed is returned when deleting a gift that is currently claimed.
	ErrGiftClaimed = errors.New("gift is claimed")

	// ErrAlreadyClaimed is returned when claiming a gift that a concurrent or earlier claim already took.
	ErrAlreadyClaimed = errors.New("gift already claimed")
)
