package ecotrack

import "errors"

var (
	// ErrInvalid is returned when a mutation input misses a required field or
	// carries a value out of range. The state is left unchanged.
	ErrInvalid = errors.New("invalid input")
	// ErrNotFound is returned when a mutation targets an id that does not exist.
	ErrNotFound = errors.New("not found")
	// ErrRestockNeeded is returned when selling from a listing with no stock left.
	ErrRestockNeeded = errors.New("restock needed")
	// ErrInsufficientInput is returned by the risk calculator when the gear
	// cost does not allow computing a ratio.
	ErrInsufficientInput = errors.New("insufficient input")
)
