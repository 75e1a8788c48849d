package bitset

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptySet is the cause for queries that require a non-empty set.
	ErrEmptySet = errors.New("set is empty")
	// ErrInvalidCursor is the cause for advancing a cursor that is not valid.
	ErrInvalidCursor = errors.New("cursor is not valid")
	// ErrBadLength is the cause for a memory buffer shorter than the bit count.
	ErrBadLength = errors.New("buffer too short")
)

// ContractError is the panic value for programmer contract violations.
//
// The underlying cause can be accessed via errors.Unwrap.
type ContractError struct {
	Op  string
	Err error
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("bitvec: %s: %v", e.Op, e.Err)
}

func (e *ContractError) Unwrap() error { return e.Err }

// Violation panics with a *ContractError.
func Violation(op string, err error) {
	panic(&ContractError{Op: op, Err: err})
}

// CheckLength panics with ErrBadLength if a buffer of n words cannot hold
// numBits bits.
func CheckLength(op string, n, numBits int) {
	if n*32 < numBits {
		Violation(op, fmt.Errorf("%w: %d words for %d bits", ErrBadLength, n, numBits))
	}
}
