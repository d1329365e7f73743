package hotel

import (
	"errors"
	"fmt"
)

// Mutation errors. All are recoverable: the shell reports them and returns
// to the menu.
var (
	ErrDuplicateID      = errors.New("id already in use")
	ErrUnknownReference = errors.New("referenced entity does not exist")
	ErrInvalidDateRange = errors.New("check-out must be after check-in")
	ErrNotFound         = errors.New("entity not found")
)

// ErrNoMatches reports that an aggregate query matched no bookings, so there
// is no value to average.
var ErrNoMatches = errors.New("no bookings match the filter")

// ConflictError blocks removal of a client or room that bookings still
// reference. Bookings is the exact count of referencing bookings.
type ConflictError struct {
	Entity   string // "client" or "room"
	ID       int
	Bookings int
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("%s %d is referenced by %d booking(s)", e.Entity, e.ID, e.Bookings)
}
