// Package hotel implements the front-desk core: the reservation state
// machine, room availability management, billing and reporting.  All
// state lives in a Desk value; persistence is delegated to a Gateway
// so the core never talks to storage directly.  These sentinel values
// let callers such as HTTP handlers distinguish failure scenarios
// with errors.Is and translate them into appropriate responses.
package hotel

import (
	"errors"
	"fmt"
)

// ErrRoomNotFound is returned when an operation references a room
// number that the hotel does not know about.
var ErrRoomNotFound = errors.New("room not found")

// ErrCustomerNotFound is returned when an operation references a
// customer name that has not been registered.
var ErrCustomerNotFound = errors.New("customer not found")

// ErrInvalidDateRange is returned when a booking's end date is not
// strictly after its start date.  Stays are billed per whole night,
// so every reservation must span at least one.
var ErrInvalidDateRange = errors.New("end date must be after start date")

// ErrRoomUnavailable is returned when a booking targets a room that
// already has an active reservation.
var ErrRoomUnavailable = errors.New("room unavailable")

// ErrReservationNotFound is returned by check-in when no booked,
// not-yet-checked-in reservation matches the customer and room.
var ErrReservationNotFound = errors.New("reservation not found")

// ErrNotCheckedIn is returned by check-out when no checked-in
// reservation matches the customer and room.  Check-out always
// requires a preceding check-in.
var ErrNotCheckedIn = errors.New("reservation not checked in")

// ErrDuplicateKey signals a uniqueness violation on a business key:
// a room number, customer name or reservation identity that already
// exists.  Gateway implementations must wrap their storage-specific
// duplicate errors in this sentinel so the core and its callers can
// detect them with errors.Is.
var ErrDuplicateKey = errors.New("duplicate key")

// PersistenceError wraps a failure reported by the Gateway while
// recording a state change.  The core never retries; the wrapped
// cause is preserved for errors.Is / errors.As inspection.
type PersistenceError struct {
	Op  string // the gateway operation that failed
	Err error  // underlying cause
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persistence: %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// persistErr wraps err unless it is a contract error the caller is
// expected to match directly, such as ErrDuplicateKey.
func persistErr(op string, err error) error {
	if errors.Is(err, ErrDuplicateKey) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}
