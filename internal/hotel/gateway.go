package hotel

import (
	"context"
	"time"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

// Gateway is the persistence contract consumed by the front desk.
// The core calls it to durably record every state transition and to
// load the full hotel state at startup; it owns no queries of its
// own.  Implementations must be synchronous: when a method returns,
// the change is durable or the error explains why it is not.
//
// Uniqueness violations must be reported by wrapping ErrDuplicateKey
// so the core can surface them as such rather than as opaque storage
// failures.  Connection handling, timeouts and retries are entirely
// the implementation's concern.
type Gateway interface {
	// LoadAll returns the full current state.  Reservation records
	// must have their Customer and Room references resolved against
	// the returned collections by business key.
	LoadAll(ctx context.Context) ([]*model.Room, []*model.Customer, []*model.Reservation, error)

	// InsertRoom persists a newly created room.
	InsertRoom(ctx context.Context, room *model.Room) error

	// InsertCustomer persists a newly registered customer.
	InsertCustomer(ctx context.Context, customer *model.Customer) error

	// InsertReservation persists a newly booked reservation.
	InsertReservation(ctx context.Context, res *model.Reservation) error

	// UpdateRoomAvailability persists an availability flip.
	UpdateRoomAvailability(ctx context.Context, roomNumber int, available bool) error

	// UpdateReservationFlags persists a state-machine transition for
	// the reservation identified by its composite business key.
	UpdateReservationFlags(ctx context.Context, customerName string, roomNumber int, startDate time.Time, checkedIn, checkedOut bool) error
}
