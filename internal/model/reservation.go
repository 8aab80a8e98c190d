package model

import "time"

// DateLayout is the wire and storage format for reservation dates.
// The system works at whole-day granularity, so only the calendar
// date is kept; times are normalised to midnight UTC.
const DateLayout = "2006-01-02"

// Reservation records a guest's stay in a room, from booking through
// check-in to check-out.  It corresponds to a row in the
// `reservations` table.  The composite business key is
// (customer name, room number, start date) and is unique.
//
// Customer and Room are non-owning references resolved by business
// key when state is loaded; they are shared with the top-level room
// and customer collections.
//
// Fields:
//  Customer   – the guest holding the reservation.
//  Room       – the room reserved for the stay.
//  StartDate  – first night of the stay (inclusive).
//  EndDate    – day of departure; strictly after StartDate.
//  CheckedIn  – true while the guest is physically in the room.
//  CheckedOut – true once the stay has ended; terminal.
type Reservation struct {
	Customer   *Customer `json:"customer"`    // reservations.customer_name
	Room       *Room     `json:"room"`        // reservations.room_number
	StartDate  time.Time `json:"start_date"`  // reservations.start_date
	EndDate    time.Time `json:"end_date"`    // reservations.end_date
	CheckedIn  bool      `json:"checked_in"`  // reservations.checked_in
	CheckedOut bool      `json:"checked_out"` // reservations.checked_out
}

// Nights returns the whole-day duration of the stay.  Booking
// validation guarantees EndDate > StartDate, so the result is at
// least 1 for any reservation created through the front desk.
func (r *Reservation) Nights() int {
	return int(r.EndDate.Sub(r.StartDate).Hours() / 24)
}

// Active reports whether the reservation still holds its room, i.e.
// it has been booked and the guest has not yet checked out.
func (r *Reservation) Active() bool {
	return !r.CheckedOut
}
