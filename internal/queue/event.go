// Package queue defines message payloads exchanged over the message
// broker and the background consumer that turns them into an audit
// log.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

// Stay event kinds.  One event is published for each reservation
// state transition.
const (
	StayBooked     = "booked"
	StayCheckedIn  = "checked_in"
	StayCheckedOut = "checked_out"
)

// StayEvent is published whenever a reservation changes state.  It
// carries enough information for downstream consumers to log or
// notify without querying the primary database.  The bill is only
// set on check-out events.
type StayEvent struct {
	EventID      string  `json:"event_id"`
	Kind         string  `json:"kind"`
	CustomerName string  `json:"customer_name"`
	RoomNumber   int     `json:"room_number"`
	RoomType     string  `json:"room_type"`
	StartDate    string  `json:"start_date"`
	EndDate      string  `json:"end_date"`
	Bill         float64 `json:"bill,omitempty"`
	OccurredAt   string  `json:"occurred_at"`
}

// NewStayEvent builds a StayEvent for the given transition, stamping
// a fresh event ID and the current time.
func NewStayEvent(kind string, res *model.Reservation, bill float64) StayEvent {
	return StayEvent{
		EventID:      uuid.NewString(),
		Kind:         kind,
		CustomerName: res.Customer.Name,
		RoomNumber:   res.Room.Number,
		RoomType:     res.Room.Type,
		StartDate:    res.StartDate.Format(model.DateLayout),
		EndDate:      res.EndDate.Format(model.DateLayout),
		Bill:         bill,
		OccurredAt:   time.Now().UTC().Format(time.RFC3339),
	}
}
