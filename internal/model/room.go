package model

// Room represents a single hotel room as stored in the `rooms` table.
// Rooms are identified by their room number, which doubles as the
// primary key.  The Available flag is owned by the availability
// manager: it is false exactly while a reservation on the room has
// been booked and not yet checked out.
//
// Fields:
//  Number    – room number, the business key (rooms.number).
//  Type      – free-text category such as Single, Double or Suite.
//  Price     – nightly rate; non-negative decimal.
//  Available – whether the room can accept a new booking.
type Room struct {
	Number    int     `json:"number"`    // rooms.number
	Type      string  `json:"type"`      // rooms.type
	Price     float64 `json:"price"`     // rooms.price
	Available bool    `json:"available"` // rooms.available
}
