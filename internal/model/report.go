package model

// Room status labels used by the occupancy report.  A room is
// CheckedIn while a guest is in it, Reserved when a booking exists
// that has not yet been checked in, and Available otherwise.
const (
	RoomStatusAvailable = "Available"
	RoomStatusReserved  = "Reserved"
	RoomStatusCheckedIn = "CheckedIn"
)

// RoomStatus is a single line of the occupancy report: the room, its
// derived status label and, when a reservation determines the status,
// the name of the associated guest.
//
// Fields:
//  RoomNumber   – the room being reported on.
//  RoomType     – category copied from the room record.
//  Status       – one of the RoomStatus* labels above.
//  CustomerName – guest associated with the status; empty when Available.
type RoomStatus struct {
	RoomNumber   int    `json:"room_number"`
	RoomType     string `json:"room_type"`
	Status       string `json:"status"`
	CustomerName string `json:"customer_name,omitempty"`
}

// Report aggregates the full hotel state into occupancy and revenue
// totals plus a per-room status breakdown.  Reports are derived data:
// generating one never mutates entities or touches storage.
//
// Fields:
//  TotalRooms    – number of rooms known to the hotel.
//  OccupiedRooms – rooms whose Available flag is false.
//  TotalRevenue  – sum of bills for all stays that began (checked in
//                  or already checked out); unrounded.
//  Rooms         – one RoomStatus entry per room, in room order.
type Report struct {
	TotalRooms    int          `json:"total_rooms"`
	OccupiedRooms int          `json:"occupied_rooms"`
	TotalRevenue  float64      `json:"total_revenue"`
	Rooms         []RoomStatus `json:"rooms"`
}
