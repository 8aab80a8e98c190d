package hotel

import (
	"context"
	"time"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

// Book creates a reservation for an existing customer in an existing,
// available room.  The room is taken out of service at booking time,
// not at check-in, so a second booking against it fails with
// ErrRoomUnavailable until the first stay checks out.  Dates are
// whole days and the end date must be strictly after the start date.
// A reservation with the same (customer, room, start date) business
// key is rejected with ErrDuplicateKey.
func (d *Desk) Book(ctx context.Context, customerName string, roomNumber int, startDate, endDate time.Time) (*model.Reservation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	customer := d.findCustomer(customerName)
	if customer == nil {
		return nil, ErrCustomerNotFound
	}
	room := d.findRoom(roomNumber)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	startDate = truncateDay(startDate)
	endDate = truncateDay(endDate)
	if !endDate.After(startDate) {
		return nil, ErrInvalidDateRange
	}
	if d.hasReservationKey(customerName, roomNumber, startDate.Format(model.DateLayout)) {
		return nil, ErrDuplicateKey
	}
	if !room.Available {
		return nil, ErrRoomUnavailable
	}

	res := &model.Reservation{
		Customer:  customer,
		Room:      room,
		StartDate: startDate,
		EndDate:   endDate,
	}
	if err := d.gw.InsertReservation(ctx, res); err != nil {
		return nil, persistErr("insert reservation", err)
	}
	if err := d.setAvailability(ctx, room, false); err != nil {
		return nil, err
	}
	d.reservations = append(d.reservations, res)
	return snapshot(res), nil
}

// CheckIn transitions a booked reservation to checked-in.  It finds
// the earliest reservation for the customer and room that has been
// booked but not yet checked in; when none exists it fails with
// ErrReservationNotFound.  The room's unavailability is re-affirmed,
// which is a no-op when booking already cleared the flag.
func (d *Desk) CheckIn(ctx context.Context, customerName string, roomNumber int) (*model.Reservation, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := d.findReservation(customerName, roomNumber, false)
	if res == nil {
		return nil, ErrReservationNotFound
	}
	if err := d.gw.UpdateReservationFlags(ctx, customerName, roomNumber, res.StartDate, true, false); err != nil {
		return nil, persistErr("update reservation flags", err)
	}
	res.CheckedIn = true
	if err := d.setAvailability(ctx, res.Room, false); err != nil {
		return nil, err
	}
	return snapshot(res), nil
}

// CheckOut ends a checked-in stay.  It finds the earliest checked-in
// reservation for the customer and room; when none exists it fails
// with ErrNotCheckedIn and mutates nothing.  On success the
// reservation becomes terminal (checked out, no longer checked in),
// the room is released, and the bill for the stay is returned
// alongside the updated reservation.
func (d *Desk) CheckOut(ctx context.Context, customerName string, roomNumber int) (*model.Reservation, float64, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	res := d.findReservation(customerName, roomNumber, true)
	if res == nil {
		return nil, 0, ErrNotCheckedIn
	}
	bill := Bill(res)
	if err := d.gw.UpdateReservationFlags(ctx, customerName, roomNumber, res.StartDate, false, true); err != nil {
		return nil, 0, persistErr("update reservation flags", err)
	}
	res.CheckedIn = false
	res.CheckedOut = true
	if err := d.setAvailability(ctx, res.Room, true); err != nil {
		return nil, 0, err
	}
	return snapshot(res), bill, nil
}

// truncateDay normalises a timestamp to midnight UTC, the granularity
// the whole system works at.
func truncateDay(t time.Time) time.Time {
	y, m, day := t.UTC().Date()
	return time.Date(y, m, day, 0, 0, 0, 0, time.UTC)
}

// snapshot returns a copy of the reservation with its room and
// customer references also copied, safe to hand to callers after the
// desk lock is released.
func snapshot(res *model.Reservation) *model.Reservation {
	cp := *res
	if res.Room != nil {
		room := *res.Room
		cp.Room = &room
	}
	if res.Customer != nil {
		customer := *res.Customer
		cp.Customer = &customer
	}
	return &cp
}
