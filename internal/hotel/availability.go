package hotel

import (
	"context"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

// SetAvailability flips a room's availability flag and persists the
// change.  It returns the updated room, or ErrRoomNotFound when the
// number is unknown.  The operation is idempotent: setting a room to
// the state it is already in succeeds without effect.
func (d *Desk) SetAvailability(ctx context.Context, roomNumber int, available bool) (*model.Room, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	room := d.findRoom(roomNumber)
	if room == nil {
		return nil, ErrRoomNotFound
	}
	if err := d.setAvailability(ctx, room, available); err != nil {
		return nil, err
	}
	out := *room
	return &out, nil
}

// setAvailability records the flip through the gateway before
// mutating the in-memory room, so a storage failure leaves state
// untouched.  Persisting an unchanged value is harmless; the
// lifecycle re-affirms unavailability at check-in through this same
// path.  The desk lock must be held.
func (d *Desk) setAvailability(ctx context.Context, room *model.Room, available bool) error {
	if err := d.gw.UpdateRoomAvailability(ctx, room.Number, available); err != nil {
		return persistErr("update room availability", err)
	}
	room.Available = available
	return nil
}
