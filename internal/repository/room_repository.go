package repository

import (
	"context"
	"database/sql"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

// RoomRepo provides access to the `rooms` table.  Rooms are keyed by
// their number and are never deleted in normal operation, so the
// repository exposes only insert, availability update and listing.
type RoomRepo struct {
	db *sql.DB
}

// NewRoomRepo returns a new RoomRepo bound to the given database.
func NewRoomRepo(db *sql.DB) *RoomRepo { return &RoomRepo{db: db} }

// Insert persists a newly created room.  A duplicate room number is
// reported as a wrapped hotel.ErrDuplicateKey.
func (r *RoomRepo) Insert(ctx context.Context, room *model.Room) error {
	const q = `INSERT INTO rooms (number, type, price, available) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, room.Number, room.Type, room.Price, room.Available)
	return wrapDuplicate(err)
}

// UpdateAvailability persists an availability flip for the room with
// the given number.  Updating a missing room is not an error at this
// layer; the core validates existence before calling.
func (r *RoomRepo) UpdateAvailability(ctx context.Context, roomNumber int, available bool) error {
	const q = `UPDATE rooms SET available = ? WHERE number = ?`
	_, err := r.db.ExecContext(ctx, q, available, roomNumber)
	return err
}

// List returns all rooms ordered by room number.
func (r *RoomRepo) List(ctx context.Context) ([]*model.Room, error) {
	const q = `SELECT number, type, price, available FROM rooms ORDER BY number`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	rooms := make([]*model.Room, 0)
	for rows.Next() {
		var room model.Room
		if err := rows.Scan(&room.Number, &room.Type, &room.Price, &room.Available); err != nil {
			return nil, err
		}
		rooms = append(rooms, &room)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return rooms, nil
}
