package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

// ReservationRepo provides access to the `reservations` table.
// Reservations are identified by the composite business key
// (customer_name, room_number, start_date); rows are appended at
// booking and only their check-in/check-out flags change afterwards.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// ReservationRecord mirrors the schema of the reservations table.  It
// carries the raw foreign keys; resolving them into *model.Room and
// *model.Customer references is the Store's concern.
type ReservationRecord struct {
	CustomerName string
	RoomNumber   int
	StartDate    time.Time
	EndDate      time.Time
	CheckedIn    bool
	CheckedOut   bool
}

// Insert persists a newly booked reservation.  The flags are written
// explicitly rather than relying on column defaults so the row always
// matches the in-memory state.  A duplicate composite key is reported
// as a wrapped hotel.ErrDuplicateKey.
func (r *ReservationRepo) Insert(ctx context.Context, res *model.Reservation) error {
	const q = `INSERT INTO reservations (customer_name, room_number, start_date, end_date, checked_in, checked_out)
	           VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q,
		res.Customer.Name, res.Room.Number,
		res.StartDate.Format(model.DateLayout), res.EndDate.Format(model.DateLayout),
		res.CheckedIn, res.CheckedOut,
	)
	return wrapDuplicate(err)
}

// UpdateFlags persists a state-machine transition for the reservation
// identified by its composite business key.
func (r *ReservationRepo) UpdateFlags(ctx context.Context, customerName string, roomNumber int, startDate time.Time, checkedIn, checkedOut bool) error {
	const q = `UPDATE reservations SET checked_in = ?, checked_out = ?
	           WHERE customer_name = ? AND room_number = ? AND start_date = ?`
	_, err := r.db.ExecContext(ctx, q, checkedIn, checkedOut,
		customerName, roomNumber, startDate.Format(model.DateLayout))
	return err
}

// List returns all reservation rows ordered by start date, then by
// the rest of the composite key for a deterministic collection order.
func (r *ReservationRepo) List(ctx context.Context) ([]ReservationRecord, error) {
	const q = `SELECT customer_name, room_number, start_date, end_date, checked_in, checked_out
	           FROM reservations ORDER BY start_date, room_number, customer_name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	records := make([]ReservationRecord, 0)
	for rows.Next() {
		var rec ReservationRecord
		if err := rows.Scan(&rec.CustomerName, &rec.RoomNumber, &rec.StartDate, &rec.EndDate, &rec.CheckedIn, &rec.CheckedOut); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return records, nil
}
