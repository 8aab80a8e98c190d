package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

// Store composes the three entity repositories into the persistence
// gateway consumed by the front-desk core.  It satisfies
// hotel.Gateway.
type Store struct {
	Rooms        *RoomRepo
	Customers    *CustomerRepo
	Reservations *ReservationRepo
}

// NewStore builds a Store with repositories bound to the given database.
func NewStore(db *sql.DB) *Store {
	return &Store{
		Rooms:        NewRoomRepo(db),
		Customers:    NewCustomerRepo(db),
		Reservations: NewReservationRepo(db),
	}
}

// LoadAll reads the full hotel state.  Reservation rows reference
// rooms and customers by business key; LoadAll resolves those keys
// against the loaded collections so every reservation shares the same
// room and customer values the top-level collections hold.  A
// dangling key means the schema's foreign keys were bypassed, and is
// reported as an error rather than silently dropped.
func (s *Store) LoadAll(ctx context.Context) ([]*model.Room, []*model.Customer, []*model.Reservation, error) {
	rooms, err := s.Rooms.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load rooms: %w", err)
	}
	customers, err := s.Customers.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load customers: %w", err)
	}
	records, err := s.Reservations.List(ctx)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load reservations: %w", err)
	}

	roomsByNumber := make(map[int]*model.Room, len(rooms))
	for _, r := range rooms {
		roomsByNumber[r.Number] = r
	}
	customersByName := make(map[string]*model.Customer, len(customers))
	for _, c := range customers {
		customersByName[c.Name] = c
	}

	reservations := make([]*model.Reservation, 0, len(records))
	for _, rec := range records {
		room, ok := roomsByNumber[rec.RoomNumber]
		if !ok {
			return nil, nil, nil, fmt.Errorf("reservation references unknown room %d", rec.RoomNumber)
		}
		customer, ok := customersByName[rec.CustomerName]
		if !ok {
			return nil, nil, nil, fmt.Errorf("reservation references unknown customer %q", rec.CustomerName)
		}
		reservations = append(reservations, &model.Reservation{
			Customer:   customer,
			Room:       room,
			StartDate:  rec.StartDate,
			EndDate:    rec.EndDate,
			CheckedIn:  rec.CheckedIn,
			CheckedOut: rec.CheckedOut,
		})
	}
	return rooms, customers, reservations, nil
}

// InsertRoom persists a newly created room.
func (s *Store) InsertRoom(ctx context.Context, room *model.Room) error {
	return s.Rooms.Insert(ctx, room)
}

// InsertCustomer persists a newly registered customer.
func (s *Store) InsertCustomer(ctx context.Context, customer *model.Customer) error {
	return s.Customers.Insert(ctx, customer)
}

// InsertReservation persists a newly booked reservation.
func (s *Store) InsertReservation(ctx context.Context, res *model.Reservation) error {
	return s.Reservations.Insert(ctx, res)
}

// UpdateRoomAvailability persists an availability flip.
func (s *Store) UpdateRoomAvailability(ctx context.Context, roomNumber int, available bool) error {
	return s.Rooms.UpdateAvailability(ctx, roomNumber, available)
}

// UpdateReservationFlags persists a reservation state transition.
func (s *Store) UpdateReservationFlags(ctx context.Context, customerName string, roomNumber int, startDate time.Time, checkedIn, checkedOut bool) error {
	return s.Reservations.UpdateFlags(ctx, customerName, roomNumber, startDate, checkedIn, checkedOut)
}
