package hotel

import (
	"context"
	"sync"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

// Desk is the state container for the hotel core.  It owns the three
// entity collections and the Gateway used to persist changes.  Every
// operation runs under a single mutex covering the full
// read-validate-mutate-persist unit, so the availability invariant
// holds even when the desk is shared between concurrent HTTP
// requests.
//
// Collections keep insertion order; lookups that could match more
// than one reservation deterministically pick the earliest-created
// entry, and duplicate business keys are rejected at booking time so
// the case cannot arise through the desk itself.
type Desk struct {
	mu           sync.Mutex
	rooms        []*model.Room
	customers    []*model.Customer
	reservations []*model.Reservation
	gw           Gateway
}

// NewDesk returns an empty Desk bound to the given Gateway.
func NewDesk(gw Gateway) *Desk {
	if gw == nil {
		panic("nil gateway passed to NewDesk")
	}
	return &Desk{gw: gw}
}

// Load replaces the in-memory collections with the full state read
// from the Gateway.  It is called once at startup, before the desk
// is exposed to callers.
func (d *Desk) Load(ctx context.Context) error {
	rooms, customers, reservations, err := d.gw.LoadAll(ctx)
	if err != nil {
		return persistErr("load all", err)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rooms = rooms
	d.customers = customers
	d.reservations = reservations
	return nil
}

// AddRoom creates a new room, persists it and adds it to the room
// collection.  New rooms always start available.  A room number that
// already exists is rejected with ErrDuplicateKey before touching
// storage.
func (d *Desk) AddRoom(ctx context.Context, number int, roomType string, price float64) (*model.Room, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.findRoom(number) != nil {
		return nil, ErrDuplicateKey
	}
	room := &model.Room{Number: number, Type: roomType, Price: price, Available: true}
	if err := d.gw.InsertRoom(ctx, room); err != nil {
		return nil, persistErr("insert room", err)
	}
	d.rooms = append(d.rooms, room)
	out := *room
	return &out, nil
}

// AddCustomer registers a new customer.  Customer names are business
// keys, so a duplicate name is rejected with ErrDuplicateKey.
func (d *Desk) AddCustomer(ctx context.Context, name, contactInfo, paymentMethod string) (*model.Customer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.findCustomer(name) != nil {
		return nil, ErrDuplicateKey
	}
	customer := &model.Customer{Name: name, ContactInfo: contactInfo, PaymentMethod: paymentMethod}
	if err := d.gw.InsertCustomer(ctx, customer); err != nil {
		return nil, persistErr("insert customer", err)
	}
	d.customers = append(d.customers, customer)
	out := *customer
	return &out, nil
}

// Rooms returns a snapshot copy of the room collection.
func (d *Desk) Rooms() []model.Room {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]model.Room, 0, len(d.rooms))
	for _, r := range d.rooms {
		out = append(out, *r)
	}
	return out
}

// Customers returns a snapshot copy of the customer collection.
func (d *Desk) Customers() []model.Customer {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]model.Customer, 0, len(d.customers))
	for _, c := range d.customers {
		out = append(out, *c)
	}
	return out
}

// Reservations returns a snapshot copy of the reservation collection.
// Room and customer references in the snapshot point at copies, so
// callers can serialise them without holding the desk lock.
func (d *Desk) Reservations() []model.Reservation {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]model.Reservation, 0, len(d.reservations))
	for _, res := range d.reservations {
		cp := *res
		if res.Room != nil {
			room := *res.Room
			cp.Room = &room
		}
		if res.Customer != nil {
			customer := *res.Customer
			cp.Customer = &customer
		}
		out = append(out, cp)
	}
	return out
}

// findRoom returns the room with the given number, or nil.  The desk
// lock must be held.
func (d *Desk) findRoom(number int) *model.Room {
	for _, r := range d.rooms {
		if r.Number == number {
			return r
		}
	}
	return nil
}

// findCustomer returns the customer with the given name, or nil.
// Names are compared case-sensitively; they are exact business keys.
// The desk lock must be held.
func (d *Desk) findCustomer(name string) *model.Customer {
	for _, c := range d.customers {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// findReservation returns the earliest-created reservation matching
// the customer name, room number and the given flag state, or nil.
// The desk lock must be held.
func (d *Desk) findReservation(customerName string, roomNumber int, checkedIn bool) *model.Reservation {
	for _, res := range d.reservations {
		if res.Customer == nil || res.Room == nil {
			continue
		}
		if res.Customer.Name != customerName || res.Room.Number != roomNumber {
			continue
		}
		if res.CheckedIn == checkedIn && res.Active() {
			return res
		}
	}
	return nil
}

// hasReservationKey reports whether a reservation with the composite
// business key (customer name, room number, start date) already
// exists.  The desk lock must be held.
func (d *Desk) hasReservationKey(customerName string, roomNumber int, startDate string) bool {
	for _, res := range d.reservations {
		if res.Customer == nil || res.Room == nil {
			continue
		}
		if res.Customer.Name == customerName && res.Room.Number == roomNumber &&
			res.StartDate.Format(model.DateLayout) == startDate {
			return true
		}
	}
	return false
}
