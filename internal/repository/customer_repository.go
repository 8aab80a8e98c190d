package repository

import (
	"context"
	"database/sql"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/model"
)

// CustomerRepo provides access to the `customers` table.  Customers
// are immutable after creation, so there is no update method.
type CustomerRepo struct {
	db *sql.DB
}

// NewCustomerRepo returns a new CustomerRepo bound to the given database.
func NewCustomerRepo(db *sql.DB) *CustomerRepo { return &CustomerRepo{db: db} }

// Insert persists a newly registered customer.  A duplicate name is
// reported as a wrapped hotel.ErrDuplicateKey.
func (r *CustomerRepo) Insert(ctx context.Context, customer *model.Customer) error {
	const q = `INSERT INTO customers (name, contact_info, payment_method) VALUES (?, ?, ?)`
	_, err := r.db.ExecContext(ctx, q, customer.Name, customer.ContactInfo, customer.PaymentMethod)
	return wrapDuplicate(err)
}

// List returns all customers ordered by name.
func (r *CustomerRepo) List(ctx context.Context) ([]*model.Customer, error) {
	const q = `SELECT name, contact_info, payment_method FROM customers ORDER BY name`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	customers := make([]*model.Customer, 0)
	for rows.Next() {
		var c model.Customer
		if err := rows.Scan(&c.Name, &c.ContactInfo, &c.PaymentMethod); err != nil {
			return nil, err
		}
		customers = append(customers, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}
