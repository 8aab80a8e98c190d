package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// Open connects to MySQL and verifies the connection.
func Open(user, pass, host, port, name string) (*sql.DB, error) {
	auth := user
	if pass != "" {
		auth = fmt.Sprintf("%s:%s", user, pass)
	}
	// parseTime=true -> DATE/DATETIME -> time.Time | loc=UTC keeps dates consistent
	dsn := fmt.Sprintf("%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=true&loc=UTC",
		auth, host, port, name)

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, err
	}

	// Pool settings
	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(30 * time.Minute)

	// Ping with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate creates the three entity tables when they do not yet exist.
// Rooms and customers are keyed by their business keys; reservations
// use the composite (customer_name, room_number, start_date) key and
// cascade on room or customer deletion so orphaned rows cannot occur.
func Migrate(ctx context.Context, db *sql.DB) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS rooms (
			number INT PRIMARY KEY,
			type VARCHAR(50) NOT NULL,
			price DECIMAL(10,2) NOT NULL,
			available BOOLEAN NOT NULL DEFAULT TRUE
		)`,
		`CREATE TABLE IF NOT EXISTS customers (
			name VARCHAR(100) PRIMARY KEY,
			contact_info VARCHAR(255) NOT NULL,
			payment_method VARCHAR(50) NOT NULL
		)`,
		`CREATE TABLE IF NOT EXISTS reservations (
			customer_name VARCHAR(100) NOT NULL,
			room_number INT NOT NULL,
			start_date DATE NOT NULL,
			end_date DATE NOT NULL,
			checked_in BOOLEAN NOT NULL DEFAULT FALSE,
			checked_out BOOLEAN NOT NULL DEFAULT FALSE,
			PRIMARY KEY (customer_name, room_number, start_date),
			FOREIGN KEY (customer_name) REFERENCES customers(name) ON DELETE CASCADE,
			FOREIGN KEY (room_number) REFERENCES rooms(number) ON DELETE CASCADE
		)`,
	}
	for _, stmt := range stmts {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}
