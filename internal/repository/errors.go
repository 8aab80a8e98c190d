// Package repository implements the persistence gateway over MySQL.
// Each entity table gets its own repository bound to a shared
// *sql.DB; Store composes them into the hotel.Gateway consumed by
// the front-desk core.  All queries are parameterized — values never
// reach the query text by interpolation.
package repository

import (
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"github.com/AbdelrahmanAmrSobh/HotelSystem/internal/hotel"
)

// mysqlDuplicateEntry is the MySQL error number raised when an insert
// violates a primary or unique key (ER_DUP_ENTRY).
const mysqlDuplicateEntry = 1062

// wrapDuplicate translates a driver-level duplicate-entry error into
// the core's ErrDuplicateKey sentinel, preserving the driver error as
// the wrapped cause.  Any other error is returned unchanged.
func wrapDuplicate(err error) error {
	var me *mysql.MySQLError
	if errors.As(err, &me) && me.Number == mysqlDuplicateEntry {
		return fmt.Errorf("%w: %v", hotel.ErrDuplicateKey, err)
	}
	return err
}
