// Package repository implements the persistence access layer: one
// repository per resource issuing parameterized SQL against the shared
// connection pool.  Driver-level failures are translated here into a small
// error taxonomy so handlers never inspect MySQL error codes themselves.
package repository

import (
	"database/sql"
	"errors"

	"github.com/go-sql-driver/mysql"
)

// ErrNotFound is returned when a lookup matches no row or an update/delete
// affects none.  Handlers translate it into HTTP 404.
var ErrNotFound = errors.New("registro no encontrado")

// ErrDuplicate is returned on unique-constraint violations.  Handlers
// translate it into HTTP 409 with a "duplicate" message.
var ErrDuplicate = errors.New("registro duplicado")

// ErrInvalidReference is returned on foreign-key violations, e.g. creating
// a reservation for a mass type that does not exist.
var ErrInvalidReference = errors.New("referencia inválida")

// ErrMissingField is returned when a NOT NULL column is left unset.
var ErrMissingField = errors.New("campo obligatorio ausente")

// translate maps a driver error onto the repository taxonomy.  Unknown
// errors pass through unchanged and end up as HTTP 500.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case 1062: // ER_DUP_ENTRY
			return ErrDuplicate
		case 1451, 1452: // ER_ROW_IS_REFERENCED_2, ER_NO_REFERENCED_ROW_2
			return ErrInvalidReference
		case 1048, 1364: // ER_BAD_NULL_ERROR, ER_NO_DEFAULT_FOR_FIELD
			return ErrMissingField
		}
	}
	return err
}
