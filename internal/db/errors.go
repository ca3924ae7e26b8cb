package db

import (
	"errors"
	"net/http"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/roomly/booking-backend/internal/pkg/apperror"
)

// ErrStoreNotProvisioned signals that the database schema (or an index the
// query depends on) is missing. This is an operator problem, not a user
// mistake, so it is surfaced distinctly instead of a generic 500.
var ErrStoreNotProvisioned = apperror.New(
	http.StatusServiceUnavailable,
	"store_not_provisioned",
	"database schema is not provisioned; run migrations",
)

// IsNotProvisioned reports whether err is a Postgres "undefined
// table/column/object" error, i.e. the schema the query expects does not
// exist yet.
func IsNotProvisioned(err error) bool {
	var e *pgconn.PgError
	if !errors.As(err, &e) {
		return false
	}
	switch e.Code {
	case pgerrcode.UndefinedTable, pgerrcode.UndefinedColumn, pgerrcode.UndefinedObject:
		return true
	}
	return false
}
