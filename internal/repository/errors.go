package repository

import (
	"context"
	"database/sql/driver"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrNotFound: el id no existe o la operación no afectó filas.
var ErrNotFound = errors.New("record not found")

// ErrUnavailable: la base de datos no respondió a tiempo o perdió la conexión.
var ErrUnavailable = errors.New("storage unavailable")

type ConstraintKind string

const (
	KindDuplicate  ConstraintKind = "duplicate"
	KindForeignKey ConstraintKind = "foreign_key"
)

// ConstraintError es una violación de restricción ya clasificada, para que
// los handlers nunca miren el error crudo del driver.
type ConstraintError struct {
	Entity string
	Kind   ConstraintKind
	Err    error
}

func (e *ConstraintError) Error() string {
	return fmt.Sprintf("%s: %s constraint violated: %v", e.Entity, e.Kind, e.Err)
}

func (e *ConstraintError) Unwrap() error { return e.Err }

// IsDuplicate reporta si err es una violación de unicidad.
func IsDuplicate(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Kind == KindDuplicate
}

// IsForeignKey reporta si err es una referencia inexistente.
func IsForeignKey(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce) && ce.Kind == KindForeignKey
}

// mysql: 1062 ER_DUP_ENTRY, 1452 ER_NO_REFERENCED_ROW_2
const (
	mysqlDupEntry      = 1062
	mysqlNoReferenced  = 1452
	mysqlRowIsReferred = 1451
)

// classify traduce un error de gorm/driver al resultado tipado del repositorio.
func classify(entity string, err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return &ConstraintError{Entity: entity, Kind: KindDuplicate, Err: err}
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return &ConstraintError{Entity: entity, Kind: KindForeignKey, Err: err}
	case errors.Is(err, context.DeadlineExceeded),
		errors.Is(err, context.Canceled),
		errors.Is(err, driver.ErrBadConn):
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		switch myErr.Number {
		case mysqlDupEntry:
			return &ConstraintError{Entity: entity, Kind: KindDuplicate, Err: err}
		case mysqlNoReferenced, mysqlRowIsReferred:
			return &ConstraintError{Entity: entity, Kind: KindForeignKey, Err: err}
		}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &ConstraintError{Entity: entity, Kind: KindDuplicate, Err: err}
		case pgerrcode.ForeignKeyViolation:
			return &ConstraintError{Entity: entity, Kind: KindForeignKey, Err: err}
		case pgerrcode.QueryCanceled, pgerrcode.AdminShutdown, pgerrcode.CannotConnectNow:
			return fmt.Errorf("%w: %v", ErrUnavailable, err)
		}
	}

	return fmt.Errorf("%s: %w", entity, err)
}
