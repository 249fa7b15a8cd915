package postgres

import (
	domainerrors "strik/internal/domain/errors"
	"strik/internal/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// PostgreSQL SQLSTATE codes for integrity constraint violations.
const (
	pgCodeNotNullViolation    = "23502"
	pgCodeForeignKeyViolation = "23503"
	pgCodeUniqueViolation     = "23505"
	pgCodeCheckViolation      = "23514"
)

func pgErrorCode(err error) string {
	if pgErr, ok := errors.AsType[*pgconn.PgError](err); ok {
		return pgErr.Code
	}

	return ""
}

func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey) || pgErrorCode(err) == pgCodeUniqueViolation
}

func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || pgErrorCode(err) == pgCodeForeignKeyViolation
}

func isNotNullConstraintViolation(err error) bool {
	return pgErrorCode(err) == pgCodeNotNullViolation
}

func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated) || pgErrorCode(err) == pgCodeCheckViolation
}

// classifyWriteError turns an insert failure into a DatabaseExecuteError whose
// details name the violated constraint class, if any.
func classifyWriteError(err error, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		details += ": duplicate row"
	case isForeignKeyConstraintViolation(err):
		details += ": references a missing row"
	case isNotNullConstraintViolation(err):
		details += ": missing required column"
	case isCheckConstraintViolation(err):
		details += ": check constraint violated"
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}
