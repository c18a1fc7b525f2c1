package postgres

import (
	"strings"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Constraint classification for the repositories in this package.
// GORM translates most PostgreSQL constraint failures into its own
// sentinels; the not-null case still surfaces as a raw driver error.

// isUniqueConstraintViolation reports duplicate key failures, such as
// inserting a category with an existing name.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isForeignKeyConstraintViolation reports referential failures, such as
// a dish or cart item pointing at a row that no longer exists.
func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// isNotNullConstraintViolation reports missing required columns.
// SQLSTATE 23502 is the PostgreSQL not_null_violation code.
func isNotNullConstraintViolation(err error) bool {
	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "null value") ||
		strings.Contains(msg, "not null") ||
		strings.Contains(msg, "23502")
}

// isCheckConstraintViolation reports check failures, such as a feedback
// rating outside the allowed range.
func isCheckConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrCheckConstraintViolated)
}
