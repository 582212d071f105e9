package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

var (
	// ErrAlreadyDecided reports a moderation write that found the
	// submission already in a terminal state.
	ErrAlreadyDecided = errors.New("submission already decided")

	// ErrStatusConflict reports a conditional status update that matched
	// no row because the status changed underneath it.
	ErrStatusConflict = errors.New("status changed concurrently")
)

// IsUniqueViolation reports whether err came from a unique constraint.
// Checked both at the gorm translation layer and the raw pgx error so slug
// and email races resolve at the database, not via read-then-write checks.
func IsUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
