package postgres

import (
	"errors"
	"fmt"

	"github.com/lib/pq"

	"videostore-admin/internal/repository"
)

// writeError maps driver-level write rejections onto the repository
// taxonomy. Class 23 covers PostgreSQL integrity violations (foreign
// key, unique, not-null, check); the original message is preserved for
// diagnostics.
func writeError(err error) error {
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Class() == "23" {
		return fmt.Errorf("%w: %s", repository.ErrConstraintViolation, pqErr.Message)
	}
	return err
}
