package repository

import (
	"fmt"

	"likenovel/internal/shared/errors"
)

// wrapDB keeps the operation in the message while preserving the status FromDB assigns.
func wrapDB(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("failed to %s: %w", op, errors.FromDB(err))
}
