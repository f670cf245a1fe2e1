package database

import (
	"context"
	"errors"
	"fmt"
)

// WithTransaction runs fn inside one transaction. The transaction commits
// when fn returns nil; any error or panic from fn rolls it back.
func WithTransaction(ctx context.Context, db Database, fn func(tx Database) error) (err error) {
	tx := db.Session(ctx).Begin()
	if tx.Error != nil {
		return fmt.Errorf("begin transaction: %w", tx.Error)
	}

	committed := false
	defer func() {
		if committed {
			return
		}
		if rbErr := tx.Rollback().Error; rbErr != nil && err != nil {
			err = errors.Join(err, fmt.Errorf("rollback transaction: %w", rbErr))
		}
	}()

	if err := fn(Database{db: tx}); err != nil {
		return err
	}
	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	committed = true
	return nil
}
