package helpers

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/ingagustinmarcel/prop-flow/internal/logger"
)

// TransactionFunc is a function that executes within a database transaction
type TransactionFunc func(tx pgx.Tx) error

// WithTransaction executes a function within a database transaction.
// It automatically handles commit/rollback based on the error returned by the function.
func WithTransaction(ctx context.Context, pool *pgxpool.Pool, fn TransactionFunc) error {
	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		// Rollback after commit returns ErrTxClosed, which is expected
		if rollbackErr := tx.Rollback(ctx); rollbackErr != nil && !errors.Is(rollbackErr, pgx.ErrTxClosed) {
			logger.Log.Error("Failed to rollback transaction",
				zap.Error(rollbackErr),
			)
		}
	}()

	if err := fn(tx); err != nil {
		return fmt.Errorf("transaction failed: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
