package repository

import (
	"context"
	"fmt"

	"quiz-master/internal/domain"
	"quiz-master/internal/logger"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type contextKey string

// TransactionContextKey carries the active *sqlx.Tx.
const TransactionContextKey contextKey = "tx"

// GetExecutor returns the transaction stored in ctx, or db when there is none.
func GetExecutor(ctx context.Context, db DBTX) DBTX {
	if tx, ok := ctx.Value(TransactionContextKey).(*sqlx.Tx); ok && tx != nil {
		return tx
	}
	return db
}

// TransactionManagerAdapter implements domain.TransactionManager on sqlx.
type TransactionManagerAdapter struct {
	db *sqlx.DB
}

func NewTransactionManagerAdapter(db *sqlx.DB) domain.TransactionManager {
	return &TransactionManagerAdapter{db: db}
}

// WithTransaction runs fn with a context carrying a new transaction. The
// transaction commits if fn returns nil and rolls back otherwise, including
// on panic. Nested calls join the outer transaction.
func (tma *TransactionManagerAdapter) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(TransactionContextKey).(*sqlx.Tx); ok {
		return fn(ctx)
	}

	tx, err := tma.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			if rbErr := tx.Rollback(); rbErr != nil {
				logger.Get().Error("Failed to roll back after panic", zap.Error(rbErr))
			}
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, TransactionContextKey, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("failed to rollback transaction: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}
