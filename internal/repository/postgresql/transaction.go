package postgresql

import (
	"context"
	"fmt"

	"github.com/chronohr/timekeeping-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

// txKey is the context key carrying an open transaction to the repositories.
// An unexported struct type keeps other packages from forging the value.
type txKey struct{}

// WithTransaction runs fn inside a single transaction. The context handed to
// fn carries the transaction; repositories resolve it through GetQuerier, so
// the same repository code serves both transactional and standalone calls.
func WithTransaction(ctx context.Context, db *database.DB, fn func(txCtx context.Context) error) error {
	tx, err := db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback failed: %v (original error: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// GetQuerier returns the transaction bound to ctx, or the pool when none is.
func GetQuerier(ctx context.Context, db *database.DB) database.Querier {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return db.Pool
}
