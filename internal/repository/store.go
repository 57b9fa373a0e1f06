package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store combines single-statement queries with transactional execution.
// Services depend on this interface so tests can substitute a mock.
type Store interface {
	Querier

	// ExecTx runs fn inside a database transaction. The Querier passed to fn
	// is bound to that transaction; if fn returns an error the transaction
	// rolls back and nothing fn wrote is observable.
	ExecTx(ctx context.Context, fn func(Querier) error) error
}

// SQLStore is the pgx-backed Store implementation.
type SQLStore struct {
	*Queries
	pool *pgxpool.Pool
}

// NewStore creates a Store over a pgx connection pool.
func NewStore(pool *pgxpool.Pool) *SQLStore {
	return &SQLStore{
		Queries: New(pool),
		pool:    pool,
	}
}

// ExecTx executes fn within a transaction.
func (s *SQLStore) ExecTx(ctx context.Context, fn func(Querier) error) error {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := fn(s.Queries.WithTx(tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
