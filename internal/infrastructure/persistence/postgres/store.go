// Package postgres implements the task repository on PostgreSQL via pgx.
package postgres

import "github.com/jackc/pgx/v5/pgxpool"

// Store is the PostgreSQL-backed repository. Connections are borrowed from
// the pool per query and released on every exit path; query cancellation
// follows the request context.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates a store around an existing connection pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// Close releases the underlying connection pool.
func (s *Store) Close() {
	s.pool.Close()
}
