// Package postgres implements the storage contract on a PostgreSQL pool.
// Uniqueness rules are enforced by database constraints and mapped back to
// the shared sentinel errors, so both backends surface identical failures.
package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DefaultHostelCapacity mirrors the capacity used when none is configured.
const DefaultHostelCapacity = 275

// Store implements storage.Storage backed by PostgreSQL.
type Store struct {
	db             *pgxpool.Pool
	hostelCapacity int
	nowFunc        func() time.Time
}

// Option configures a Store.
type Option func(*Store)

// WithHostelCapacity overrides the total hostel capacity reported by
// occupancy queries.
func WithHostelCapacity(capacity int) Option {
	return func(s *Store) {
		if capacity > 0 {
			s.hostelCapacity = capacity
		}
	}
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.nowFunc = now
		}
	}
}

// New creates a PostgreSQL-backed store.
func New(db *pgxpool.Pool, opts ...Option) *Store {
	s := &Store{
		db:             db,
		hostelCapacity: DefaultHostelCapacity,
		nowFunc:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func newID() string {
	return uuid.NewString()
}
