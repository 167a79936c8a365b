// Package library implements the catalog operations: validated creates and
// partial updates of authors, books and members, search, and the
// borrow/return transaction. Every mutation is one Store.Update call.
package library

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// DefaultBorrowLimit is the number of books a member may hold at once.
const DefaultBorrowLimit = 5

type Service struct {
	store       Store
	now         func() time.Time
	newID       func() string
	borrowLimit int
	logger      *slog.Logger
}

type Option func(*Service)

// WithClock overrides the time source used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides how entity ids are minted.
func WithIDGenerator(newID func() string) Option {
	return func(s *Service) { s.newID = newID }
}

// WithBorrowLimit sets how many books a member may hold. Zero or a negative
// value disables the check.
func WithBorrowLimit(n int) Option {
	return func(s *Service) { s.borrowLimit = n }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) { s.logger = logger }
}

func NewService(store Store, opts ...Option) *Service {
	s := &Service{
		store:       store,
		now:         func() time.Time { return time.Now().UTC() },
		newID:       uuid.NewString,
		borrowLimit: DefaultBorrowLimit,
		logger:      slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// BorrowLimit reports the configured per-member limit.
func (s *Service) BorrowLimit() int {
	return s.borrowLimit
}

// Ping loads the catalog to prove the store is usable.
func (s *Service) Ping(ctx context.Context) error {
	_, err := s.store.Load(ctx)
	return err
}

// fail passes domain errors through and wraps everything else, which at this
// point can only come from the store.
func (s *Service) fail(ctx context.Context, op string, err error) error {
	if isDomainError(err) {
		return err
	}
	s.logger.ErrorContext(ctx, "catalog storage failure", "op", op, "error", err)
	return fmt.Errorf("%s: %w", op, err)
}
