package booking

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"cafeBooker/internal/lib/logger/sl"
	"cafeBooker/internal/models"
)

// Service owns the table catalog and the booking ledger. All mutation goes
// through it; the mutex serializes the check-then-commit section of Allocate
// against concurrent allocations and cancellations so that two requests cannot
// both pass the conflict check for the same table.
type Service struct {
	log   *slog.Logger
	store Store
	mu    sync.Mutex
	now   func() time.Time
}

func New(log *slog.Logger, store Store) *Service {
	return &Service{
		log:   log,
		store: store,
		now:   time.Now,
	}
}

// Cancel removes a booking. The storage layer clears the table's occupied flag
// in the same transaction when the last booking goes away.
func (s *Service) Cancel(id int) error {
	const op = "booking.Cancel"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepQuiet()

	if err := s.store.DeleteBooking(id); err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return ErrBookingNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking cancelled", slog.Int("booking_id", id))

	return nil
}

// ListBookings returns every booking for admin callers. Public callers only
// see bookings sitting on occupied tables; the transport layer additionally
// strips the customer fields from that view.
func (s *Service) ListBookings(asAdmin bool) ([]models.Booking, error) {
	const op = "booking.ListBookings"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepQuiet()

	bookings, err := s.store.ListBookings()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if asAdmin {
		return bookings, nil
	}

	tables, err := s.store.ListTables()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	occupied := make(map[int]bool, len(tables))
	for _, t := range tables {
		occupied[t.ID] = t.Occupied
	}

	public := make([]models.Booking, 0, len(bookings))
	for _, b := range bookings {
		if occupied[b.TableID] {
			public = append(public, b)
		}
	}

	return public, nil
}

func (s *Service) ListTables() ([]models.Table, error) {
	const op = "booking.ListTables"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepQuiet()

	tables, err := s.store.ListTables()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tables, nil
}

func (s *Service) CreateTable(capacity int) (*models.Table, error) {
	const op = "booking.CreateTable"

	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepQuiet()

	table, err := s.store.CreateTable(capacity)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("table created",
		slog.Int("table_id", table.ID),
		slog.Int("capacity", table.Capacity),
	)

	return table, nil
}

// DeleteTable refuses to remove a table that still has active bookings.
// Otherwise the table and everything referencing it go together.
func (s *Service) DeleteTable(id int) error {
	const op = "booking.DeleteTable"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepQuiet()

	table, err := s.store.GetTable(id)
	if err != nil {
		if errors.Is(err, ErrTableNotFound) {
			return ErrTableNotFound
		}
		return fmt.Errorf("%s: %w", op, err)
	}

	if table.Occupied {
		return ErrTableOccupied
	}

	if err := s.store.DeleteTable(id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("table deleted", slog.Int("table_id", id))

	return nil
}

// sweepQuiet runs the expiry sweep on behalf of another operation. Sweep
// failures never fail the triggering operation; they are logged and dropped.
func (s *Service) sweepQuiet() {
	if err := s.sweep(); err != nil {
		s.log.Error("expiry sweep failed", sl.Err(err))
	}
}
