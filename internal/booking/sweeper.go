package booking

import (
	"fmt"
	"log/slog"
	"time"
)

// GracePeriod is how long an ended booking is kept around before the sweep
// purges it.
const GracePeriod = 16 * 24 * time.Hour

// Sweep purges every booking whose end time plus the grace period has passed
// and reconciles the occupied flag of every table against the remaining
// bookings. It is idempotent and safe to call on a timer.
func (s *Service) Sweep() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.sweep()
}

func (s *Service) sweep() error {
	const op = "booking.sweep"

	cutoff := s.now().Add(-GracePeriod)

	removed, err := s.store.DeleteBookingsEndedBefore(cutoff)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if removed > 0 {
		s.log.Info("expired bookings removed", slog.Int64("count", removed))
	}

	if err := s.store.RecomputeOccupancy(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
