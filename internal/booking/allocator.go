package booking

import (
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"time"

	"cafeBooker/internal/models"
)

// Opening hours run from 08:30 until 00:30 the next day, every day except the
// closed weekday. A start time strictly between 00:30 and 08:30 is rejected.
const (
	openMinute  = 8*60 + 30
	closeMinute = 30
)

// ClosedWeekday is the one day of the week the café does not take bookings.
const ClosedWeekday = time.Sunday

var phoneRe = regexp.MustCompile(`^[0-9]{9,15}$`)

// AllocateRequest carries the pre-sanitized fields of a reservation request.
// Start is the full start instant; the calendar date and end time are derived
// from it.
type AllocateRequest struct {
	Name   string
	Phone  string
	Start  time.Time
	Guests int
	Notes  string
}

// Allocate validates the request, picks the most suitable free table and
// commits the booking. Validation failures leave all state untouched; the
// first failing check wins.
func (s *Service) Allocate(req AllocateRequest) (*models.Booking, error) {
	const op = "booking.Allocate"

	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweepQuiet()

	if err := s.validate(req); err != nil {
		return nil, err
	}

	iv := NewInterval(req.Start)
	date := dateOf(req.Start)

	exists, err := s.store.BookingExistsAt(req.Phone, req.Start)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if exists {
		return nil, ErrDuplicateBooking
	}

	tables, err := s.store.ListTables()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var selected *models.Table
	for _, t := range candidateTables(tables, req.Guests) {
		conflict, err := s.hasConflict(t.ID, date, iv)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !conflict {
			selected = &t
			break
		}
	}

	if selected == nil {
		return nil, ErrNoTableAvailable
	}

	b := &models.Booking{
		TableID:   selected.ID,
		Name:      req.Name,
		Phone:     req.Phone,
		Date:      date,
		StartTime: iv.Start,
		EndTime:   iv.End,
		Guests:    req.Guests,
		Notes:     req.Notes,
	}

	if err := s.store.CreateBooking(b); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s.log.Info("booking created",
		slog.Int("booking_id", b.ID),
		slog.Int("table_id", b.TableID),
		slog.Time("start", b.StartTime),
		slog.Int("guests", b.Guests),
	)

	return b, nil
}

func (s *Service) validate(req AllocateRequest) error {
	switch {
	case req.Name == "":
		return missingField("name")
	case req.Phone == "":
		return missingField("phone")
	case req.Start.IsZero():
		return missingField("time")
	}

	if req.Guests < 1 {
		return ErrGuestCount
	}

	if !phoneRe.MatchString(req.Phone) {
		return ErrInvalidPhone
	}

	if !req.Start.After(s.now()) {
		return ErrPastTime
	}

	return s.checkOpeningHours(req.Start)
}

func (s *Service) checkOpeningHours(start time.Time) error {
	if start.Weekday() == ClosedWeekday {
		return ErrOutsideHours
	}

	minute := start.Hour()*60 + start.Minute()
	if minute > closeMinute && minute < openMinute {
		return ErrOutsideHours
	}

	return nil
}

// hasConflict reports whether the interval overlaps any booking already held
// by the table on that date. Short-circuits on the first hit.
func (s *Service) hasConflict(tableID int, date time.Time, iv Interval) (bool, error) {
	bookings, err := s.store.ListBookingsForTableOnDate(tableID, date)
	if err != nil {
		return false, err
	}

	for _, b := range bookings {
		if iv.Overlaps(Interval{Start: b.StartTime, End: b.EndTime}) {
			return true, nil
		}
	}

	return false, nil
}

// candidateTables builds the ordered candidate list for a party size: first
// the exact-capacity tier in insertion order, then every larger table ordered
// smallest-first, ties broken by insertion order. A busy exact-fit table falls
// through to the larger tier instead of failing the request.
func candidateTables(tables []models.Table, guests int) []models.Table {
	var candidates []models.Table
	for _, t := range tables {
		if t.Capacity == guests {
			candidates = append(candidates, t)
		}
	}

	var larger []models.Table
	for _, t := range tables {
		if t.Capacity > guests {
			larger = append(larger, t)
		}
	}
	sort.SliceStable(larger, func(i, j int) bool {
		return larger[i].Capacity < larger[j].Capacity
	})

	return append(candidates, larger...)
}

func dateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
