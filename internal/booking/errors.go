package booking

import (
	"errors"
	"fmt"
)

var (
	ErrMissingField     = errors.New("required field is missing")
	ErrGuestCount       = errors.New("number of guests must be at least 1")
	ErrInvalidPhone     = errors.New("phone must contain 9 to 15 digits")
	ErrPastTime         = errors.New("reservations cannot be made in the past")
	ErrOutsideHours     = errors.New("requested time is outside opening hours")
	ErrDuplicateBooking = errors.New("a booking for this phone at this time already exists")
	ErrNoTableAvailable = errors.New("no table available for the requested time and party size")
	ErrInvalidCapacity  = errors.New("table capacity must be at least 1")
	ErrTableOccupied    = errors.New("table has active bookings")
	ErrTableNotFound    = errors.New("table not found")
	ErrBookingNotFound  = errors.New("booking not found")
)

func missingField(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingField, name)
}
