package booking

import (
	"time"

	"cafeBooker/internal/models"
)

// Store is the persistence collaborator for the booking service. Implementations
// must keep CreateBooking and DeleteBooking atomic with respect to the occupied
// flag of the affected table: a booking row and its table flag change together
// or not at all.
type Store interface {
	ListTables() ([]models.Table, error)
	GetTable(id int) (*models.Table, error)
	CreateTable(capacity int) (*models.Table, error)
	// DeleteTable removes a table and all bookings referencing it.
	DeleteTable(id int) error

	ListBookings() ([]models.Booking, error)
	ListBookingsForTableOnDate(tableID int, date time.Time) ([]models.Booking, error)
	BookingExistsAt(phone string, start time.Time) (bool, error)
	// CreateBooking inserts the booking, marks its table occupied and fills in ID.
	CreateBooking(b *models.Booking) error
	// DeleteBooking removes the booking and clears the table's occupied flag if
	// it was the last one. Returns ErrBookingNotFound for an unknown id.
	DeleteBooking(id int) error

	DeleteBookingsEndedBefore(cutoff time.Time) (int64, error)
	RecomputeOccupancy() error
}
