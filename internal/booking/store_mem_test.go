package booking

import (
	"time"

	"cafeBooker/internal/models"
)

// memStore is an in-memory Store used by the engine tests. It mirrors the
// transactional guarantees of the postgres implementation: CreateBooking and
// DeleteBooking adjust the occupied flag together with the booking rows.
type memStore struct {
	tables        []models.Table
	bookings      []models.Booking
	nextTableID   int
	nextBookingID int
}

func newMemStore() *memStore {
	return &memStore{
		nextTableID:   1,
		nextBookingID: 1,
	}
}

func (m *memStore) ListTables() ([]models.Table, error) {
	out := make([]models.Table, len(m.tables))
	copy(out, m.tables)
	return out, nil
}

func (m *memStore) GetTable(id int) (*models.Table, error) {
	for _, t := range m.tables {
		if t.ID == id {
			t := t
			return &t, nil
		}
	}
	return nil, ErrTableNotFound
}

func (m *memStore) CreateTable(capacity int) (*models.Table, error) {
	t := models.Table{ID: m.nextTableID, Capacity: capacity}
	m.nextTableID++
	m.tables = append(m.tables, t)
	return &t, nil
}

func (m *memStore) DeleteTable(id int) error {
	for i, t := range m.tables {
		if t.ID == id {
			m.tables = append(m.tables[:i], m.tables[i+1:]...)

			kept := m.bookings[:0]
			for _, b := range m.bookings {
				if b.TableID != id {
					kept = append(kept, b)
				}
			}
			m.bookings = kept

			return nil
		}
	}
	return ErrTableNotFound
}

func (m *memStore) ListBookings() ([]models.Booking, error) {
	out := make([]models.Booking, len(m.bookings))
	copy(out, m.bookings)
	return out, nil
}

func (m *memStore) ListBookingsForTableOnDate(tableID int, date time.Time) ([]models.Booking, error) {
	var out []models.Booking
	for _, b := range m.bookings {
		if b.TableID == tableID && b.Date.Equal(date) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memStore) BookingExistsAt(phone string, start time.Time) (bool, error) {
	for _, b := range m.bookings {
		if b.Phone == phone && b.StartTime.Equal(start) {
			return true, nil
		}
	}
	return false, nil
}

func (m *memStore) CreateBooking(b *models.Booking) error {
	b.ID = m.nextBookingID
	m.nextBookingID++
	m.bookings = append(m.bookings, *b)
	m.setOccupied(b.TableID, true)
	return nil
}

func (m *memStore) DeleteBooking(id int) error {
	for i, b := range m.bookings {
		if b.ID == id {
			remaining := 0
			for _, other := range m.bookings {
				if other.TableID == b.TableID {
					remaining++
				}
			}

			m.bookings = append(m.bookings[:i], m.bookings[i+1:]...)

			if remaining == 1 {
				m.setOccupied(b.TableID, false)
			}

			return nil
		}
	}
	return ErrBookingNotFound
}

func (m *memStore) DeleteBookingsEndedBefore(cutoff time.Time) (int64, error) {
	var removed int64
	kept := m.bookings[:0]
	for _, b := range m.bookings {
		if b.EndTime.Before(cutoff) {
			removed++
			continue
		}
		kept = append(kept, b)
	}
	m.bookings = kept
	return removed, nil
}

func (m *memStore) RecomputeOccupancy() error {
	for i := range m.tables {
		occupied := false
		for _, b := range m.bookings {
			if b.TableID == m.tables[i].ID {
				occupied = true
				break
			}
		}
		m.tables[i].Occupied = occupied
	}
	return nil
}

func (m *memStore) setOccupied(tableID int, occupied bool) {
	for i := range m.tables {
		if m.tables[i].ID == tableID {
			m.tables[i].Occupied = occupied
			return
		}
	}
}
