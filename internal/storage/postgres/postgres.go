package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"cafeBooker/internal/booking"
	"cafeBooker/internal/config"
	"cafeBooker/internal/models"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.initSchema(); err != nil {
		return nil, err
	}

	return s, nil
}

func (s *Storage) initSchema() error {
	schema := `
		CREATE TABLE IF NOT EXISTS tables (
			id SERIAL PRIMARY KEY,
			capacity INTEGER NOT NULL CHECK (capacity >= 1),
			occupied BOOLEAN NOT NULL DEFAULT FALSE
		);

		CREATE TABLE IF NOT EXISTS bookings (
			id SERIAL PRIMARY KEY,
			table_id INTEGER NOT NULL REFERENCES tables (id) ON DELETE CASCADE,
			name VARCHAR(200) NOT NULL,
			phone VARCHAR(15) NOT NULL,
			date DATE NOT NULL,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			guests INTEGER NOT NULL CHECK (guests >= 1),
			notes TEXT NOT NULL DEFAULT ''
		);

		CREATE INDEX IF NOT EXISTS idx_bookings_table_date ON bookings (table_id, date);
		CREATE INDEX IF NOT EXISTS idx_bookings_phone_start ON bookings (phone, start_time);`

	if _, err := s.DB.Exec(schema); err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) ListTables() ([]models.Table, error) {
	query := `
		SELECT id, capacity, occupied
		FROM tables
		ORDER BY id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}
	defer rows.Close()

	var tables []models.Table
	for rows.Next() {
		var t models.Table
		if err = rows.Scan(&t.ID, &t.Capacity, &t.Occupied); err != nil {
			return nil, fmt.Errorf("failed to scan table: %w", err)
		}
		tables = append(tables, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list tables: %w", err)
	}

	return tables, nil
}

func (s *Storage) GetTable(id int) (*models.Table, error) {
	query := `
		SELECT id, capacity, occupied
		FROM tables
		WHERE id = $1`

	var t models.Table
	err := s.DB.QueryRow(query, id).Scan(&t.ID, &t.Capacity, &t.Occupied)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, booking.ErrTableNotFound
		}
		return nil, fmt.Errorf("failed to get table: %w", err)
	}

	return &t, nil
}

func (s *Storage) CreateTable(capacity int) (*models.Table, error) {
	query := `
		INSERT INTO tables (capacity, occupied)
		VALUES ($1, FALSE)
		RETURNING id`

	t := models.Table{Capacity: capacity}
	if err := s.DB.QueryRow(query, capacity).Scan(&t.ID); err != nil {
		return nil, fmt.Errorf("failed to create table: %w", err)
	}

	return &t, nil
}

func (s *Storage) DeleteTable(id int) error {
	// Bookings go with the table via ON DELETE CASCADE.
	result, err := s.DB.Exec(`DELETE FROM tables WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete table: %w", err)
	}
	if affected == 0 {
		return booking.ErrTableNotFound
	}

	return nil
}

func (s *Storage) ListBookings() ([]models.Booking, error) {
	query := `
		SELECT id, table_id, name, phone, date, start_time, end_time, guests, notes
		FROM bookings
		ORDER BY id`

	rows, err := s.DB.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (s *Storage) ListBookingsForTableOnDate(tableID int, date time.Time) ([]models.Booking, error) {
	query := `
		SELECT id, table_id, name, phone, date, start_time, end_time, guests, notes
		FROM bookings
		WHERE table_id = $1 AND date = $2
		ORDER BY start_time`

	rows, err := s.DB.Query(query, tableID, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings for table: %w", err)
	}
	defer rows.Close()

	return scanBookings(rows)
}

func (s *Storage) BookingExistsAt(phone string, start time.Time) (bool, error) {
	query := `
		SELECT EXISTS(
			SELECT 1 FROM bookings
			WHERE phone = $1 AND start_time = $2
		)`

	var exists bool
	if err := s.DB.QueryRow(query, phone, start).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check existing booking: %w", err)
	}

	return exists, nil
}

// CreateBooking inserts the booking and marks its table occupied in a single
// transaction, so readers never observe one without the other.
func (s *Storage) CreateBooking(b *models.Booking) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertQuery := `
		INSERT INTO bookings (table_id, name, phone, date, start_time, end_time, guests, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`

	err = tx.QueryRow(insertQuery,
		b.TableID, b.Name, b.Phone, b.Date, b.StartTime, b.EndTime, b.Guests, b.Notes,
	).Scan(&b.ID)
	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}

	_, err = tx.Exec(`UPDATE tables SET occupied = TRUE WHERE id = $1`, b.TableID)
	if err != nil {
		return fmt.Errorf("failed to mark table occupied: %w", err)
	}

	return tx.Commit()
}

// DeleteBooking removes the booking and, when it was the table's last one,
// clears the occupied flag inside the same transaction.
func (s *Storage) DeleteBooking(id int) error {
	tx, err := s.DB.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var tableID int
	err = tx.QueryRow(`SELECT table_id FROM bookings WHERE id = $1`, id).Scan(&tableID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return booking.ErrBookingNotFound
		}
		return fmt.Errorf("failed to find booking: %w", err)
	}

	var remaining int
	err = tx.QueryRow(`SELECT COUNT(*) FROM bookings WHERE table_id = $1`, tableID).Scan(&remaining)
	if err != nil {
		return fmt.Errorf("failed to count bookings for table: %w", err)
	}

	if _, err = tx.Exec(`DELETE FROM bookings WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}

	if remaining == 1 {
		_, err = tx.Exec(`UPDATE tables SET occupied = FALSE WHERE id = $1`, tableID)
		if err != nil {
			return fmt.Errorf("failed to clear occupied flag: %w", err)
		}
	}

	return tx.Commit()
}

func (s *Storage) DeleteBookingsEndedBefore(cutoff time.Time) (int64, error) {
	result, err := s.DB.Exec(`DELETE FROM bookings WHERE end_time < $1`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired bookings: %w", err)
	}

	removed, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to delete expired bookings: %w", err)
	}

	return removed, nil
}

func (s *Storage) RecomputeOccupancy() error {
	query := `
		UPDATE tables
		SET occupied = EXISTS(
			SELECT 1 FROM bookings WHERE bookings.table_id = tables.id
		)`

	if _, err := s.DB.Exec(query); err != nil {
		return fmt.Errorf("failed to recompute occupancy: %w", err)
	}

	return nil
}

func scanBookings(rows *sql.Rows) ([]models.Booking, error) {
	var bookings []models.Booking
	for rows.Next() {
		var b models.Booking
		err := rows.Scan(
			&b.ID, &b.TableID, &b.Name, &b.Phone,
			&b.Date, &b.StartTime, &b.EndTime, &b.Guests, &b.Notes,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bookings: %w", err)
	}

	return bookings, nil
}
