package models

import "time"

type Booking struct {
	ID        int       `json:"id"`
	TableID   int       `json:"table_id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Date      time.Time `json:"date"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	Guests    int       `json:"number_of_guests"`
	Notes     string    `json:"notes,omitempty"`
}
