package models

import "time"

// Bus defines the bus model based on the 'buses' table
type Bus struct {
	ID        int64     `json:"id" db:"id"`
	BusID     string    `json:"busId" db:"bus_id"`
	BusRoute  string    `json:"busRoute" db:"bus_route"`
	BusNumber string    `json:"busNumber" db:"bus_number"` // Registration plate, unique
	BusSeats  int       `json:"busSeats" db:"bus_seats"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
