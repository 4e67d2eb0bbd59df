package models

import "time"

// Driver defines the driver model based on the 'drivers' table
type Driver struct {
	ID            int64     `json:"id" db:"id"`
	DriverID      string    `json:"driverId" db:"driver_id"`
	DriverName    string    `json:"driverName" db:"driver_name"`
	DriverLicense string    `json:"driverLicense" db:"driver_license"` // Unique
	IsActive      bool      `json:"isActive" db:"is_active"`
	CreatedAt     time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time `json:"updatedAt" db:"updated_at"`
}
