package models

import "time"

// Stop is one timed stop along a schedule. Stop order inside a schedule
// is meaningful: it is the sequence of stops along the route.
type Stop struct {
	StopName      string `json:"stopName"`
	ArrivalTime   string `json:"arrivalTime"`   // "HH:MM", kept as text like the rest of the timetable
	DepartureTime string `json:"departureTime"` // "HH:MM"
}

// Schedule defines the timetable model based on the 'schedules' table.
// Stops are stored as a JSONB array to preserve ordering.
type Schedule struct {
	ID         int64     `json:"id" db:"id"`
	ScheduleID string    `json:"scheduleId" db:"schedule_id"` // Generated "SCH-<ms>" when not supplied
	RouteName  string    `json:"routeName" db:"route_name"`
	BusID      string    `json:"busId" db:"bus_id"`
	DriverID   string    `json:"driverId" db:"driver_id"`
	Stops      []Stop    `json:"stops" db:"stops"`
	IsActive   bool      `json:"isActive" db:"is_active"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt  time.Time `json:"updatedAt" db:"updated_at"`
}
