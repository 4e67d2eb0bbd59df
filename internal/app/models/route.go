package models

import "time"

// Route defines the bus route model based on the 'routes' table
type Route struct {
	ID        int64     `json:"id" db:"id"`
	RouteID   string    `json:"routeId" db:"route_id"`
	RouteName string    `json:"routeName" db:"route_name"`
	IsActive  bool      `json:"isActive" db:"is_active"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`
}
