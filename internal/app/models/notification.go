package models

import "time"

// Notification defines the announcement model based on the 'notifications' table
type Notification struct {
	ID                  int64     `json:"id" db:"id"`
	NotificationMessage string    `json:"notificationMessage" db:"notification_message"`
	IsActive            bool      `json:"isActive" db:"is_active"`
	CreatedAt           time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt           time.Time `json:"updatedAt" db:"updated_at"`
}
