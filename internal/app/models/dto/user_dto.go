package dto

import "github.com/rao756/utms-backend/internal/app/models"

// UserListItem is a user annotated with whether an admin row exists for
// their email
type UserListItem struct {
	*models.User
	IsAdmin bool `json:"isAdmin"`
}

// UserListResponse is the admin dashboard user listing
type UserListResponse struct {
	Users      []UserListItem `json:"users"`
	TotalUsers int            `json:"totalUsers"`
}
