package dto

import "github.com/rao756/utms-backend/internal/app/models"

// LoginRequest is the credentials payload for both user and admin login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the session token and the authenticated profile
type LoginResponse struct {
	Message string       `json:"message"`
	Success bool         `json:"success"`
	Token   string       `json:"token"`
	User    *models.User `json:"user"`
}

// RegisterForm is the multipart registration payload. The optional image
// part is handled separately from the form fields.
type RegisterForm struct {
	UserName       string `form:"userName"`
	FatherName     string `form:"fatherName"`
	RollNo         string `form:"rollNo"`
	Email          string `form:"email" validate:"required,email"`
	Password       string `form:"password" validate:"required,min=6"`
	DepartmentName string `form:"departmentName"`
	Semester       string `form:"semester"`
	RouteName      string `form:"routeName"`
	PickupStop     string `form:"pickupStop"`
}

// ResetPasswordRequest changes a user's password after verifying the
// current one
type ResetPasswordRequest struct {
	Email           string `json:"email" binding:"required,email"`
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

// PromoteAdminRequest grants admin access to an existing user. All fields
// are optional; the role defaults to department_admin and the department
// falls back to the user's own.
type PromoteAdminRequest struct {
	DepartmentName string `json:"departmentName"`
	Role           string `json:"role"`
	IsActive       bool   `json:"isActive"`
}

// RegisterAdminRequest creates a user and its admin row in one step
type RegisterAdminRequest struct {
	UserName       string `json:"userName"`
	FatherName     string `json:"fatherName"`
	RollNo         string `json:"rollNo"`
	Email          string `json:"email" binding:"required,email"`
	Password       string `json:"password" binding:"required,min=6"`
	DepartmentName string `json:"departmentName"`
	Role           string `json:"role"`
	IsActive       bool   `json:"isActive"`
}
