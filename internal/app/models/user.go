package models

import (
	"time"
)

// ChallanStatus represents the payment state tracked on users and uploaded challans
type ChallanStatus string

const (
	ChallanStatusPending ChallanStatus = "pending"
	ChallanStatusPaid    ChallanStatus = "Paid"
	ChallanStatusNotPaid ChallanStatus = "Not Paid"
)

// IsValid reports whether the status is one of the known enum values
func (s ChallanStatus) IsValid() bool {
	switch s {
	case ChallanStatusPending, ChallanStatusPaid, ChallanStatusNotPaid:
		return true
	}
	return false
}

// User defines the student account model based on the 'users' table
type User struct {
	ID             int64         `json:"id" db:"id" example:"1"`                                   // Unique identifier for the user
	UserName       string        `json:"userName" db:"user_name" example:"Ali Raza"`               // Student's full name
	FatherName     string        `json:"fatherName" db:"father_name" example:"Raza Khan"`          // Father's name
	RollNo         string        `json:"rollNo" db:"roll_no" example:"FA21-BCS-012"`               // University roll number
	Email          string        `json:"email" db:"email" example:"student@university.edu"`        // User's email address (unique)
	Password       string        `json:"-" db:"password"`                                          // Hashed password (excluded from JSON)
	DepartmentName string        `json:"departmentName" db:"department_name" example:"CS"`         // Department the student belongs to
	Semester       string        `json:"semester" db:"semester" example:"5"`                       // Current semester
	RouteName      string        `json:"routeName" db:"route_name" example:"City Route"`           // Assigned bus route
	PickupStop     string        `json:"pickupStop" db:"pickup_stop" example:"Main Chowk"`         // Stop where the student boards
	ChallanStatus  ChallanStatus `json:"challanStatus" db:"challan_status" example:"pending"`      // Transportation fee payment status
	Image          string        `json:"image" db:"image" example:"uploads/abc.jpg"`               // Profile image path
	IsActive       bool          `json:"isActive" db:"is_active" example:"false"`                  // false means the account awaits admin approval
	CreatedAt      time.Time     `json:"createdAt" db:"created_at" example:"2024-01-01T10:00:00Z"` // Timestamp when the user was created
	UpdatedAt      time.Time     `json:"updatedAt" db:"updated_at" example:"2024-01-02T15:30:00Z"` // Timestamp when the user was last updated
}
