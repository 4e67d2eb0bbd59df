package models

import "time"

// UploadedChallan is a student-submitted proof-of-payment image linked
// to their account.
type UploadedChallan struct {
	ID            int64         `json:"id" db:"id"`
	UserID        int64         `json:"userId" db:"user_id"` // References users.id
	RollNo        string        `json:"rollNo" db:"roll_no"`
	ChallanStatus ChallanStatus `json:"challanStatus" db:"challan_status"`
	Image         string        `json:"image" db:"image"` // Stored file path
	IsActive      bool          `json:"isActive" db:"is_active"`
	CreatedAt     time.Time     `json:"createdAt" db:"created_at"`
	UpdatedAt     time.Time     `json:"updatedAt" db:"updated_at"`
	User          *User         `json:"user,omitempty"` // Relation, no db tag
}
