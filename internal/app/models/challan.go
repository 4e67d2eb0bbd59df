package models

import "time"

// Challan is a transportation fee voucher issued to a student.
// SrNo is the serial number assigned at issuance time; roll_no is unique
// across the collection so a student can hold at most one challan.
type Challan struct {
	ID             int64     `json:"id" db:"id"`
	SrNo           int       `json:"SrNo" db:"sr_no"`
	Name           string    `json:"name" db:"name"`
	FatherName     string    `json:"fatherName" db:"father_name"`
	RollNo         string    `json:"rollNo" db:"roll_no"`
	ContactNo      string    `json:"contactNo" db:"contact_no"`
	Semester       string    `json:"semester" db:"semester"`
	Program        string    `json:"program" db:"program"`
	DepartmentName string    `json:"departmentName" db:"department_name"`
	Route          string    `json:"route" db:"route"`
	BusStop        string    `json:"busStop" db:"bus_stop"`
	DownloadStatus string    `json:"downloadStatus" db:"download_status"` // 'true' or 'false', kept as text like the original records
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`
}
