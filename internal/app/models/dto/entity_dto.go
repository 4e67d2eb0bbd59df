package dto

import "github.com/rao756/utms-backend/internal/app/models"

// Partial update payloads use pointer fields so only the keys present in
// the request body are applied, matching the legacy PUT semantics.

// BusUpdateRequest is the partial update payload for a bus
type BusUpdateRequest struct {
	BusID     *string `json:"busId"`
	BusRoute  *string `json:"busRoute"`
	BusNumber *string `json:"busNumber"`
	BusSeats  *int    `json:"busSeats"`
	IsActive  *bool   `json:"isActive"`
}

// DriverUpdateRequest is the partial update payload for a driver
type DriverUpdateRequest struct {
	DriverID      *string `json:"driverId"`
	DriverName    *string `json:"driverName"`
	DriverLicense *string `json:"driverLicense"`
	IsActive      *bool   `json:"isActive"`
}

// RouteUpdateRequest is the partial update payload for a route
type RouteUpdateRequest struct {
	RouteID   *string `json:"routeId"`
	RouteName *string `json:"routeName"`
	IsActive  *bool   `json:"isActive"`
}

// NotificationUpdateRequest is the partial update payload for a notification
type NotificationUpdateRequest struct {
	NotificationMessage *string `json:"notificationMessage"`
	IsActive            *bool   `json:"isActive"`
}

// ScheduleCreateRequest is the create payload for a schedule
type ScheduleCreateRequest struct {
	ScheduleID string        `json:"scheduleId"`
	RouteName  string        `json:"routeName"`
	BusID      string        `json:"busId"`
	DriverID   string        `json:"driverId"`
	Stops      []models.Stop `json:"stops"`
	IsActive   bool          `json:"isActive"`
}

// ScheduleUpdateRequest is the partial update payload for a schedule,
// addressed by its scheduleId
type ScheduleUpdateRequest struct {
	ScheduleID string        `json:"scheduleId"`
	RouteName  *string       `json:"routeName"`
	BusID      *string       `json:"busId"`
	DriverID   *string       `json:"driverId"`
	Stops      []models.Stop `json:"stops"`
	IsActive   *bool         `json:"isActive"`
}

// ChallanCreateRequest is the issuance payload for a fee challan
type ChallanCreateRequest struct {
	Name           string `json:"name" binding:"required"`
	FatherName     string `json:"fatherName" binding:"required"`
	RollNo         string `json:"rollNo"`
	ContactNo      string `json:"contactNo" binding:"required"`
	Semester       string `json:"semester" binding:"required"`
	Program        string `json:"program" binding:"required"`
	DepartmentName string `json:"departmentName" binding:"required"`
	Route          string `json:"route" binding:"required"`
	BusStop        string `json:"busStop" binding:"required"`
}

// AdminChallanRequest creates or updates the challan configuration.
// All fields are optional on update.
type AdminChallanRequest struct {
	AccountNo  *string `json:"accountNo"`
	Session    *string `json:"session"`
	Amount     *string `json:"amount"`
	IssueDate  *string `json:"issueDate"`
	LastDate   *string `json:"lastDate"`
	MaxChallan *string `json:"maxChallan"`
}

// UploadedChallanStatusRequest updates the review status of an uploaded
// proof of payment
type UploadedChallanStatusRequest struct {
	ChallanStatus models.ChallanStatus `json:"challanStatus" binding:"required"`
}
