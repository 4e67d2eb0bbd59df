package models

import "time"

// AdminChallan holds the admin-configured parameters governing challan
// issuance. The schema permits many rows but the application treats the
// most recently created one as the single effective configuration.
// Numeric-looking fields are stored as text, mirroring the legacy records.
type AdminChallan struct {
	ID         int64     `json:"id" db:"id"`
	AccountNo  string    `json:"accountNo" db:"account_no"`
	Session    string    `json:"session" db:"session"` // Academic session, e.g. "2023-2024"
	Amount     string    `json:"amount" db:"amount"`
	IssueDate  string    `json:"issueDate" db:"issue_date"` // "YYYY-MM-DD"
	LastDate   string    `json:"lastDate" db:"last_date"`   // "YYYY-MM-DD"
	MaxChallan string    `json:"maxChallan" db:"max_challan"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}
