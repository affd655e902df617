package models

import "time"

// LeaveRequest is the database row representation of a leave request.
type LeaveRequest struct {
	RequestID     int64     `db:"request_id"`
	EmployeeID    string    `db:"emp_id"`
	LeaveType     string    `db:"leave_type"`
	Description   *string   `db:"description"`
	DaysRequested int       `db:"days_requested"`
	PaidLeave     bool      `db:"paid_leave"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
