package models

import "time"

// Employee is the database row representation of an employee record.
type Employee struct {
	EmployeeID    string    `db:"emp_id"`
	Name          string    `db:"name"`
	PasswordHash  string    `db:"password_hash"`
	Salt          string    `db:"salt"`
	LeaveBalance  int       `db:"leave_balance"`
	Role          string    `db:"role"`
	CreatedAt     time.Time `db:"created_at"`
	LastUpdatedAt time.Time `db:"last_updated_at"`
}
