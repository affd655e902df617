package domain

import "time"

// Employee represents a staff member in the domain.
// EmployeeID is the natural primary key (e.g. "KGAS01") and is immutable.
type Employee struct {
	EmployeeID   string `json:"employeeID"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	Salt         string `json:"-"`
	LeaveBalance int    `json:"leaveBalance"` // remaining leave days, never negative
	Role         string `json:"role"`
	AuditFields
}

// EmployeePatch carries the optional fields of a partial employee update.
// Nil fields are left untouched by the store. PasswordHash and Salt travel
// together and are only ever produced by the credential hasher.
type EmployeePatch struct {
	Name         *string
	PasswordHash *string
	Salt         *string
	LeaveBalance *int
	Role         *string
}

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}
