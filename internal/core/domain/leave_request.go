package domain

// LeaveStatus represents the state of a leave request.
type LeaveStatus string

const (
	StatusPending  LeaveStatus = "Pending"
	StatusApproved LeaveStatus = "Approved"
	StatusDenied   LeaveStatus = "Denied"
)

// IsTerminal reports whether no further transition is permitted from s.
func (s LeaveStatus) IsTerminal() bool {
	return s == StatusApproved || s == StatusDenied
}

// CanTransitionTo reports whether the transition from s to target is allowed
// by the workflow state machine. The only legal transitions are
// Pending -> Approved and Pending -> Denied.
func (s LeaveStatus) CanTransitionTo(target LeaveStatus) bool {
	if s != StatusPending {
		return false
	}
	return target == StatusApproved || target == StatusDenied
}

// LeaveRequest represents a single time-off request owned by an employee.
// Requests are never deleted; once Approved or Denied they are immutable.
type LeaveRequest struct {
	RequestID     int64       `json:"requestID"`
	EmployeeID    string      `json:"employeeID"`
	LeaveType     string      `json:"leaveType"`
	Description   *string     `json:"description,omitempty"`
	DaysRequested int         `json:"daysRequested"`
	PaidLeave     bool        `json:"paidLeave"`
	Status        LeaveStatus `json:"status"`
	AuditFields
}
