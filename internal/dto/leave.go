package dto

import (
	"time"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
)

// SubmitLeaveRequest defines the data required to file a leave request.
type SubmitLeaveRequest struct {
	EmployeeID  string  `json:"employeeID" binding:"required"`
	LeaveType   string  `json:"leaveType" binding:"required"`
	Description *string `json:"description"`
	Days        int     `json:"days" binding:"required,gt=0"`
	PaidLeave   bool    `json:"paidLeave"`
}

// SubmitLeaveResponse returns the identifier assigned to a new request.
type SubmitLeaveResponse struct {
	RequestID int64 `json:"requestID"`
}

// LeaveRequestResponse is the public representation of a leave request.
type LeaveRequestResponse struct {
	RequestID     int64     `json:"requestID"`
	EmployeeID    string    `json:"employeeID"`
	LeaveType     string    `json:"leaveType"`
	Description   *string   `json:"description,omitempty"`
	DaysRequested int       `json:"daysRequested"`
	PaidLeave     bool      `json:"paidLeave"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
}

// ListLeaveRequestsResponse wraps a list of leave requests.
type ListLeaveRequestsResponse struct {
	Requests []LeaveRequestResponse `json:"requests"`
}

// ToLeaveRequestResponse converts a domain.LeaveRequest to its response DTO.
func ToLeaveRequestResponse(r *domain.LeaveRequest) LeaveRequestResponse {
	return LeaveRequestResponse{
		RequestID:     r.RequestID,
		EmployeeID:    r.EmployeeID,
		LeaveType:     r.LeaveType,
		Description:   r.Description,
		DaysRequested: r.DaysRequested,
		PaidLeave:     r.PaidLeave,
		Status:        string(r.Status),
		CreatedAt:     r.CreatedAt,
	}
}

// ToListLeaveRequestsResponse converts a slice of domain.LeaveRequest to ListLeaveRequestsResponse.
func ToListLeaveRequestsResponse(requests []domain.LeaveRequest) ListLeaveRequestsResponse {
	responses := make([]LeaveRequestResponse, len(requests))
	for i, r := range requests {
		responses[i] = ToLeaveRequestResponse(&r)
	}
	return ListLeaveRequestsResponse{Requests: responses}
}
