package services

import (
	"context"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/dto"
)

// LeaveSvcFacade defines the leave workflow operations.
type LeaveSvcFacade interface {
	// SubmitLeaveRequest creates a Pending request and returns its assigned ID.
	// The balance is not checked at submission time; an invalid employee
	// reference only surfaces at approval.
	SubmitLeaveRequest(ctx context.Context, req dto.SubmitLeaveRequest) (int64, error)

	// GetLeaveRequestByID returns a single request by its identifier.
	GetLeaveRequestByID(ctx context.Context, requestID int64) (*domain.LeaveRequest, error)

	// ListLeaveRequestsForEmployee returns the requests owned by one employee.
	ListLeaveRequestsForEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error)

	// ListAllLeaveRequests returns every request, newest first.
	ListAllLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error)

	// ApproveLeaveRequest approves a Pending request and decrements the owning
	// employee's balance in one atomic unit.
	ApproveLeaveRequest(ctx context.Context, requestID int64) error

	// DenyLeaveRequest denies a Pending request.
	DenyLeaveRequest(ctx context.Context, requestID int64) error
}
