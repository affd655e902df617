package repositories

import (
	"context"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
)

// LeaveReader defines read operations for leave request data
type LeaveReader interface {
	// FindLeaveRequestByID retrieves a specific leave request by its identifier.
	FindLeaveRequestByID(ctx context.Context, requestID int64) (*domain.LeaveRequest, error)

	// FindLeaveRequestsByEmployee retrieves all leave requests belonging to the
	// given employee, oldest first.
	FindLeaveRequestsByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error)

	// FindAllLeaveRequests retrieves every leave request, most recently created first.
	FindAllLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error)
}

// LeaveWriter defines write operations for leave request data
type LeaveWriter interface {
	// SaveLeaveRequest persists a new Pending request and returns its assigned ID.
	SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) (int64, error)

	// ApproveLeaveRequest atomically transitions a Pending request to Approved
	// and decrements the owning employee's balance by the requested days. The
	// request row and the employee row are locked for the duration, so
	// concurrent approvals serialize. Neither write is visible without the
	// other. Fails with ErrNotFound, ErrAlreadyFinal or ErrInsufficientBalance.
	ApproveLeaveRequest(ctx context.Context, requestID int64) error

	// DenyLeaveRequest transitions a Pending request to Denied. Fails with
	// ErrNotFound if absent and ErrAlreadyFinal if the request already reached
	// a terminal status.
	DenyLeaveRequest(ctx context.Context, requestID int64) error
}

// LeaveRepositoryFacade combines all leave-related repository interfaces
type LeaveRepositoryFacade interface {
	LeaveReader
	LeaveWriter
}

// LeaveRepositoryWithTx extends LeaveRepositoryFacade with transaction capabilities
type LeaveRepositoryWithTx interface {
	LeaveRepositoryFacade
	TransactionManager
}
