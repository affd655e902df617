package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/apperrors"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
	portsrepo "github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/ports/repositories"
	portssvc "github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/ports/services"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/dto"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/middleware"
)

// leaveService implements the leave workflow operations.
type leaveService struct {
	leaveRepo portsrepo.LeaveRepositoryFacade
}

// NewLeaveService creates a new LeaveService.
func NewLeaveService(leaveRepo portsrepo.LeaveRepositoryFacade) portssvc.LeaveSvcFacade {
	return &leaveService{leaveRepo: leaveRepo}
}

// Ensure leaveService implements the portssvc.LeaveSvcFacade interface
var _ portssvc.LeaveSvcFacade = (*leaveService)(nil)

// SubmitLeaveRequest creates a Pending request. The employee's balance is not
// checked here: balance sufficiency is only evaluated at approval time. A
// submission referencing a nonexistent employee is accepted and only fails at
// approval.
func (s *leaveService) SubmitLeaveRequest(ctx context.Context, req dto.SubmitLeaveRequest) (int64, error) {
	if req.Days <= 0 {
		return 0, fmt.Errorf("%w: requested days must be a positive integer", apperrors.ErrValidation)
	}
	if req.EmployeeID == "" {
		return 0, fmt.Errorf("%w: employee ID must be provided", apperrors.ErrValidation)
	}
	if req.LeaveType == "" {
		return 0, fmt.Errorf("%w: leave type must be provided", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	request := domain.LeaveRequest{
		EmployeeID:    req.EmployeeID,
		LeaveType:     req.LeaveType,
		Description:   req.Description,
		DaysRequested: req.Days,
		PaidLeave:     req.PaidLeave,
		Status:        domain.StatusPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	requestID, err := s.leaveRepo.SaveLeaveRequest(ctx, request)
	if err != nil {
		return 0, fmt.Errorf("failed to submit leave request: %w", err)
	}

	return requestID, nil
}

func (s *leaveService) GetLeaveRequestByID(ctx context.Context, requestID int64) (*domain.LeaveRequest, error) {
	request, err := s.leaveRepo.FindLeaveRequestByID(ctx, requestID)
	if err != nil {
		return nil, fmt.Errorf("failed to get leave request: %w", err)
	}
	return request, nil
}

func (s *leaveService) ListLeaveRequestsForEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	requests, err := s.leaveRepo.FindLeaveRequestsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests for employee: %w", err)
	}
	return requests, nil
}

func (s *leaveService) ListAllLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	requests, err := s.leaveRepo.FindAllLeaveRequests(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	return requests, nil
}

// ApproveLeaveRequest approves a Pending request. The repository performs the
// load, the terminality guard, the balance check and both writes as one
// transaction; the service only logs the outcome.
func (s *leaveService) ApproveLeaveRequest(ctx context.Context, requestID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.leaveRepo.ApproveLeaveRequest(ctx, requestID); err != nil {
		logger.Warn("Leave request approval rejected", slog.Int64("request_id", requestID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Leave request approved", slog.Int64("request_id", requestID))
	return nil
}

// DenyLeaveRequest denies a Pending request. Denial of an already-finalized
// request is rejected with ErrAlreadyFinal, mirroring the approval guard.
func (s *leaveService) DenyLeaveRequest(ctx context.Context, requestID int64) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.leaveRepo.DenyLeaveRequest(ctx, requestID); err != nil {
		logger.Warn("Leave request denial rejected", slog.Int64("request_id", requestID), slog.String("error", err.Error()))
		return err
	}

	logger.Info("Leave request denied", slog.Int64("request_id", requestID))
	return nil
}
