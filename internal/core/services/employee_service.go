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
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/utils"
)

// employeeService implements the credential-store operations.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new EmployeeService.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

// Ensure employeeService implements the portssvc.EmployeeSvcFacade interface
var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// Authenticate verifies the given credentials. An unknown employee ID and a
// wrong password both return apperrors.ErrNotFound: the caller must not be
// able to tell which one occurred.
func (s *employeeService) Authenticate(ctx context.Context, employeeID, password string) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		// Collapse the lookup failure into the generic signal.
		logger.Info("Authentication failed", slog.String("employee_id", employeeID))
		return nil, apperrors.ErrNotFound
	}

	if !utils.VerifyCredential(password, employee.PasswordHash, employee.Salt) {
		logger.Info("Authentication failed", slog.String("employee_id", employeeID))
		return nil, apperrors.ErrNotFound
	}

	return employee, nil
}

// CreateEmployee derives a fresh salt and hash for the supplied password and
// persists the full record atomically.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error) {
	if req.LeaveBalance < 0 {
		return nil, fmt.Errorf("%w: leave balance must not be negative", apperrors.ErrValidation)
	}

	hash, salt, err := utils.HashCredential(req.Password, "")
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	employee := domain.Employee{
		EmployeeID:   req.EmployeeID,
		Name:         req.Name,
		PasswordHash: hash,
		Salt:         salt,
		LeaveBalance: req.LeaveBalance,
		Role:         req.Role,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}

	return &employee, nil
}

func (s *employeeService) GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee by ID: %w", err)
	}
	return employee, nil
}

func (s *employeeService) ListEmployees(ctx context.Context) ([]domain.Employee, error) {
	employees, err := s.employeeRepo.FindEmployees(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return employees, nil
}

// UpdateEmployee applies only the fields present in the request. A password
// change always derives a new random salt rather than reusing the old one.
// Absent fields never reach the store, so an update racing a balance
// decrement cannot restore the old balance.
func (s *employeeService) UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.HasUpdates() {
		return nil, fmt.Errorf("%w: no recognized fields provided for update", apperrors.ErrValidation)
	}

	patch := domain.EmployeePatch{
		Name: req.Name,
		Role: req.Role,
	}
	if req.Password != nil {
		hash, salt, err := utils.HashCredential(*req.Password, "")
		if err != nil {
			return nil, err
		}
		patch.PasswordHash = &hash
		patch.Salt = &salt
	}
	if req.LeaveBalance != nil {
		if *req.LeaveBalance < 0 {
			return nil, fmt.Errorf("%w: leave balance must not be negative", apperrors.ErrValidation)
		}
		patch.LeaveBalance = req.LeaveBalance
	}

	employee, err := s.employeeRepo.UpdateEmployee(ctx, employeeID, patch)
	if err != nil {
		logger.Error("Failed to update employee", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}

	return employee, nil
}

func (s *employeeService) DeleteEmployee(ctx context.Context, employeeID string) error {
	if err := s.employeeRepo.DeleteEmployee(ctx, employeeID); err != nil {
		return fmt.Errorf("failed to delete employee: %w", err)
	}
	return nil
}

func (s *employeeService) AdjustBalance(ctx context.Context, employeeID string, delta int) (int, error) {
	newBalance, err := s.employeeRepo.AdjustBalance(ctx, employeeID, delta)
	if err != nil {
		return 0, fmt.Errorf("failed to adjust balance: %w", err)
	}
	return newBalance, nil
}
