package repositories

import (
	"context"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
)

// EmployeeReader defines read operations for employee data
type EmployeeReader interface {
	// FindEmployeeByID retrieves a specific employee by their ID.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// FindEmployees retrieves all employees ordered by employee ID.
	FindEmployees(ctx context.Context) ([]domain.Employee, error)
}

// EmployeeWriter defines write operations for employee data
type EmployeeWriter interface {
	// SaveEmployee persists a new employee. Returns apperrors.ErrDuplicate if
	// the employee ID is already taken; the existence check and the insert run
	// in one transaction.
	SaveEmployee(ctx context.Context, employee domain.Employee) error

	// UpdateEmployee applies the present patch fields to an existing employee.
	// The row is read and rewritten under one lock, so a concurrent balance
	// mutation is never overwritten by an unrelated field update. Returns the
	// updated record.
	UpdateEmployee(ctx context.Context, employeeID string, patch domain.EmployeePatch) (*domain.Employee, error)

	// DeleteEmployee removes an employee record. Leave requests referencing the
	// employee are left in place.
	DeleteEmployee(ctx context.Context, employeeID string) error

	// AdjustBalance applies delta to the stored leave balance under a row lock
	// and returns the new balance. Fails with apperrors.ErrInsufficientBalance
	// if the result would be negative.
	AdjustBalance(ctx context.Context, employeeID string, delta int) (int, error)
}

// EmployeeRepositoryFacade combines all employee-related repository interfaces
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}

// EmployeeRepositoryWithTx extends EmployeeRepositoryFacade with transaction capabilities
type EmployeeRepositoryWithTx interface {
	EmployeeRepositoryFacade
	TransactionManager
}
