package services

import (
	"context"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/dto"
)

// EmployeeSvcFacade defines the credential-store operations exposed to the
// routing layer and to the leave workflow.
type EmployeeSvcFacade interface {
	// Authenticate verifies an employee's credentials. Unknown employee IDs
	// and wrong passwords both yield apperrors.ErrNotFound so a caller cannot
	// probe which IDs exist.
	Authenticate(ctx context.Context, employeeID, password string) (*domain.Employee, error)

	// CreateEmployee derives a fresh salt/hash pair for the supplied password
	// and persists the record. Fails with apperrors.ErrDuplicate if the ID is taken.
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest) (*domain.Employee, error)

	// GetEmployeeByID retrieves a single employee.
	GetEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	// ListEmployees retrieves all employees sorted by employee ID.
	ListEmployees(ctx context.Context) ([]domain.Employee, error)

	// UpdateEmployee applies only the fields present in the request. A password
	// change rehashes with a newly generated salt. Fails with
	// apperrors.ErrValidation when no recognized field is present.
	UpdateEmployee(ctx context.Context, employeeID string, req dto.UpdateEmployeeRequest) (*domain.Employee, error)

	// DeleteEmployee removes an employee. Pending leave requests are orphaned.
	DeleteEmployee(ctx context.Context, employeeID string) error

	// AdjustBalance applies delta (typically negative) to the employee's leave
	// balance and returns the new value.
	AdjustBalance(ctx context.Context, employeeID string, delta int) (int, error)
}
