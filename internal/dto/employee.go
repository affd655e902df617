package dto

import (
	"time"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
)

// CreateEmployeeRequest defines the data required to register a new employee.
type CreateEmployeeRequest struct {
	EmployeeID   string `json:"employeeID" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Password     string `json:"password" binding:"required"`
	LeaveBalance int    `json:"leaveBalance" binding:"gte=0"`
	Role         string `json:"role" binding:"required"`
}

// UpdateEmployeeRequest defines the data allowed for updating an employee.
// Pointer fields differentiate omitted fields from zero-value fields; only
// present fields are applied.
type UpdateEmployeeRequest struct {
	Name         *string `json:"name"`
	Password     *string `json:"password"`
	LeaveBalance *int    `json:"leaveBalance" binding:"omitempty,gte=0"`
	Role         *string `json:"role"`
}

// HasUpdates reports whether at least one recognized field is present.
func (r UpdateEmployeeRequest) HasUpdates() bool {
	return r.Name != nil || r.Password != nil || r.LeaveBalance != nil || r.Role != nil
}

// AdjustBalanceRequest applies a signed delta to an employee's leave balance.
type AdjustBalanceRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// AdjustBalanceResponse returns the balance after the adjustment.
type AdjustBalanceResponse struct {
	EmployeeID   string `json:"employeeID"`
	LeaveBalance int    `json:"leaveBalance"`
}

// EmployeeResponse is the public representation of an employee. The password
// hash and salt never leave the service boundary.
type EmployeeResponse struct {
	EmployeeID    string    `json:"employeeID"`
	Name          string    `json:"name"`
	LeaveBalance  int       `json:"leaveBalance"`
	Role          string    `json:"role"`
	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// ListEmployeesResponse wraps the list of employees.
type ListEmployeesResponse struct {
	Employees []EmployeeResponse `json:"employees"`
}

// ToEmployeeResponse converts a domain.Employee to its response DTO.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	return EmployeeResponse{
		EmployeeID:    e.EmployeeID,
		Name:          e.Name,
		LeaveBalance:  e.LeaveBalance,
		Role:          e.Role,
		CreatedAt:     e.CreatedAt,
		LastUpdatedAt: e.LastUpdatedAt,
	}
}

// ToListEmployeesResponse converts a slice of domain.Employee to ListEmployeesResponse.
func ToListEmployeesResponse(employees []domain.Employee) ListEmployeesResponse {
	responses := make([]EmployeeResponse, len(employees))
	for i, e := range employees {
		responses[i] = ToEmployeeResponse(&e)
	}
	return ListEmployeesResponse{Employees: responses}
}
