package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/apperrors"
	portssvc "github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/ports/services"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/dto"
)

// sampleEmployees is the demo data set loaded when seeding is enabled.
// Passwords pass through the normal hashing path; nothing is stored in plain text.
var sampleEmployees = []dto.CreateEmployeeRequest{
	{EmployeeID: "MAN01", Name: "Patrick", Password: "SuchIsLife", LeaveBalance: 45, Role: "Manager"},
	{EmployeeID: "KGAS01", Name: "Kaleb", Password: "451", LeaveBalance: 27, Role: "Admin"},
	{EmployeeID: "MBAT02", Name: "Mbasa", Password: "454", LeaveBalance: 32, Role: "Frontend Dev"},
	{EmployeeID: "IKOL03", Name: "Inga", Password: "451", LeaveBalance: 14, Role: "Chief Consultant"},
	{EmployeeID: "TMOK04", Name: "Tshwaraganang", Password: "456", LeaveBalance: 30, Role: "System Analyst"},
	{EmployeeID: "AKRI05", Name: "Ayron", Password: "455", LeaveBalance: 23, Role: "Backend Dev"},
	{EmployeeID: "SMAT06", Name: "Sekwele", Password: "454", LeaveBalance: 10, Role: "Data Analyst"},
}

// SampleEmployees seeds the demo employees through the regular create path.
// Employees that already exist are skipped, so running it repeatedly is safe.
func SampleEmployees(ctx context.Context, employeeService portssvc.EmployeeSvcFacade, logger *slog.Logger) error {
	for _, req := range sampleEmployees {
		_, err := employeeService.CreateEmployee(ctx, req)
		if err != nil {
			if errors.Is(err, apperrors.ErrDuplicate) {
				continue
			}
			return fmt.Errorf("failed to seed employee %s: %w", req.EmployeeID, err)
		}
		logger.Info("Seeded sample employee", slog.String("employee_id", req.EmployeeID))
	}
	return nil
}
