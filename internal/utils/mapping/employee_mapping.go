package mapping

import (
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/models"
)

// ToModelEmployee converts a domain.Employee to its database row model.
func ToModelEmployee(d domain.Employee) models.Employee {
	return models.Employee{
		EmployeeID:    d.EmployeeID,
		Name:          d.Name,
		PasswordHash:  d.PasswordHash,
		Salt:          d.Salt,
		LeaveBalance:  d.LeaveBalance,
		Role:          d.Role,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainEmployee converts a database row model to a domain.Employee.
func ToDomainEmployee(m models.Employee) domain.Employee {
	return domain.Employee{
		EmployeeID:   m.EmployeeID,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		Salt:         m.Salt,
		LeaveBalance: m.LeaveBalance,
		Role:         m.Role,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainEmployeeSlice converts a slice of row models to domain employees.
func ToDomainEmployeeSlice(ms []models.Employee) []domain.Employee {
	ds := make([]domain.Employee, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainEmployee(m)
	}
	return ds
}
