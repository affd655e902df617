package mapping

import (
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/models"
)

// ToModelLeaveRequest converts a domain.LeaveRequest to its database row model.
func ToModelLeaveRequest(d domain.LeaveRequest) models.LeaveRequest {
	return models.LeaveRequest{
		RequestID:     d.RequestID,
		EmployeeID:    d.EmployeeID,
		LeaveType:     d.LeaveType,
		Description:   d.Description,
		DaysRequested: d.DaysRequested,
		PaidLeave:     d.PaidLeave,
		Status:        string(d.Status),
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}
}

// ToDomainLeaveRequest converts a database row model to a domain.LeaveRequest.
func ToDomainLeaveRequest(m models.LeaveRequest) domain.LeaveRequest {
	return domain.LeaveRequest{
		RequestID:     m.RequestID,
		EmployeeID:    m.EmployeeID,
		LeaveType:     m.LeaveType,
		Description:   m.Description,
		DaysRequested: m.DaysRequested,
		PaidLeave:     m.PaidLeave,
		Status:        domain.LeaveStatus(m.Status),
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}

// ToDomainLeaveRequestSlice converts a slice of row models to domain leave requests.
func ToDomainLeaveRequestSlice(ms []models.LeaveRequest) []domain.LeaveRequest {
	ds := make([]domain.LeaveRequest, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainLeaveRequest(m)
	}
	return ds
}
