package domain_test

import (
	"testing"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestLeaveStatus_IsTerminal(t *testing.T) {
	tests := []struct {
		name   string
		status domain.LeaveStatus
		want   bool
	}{
		{name: "pending is not terminal", status: domain.StatusPending, want: false},
		{name: "approved is terminal", status: domain.StatusApproved, want: true},
		{name: "denied is terminal", status: domain.StatusDenied, want: true},
		{name: "unknown status is not terminal", status: domain.LeaveStatus("Withdrawn"), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.status.IsTerminal())
		})
	}
}

func TestLeaveStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   domain.LeaveStatus
		to     domain.LeaveStatus
		want   bool
	}{
		{name: "pending to approved", from: domain.StatusPending, to: domain.StatusApproved, want: true},
		{name: "pending to denied", from: domain.StatusPending, to: domain.StatusDenied, want: true},
		{name: "pending to pending", from: domain.StatusPending, to: domain.StatusPending, want: false},
		{name: "approved to denied", from: domain.StatusApproved, to: domain.StatusDenied, want: false},
		{name: "approved to approved", from: domain.StatusApproved, to: domain.StatusApproved, want: false},
		{name: "denied to approved", from: domain.StatusDenied, to: domain.StatusApproved, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}
