package pgsql

import (
	"testing"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/apperrors"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTerminalityGuard(t *testing.T) {
	tests := []struct {
		name    string
		status  domain.LeaveStatus
		wantErr error
	}{
		{name: "pending passes", status: domain.StatusPending, wantErr: nil},
		{name: "approved rejected", status: domain.StatusApproved, wantErr: apperrors.ErrAlreadyFinal},
		{name: "denied rejected", status: domain.StatusDenied, wantErr: apperrors.ErrAlreadyFinal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := terminalityGuard(1, tt.status)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestBalanceGuard_Boundaries(t *testing.T) {
	tests := []struct {
		name    string
		balance int
		days    int
		wantErr error
	}{
		{name: "days below balance", balance: 10, days: 3, wantErr: nil},
		{name: "days exactly equal balance", balance: 10, days: 10, wantErr: nil},
		{name: "days one over balance", balance: 10, days: 11, wantErr: apperrors.ErrInsufficientBalance},
		{name: "zero balance single day", balance: 0, days: 1, wantErr: apperrors.ErrInsufficientBalance},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := balanceGuard(tt.balance, tt.days)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

// A second approval of the same request is evaluated against the terminal
// status the first one wrote, so the decrement is applied exactly once.
func TestApprovalGuards_DoubleApproveRejectedOnce(t *testing.T) {
	status := domain.StatusPending
	balance := 10
	days := 4

	require.NoError(t, terminalityGuard(1, status))
	require.NoError(t, balanceGuard(balance, days))
	balance -= days
	status = domain.StatusApproved

	err := terminalityGuard(1, status)
	assert.ErrorIs(t, err, apperrors.ErrAlreadyFinal)
	assert.Equal(t, 6, balance)
}

// Spend the whole balance, then a follow-up request is rejected with the
// balance left at zero.
func TestApprovalGuards_ExhaustedBalanceScenario(t *testing.T) {
	balance := 10

	require.NoError(t, terminalityGuard(1, domain.StatusPending))
	require.NoError(t, balanceGuard(balance, 10))
	balance -= 10
	assert.Equal(t, 0, balance)

	require.NoError(t, terminalityGuard(2, domain.StatusPending))
	err := balanceGuard(balance, 1)
	assert.ErrorIs(t, err, apperrors.ErrInsufficientBalance)
	assert.Equal(t, 0, balance)
}
