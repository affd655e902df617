package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/apperrors"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/dto"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockLeaveService struct {
	mock.Mock
}

func (m *mockLeaveService) SubmitLeaveRequest(ctx context.Context, req dto.SubmitLeaveRequest) (int64, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockLeaveService) GetLeaveRequestByID(ctx context.Context, requestID int64) (*domain.LeaveRequest, error) {
	args := m.Called(ctx, requestID)
	var request *domain.LeaveRequest
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.LeaveRequest)
	}
	return request, args.Error(1)
}

func (m *mockLeaveService) ListLeaveRequestsForEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx, employeeID)
	var requests []domain.LeaveRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.LeaveRequest)
	}
	return requests, args.Error(1)
}

func (m *mockLeaveService) ListAllLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	args := m.Called(ctx)
	var requests []domain.LeaveRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.LeaveRequest)
	}
	return requests, args.Error(1)
}

func (m *mockLeaveService) ApproveLeaveRequest(ctx context.Context, requestID int64) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

func (m *mockLeaveService) DenyLeaveRequest(ctx context.Context, requestID int64) error {
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

func setupLeaveRouter(svc *mockLeaveService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	rg := r.Group("/api/v1")
	registerLeaveRoutes(rg, svc)
	return r
}

func TestLeaveRoutes_EmployeeListingPath(t *testing.T) {
	svc := new(mockLeaveService)
	svc.On("ListLeaveRequestsForEmployee", mock.Anything, "KGAS01").
		Return([]domain.LeaveRequest{{RequestID: 1, EmployeeID: "KGAS01", Status: domain.StatusPending}}, nil).Once()

	r := setupLeaveRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leave/employee/KGAS01", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "KGAS01")
	svc.AssertExpectations(t)
}

// The self-service path carries no employee parameter; without an
// authenticated identity in the context it must refuse.
func TestLeaveRoutes_MineRequiresIdentity(t *testing.T) {
	svc := new(mockLeaveService)
	r := setupLeaveRouter(svc)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/leave/mine", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	svc.AssertNotCalled(t, "ListLeaveRequestsForEmployee")
}

func TestLeaveRoutes_ApproveStatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "success", serviceErr: nil, wantStatus: http.StatusOK},
		{name: "not found", serviceErr: apperrors.ErrNotFound, wantStatus: http.StatusNotFound},
		{name: "already finalized", serviceErr: apperrors.ErrAlreadyFinal, wantStatus: http.StatusConflict},
		{name: "insufficient balance", serviceErr: apperrors.ErrInsufficientBalance, wantStatus: http.StatusUnprocessableEntity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockLeaveService)
			svc.On("ApproveLeaveRequest", mock.Anything, int64(7)).Return(tt.serviceErr).Once()

			r := setupLeaveRouter(svc)

			w := httptest.NewRecorder()
			r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/leave/7/approve", nil))

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
