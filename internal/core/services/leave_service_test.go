package services_test

import (
	"context"
	"testing"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/apperrors"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/domain"
	portssvc "github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/ports/services"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/services"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock LeaveRepository (based on LeaveService usage) ---
type MockLeaveRepository struct {
	mock.Mock
	SaveLeaveRequestFn            func(ctx context.Context, request domain.LeaveRequest) (int64, error)
	FindLeaveRequestByIDFn        func(ctx context.Context, requestID int64) (*domain.LeaveRequest, error)
	FindLeaveRequestsByEmployeeFn func(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error)
	FindAllLeaveRequestsFn        func(ctx context.Context) ([]domain.LeaveRequest, error)
	ApproveLeaveRequestFn         func(ctx context.Context, requestID int64) error
	DenyLeaveRequestFn            func(ctx context.Context, requestID int64) error
}

func (m *MockLeaveRepository) SaveLeaveRequest(ctx context.Context, request domain.LeaveRequest) (int64, error) {
	if m.SaveLeaveRequestFn != nil {
		return m.SaveLeaveRequestFn(ctx, request)
	}
	args := m.Called(ctx, request)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockLeaveRepository) FindLeaveRequestByID(ctx context.Context, requestID int64) (*domain.LeaveRequest, error) {
	if m.FindLeaveRequestByIDFn != nil {
		return m.FindLeaveRequestByIDFn(ctx, requestID)
	}
	args := m.Called(ctx, requestID)
	var request *domain.LeaveRequest
	if args.Get(0) != nil {
		request = args.Get(0).(*domain.LeaveRequest)
	}
	return request, args.Error(1)
}

func (m *MockLeaveRepository) FindLeaveRequestsByEmployee(ctx context.Context, employeeID string) ([]domain.LeaveRequest, error) {
	if m.FindLeaveRequestsByEmployeeFn != nil {
		return m.FindLeaveRequestsByEmployeeFn(ctx, employeeID)
	}
	args := m.Called(ctx, employeeID)
	var requests []domain.LeaveRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.LeaveRequest)
	}
	return requests, args.Error(1)
}

func (m *MockLeaveRepository) FindAllLeaveRequests(ctx context.Context) ([]domain.LeaveRequest, error) {
	if m.FindAllLeaveRequestsFn != nil {
		return m.FindAllLeaveRequestsFn(ctx)
	}
	args := m.Called(ctx)
	var requests []domain.LeaveRequest
	if args.Get(0) != nil {
		requests = args.Get(0).([]domain.LeaveRequest)
	}
	return requests, args.Error(1)
}

func (m *MockLeaveRepository) ApproveLeaveRequest(ctx context.Context, requestID int64) error {
	if m.ApproveLeaveRequestFn != nil {
		return m.ApproveLeaveRequestFn(ctx, requestID)
	}
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

func (m *MockLeaveRepository) DenyLeaveRequest(ctx context.Context, requestID int64) error {
	if m.DenyLeaveRequestFn != nil {
		return m.DenyLeaveRequestFn(ctx, requestID)
	}
	args := m.Called(ctx, requestID)
	return args.Error(0)
}

// --- Test Suite ---
type LeaveServiceTestSuite struct {
	suite.Suite
	mockLeaveRepo *MockLeaveRepository
	service       portssvc.LeaveSvcFacade
}

func (suite *LeaveServiceTestSuite) SetupTest() {
	suite.mockLeaveRepo = new(MockLeaveRepository)
	suite.service = services.NewLeaveService(suite.mockLeaveRepo)
}

// --- SubmitLeaveRequest Tests ---

func (suite *LeaveServiceTestSuite) TestSubmitLeaveRequest_Success() {
	ctx := context.Background()
	description := "Family trip"
	req := dto.SubmitLeaveRequest{
		EmployeeID:  "KGAS01",
		LeaveType:   "Annual",
		Description: &description,
		Days:        5,
		PaidLeave:   true,
	}

	suite.mockLeaveRepo.On("SaveLeaveRequest", ctx, mock.MatchedBy(func(r domain.LeaveRequest) bool {
		return r.EmployeeID == "KGAS01" &&
			r.LeaveType == "Annual" &&
			r.DaysRequested == 5 &&
			r.PaidLeave &&
			r.Status == domain.StatusPending
	})).Return(int64(42), nil).Once()

	requestID, err := suite.service.SubmitLeaveRequest(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(42), requestID)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestSubmitLeaveRequest_NonPositiveDays() {
	ctx := context.Background()

	for _, days := range []int{0, -3} {
		req := dto.SubmitLeaveRequest{EmployeeID: "KGAS01", LeaveType: "Annual", Days: days}

		_, err := suite.service.SubmitLeaveRequest(ctx, req)

		suite.Require().Error(err)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SaveLeaveRequest")
}

func (suite *LeaveServiceTestSuite) TestSubmitLeaveRequest_MissingFields() {
	ctx := context.Background()

	_, err := suite.service.SubmitLeaveRequest(ctx, dto.SubmitLeaveRequest{LeaveType: "Annual", Days: 1})
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.SubmitLeaveRequest(ctx, dto.SubmitLeaveRequest{EmployeeID: "KGAS01", Days: 1})
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockLeaveRepo.AssertNotCalled(suite.T(), "SaveLeaveRequest")
}

// Submission never checks the employee's balance or existence; a request for
// an unknown employee is accepted and only fails at approval.
func (suite *LeaveServiceTestSuite) TestSubmitLeaveRequest_NoBalanceCheckAtSubmission() {
	ctx := context.Background()
	req := dto.SubmitLeaveRequest{EmployeeID: "doesnotexist", LeaveType: "Annual", Days: 9999}

	suite.mockLeaveRepo.On("SaveLeaveRequest", ctx, mock.AnythingOfType("domain.LeaveRequest")).Return(int64(7), nil).Once()

	requestID, err := suite.service.SubmitLeaveRequest(ctx, req)

	suite.Require().NoError(err)
	suite.Equal(int64(7), requestID)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

// --- GetLeaveRequestByID Tests ---

func (suite *LeaveServiceTestSuite) TestGetLeaveRequestByID_Success() {
	ctx := context.Background()
	expected := &domain.LeaveRequest{RequestID: 42, EmployeeID: "KGAS01", Status: domain.StatusPending}
	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, int64(42)).Return(expected, nil).Once()

	request, err := suite.service.GetLeaveRequestByID(ctx, 42)

	suite.Require().NoError(err)
	suite.Equal(expected, request)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestGetLeaveRequestByID_NotFound() {
	ctx := context.Background()
	suite.mockLeaveRepo.On("FindLeaveRequestByID", ctx, int64(404)).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetLeaveRequestByID(ctx, 404)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

// --- ApproveLeaveRequest Tests ---

func (suite *LeaveServiceTestSuite) TestApproveLeaveRequest_Success() {
	ctx := context.Background()
	suite.mockLeaveRepo.On("ApproveLeaveRequest", ctx, int64(1)).Return(nil).Once()

	err := suite.service.ApproveLeaveRequest(ctx, 1)

	suite.Require().NoError(err)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestApproveLeaveRequest_NotFound() {
	ctx := context.Background()
	suite.mockLeaveRepo.On("ApproveLeaveRequest", ctx, int64(99)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.ApproveLeaveRequest(ctx, 99)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

// A second approval of the same request must be rejected, not re-applied.
func (suite *LeaveServiceTestSuite) TestApproveLeaveRequest_SecondApprovalRejected() {
	ctx := context.Background()
	suite.mockLeaveRepo.On("ApproveLeaveRequest", ctx, int64(1)).Return(nil).Once()
	suite.mockLeaveRepo.On("ApproveLeaveRequest", ctx, int64(1)).Return(apperrors.ErrAlreadyFinal).Once()

	first := suite.service.ApproveLeaveRequest(ctx, 1)
	second := suite.service.ApproveLeaveRequest(ctx, 1)

	suite.Require().NoError(first)
	suite.Require().Error(second)
	suite.ErrorIs(second, apperrors.ErrAlreadyFinal)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestApproveLeaveRequest_InsufficientBalance() {
	ctx := context.Background()
	suite.mockLeaveRepo.On("ApproveLeaveRequest", ctx, int64(2)).Return(apperrors.ErrInsufficientBalance).Once()

	err := suite.service.ApproveLeaveRequest(ctx, 2)

	suite.ErrorIs(err, apperrors.ErrInsufficientBalance)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

// --- DenyLeaveRequest Tests ---

func (suite *LeaveServiceTestSuite) TestDenyLeaveRequest_Success() {
	ctx := context.Background()
	suite.mockLeaveRepo.On("DenyLeaveRequest", ctx, int64(1)).Return(nil).Once()

	err := suite.service.DenyLeaveRequest(ctx, 1)

	suite.Require().NoError(err)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestDenyLeaveRequest_AlreadyFinal() {
	ctx := context.Background()
	suite.mockLeaveRepo.On("DenyLeaveRequest", ctx, int64(1)).Return(apperrors.ErrAlreadyFinal).Once()

	err := suite.service.DenyLeaveRequest(ctx, 1)

	suite.ErrorIs(err, apperrors.ErrAlreadyFinal)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestDenyLeaveRequest_NotFound() {
	ctx := context.Background()
	suite.mockLeaveRepo.On("DenyLeaveRequest", ctx, int64(404)).Return(apperrors.ErrNotFound).Once()

	err := suite.service.DenyLeaveRequest(ctx, 404)

	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

// --- Listing Tests ---

func (suite *LeaveServiceTestSuite) TestListLeaveRequestsForEmployee() {
	ctx := context.Background()
	expected := []domain.LeaveRequest{
		{RequestID: 1, EmployeeID: "KGAS01", Status: domain.StatusApproved},
		{RequestID: 3, EmployeeID: "KGAS01", Status: domain.StatusPending},
	}
	suite.mockLeaveRepo.On("FindLeaveRequestsByEmployee", ctx, "KGAS01").Return(expected, nil).Once()

	requests, err := suite.service.ListLeaveRequestsForEmployee(ctx, "KGAS01")

	suite.Require().NoError(err)
	suite.Equal(expected, requests)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func (suite *LeaveServiceTestSuite) TestListAllLeaveRequests() {
	ctx := context.Background()
	expected := []domain.LeaveRequest{
		{RequestID: 5, EmployeeID: "MBAT02"},
		{RequestID: 4, EmployeeID: "KGAS01"},
	}
	suite.mockLeaveRepo.On("FindAllLeaveRequests", ctx).Return(expected, nil).Once()

	requests, err := suite.service.ListAllLeaveRequests(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, requests)
	suite.mockLeaveRepo.AssertExpectations(suite.T())
}

func TestLeaveServiceTestSuite(t *testing.T) {
	suite.Run(t, new(LeaveServiceTestSuite))
}
