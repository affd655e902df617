package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/apperrors"
	portssvc "github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/ports/services"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/dto"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/middleware"
	"github.com/gin-gonic/gin"
)

// leaveHandler handles HTTP requests for the leave workflow.
type leaveHandler struct {
	leaveService portssvc.LeaveSvcFacade
}

// newLeaveHandler creates a new leaveHandler.
func newLeaveHandler(ls portssvc.LeaveSvcFacade) *leaveHandler {
	return &leaveHandler{
		leaveService: ls,
	}
}

// registerLeaveRoutes registers all leave workflow routes.
func registerLeaveRoutes(rg *gin.RouterGroup, leaveService portssvc.LeaveSvcFacade) {
	h := newLeaveHandler(leaveService)

	leave := rg.Group("/leave")
	{
		leave.POST("", h.submitLeaveRequest)
		leave.GET("", h.listAllLeaveRequests)
		leave.GET("/mine", h.listOwnLeaveRequests)
		leave.GET("/employee/:empID", h.listLeaveRequestsForEmployee)
		leave.GET("/:requestID", h.getLeaveRequest)
		leave.POST("/:requestID/approve", h.approveLeaveRequest)
		leave.POST("/:requestID/deny", h.denyLeaveRequest)
	}
}

func parseRequestID(c *gin.Context) (int64, bool) {
	requestID, err := strconv.ParseInt(c.Param("requestID"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request ID"})
		return 0, false
	}
	return requestID, true
}

// submitLeaveRequest godoc
// @Summary Submit a leave request
// @Description Files a new Pending leave request. The balance is only checked at approval time.
// @Tags leave
// @Accept  json
// @Produce  json
// @Param   request body dto.SubmitLeaveRequest true "Leave request details"
// @Success 201 {object} dto.SubmitLeaveResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave [post]
func (h *leaveHandler) submitLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.SubmitLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	requestID, err := h.leaveService.SubmitLeaveRequest(c.Request.Context(), req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		logger.Error("Failed to submit leave request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to submit leave request"})
		return
	}

	c.JSON(http.StatusCreated, dto.SubmitLeaveResponse{RequestID: requestID})
}

// listOwnLeaveRequests godoc
// @Summary List the caller's leave requests
// @Description Returns the leave requests filed by the authenticated employee, resolved from the token subject.
// @Tags leave
// @Produce  json
// @Success 200 {object} dto.ListLeaveRequestsResponse
// @Failure 401 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/mine [get]
func (h *leaveHandler) listOwnLeaveRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID, ok := middleware.GetEmployeeIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "Authentication required"})
		return
	}

	requests, err := h.leaveService.ListLeaveRequestsForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		logger.Error("Failed to list own leave requests", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list leave requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLeaveRequestsResponse(requests))
}

// getLeaveRequest godoc
// @Summary Get a leave request
// @Description Returns a single leave request by its identifier.
// @Tags leave
// @Produce  json
// @Param   requestID path int true "Request ID"
// @Success 200 {object} dto.LeaveRequestResponse
// @Failure 400 {object} ErrorResponse "Invalid request ID"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/{requestID} [get]
func (h *leaveHandler) getLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	request, err := h.leaveService.GetLeaveRequestByID(c.Request.Context(), requestID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Leave request not found"})
			return
		}
		logger.Error("Failed to get leave request", slog.Int64("request_id", requestID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get leave request"})
		return
	}

	c.JSON(http.StatusOK, dto.ToLeaveRequestResponse(request))
}

// listLeaveRequestsForEmployee godoc
// @Summary List an employee's leave requests
// @Description Returns all leave requests filed by the given employee, oldest first.
// @Tags leave
// @Produce  json
// @Param   empID path string true "Employee ID"
// @Success 200 {object} dto.ListLeaveRequestsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/employee/{empID} [get]
func (h *leaveHandler) listLeaveRequestsForEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("empID")

	requests, err := h.leaveService.ListLeaveRequestsForEmployee(c.Request.Context(), employeeID)
	if err != nil {
		logger.Error("Failed to list leave requests for employee", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list leave requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLeaveRequestsResponse(requests))
}

// listAllLeaveRequests godoc
// @Summary List all leave requests
// @Description Returns every leave request, most recently created first.
// @Tags leave
// @Produce  json
// @Success 200 {object} dto.ListLeaveRequestsResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave [get]
func (h *leaveHandler) listAllLeaveRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requests, err := h.leaveService.ListAllLeaveRequests(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list leave requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list leave requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListLeaveRequestsResponse(requests))
}

// approveLeaveRequest godoc
// @Summary Approve a leave request
// @Description Approves a Pending request and decrements the employee's balance atomically.
// @Tags leave
// @Produce  json
// @Param   requestID path int true "Request ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid request ID"
// @Failure 404 {object} ErrorResponse "Request or employee not found"
// @Failure 409 {object} ErrorResponse "Request already finalized"
// @Failure 422 {object} ErrorResponse "Insufficient leave balance"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/{requestID}/approve [post]
func (h *leaveHandler) approveLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	if err := h.leaveService.ApproveLeaveRequest(c.Request.Context(), requestID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Leave request or employee not found"})
		case errors.Is(err, apperrors.ErrAlreadyFinal):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Leave request already finalized"})
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Insufficient leave balance"})
		default:
			logger.Error("Failed to approve leave request", slog.Int64("request_id", requestID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to approve leave request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Approved"})
}

// denyLeaveRequest godoc
// @Summary Deny a leave request
// @Description Denies a Pending request. Requests that already reached a terminal status are rejected.
// @Tags leave
// @Produce  json
// @Param   requestID path int true "Request ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} ErrorResponse "Invalid request ID"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already finalized"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /leave/{requestID}/deny [post]
func (h *leaveHandler) denyLeaveRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	requestID, ok := parseRequestID(c)
	if !ok {
		return
	}

	if err := h.leaveService.DenyLeaveRequest(c.Request.Context(), requestID); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Leave request not found"})
		case errors.Is(err, apperrors.ErrAlreadyFinal):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Leave request already finalized"})
		default:
			logger.Error("Failed to deny leave request", slog.Int64("request_id", requestID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to deny leave request"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "Denied"})
}
