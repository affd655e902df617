package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/apperrors"
	portssvc "github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/core/ports/services"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/dto"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/middleware"
	"github.com/gin-gonic/gin"
)

// employeeHandler handles HTTP requests related to employees.
type employeeHandler struct {
	employeeService portssvc.EmployeeSvcFacade
}

// newEmployeeHandler creates a new employeeHandler.
func newEmployeeHandler(es portssvc.EmployeeSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService: es,
	}
}

// registerEmployeeRoutes registers all staff-management routes.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade) {
	h := newEmployeeHandler(employeeService)

	staff := rg.Group("/staff")
	{
		staff.POST("", h.createEmployee)
		staff.GET("", h.listEmployees)
		staff.GET("/:empID", h.getEmployee)
		staff.PUT("/:empID", h.updateEmployee)
		staff.DELETE("/:empID", h.deleteEmployee)
		staff.POST("/:empID/balance", h.adjustBalance)
	}
}

// createEmployee godoc
// @Summary Create a new employee
// @Description Registers a new employee with a hashed credential and an initial leave balance.
// @Tags staff
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 409 {object} ErrorResponse "Employee ID already exists"
// @Failure 500 {object} ErrorResponse "Failed to create employee"
// @Security BearerAuth
// @Router /staff [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for create employee request", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrDuplicate):
			c.JSON(http.StatusConflict, ErrorResponse{Error: "Employee ID already exists"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		default:
			logger.Error("Failed to create employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to create employee"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// listEmployees godoc
// @Summary List employees
// @Description Returns all employees sorted by employee ID.
// @Tags staff
// @Produce  json
// @Success 200 {object} dto.ListEmployeesResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff [get]
func (h *employeeHandler) listEmployees(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employees, err := h.employeeService.ListEmployees(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list employees", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to list employees"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListEmployeesResponse(employees))
}

// getEmployee godoc
// @Summary Get an employee
// @Description Returns a single employee by ID.
// @Tags staff
// @Produce  json
// @Param   empID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{empID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("empID")

	employee, err := h.employeeService.GetEmployeeByID(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to get employee", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to get employee"})
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// updateEmployee godoc
// @Summary Update an employee
// @Description Applies a partial update; only fields present in the body change. A new password is rehashed with a fresh salt.
// @Tags staff
// @Accept  json
// @Produce  json
// @Param   empID path string true "Employee ID"
// @Param   employee body dto.UpdateEmployeeRequest true "Fields to update"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 400 {object} ErrorResponse "No recognized fields"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{empID} [put]
func (h *employeeHandler) updateEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("empID")

	var req dto.UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.employeeService.UpdateEmployee(c.Request.Context(), employeeID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		default:
			logger.Error("Failed to update employee", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to update employee"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// adjustBalance godoc
// @Summary Adjust an employee's leave balance
// @Description Applies a signed delta to the stored balance. The check and the write run under one row lock, so the balance cannot go negative through a concurrent adjustment.
// @Tags staff
// @Accept  json
// @Produce  json
// @Param   empID path string true "Employee ID"
// @Param   adjustment body dto.AdjustBalanceRequest true "Signed delta"
// @Success 200 {object} dto.AdjustBalanceResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 422 {object} ErrorResponse "Adjustment would drive the balance negative"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{empID}/balance [post]
func (h *employeeHandler) adjustBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("empID")

	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	newBalance, err := h.employeeService.AdjustBalance(c.Request.Context(), employeeID, req.Delta)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
		case errors.Is(err, apperrors.ErrInsufficientBalance):
			c.JSON(http.StatusUnprocessableEntity, ErrorResponse{Error: "Insufficient leave balance"})
		default:
			logger.Error("Failed to adjust balance", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to adjust balance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.AdjustBalanceResponse{EmployeeID: employeeID, LeaveBalance: newBalance})
}

// deleteEmployee godoc
// @Summary Delete an employee
// @Description Removes an employee record. Existing leave requests are left orphaned.
// @Tags staff
// @Produce  json
// @Param   empID path string true "Employee ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse "Employee not found"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /staff/{empID} [delete]
func (h *employeeHandler) deleteEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("empID")

	if err := h.employeeService.DeleteEmployee(c.Request.Context(), employeeID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "Employee not found"})
			return
		}
		logger.Error("Failed to delete employee", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "Failed to delete employee"})
		return
	}

	c.Status(http.StatusNoContent)
}
