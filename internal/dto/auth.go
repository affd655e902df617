package dto

// LoginRequest carries employee credentials for authentication.
type LoginRequest struct {
	EmployeeID string `json:"employeeID" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// LoginResponse is returned on successful authentication.
type LoginResponse struct {
	Token        string `json:"token"`
	EmployeeID   string `json:"employeeID"`
	Name         string `json:"name"`
	Role         string `json:"role"`
	LeaveBalance int    `json:"leaveBalance"`
}
