package middleware

import "github.com/gin-gonic/gin"

// employeeIDKey is the key used to store the authenticated employee's ID in the context.
const employeeIDKey = contextKey("employeeID")

// employeeRoleKey is the key used to store the authenticated employee's role in the context.
const employeeRoleKey = contextKey("employeeRole")

// GetEmployeeIDFromContext retrieves the authenticated employee ID from the Gin context.
// It returns the employee ID and a boolean indicating if it was found.
func GetEmployeeIDFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(employeeIDKey))
	if !exists {
		// check in the request context as well
		ctxVal := c.Request.Context().Value(employeeIDKey)
		if ctxVal != nil {
			return ctxVal.(string), true
		}
		return "", false
	}

	employeeID, ok := val.(string)
	if !ok {
		return "", false
	}

	return employeeID, true
}

// GetEmployeeRoleFromContext retrieves the authenticated employee's role from the Gin context.
func GetEmployeeRoleFromContext(c *gin.Context) (string, bool) {
	val, exists := c.Get(string(employeeRoleKey))
	if !exists {
		ctxVal := c.Request.Context().Value(employeeRoleKey)
		if ctxVal != nil {
			return ctxVal.(string), true
		}
		return "", false
	}

	role, ok := val.(string)
	if !ok {
		return "", false
	}

	return role, true
}
