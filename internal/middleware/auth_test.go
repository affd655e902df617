package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/middleware"
	"github.com/KGas1610/HR-Leave-Suite-ClockedIn/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func setupAuthRouter(t *testing.T, onRequest func(c *gin.Context)) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", middleware.AuthMiddleware(testSecret), func(c *gin.Context) {
		if onRequest != nil {
			onRequest(c)
		}
		c.Status(http.StatusOK)
	})
	return r
}

func TestAuthMiddleware_ValidTokenExposesIdentity(t *testing.T) {
	token, err := utils.GenerateJWT("KGAS01", "Admin", testSecret, time.Hour, "test-issuer")
	require.NoError(t, err)

	var gotID, gotRole string
	var foundID, foundRole bool
	r := setupAuthRouter(t, func(c *gin.Context) {
		gotID, foundID = middleware.GetEmployeeIDFromContext(c)
		gotRole, foundRole = middleware.GetEmployeeRoleFromContext(c)
	})

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, foundID)
	assert.Equal(t, "KGAS01", gotID)
	assert.True(t, foundRole)
	assert.Equal(t, "Admin", gotRole)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	r := setupAuthRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	r := setupAuthRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "NotBearer some-token")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	token, err := utils.GenerateJWT("KGAS01", "Admin", testSecret, -time.Hour, "test-issuer")
	require.NoError(t, err)

	r := setupAuthRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "expired")
}

func TestAuthMiddleware_WrongSecret(t *testing.T) {
	token, err := utils.GenerateJWT("KGAS01", "Admin", "a-different-secret", time.Hour, "test-issuer")
	require.NoError(t, err)

	r := setupAuthRouter(t, nil)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
