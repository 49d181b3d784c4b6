package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/pkg/auth"
)

func setupAuthRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "edutrack.test",
	})
	m := NewAuthMiddleware(jwtService)

	router := gin.New()
	protected := router.Group("", m.JWTAuth())
	protected.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userID": GetUserID(c), "role": c.GetString(ContextRole)})
	})
	protected.GET("/staff", m.RoleRequired("teacher", "admin"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	return router, jwtService
}

func TestJWTAuthMissingToken(t *testing.T) {
	router, _ := setupAuthRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthInvalidToken(t *testing.T) {
	router, _ := setupAuthRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not.a.token")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTAuthValidToken(t *testing.T) {
	router, jwtService := setupAuthRouter(t)

	token, _, err := jwtService.GenerateToken(&models.User{ID: 5, Email: "jane@school.edu", Role: models.RoleTeacher})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userID":5`)
	assert.Contains(t, w.Body.String(), `"role":"teacher"`)
}

func TestRoleRequired(t *testing.T) {
	router, jwtService := setupAuthRouter(t)

	teacherToken, _, err := jwtService.GenerateToken(&models.User{ID: 5, Role: models.RoleTeacher})
	require.NoError(t, err)
	studentToken, _, err := jwtService.GenerateToken(&models.User{ID: 7, Role: models.RoleStudent})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+teacherToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/staff", nil)
	req.Header.Set("Authorization", "Bearer "+studentToken)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)
}
