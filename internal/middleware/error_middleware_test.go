package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrack/backend/internal/pkg/apperrors"
)

func TestHandleAPIError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperrors.NewValidationError("Please provide attendance records"), http.StatusBadRequest, "Please provide attendance records"},
		{"invalid credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "invalid credentials"},
		{"permission denied", apperrors.ErrPermissionDenied, http.StatusForbidden, "permission denied"},
		{"student not found", apperrors.ErrStudentNotFound, http.StatusNotFound, "student not found"},
		{"topic not found", apperrors.ErrTopicNotFound, http.StatusNotFound, "topic not found"},
		{"duplicate student email", apperrors.ErrStudentEmailExists, http.StatusBadRequest, "student with this email already exists"},
		{"already enrolled", apperrors.ErrAlreadyEnrolled, http.StatusConflict, "student already enrolled in this subject"},
		{"unknown", errors.New("database exploded"), http.StatusInternalServerError, "database exploded"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)

			HandleAPIError(c, tc.err)

			assert.Equal(t, tc.status, w.Code)

			var body struct {
				Success bool   `json:"success"`
				Message string `json:"message"`
			}
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			assert.False(t, body.Success)
			assert.Equal(t, tc.message, body.Message)
		})
	}
}
