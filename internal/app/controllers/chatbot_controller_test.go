package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/services"
)

type stubUserLookup struct{ user *models.User }

func (s *stubUserLookup) GetByID(_ context.Context, _ int64) (*models.User, error) {
	return s.user, nil
}

type stubAttendanceCounter struct{ present, total int }

func (s *stubAttendanceCounter) StatusCounts(_ context.Context, _ int64) (int, int, error) {
	return s.present, s.total, nil
}

type stubStudentCounter struct{ count int }

func (s *stubStudentCounter) CountByTeacher(_ context.Context, _ int64) (int, error) {
	return s.count, nil
}

func setupChatbotRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	svc := services.NewChatbotService(
		&stubUserLookup{user: &models.User{ID: 7, Role: models.RoleStudent}},
		&stubAttendanceCounter{present: 3, total: 4},
		&stubStudentCounter{count: 12},
	)
	ctrl := NewChatbotController(svc)

	router := gin.New()
	router.POST("/api/chatbot/message", ctrl.SendMessage)
	router.GET("/api/chatbot/suggestions/:role", ctrl.GetSuggestions)
	router.GET("/api/chatbot/suggestions", ctrl.GetSuggestions)
	return router
}

func TestChatbotMessageEndpoint(t *testing.T) {
	router := setupChatbotRouter()

	body := `{"message": "How do I mark attendance?"}`
	req := httptest.NewRequest(http.MethodPost, "/api/chatbot/message", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			BotResponse string  `json:"botResponse"`
			Confidence  float64 `json:"confidence"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 0.95, resp.Data.Confidence)
	assert.Contains(t, resp.Data.BotResponse, "Mark Attendance")
}

func TestChatbotMessageEndpointEmptyMessage(t *testing.T) {
	router := setupChatbotRouter()

	req := httptest.NewRequest(http.MethodPost, "/api/chatbot/message", strings.NewReader(`{"message": ""}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Please provide a message")
}

func TestChatbotSuggestionsEndpoint(t *testing.T) {
	router := setupChatbotRouter()

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chatbot/suggestions/teacher", nil))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool `json:"success"`
		Data    struct {
			Suggestions []string `json:"suggestions"`
			Role        string   `json:"role"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "teacher", resp.Data.Role)
	assert.Len(t, resp.Data.Suggestions, 5)

	// No role falls back to the guest default list
	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/chatbot/suggestions", nil))
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "guest", resp.Data.Role)
}
