package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/pkg/apperrors"
)

type fakeUserLookup struct {
	user *models.User
	err  error
}

func (f *fakeUserLookup) GetByID(_ context.Context, _ int64) (*models.User, error) {
	return f.user, f.err
}

type fakeAttendanceCounter struct {
	present int
	total   int
	err     error
}

func (f *fakeAttendanceCounter) StatusCounts(_ context.Context, _ int64) (int, int, error) {
	return f.present, f.total, f.err
}

type fakeStudentCounter struct {
	count int
	err   error
}

func (f *fakeStudentCounter) CountByTeacher(_ context.Context, _ int64) (int, error) {
	return f.count, f.err
}

func newTestChatbot(user *models.User, present, total, students int) *ChatbotService {
	return NewChatbotService(
		&fakeUserLookup{user: user},
		&fakeAttendanceCounter{present: present, total: total},
		&fakeStudentCounter{count: students},
	)
}

func TestSendMessageKeywordMatch(t *testing.T) {
	svc := newTestChatbot(nil, 0, 0, 0)

	resp, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		Message: "How do I mark attendance?",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.95, resp.Confidence)
	assert.Contains(t, resp.BotResponse, "Mark Attendance")
	assert.Equal(t, "How do I mark attendance?", resp.UserMessage)
}

func TestSendMessageFirstMatchWins(t *testing.T) {
	svc := newTestChatbot(nil, 0, 0, 0)

	// "hey" hits the greeting entry before any later entry can match
	resp, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		Message: "hey, what about my course?",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.95, resp.Confidence)
	assert.Contains(t, resp.BotResponse, "Welcome to EduTrack")
}

func TestSendMessageFallback(t *testing.T) {
	svc := newTestChatbot(nil, 0, 0, 0)

	resp, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		Message: "zzz qqq xyzzy",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.3, resp.Confidence)
	assert.Contains(t, resp.BotResponse, "I'm not sure about that")
}

func TestSendMessageEmpty(t *testing.T) {
	svc := newTestChatbot(nil, 0, 0, 0)

	_, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{Message: "   "})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestSendMessageAttendancePercentage(t *testing.T) {
	student := &models.User{ID: 7, Role: models.RoleStudent}
	svc := newTestChatbot(student, 3, 4, 0)

	resp, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		Message: "what is my attendance percentage",
		UserID:  7,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.98, resp.Confidence)
	// 3/4 rounds to 75%
	assert.Contains(t, resp.BotResponse, "75%")
	assert.Contains(t, resp.BotResponse, "Total Records: 4")
	assert.Contains(t, resp.BotResponse, "Present: 3")
}

func TestSendMessageAttendanceZeroRecords(t *testing.T) {
	student := &models.User{ID: 7, Role: models.RoleStudent}
	svc := newTestChatbot(student, 0, 0, 0)

	resp, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		Message: "my attendance please",
		UserID:  7,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.98, resp.Confidence)
	assert.Contains(t, resp.BotResponse, "0%")
}

func TestSendMessageAttendanceIgnoredForTeacher(t *testing.T) {
	teacher := &models.User{ID: 5, Role: models.RoleTeacher}
	svc := newTestChatbot(teacher, 3, 4, 0)

	resp, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		Message: "my attendance please",
		UserID:  5,
	})
	require.NoError(t, err)

	// Falls through to the keyword table ("attendance" matches)
	assert.Equal(t, 0.95, resp.Confidence)
}

func TestSendMessageStudentCount(t *testing.T) {
	teacher := &models.User{ID: 5, Role: models.RoleTeacher}
	svc := newTestChatbot(teacher, 0, 0, 12)

	resp, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		Message: "how many students do I have?",
		UserID:  5,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.98, resp.Confidence)
	assert.Contains(t, resp.BotResponse, "**12**")
}

func TestSendMessageStudentCountRequiresUserID(t *testing.T) {
	teacher := &models.User{ID: 5, Role: models.RoleTeacher}
	svc := newTestChatbot(teacher, 0, 0, 12)

	resp, err := svc.SendMessage(context.Background(), &dto.ChatMessageRequest{
		Message: "how many students do I have?",
	})
	require.NoError(t, err)

	// Without a user the data-driven intent never fires; "student" still
	// matches the table.
	assert.Equal(t, 0.95, resp.Confidence)
}

func TestGetSuggestions(t *testing.T) {
	svc := newTestChatbot(nil, 0, 0, 0)

	teacher := svc.GetSuggestions("teacher")
	assert.Equal(t, "teacher", teacher.Role)
	assert.Len(t, teacher.Suggestions, 5)

	unknown := svc.GetSuggestions("janitor")
	assert.Equal(t, "janitor", unknown.Role)
	assert.Equal(t, defaultSuggestions, unknown.Suggestions)

	guest := svc.GetSuggestions("")
	assert.Equal(t, "guest", guest.Role)
	assert.Equal(t, defaultSuggestions, guest.Suggestions)
}
