package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/repositories"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/email"
	"github.com/edutrack/backend/internal/pkg/logger"
)

// NotificationService handles in-app notifications and outbound alerts
type NotificationService struct {
	notificationRepo *repositories.NotificationRepository
	userRepo         *repositories.UserRepository
	attendanceRepo   *repositories.AttendanceRepository
	emailService     email.Service
}

// NewNotificationService creates a new notification service
func NewNotificationService(
	notificationRepo *repositories.NotificationRepository,
	userRepo *repositories.UserRepository,
	attendanceRepo *repositories.AttendanceRepository,
	emailService email.Service,
) *NotificationService {
	return &NotificationService{
		notificationRepo: notificationRepo,
		userRepo:         userRepo,
		attendanceRepo:   attendanceRepo,
		emailService:     emailService,
	}
}

// GetNotifications lists a user's notifications, newest first
func (s *NotificationService) GetNotifications(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID, unreadOnly)
}

// MarkAsRead marks one notification as read
func (s *NotificationService) MarkAsRead(ctx context.Context, id, userID int64) error {
	return s.notificationRepo.MarkRead(ctx, id, userID)
}

// MarkAllAsRead marks all of the user's notifications as read
func (s *NotificationService) MarkAllAsRead(ctx context.Context, userID int64) error {
	return s.notificationRepo.MarkAllRead(ctx, userID)
}

// DeleteNotification removes one notification
func (s *NotificationService) DeleteNotification(ctx context.Context, id, userID int64) error {
	return s.notificationRepo.Delete(ctx, id, userID)
}

// ClearAll removes all of the user's notifications
func (s *NotificationService) ClearAll(ctx context.Context, userID int64) error {
	return s.notificationRepo.ClearByUser(ctx, userID)
}

// GetUnreadCount returns the user's unread notification count
func (s *NotificationService) GetUnreadCount(ctx context.Context, userID int64) (int, error) {
	return s.notificationRepo.UnreadCount(ctx, userID)
}

// Broadcast creates a notification for every user, optionally filtered by
// role, and sends the announcement email. Email delivery failures are logged
// and do not fail the broadcast.
func (s *NotificationService) Broadcast(ctx context.Context, message, role string) (int, error) {
	if strings.TrimSpace(message) == "" {
		return 0, apperrors.NewValidationError("Message is required")
	}

	users, err := s.userRepo.GetAll(ctx, role)
	if err != nil {
		return 0, err
	}

	for _, user := range users {
		notification := &models.Notification{
			UserID:  user.ID,
			Message: message,
		}
		if err := s.notificationRepo.Create(ctx, notification); err != nil {
			return 0, err
		}

		if err := s.emailService.SendAnnouncement(user.Email, user.Name, message); err != nil {
			logger.Warn().Err(err).Int64("userId", user.ID).Msg("Failed to send announcement email")
		}
	}

	logger.Info().Int("sentTo", len(users)).Str("role", role).Msg("Announcement broadcasted")
	return len(users), nil
}

// SendAttendanceAlert emails a user their attendance percentage and records
// an in-app notification of the alert.
func (s *NotificationService) SendAttendanceAlert(ctx context.Context, userID int64) (*models.Notification, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	present, total, err := s.attendanceRepo.StatusCounts(ctx, userID)
	if err != nil {
		return nil, err
	}

	percentage := 0
	if total > 0 {
		percentage = int(float64(present)/float64(total)*100 + 0.5)
	}

	if err := s.emailService.SendAttendanceAlert(user.Email, user.Name, percentage); err != nil {
		logger.Warn().Err(err).Int64("userId", userID).Msg("Failed to send attendance alert email")
	}

	notification := &models.Notification{
		UserID:  userID,
		Message: fmt.Sprintf("Attendance alert: your attendance rate is %d%%", percentage),
	}
	if err := s.notificationRepo.Create(ctx, notification); err != nil {
		return nil, err
	}

	return notification, nil
}
