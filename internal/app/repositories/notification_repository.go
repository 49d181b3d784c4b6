package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/pkg/apperrors"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *pgxpool.Pool
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *pgxpool.Pool) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create inserts a new notification for a user
func (r *NotificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	query := `
		INSERT INTO notifications (user_id, message)
		VALUES ($1, $2)
		RETURNING id, read, created_at
	`

	err := r.db.QueryRow(ctx, query, notification.UserID, notification.Message).
		Scan(&notification.ID, &notification.Read, &notification.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating notification: %w", err)
	}

	return nil
}

// ListByUser retrieves a user's notifications, newest first. When unreadOnly
// is set, read notifications are filtered out.
func (r *NotificationRepository) ListByUser(ctx context.Context, userID int64, unreadOnly bool) ([]*models.Notification, error) {
	query := `
		SELECT id, user_id, message, read, created_at
		FROM notifications
		WHERE user_id = $1
	`
	if unreadOnly {
		query += " AND read = FALSE"
	}
	query += " ORDER BY created_at DESC"

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*models.Notification
	for rows.Next() {
		var notification models.Notification
		if err := rows.Scan(
			&notification.ID,
			&notification.UserID,
			&notification.Message,
			&notification.Read,
			&notification.CreatedAt,
		); err != nil {
			return nil, err
		}
		notifications = append(notifications, &notification)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return notifications, nil
}

// MarkRead marks one of the user's notifications as read
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	query := `UPDATE notifications SET read = TRUE WHERE id = $1 AND user_id = $2`

	cmdTag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error marking notification read: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}

// MarkAllRead marks all of the user's notifications as read
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) error {
	query := `UPDATE notifications SET read = TRUE WHERE user_id = $1 AND read = FALSE`

	if _, err := r.db.Exec(ctx, query, userID); err != nil {
		return fmt.Errorf("error marking notifications read: %w", err)
	}

	return nil
}

// Delete deletes one of the user's notifications
func (r *NotificationRepository) Delete(ctx context.Context, id, userID int64) error {
	query := `DELETE FROM notifications WHERE id = $1 AND user_id = $2`

	cmdTag, err := r.db.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("error deleting notification: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotificationNotFound
	}

	return nil
}

// ClearByUser deletes all of the user's notifications
func (r *NotificationRepository) ClearByUser(ctx context.Context, userID int64) error {
	if _, err := r.db.Exec(ctx, `DELETE FROM notifications WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("error clearing notifications: %w", err)
	}

	return nil
}

// UnreadCount returns how many unread notifications the user has
func (r *NotificationRepository) UnreadCount(ctx context.Context, userID int64) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND read = FALSE`

	if err := r.db.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}

	return count, nil
}
