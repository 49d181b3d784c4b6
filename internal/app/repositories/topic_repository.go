package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/helpers"
)

// TopicRepository handles database operations for curriculum topics
type TopicRepository struct {
	db *pgxpool.Pool
}

// NewTopicRepository creates a new topic repository
func NewTopicRepository(db *pgxpool.Pool) *TopicRepository {
	return &TopicRepository{db: db}
}

// CreateTx inserts a new topic inside the caller's transaction
func (r *TopicRepository) CreateTx(ctx context.Context, tx pgx.Tx, topic *models.CurriculumTopic) error {
	query := `
		INSERT INTO curriculum_topics (subject_id, topic_name, description, is_completed)
		VALUES ($1, $2, $3, FALSE)
		RETURNING id, is_completed, created_at
	`

	err := tx.QueryRow(ctx, query,
		topic.SubjectID, topic.TopicName, helpers.GetContentNullString(topic.Description)).
		Scan(&topic.ID, &topic.IsCompleted, &topic.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating topic: %w", err)
	}

	return nil
}

// GetByID retrieves a topic by ID
func (r *TopicRepository) GetByID(ctx context.Context, id int64) (*models.CurriculumTopic, error) {
	query := `
		SELECT id, subject_id, topic_name, COALESCE(description, ''), is_completed, completed_date, created_at
		FROM curriculum_topics
		WHERE id = $1
	`

	var topic models.CurriculumTopic
	err := r.db.QueryRow(ctx, query, id).Scan(
		&topic.ID,
		&topic.SubjectID,
		&topic.TopicName,
		&topic.Description,
		&topic.IsCompleted,
		&topic.CompletedDate,
		&topic.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrTopicNotFound
		}
		return nil, fmt.Errorf("error retrieving topic: %w", err)
	}

	return &topic, nil
}

// GetBySubjectID retrieves all topics of a subject
func (r *TopicRepository) GetBySubjectID(ctx context.Context, subjectID int64) ([]*models.CurriculumTopic, error) {
	query := `
		SELECT id, subject_id, topic_name, COALESCE(description, ''), is_completed, completed_date, created_at
		FROM curriculum_topics
		WHERE subject_id = $1
		ORDER BY created_at
	`

	rows, err := r.db.Query(ctx, query, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var topics []*models.CurriculumTopic
	for rows.Next() {
		var topic models.CurriculumTopic
		if err := rows.Scan(
			&topic.ID,
			&topic.SubjectID,
			&topic.TopicName,
			&topic.Description,
			&topic.IsCompleted,
			&topic.CompletedDate,
			&topic.CreatedAt,
		); err != nil {
			return nil, err
		}
		topics = append(topics, &topic)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return topics, nil
}

// MarkCompletedTx sets is_completed and stamps completed_date inside the
// caller's transaction
func (r *TopicRepository) MarkCompletedTx(ctx context.Context, tx pgx.Tx, id int64, completedAt time.Time) error {
	query := `
		UPDATE curriculum_topics
		SET is_completed = TRUE, completed_date = $1
		WHERE id = $2
	`

	cmdTag, err := tx.Exec(ctx, query, completedAt, id)
	if err != nil {
		return fmt.Errorf("error completing topic: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTopicNotFound
	}

	return nil
}

// DeleteTx deletes a topic inside the caller's transaction
func (r *TopicRepository) DeleteTx(ctx context.Context, tx pgx.Tx, id int64) error {
	cmdTag, err := tx.Exec(ctx, `DELETE FROM curriculum_topics WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting topic: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrTopicNotFound
	}

	return nil
}
