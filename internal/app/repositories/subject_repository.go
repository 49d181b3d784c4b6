package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/helpers"
)

// SubjectRepository handles database operations for subjects
type SubjectRepository struct {
	db *pgxpool.Pool
}

// NewSubjectRepository creates a new subject repository
func NewSubjectRepository(db *pgxpool.Pool) *SubjectRepository {
	return &SubjectRepository{db: db}
}

// Create inserts a new subject with zeroed topic counters
func (r *SubjectRepository) Create(ctx context.Context, subject *models.Subject) error {
	query := `
		INSERT INTO subjects (name, code, description, teacher_id, total_topics, completed_topics)
		VALUES ($1, $2, $3, $4, 0, 0)
		RETURNING id, total_topics, completed_topics, created_at
	`

	err := r.db.QueryRow(ctx, query,
		subject.Name, subject.Code, helpers.GetContentNullString(subject.Description), subject.TeacherID).
		Scan(&subject.ID, &subject.TotalTopics, &subject.CompletedTopics, &subject.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating subject: %w", err)
	}

	return nil
}

// GetByID retrieves a subject by ID
func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*models.Subject, error) {
	query := `
		SELECT id, name, code, COALESCE(description, ''), teacher_id, total_topics, completed_topics, created_at
		FROM subjects
		WHERE id = $1
	`

	var subject models.Subject
	err := r.db.QueryRow(ctx, query, id).Scan(
		&subject.ID,
		&subject.Name,
		&subject.Code,
		&subject.Description,
		&subject.TeacherID,
		&subject.TotalTopics,
		&subject.CompletedTopics,
		&subject.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSubjectNotFound
		}
		return nil, fmt.Errorf("error retrieving subject: %w", err)
	}

	return &subject, nil
}

// GetAllByTeacher retrieves all subjects owned by a teacher, newest first
func (r *SubjectRepository) GetAllByTeacher(ctx context.Context, teacherID int64) ([]*models.Subject, error) {
	query := `
		SELECT id, name, code, COALESCE(description, ''), teacher_id, total_topics, completed_topics, created_at
		FROM subjects
		WHERE teacher_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query, teacherID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subjects []*models.Subject
	for rows.Next() {
		var subject models.Subject
		if err := rows.Scan(
			&subject.ID,
			&subject.Name,
			&subject.Code,
			&subject.Description,
			&subject.TeacherID,
			&subject.TotalTopics,
			&subject.CompletedTopics,
			&subject.CreatedAt,
		); err != nil {
			return nil, err
		}
		subjects = append(subjects, &subject)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return subjects, nil
}

// Update updates a subject's whitelisted fields
func (r *SubjectRepository) Update(ctx context.Context, subject *models.Subject) error {
	query := `
		UPDATE subjects
		SET name = $1, code = $2, description = $3
		WHERE id = $4
	`

	cmdTag, err := r.db.Exec(ctx, query,
		subject.Name, subject.Code, helpers.GetContentNullString(subject.Description), subject.ID)
	if err != nil {
		return fmt.Errorf("error updating subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// Delete deletes a subject by ID; topics cascade at the database level
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM subjects WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting subject: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrSubjectNotFound
	}

	return nil
}

// AdjustTopicCountersTx shifts the denormalized topic counters inside the
// caller's transaction. Affecting zero rows is not an error: the subject may
// already be deleted when a topic delete runs.
func (r *SubjectRepository) AdjustTopicCountersTx(ctx context.Context, tx pgx.Tx, subjectID int64, totalDelta, completedDelta int) error {
	query := `
		UPDATE subjects
		SET total_topics = total_topics + $1, completed_topics = completed_topics + $2
		WHERE id = $3
	`

	if _, err := tx.Exec(ctx, query, totalDelta, completedDelta, subjectID); err != nil {
		return fmt.Errorf("error adjusting topic counters: %w", err)
	}

	return nil
}
