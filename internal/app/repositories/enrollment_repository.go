package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/dberrors"
)

// EnrollmentRepository maintains the student/subject enrollment set
type EnrollmentRepository struct {
	db *pgxpool.Pool
}

// NewEnrollmentRepository creates a new enrollment repository
func NewEnrollmentRepository(db *pgxpool.Pool) *EnrollmentRepository {
	return &EnrollmentRepository{db: db}
}

// Add enrolls a student in a subject. The composite primary key turns a
// duplicate enrollment into a conflict error.
func (r *EnrollmentRepository) Add(ctx context.Context, studentID, subjectID int64) error {
	query := `
		INSERT INTO enrollments (student_id, subject_id)
		VALUES ($1, $2)
	`

	if _, err := r.db.Exec(ctx, query, studentID, subjectID); err != nil {
		if dberrors.IsDuplicateConstraintError(err, "enrollments_pkey") {
			return apperrors.ErrAlreadyEnrolled
		}
		return fmt.Errorf("error adding enrollment: %w", err)
	}

	return nil
}

// Remove unenrolls a student from a subject. Removing a non-member is a
// silent no-op.
func (r *EnrollmentRepository) Remove(ctx context.Context, studentID, subjectID int64) error {
	query := `DELETE FROM enrollments WHERE student_id = $1 AND subject_id = $2`

	if _, err := r.db.Exec(ctx, query, studentID, subjectID); err != nil {
		return fmt.Errorf("error removing enrollment: %w", err)
	}

	return nil
}

// BulkAdd enrolls a student in several subjects, skipping the ones already
// enrolled, and reports how many rows were actually inserted.
func (r *EnrollmentRepository) BulkAdd(ctx context.Context, studentID int64, subjectIDs []int64) (int, error) {
	if len(subjectIDs) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO enrollments (student_id, subject_id)
		SELECT $1, unnest($2::bigint[])
		ON CONFLICT ON CONSTRAINT enrollments_pkey DO NOTHING
	`

	cmdTag, err := r.db.Exec(ctx, query, studentID, subjectIDs)
	if err != nil {
		return 0, fmt.Errorf("error bulk adding enrollments: %w", err)
	}

	return int(cmdTag.RowsAffected()), nil
}

// GetSubjectsByStudent retrieves the subjects a student is enrolled in
func (r *EnrollmentRepository) GetSubjectsByStudent(ctx context.Context, studentID int64) ([]*models.Subject, error) {
	query := `
		SELECT s.id, s.name, s.code, COALESCE(s.description, ''), s.teacher_id,
		       s.total_topics, s.completed_topics, s.created_at
		FROM enrollments e
		JOIN subjects s ON s.id = e.subject_id
		WHERE e.student_id = $1
		ORDER BY e.enrolled_at
	`

	rows, err := r.db.Query(ctx, query, studentID)
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
