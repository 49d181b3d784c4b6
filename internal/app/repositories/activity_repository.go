package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/helpers"
)

// ActivityRepository handles database operations for activities
type ActivityRepository struct {
	db *pgxpool.Pool
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *pgxpool.Pool) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// Create inserts a new activity
func (r *ActivityRepository) Create(ctx context.Context, activity *models.Activity) error {
	query := `
		INSERT INTO activities (student_id, title, description, category, date, added_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		activity.StudentID,
		activity.Title,
		helpers.GetContentNullString(activity.Description),
		helpers.GetContentNullString(activity.Category),
		activity.Date,
		activity.AddedBy).
		Scan(&activity.ID, &activity.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating activity: %w", err)
	}

	return nil
}

// ActivityFilter narrows the activity list query
type ActivityFilter struct {
	StudentID int64
	Category  string
	StartDate *time.Time
	EndDate   *time.Time
	Class     string
}

// List retrieves activities matching the filter, newest first, with student
// and adder details joined in.
func (r *ActivityRepository) List(ctx context.Context, filter ActivityFilter) ([]*models.Activity, error) {
	query := `
		SELECT a.id, a.student_id, a.title, COALESCE(a.description, ''), COALESCE(a.category, ''),
		       a.date, a.added_by, a.created_at, s.name, s.email, u.name
		FROM activities a
		JOIN students s ON s.id = a.student_id
		JOIN users u ON u.id = a.added_by
	`

	args := []any{}
	clauses := []string{}
	if filter.StudentID != 0 {
		args = append(args, filter.StudentID)
		clauses = append(clauses, fmt.Sprintf("a.student_id = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		clauses = append(clauses, fmt.Sprintf("a.category = $%d", len(args)))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		clauses = append(clauses, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		clauses = append(clauses, fmt.Sprintf("a.date <= $%d", len(args)))
	}
	if filter.Class != "" {
		args = append(args, filter.Class)
		clauses = append(clauses, fmt.Sprintf("s.class = $%d", len(args)))
	}

	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY a.date DESC"

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var activities []*models.Activity
	for rows.Next() {
		var activity models.Activity
		if err := rows.Scan(
			&activity.ID,
			&activity.StudentID,
			&activity.Title,
			&activity.Description,
			&activity.Category,
			&activity.Date,
			&activity.AddedBy,
			&activity.CreatedAt,
			&activity.StudentName,
			&activity.StudentEmail,
			&activity.AdderName,
		); err != nil {
			return nil, err
		}
		activities = append(activities, &activity)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return activities, nil
}

// Delete deletes an activity by ID
func (r *ActivityRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting activity: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrActivityNotFound
	}

	return nil
}
