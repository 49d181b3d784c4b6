package repositories

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edutrack/backend/internal/app/models"
)

// AttendanceRepository handles database operations for attendance records
type AttendanceRepository struct {
	db *pgxpool.Pool
}

// NewAttendanceRepository creates a new attendance repository
func NewAttendanceRepository(db *pgxpool.Pool) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

// Upsert writes the attendance record for (student, day) atomically. The
// unique constraint on (student_id, date) makes the second mark for the same
// day an in-place update; the later call's status wins.
func (r *AttendanceRepository) Upsert(ctx context.Context, record *models.AttendanceRecord) error {
	query := `
		INSERT INTO attendance_records (student_id, date, status, marked_by)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT ON CONSTRAINT attendance_student_date_key
		DO UPDATE SET status = EXCLUDED.status, marked_by = EXCLUDED.marked_by
		RETURNING id, date, created_at
	`

	err := r.db.QueryRow(ctx, query,
		record.StudentID, record.Date, record.Status, record.MarkedBy).
		Scan(&record.ID, &record.Date, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("error upserting attendance record: %w", err)
	}

	return nil
}

// ReportFilter narrows the attendance report query
type ReportFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	StudentID int64
	Status    string
	Class     string
}

// GetReport retrieves attendance records matching the filter, newest first,
// with student and marker details joined in.
func (r *AttendanceRepository) GetReport(ctx context.Context, filter ReportFilter) ([]*models.AttendanceRecord, error) {
	query := `
		SELECT a.id, a.student_id, a.date, a.status, a.marked_by, a.created_at,
		       s.name, s.email, u.name
		FROM attendance_records a
		JOIN students s ON s.id = a.student_id
		JOIN users u ON u.id = a.marked_by
	`

	args := []any{}
	clauses := []string{}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		clauses = append(clauses, fmt.Sprintf("a.date >= $%d", len(args)))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		clauses = append(clauses, fmt.Sprintf("a.date <= $%d", len(args)))
	}
	if filter.StudentID != 0 {
		args = append(args, filter.StudentID)
		clauses = append(clauses, fmt.Sprintf("a.student_id = $%d", len(args)))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		clauses = append(clauses, fmt.Sprintf("a.status = $%d", len(args)))
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

	var records []*models.AttendanceRecord
	for rows.Next() {
		var record models.AttendanceRecord
		if err := rows.Scan(
			&record.ID,
			&record.StudentID,
			&record.Date,
			&record.Status,
			&record.MarkedBy,
			&record.CreatedAt,
			&record.StudentName,
			&record.StudentEmail,
			&record.MarkerName,
		); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return records, nil
}

// StatusCounts returns (present, total) record counts for one student
func (r *AttendanceRepository) StatusCounts(ctx context.Context, studentID int64) (present, total int, err error) {
	query := `
		SELECT COUNT(*) FILTER (WHERE status = 'present'), COUNT(*)
		FROM attendance_records
		WHERE student_id = $1
	`

	if err := r.db.QueryRow(ctx, query, studentID).Scan(&present, &total); err != nil {
		return 0, 0, fmt.Errorf("error counting attendance: %w", err)
	}

	return present, total, nil
}
