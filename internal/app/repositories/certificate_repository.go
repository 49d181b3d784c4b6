package repositories

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/helpers"
)

// CertificateRepository handles database operations for certificates
type CertificateRepository struct {
	db *pgxpool.Pool
}

// NewCertificateRepository creates a new certificate repository
func NewCertificateRepository(db *pgxpool.Pool) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// Create inserts a new certificate
func (r *CertificateRepository) Create(ctx context.Context, certificate *models.Certificate) error {
	query := `
		INSERT INTO certificates (student_id, activity, issue_date, certificate_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		certificate.StudentID,
		certificate.Activity,
		certificate.IssueDate,
		helpers.GetContentNullString(certificate.CertificateURL)).
		Scan(&certificate.ID, &certificate.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating certificate: %w", err)
	}

	return nil
}

// GetAll retrieves all certificates with the student populated, newest first
func (r *CertificateRepository) GetAll(ctx context.Context) ([]*models.Certificate, error) {
	query := `
		SELECT c.id, c.student_id, c.activity, c.issue_date, COALESCE(c.certificate_url, ''), c.created_at,
		       s.id, s.name, s.email, s.roll_number, s.class, s.teacher_id, s.enrollment_date
		FROM certificates c
		JOIN students s ON s.id = c.student_id
		ORDER BY c.issue_date DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certificates []*models.Certificate
	for rows.Next() {
		var certificate models.Certificate
		var student models.Student
		if err := rows.Scan(
			&certificate.ID,
			&certificate.StudentID,
			&certificate.Activity,
			&certificate.IssueDate,
			&certificate.CertificateURL,
			&certificate.CreatedAt,
			&student.ID,
			&student.Name,
			&student.Email,
			&student.RollNumber,
			&student.Class,
			&student.TeacherID,
			&student.EnrollmentDate,
		); err != nil {
			return nil, err
		}
		certificate.Student = &student
		certificates = append(certificates, &certificate)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return certificates, nil
}

// GetByStudent retrieves a student's certificates, newest first
func (r *CertificateRepository) GetByStudent(ctx context.Context, studentID int64) ([]*models.Certificate, error) {
	query := `
		SELECT id, student_id, activity, issue_date, COALESCE(certificate_url, ''), created_at
		FROM certificates
		WHERE student_id = $1
		ORDER BY issue_date DESC
	`

	rows, err := r.db.Query(ctx, query, studentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var certificates []*models.Certificate
	for rows.Next() {
		var certificate models.Certificate
		if err := rows.Scan(
			&certificate.ID,
			&certificate.StudentID,
			&certificate.Activity,
			&certificate.IssueDate,
			&certificate.CertificateURL,
			&certificate.CreatedAt,
		); err != nil {
			return nil, err
		}
		certificates = append(certificates, &certificate)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return certificates, nil
}

// Delete deletes a certificate by ID
func (r *CertificateRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM certificates WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting certificate: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrCertificateNotFound
	}

	return nil
}
