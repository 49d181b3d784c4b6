package services

import (
	"context"
	"strings"
	"time"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/repositories"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/helpers"
)

// CertificateService handles certificate records
type CertificateService struct {
	certificateRepo *repositories.CertificateRepository
	studentRepo     *repositories.StudentRepository
}

// NewCertificateService creates a new certificate service
func NewCertificateService(certificateRepo *repositories.CertificateRepository, studentRepo *repositories.StudentRepository) *CertificateService {
	return &CertificateService{
		certificateRepo: certificateRepo,
		studentRepo:     studentRepo,
	}
}

// UploadCertificate records a certificate for a student. A missing issue
// date defaults to now.
func (s *CertificateService) UploadCertificate(ctx context.Context, req *dto.UploadCertificateRequest) (*models.Certificate, error) {
	activity := strings.TrimSpace(req.Activity)
	if req.StudentID == 0 || activity == "" {
		return nil, apperrors.NewValidationError("Please provide student ID and activity title")
	}

	if _, err := s.studentRepo.GetByID(ctx, req.StudentID); err != nil {
		return nil, err
	}

	issueDate := time.Now()
	if req.IssueDate != "" {
		parsed, err := helpers.ParseFlexibleDate(req.IssueDate)
		if err != nil {
			return nil, apperrors.NewValidationError("Invalid issue date")
		}
		issueDate = parsed
	}

	certificate := &models.Certificate{
		StudentID:      req.StudentID,
		Activity:       activity,
		IssueDate:      issueDate,
		CertificateURL: strings.TrimSpace(req.CertificateURL),
	}

	if err := s.certificateRepo.Create(ctx, certificate); err != nil {
		return nil, err
	}

	return certificate, nil
}

// GetCertificates lists all certificates with their students, newest first
func (s *CertificateService) GetCertificates(ctx context.Context) ([]*models.Certificate, error) {
	return s.certificateRepo.GetAll(ctx)
}

// GetStudentCertificates lists one student's certificates, newest first
func (s *CertificateService) GetStudentCertificates(ctx context.Context, studentID int64) ([]*models.Certificate, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	return s.certificateRepo.GetByStudent(ctx, studentID)
}

// DeleteCertificate removes a certificate record
func (s *CertificateService) DeleteCertificate(ctx context.Context, id int64) error {
	return s.certificateRepo.Delete(ctx, id)
}
