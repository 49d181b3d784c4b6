package services

import (
	"context"
	"strings"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/repositories"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/logger"
)

// StudentService handles the student roster
type StudentService struct {
	studentRepo    *repositories.StudentRepository
	enrollmentRepo *repositories.EnrollmentRepository
}

// NewStudentService creates a new student service
func NewStudentService(studentRepo *repositories.StudentRepository, enrollmentRepo *repositories.EnrollmentRepository) *StudentService {
	return &StudentService{
		studentRepo:    studentRepo,
		enrollmentRepo: enrollmentRepo,
	}
}

// CreateStudent adds a student to the caller's roster
func (s *StudentService) CreateStudent(ctx context.Context, teacherID int64, req *dto.CreateStudentRequest) (*models.Student, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.ToLower(strings.TrimSpace(req.Email))
	rollNumber := strings.TrimSpace(req.RollNumber)
	class := strings.TrimSpace(req.Class)

	if name == "" || email == "" || rollNumber == "" || class == "" {
		return nil, apperrors.NewValidationError("Please provide all required fields")
	}

	exists, err := s.studentRepo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrStudentEmailExists
	}

	student := &models.Student{
		Name:       name,
		Email:      email,
		RollNumber: rollNumber,
		Class:      class,
		TeacherID:  teacherID,
	}

	if err := s.studentRepo.Create(ctx, student); err != nil {
		return nil, err
	}

	logger.Info().Int64("studentId", student.ID).Int64("teacherId", teacherID).Msg("Student created")
	return student, nil
}

// GetStudents lists the caller's students, newest first
func (s *StudentService) GetStudents(ctx context.Context, teacherID int64) ([]*models.Student, error) {
	return s.studentRepo.GetAllByTeacher(ctx, teacherID)
}

// GetStudent retrieves one student with their enrolled subjects populated
func (s *StudentService) GetStudent(ctx context.Context, id int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	subjects, err := s.enrollmentRepo.GetSubjectsByStudent(ctx, id)
	if err != nil {
		return nil, err
	}
	student.EnrolledSubjects = subjects

	return student, nil
}

// UpdateStudent applies the whitelisted fields present in the request
func (s *StudentService) UpdateStudent(ctx context.Context, id int64, req *dto.UpdateStudentRequest) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		student.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		student.Email = strings.ToLower(strings.TrimSpace(*req.Email))
	}
	if req.RollNumber != nil {
		student.RollNumber = strings.TrimSpace(*req.RollNumber)
	}
	if req.Class != nil {
		student.Class = strings.TrimSpace(*req.Class)
	}

	if err := s.studentRepo.Update(ctx, student); err != nil {
		return nil, err
	}

	return student, nil
}

// DeleteStudent removes a student; their attendance, activities, certificates
// and enrollments cascade at the database level.
func (s *StudentService) DeleteStudent(ctx context.Context, id int64) error {
	if err := s.studentRepo.Delete(ctx, id); err != nil {
		return err
	}

	logger.Info().Int64("studentId", id).Msg("Student deleted")
	return nil
}
