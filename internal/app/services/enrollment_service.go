package services

import (
	"context"

	"github.com/edutrack/backend/internal/app/models"
)

// EnrollmentStore persists the student/subject enrollment pairs
type EnrollmentStore interface {
	Add(ctx context.Context, studentID, subjectID int64) error
	Remove(ctx context.Context, studentID, subjectID int64) error
	BulkAdd(ctx context.Context, studentID int64, subjectIDs []int64) (int, error)
	GetSubjectsByStudent(ctx context.Context, studentID int64) ([]*models.Subject, error)
}

// SubjectLookup resolves subject IDs during enrollment
type SubjectLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Subject, error)
}

// EnrollmentService maintains the student/subject enrollment set
type EnrollmentService struct {
	enrollmentRepo EnrollmentStore
	studentRepo    StudentLookup
	subjectRepo    SubjectLookup
}

// NewEnrollmentService creates a new enrollment service
func NewEnrollmentService(
	enrollmentRepo EnrollmentStore,
	studentRepo StudentLookup,
	subjectRepo SubjectLookup,
) *EnrollmentService {
	return &EnrollmentService{
		enrollmentRepo: enrollmentRepo,
		studentRepo:    studentRepo,
		subjectRepo:    subjectRepo,
	}
}

// AddSubject enrolls a student in a subject. Both sides must exist, and
// enrolling twice is a conflict. Returns the student with enrollments
// populated.
func (s *EnrollmentService) AddSubject(ctx context.Context, studentID, subjectID int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if _, err := s.subjectRepo.GetByID(ctx, subjectID); err != nil {
		return nil, err
	}

	if err := s.enrollmentRepo.Add(ctx, studentID, subjectID); err != nil {
		return nil, err
	}

	return s.withSubjects(ctx, student)
}

// RemoveSubject unenrolls a student from a subject. Removing a subject the
// student is not enrolled in succeeds without effect.
func (s *EnrollmentService) RemoveSubject(ctx context.Context, studentID, subjectID int64) (*models.Student, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, err
	}

	if err := s.enrollmentRepo.Remove(ctx, studentID, subjectID); err != nil {
		return nil, err
	}

	return s.withSubjects(ctx, student)
}

// BulkAddSubjects enrolls a student in several subjects, skipping the ones
// already enrolled, and reports how many were actually added.
func (s *EnrollmentService) BulkAddSubjects(ctx context.Context, studentID int64, subjectIDs []int64) (*models.Student, int, error) {
	student, err := s.studentRepo.GetByID(ctx, studentID)
	if err != nil {
		return nil, 0, err
	}

	added, err := s.enrollmentRepo.BulkAdd(ctx, studentID, subjectIDs)
	if err != nil {
		return nil, 0, err
	}

	student, err = s.withSubjects(ctx, student)
	if err != nil {
		return nil, 0, err
	}

	return student, added, nil
}

// GetStudentSubjects lists the subjects a student is enrolled in
func (s *EnrollmentService) GetStudentSubjects(ctx context.Context, studentID int64) ([]*models.Subject, error) {
	if _, err := s.studentRepo.GetByID(ctx, studentID); err != nil {
		return nil, err
	}

	return s.enrollmentRepo.GetSubjectsByStudent(ctx, studentID)
}

func (s *EnrollmentService) withSubjects(ctx context.Context, student *models.Student) (*models.Student, error) {
	subjects, err := s.enrollmentRepo.GetSubjectsByStudent(ctx, student.ID)
	if err != nil {
		return nil, err
	}
	student.EnrolledSubjects = subjects
	return student, nil
}
