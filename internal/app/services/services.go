// Package services contains the business logic layered between controllers
// and repositories.
package services

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/edutrack/backend/internal/app/repositories"
	"github.com/edutrack/backend/internal/pkg/auth"
	"github.com/edutrack/backend/internal/pkg/email"
)

// Services holds all service instances
type Services struct {
	AuthService         *AuthService
	StudentService      *StudentService
	SubjectService      *SubjectService
	AttendanceService   *AttendanceService
	EnrollmentService   *EnrollmentService
	ActivityService     *ActivityService
	CertificateService  *CertificateService
	ChatbotService      *ChatbotService
	NotificationService *NotificationService
	ExportService       *ExportService
}

// NewServices initializes all services
func NewServices(pool *pgxpool.Pool, repos *repositories.Repositories, jwtService *auth.JWTService, emailService email.Service) *Services {
	return &Services{
		AuthService:    NewAuthService(repos.UserRepository, jwtService),
		StudentService: NewStudentService(repos.StudentRepository, repos.EnrollmentRepository),
		SubjectService: NewSubjectService(pool, repos.SubjectRepository, repos.TopicRepository),
		AttendanceService: NewAttendanceService(
			repos.AttendanceRepository, repos.StudentRepository),
		EnrollmentService: NewEnrollmentService(
			repos.EnrollmentRepository, repos.StudentRepository, repos.SubjectRepository),
		ActivityService:    NewActivityService(repos.ActivityRepository, repos.StudentRepository),
		CertificateService: NewCertificateService(repos.CertificateRepository, repos.StudentRepository),
		ChatbotService: NewChatbotService(
			repos.UserRepository, repos.AttendanceRepository, repos.StudentRepository),
		NotificationService: NewNotificationService(
			repos.NotificationRepository, repos.UserRepository, repos.AttendanceRepository, emailService),
		ExportService: NewExportService(repos.AttendanceRepository, repos.ActivityRepository),
	}
}
