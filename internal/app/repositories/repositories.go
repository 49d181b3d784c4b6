// Package repositories contains the data access layer backed by PostgreSQL.
package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all repository instances
type Repositories struct {
	UserRepository         *UserRepository
	StudentRepository      *StudentRepository
	SubjectRepository      *SubjectRepository
	TopicRepository        *TopicRepository
	AttendanceRepository   *AttendanceRepository
	EnrollmentRepository   *EnrollmentRepository
	ActivityRepository     *ActivityRepository
	CertificateRepository  *CertificateRepository
	NotificationRepository *NotificationRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		UserRepository:         NewUserRepository(db),
		StudentRepository:      NewStudentRepository(db),
		SubjectRepository:      NewSubjectRepository(db),
		TopicRepository:        NewTopicRepository(db),
		AttendanceRepository:   NewAttendanceRepository(db),
		EnrollmentRepository:   NewEnrollmentRepository(db),
		ActivityRepository:     NewActivityRepository(db),
		CertificateRepository:  NewCertificateRepository(db),
		NotificationRepository: NewNotificationRepository(db),
	}
}
