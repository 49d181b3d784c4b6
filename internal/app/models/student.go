package models

import (
	"time"
)

// Student defines the student model based on the 'students' table
type Student struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	Name           string    `json:"name" db:"name" example:"Ali Khan"`
	Email          string    `json:"email" db:"email" example:"ali@student.edu"` // Unique across students
	RollNumber     string    `json:"rollNumber" db:"roll_number" example:"23"`
	Class          string    `json:"class" db:"class" example:"10-A"`
	TeacherID      int64     `json:"teacherId" db:"teacher_id" example:"5"` // Owning teacher
	EnrollmentDate time.Time `json:"enrollmentDate" db:"enrollment_date"`

	// Relations (populated when needed)
	EnrolledSubjects []*Subject `json:"enrolledSubjects,omitempty"`
}
