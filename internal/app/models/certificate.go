package models

import (
	"time"
)

// Certificate defines a certificate record linked to a student achievement
type Certificate struct {
	ID             int64     `json:"id" db:"id" example:"1"`
	StudentID      int64     `json:"studentId" db:"student_id" example:"7"`
	Activity       string    `json:"activity" db:"activity" example:"Science Fair Winner"`
	IssueDate      time.Time `json:"issueDate" db:"issue_date"`
	CertificateURL string    `json:"certificateUrl,omitempty" db:"certificate_url"`
	CreatedAt      time.Time `json:"createdAt" db:"created_at"`

	// Relation (populated on list queries)
	Student *Student `json:"student,omitempty"`
}
