package models

import (
	"time"
)

// Activity defines a co-curricular activity entry for a student
type Activity struct {
	ID          int64     `json:"id" db:"id" example:"1"`
	StudentID   int64     `json:"studentId" db:"student_id" example:"7"`
	Title       string    `json:"title" db:"title" example:"Inter-school Debate"`
	Description string    `json:"description,omitempty" db:"description"`
	Category    string    `json:"category,omitempty" db:"category" example:"club"`
	Date        time.Time `json:"date" db:"date"`
	AddedBy     int64     `json:"addedBy" db:"added_by" example:"5"`
	CreatedAt   time.Time `json:"createdAt" db:"created_at"`

	// Relations (populated on list queries)
	StudentName  string `json:"studentName,omitempty"`
	StudentEmail string `json:"studentEmail,omitempty"`
	AdderName    string `json:"adderName,omitempty"`
}
