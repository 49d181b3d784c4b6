package models

import (
	"time"
)

// AttendanceRecord defines one student's attendance for one calendar day.
// Date carries no time-of-day; (StudentID, Date) is unique.
type AttendanceRecord struct {
	ID        int64            `json:"id" db:"id" example:"1"`
	StudentID int64            `json:"studentId" db:"student_id" example:"7"`
	Date      time.Time        `json:"date" db:"date"`
	Status    AttendanceStatus `json:"status" db:"status" example:"present"`
	MarkedBy  int64            `json:"markedBy" db:"marked_by" example:"5"`
	CreatedAt time.Time        `json:"createdAt" db:"created_at"`

	// Relations (populated on report queries)
	StudentName  string `json:"studentName,omitempty"`
	StudentEmail string `json:"studentEmail,omitempty"`
	MarkerName   string `json:"markerName,omitempty"`
}
