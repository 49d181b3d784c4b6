package dto

import (
	"github.com/edutrack/backend/internal/app/models"
)

// MarkAttendanceRequest is the batch payload for marking attendance
type MarkAttendanceRequest struct {
	Records []AttendanceItem `json:"records"`
}

// AttendanceItem is one (student, date, status) triple in the batch
type AttendanceItem struct {
	StudentID int64  `json:"studentId" example:"7"`
	Date      string `json:"date" example:"2024-03-05T08:30:00"`
	Status    string `json:"status" example:"present"`
}

// AttendanceItemResult is the per-item outcome nested in the batch response.
// The batch-level response is successful even when individual items fail.
type AttendanceItemResult struct {
	StudentID int64                    `json:"studentId"`
	Success   bool                     `json:"success"`
	Message   string                   `json:"message,omitempty"`
	Data      *models.AttendanceRecord `json:"data,omitempty"`
}

// AttendanceStats aggregates status counts over a report
type AttendanceStats struct {
	Total   int `json:"total"`
	Present int `json:"present"`
	Absent  int `json:"absent"`
	Late    int `json:"late"`
}

// AttendanceReportResponse is the envelope for the attendance report endpoint
type AttendanceReportResponse struct {
	Success bool                       `json:"success"`
	Count   int                        `json:"count"`
	Stats   AttendanceStats            `json:"stats"`
	Data    []*models.AttendanceRecord `json:"data"`
}

// AttendanceReportFilter carries the report query parameters
type AttendanceReportFilter struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	StudentID int64  `form:"studentId"`
	Status    string `form:"status"`
}
