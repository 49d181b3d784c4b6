package services

import (
	"context"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/repositories"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/helpers"
	"github.com/edutrack/backend/internal/pkg/logger"
)

// AttendanceStore is the attendance persistence surface the service needs
type AttendanceStore interface {
	Upsert(ctx context.Context, record *models.AttendanceRecord) error
	GetReport(ctx context.Context, filter repositories.ReportFilter) ([]*models.AttendanceRecord, error)
}

// StudentLookup resolves student IDs during batch marking
type StudentLookup interface {
	GetByID(ctx context.Context, id int64) (*models.Student, error)
}

// AttendanceService reconciles batch attendance marks against the stored
// one-record-per-(student, day) state.
type AttendanceService struct {
	attendanceRepo AttendanceStore
	studentRepo    StudentLookup
}

// NewAttendanceService creates a new attendance service
func NewAttendanceService(attendanceRepo AttendanceStore, studentRepo StudentLookup) *AttendanceService {
	return &AttendanceService{
		attendanceRepo: attendanceRepo,
		studentRepo:    studentRepo,
	}
}

// MarkAttendance processes a batch of (student, date, status) marks. Each
// item succeeds or fails independently; a failed item never aborts the batch.
// Dates are normalized to the calendar day, and re-marking a day overwrites
// the stored status with the later call winning.
func (s *AttendanceService) MarkAttendance(ctx context.Context, markerID int64, req *dto.MarkAttendanceRequest) ([]dto.AttendanceItemResult, error) {
	if len(req.Records) == 0 {
		return nil, apperrors.NewValidationError("Please provide attendance records")
	}

	results := make([]dto.AttendanceItemResult, 0, len(req.Records))
	for _, item := range req.Records {
		results = append(results, s.markOne(ctx, markerID, item))
	}

	return results, nil
}

func (s *AttendanceService) markOne(ctx context.Context, markerID int64, item dto.AttendanceItem) dto.AttendanceItemResult {
	if _, err := s.studentRepo.GetByID(ctx, item.StudentID); err != nil {
		return dto.AttendanceItemResult{
			StudentID: item.StudentID,
			Success:   false,
			Message:   "Student not found",
		}
	}

	parsed, err := helpers.ParseFlexibleDate(item.Date)
	if err != nil {
		return dto.AttendanceItemResult{
			StudentID: item.StudentID,
			Success:   false,
			Message:   "Invalid date",
		}
	}

	record := &models.AttendanceRecord{
		StudentID: item.StudentID,
		Date:      helpers.TruncateToDay(parsed),
		Status:    models.AttendanceStatus(item.Status),
		MarkedBy:  markerID,
	}

	if err := s.attendanceRepo.Upsert(ctx, record); err != nil {
		logger.Error().Err(err).Int64("studentId", item.StudentID).Msg("Failed to upsert attendance record")
		return dto.AttendanceItemResult{
			StudentID: item.StudentID,
			Success:   false,
			Message:   err.Error(),
		}
	}

	return dto.AttendanceItemResult{
		StudentID: item.StudentID,
		Success:   true,
		Data:      record,
	}
}

// GetReport retrieves filtered attendance records with aggregate counts
func (s *AttendanceService) GetReport(ctx context.Context, filter *dto.AttendanceReportFilter) ([]*models.AttendanceRecord, dto.AttendanceStats, error) {
	repoFilter := repositories.ReportFilter{
		StudentID: filter.StudentID,
		Status:    filter.Status,
	}

	if filter.StartDate != "" {
		start, err := helpers.ParseFlexibleDate(filter.StartDate)
		if err != nil {
			return nil, dto.AttendanceStats{}, apperrors.NewValidationError("Invalid start date")
		}
		repoFilter.StartDate = &start
	}
	if filter.EndDate != "" {
		end, err := helpers.ParseFlexibleDate(filter.EndDate)
		if err != nil {
			return nil, dto.AttendanceStats{}, apperrors.NewValidationError("Invalid end date")
		}
		repoFilter.EndDate = &end
	}

	records, err := s.attendanceRepo.GetReport(ctx, repoFilter)
	if err != nil {
		return nil, dto.AttendanceStats{}, err
	}

	stats := dto.AttendanceStats{Total: len(records)}
	for _, record := range records {
		switch record.Status {
		case models.StatusPresent:
			stats.Present++
		case models.StatusAbsent:
			stats.Absent++
		case models.StatusLate:
			stats.Late++
		}
	}

	return records, stats, nil
}
