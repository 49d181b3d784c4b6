package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/repositories"
	"github.com/edutrack/backend/internal/pkg/apperrors"
)

type fakeAttendanceStore struct {
	upserted []*models.AttendanceRecord
	report   []*models.AttendanceRecord
	err      error
}

func (f *fakeAttendanceStore) Upsert(_ context.Context, record *models.AttendanceRecord) error {
	if f.err != nil {
		return f.err
	}
	record.ID = int64(len(f.upserted) + 1)
	f.upserted = append(f.upserted, record)
	return nil
}

func (f *fakeAttendanceStore) GetReport(_ context.Context, _ repositories.ReportFilter) ([]*models.AttendanceRecord, error) {
	return f.report, f.err
}

type fakeStudentLookup struct {
	known map[int64]bool
}

func (f *fakeStudentLookup) GetByID(_ context.Context, id int64) (*models.Student, error) {
	if !f.known[id] {
		return nil, apperrors.ErrStudentNotFound
	}
	return &models.Student{ID: id}, nil
}

func TestMarkAttendanceEmptyBatch(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceStore{}, &fakeStudentLookup{})

	_, err := svc.MarkAttendance(context.Background(), 5, &dto.MarkAttendanceRequest{})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}

func TestMarkAttendancePerItemResults(t *testing.T) {
	store := &fakeAttendanceStore{}
	svc := NewAttendanceService(store, &fakeStudentLookup{known: map[int64]bool{7: true}})

	results, err := svc.MarkAttendance(context.Background(), 5, &dto.MarkAttendanceRequest{
		Records: []dto.AttendanceItem{
			{StudentID: 7, Date: "2024-03-05T08:30:00", Status: "present"},
			{StudentID: 99, Date: "2024-03-05", Status: "absent"},
			{StudentID: 7, Date: "not-a-date", Status: "late"},
		},
	})
	require.NoError(t, err, "a failed item must not abort the batch")
	require.Len(t, results, 3)

	assert.True(t, results[0].Success)
	require.NotNil(t, results[0].Data)
	assert.Equal(t, int64(5), results[0].Data.MarkedBy)

	assert.False(t, results[1].Success)
	assert.Equal(t, "Student not found", results[1].Message)

	assert.False(t, results[2].Success)
	assert.Equal(t, "Invalid date", results[2].Message)

	require.Len(t, store.upserted, 1)
}

func TestMarkAttendanceNormalizesDate(t *testing.T) {
	store := &fakeAttendanceStore{}
	svc := NewAttendanceService(store, &fakeStudentLookup{known: map[int64]bool{7: true}})

	results, err := svc.MarkAttendance(context.Background(), 5, &dto.MarkAttendanceRequest{
		Records: []dto.AttendanceItem{
			{StudentID: 7, Date: "2024-03-05T08:30:00", Status: "present"},
			{StudentID: 7, Date: "2024-03-05T17:45:00", Status: "late"},
		},
	})
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Both marks land on the same calendar day
	assert.Equal(t, store.upserted[0].Date, store.upserted[1].Date)
	assert.Equal(t, 0, store.upserted[0].Date.Hour())
}

func TestGetReportStats(t *testing.T) {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	store := &fakeAttendanceStore{report: []*models.AttendanceRecord{
		{StudentID: 1, Date: day, Status: models.StatusPresent},
		{StudentID: 2, Date: day, Status: models.StatusPresent},
		{StudentID: 3, Date: day, Status: models.StatusAbsent},
		{StudentID: 4, Date: day, Status: models.StatusLate},
	}}
	svc := NewAttendanceService(store, &fakeStudentLookup{})

	records, stats, err := svc.GetReport(context.Background(), &dto.AttendanceReportFilter{})
	require.NoError(t, err)

	assert.Len(t, records, 4)
	assert.Equal(t, dto.AttendanceStats{Total: 4, Present: 2, Absent: 1, Late: 1}, stats)
}

func TestGetReportInvalidDate(t *testing.T) {
	svc := NewAttendanceService(&fakeAttendanceStore{}, &fakeStudentLookup{})

	_, _, err := svc.GetReport(context.Background(), &dto.AttendanceReportFilter{StartDate: "bogus"})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
