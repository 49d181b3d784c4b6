package services

import (
	"bytes"
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

type fakeAttendanceReporter struct {
	records    []*models.AttendanceRecord
	lastFilter repositories.ReportFilter
}

func (f *fakeAttendanceReporter) GetReport(_ context.Context, filter repositories.ReportFilter) ([]*models.AttendanceRecord, error) {
	f.lastFilter = filter
	return f.records, nil
}

type fakeActivityLister struct {
	activities []*models.Activity
}

func (f *fakeActivityLister) List(_ context.Context, _ repositories.ActivityFilter) ([]*models.Activity, error) {
	return f.activities, nil
}

func testAttendanceRecords() []*models.AttendanceRecord {
	day := time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local)
	return []*models.AttendanceRecord{
		{ID: 1, StudentID: 7, Date: day, Status: models.StatusPresent, StudentName: "Ali Khan", StudentEmail: "ali@student.edu", MarkerName: "Jane Doe"},
		{ID: 2, StudentID: 8, Date: day, Status: models.StatusAbsent, StudentName: "Sara Ali", StudentEmail: "sara@student.edu", MarkerName: "Jane Doe"},
	}
}

func TestExportAttendanceExcel(t *testing.T) {
	reporter := &fakeAttendanceReporter{records: testAttendanceRecords()}
	svc := NewExportService(reporter, &fakeActivityLister{})

	f, err := svc.ExportAttendanceExcel(context.Background(), &dto.ExportFilter{})
	require.NoError(t, err)

	rows, err := f.GetRows("Attendance Report")
	require.NoError(t, err)
	// Header plus one row per record
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Student Name", "Email", "Date", "Status", "Marked By"}, rows[0])
	assert.Equal(t, "Ali Khan", rows[1][0])
	assert.Equal(t, "2024-03-05", rows[1][2])
	assert.Equal(t, "absent", rows[2][3])
}

func TestExportActivityExcel(t *testing.T) {
	lister := &fakeActivityLister{activities: []*models.Activity{
		{ID: 1, StudentID: 7, Title: "Inter-school Debate", Category: "club", Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.Local), StudentName: "Ali Khan", StudentEmail: "ali@student.edu", AdderName: "Jane Doe"},
	}}
	svc := NewExportService(&fakeAttendanceReporter{}, lister)

	f, err := svc.ExportActivityExcel(context.Background(), &dto.ExportFilter{})
	require.NoError(t, err)

	rows, err := f.GetRows("Activity Report")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "Inter-school Debate", rows[1][2])
}

func TestExportAttendancePDF(t *testing.T) {
	reporter := &fakeAttendanceReporter{records: testAttendanceRecords()}
	svc := NewExportService(reporter, &fakeActivityLister{})

	pdf, err := svc.ExportAttendancePDF(context.Background(), &dto.ExportFilter{})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	assert.NotZero(t, buf.Len())
}

func TestExportFilterDatesForwarded(t *testing.T) {
	reporter := &fakeAttendanceReporter{}
	svc := NewExportService(reporter, &fakeActivityLister{})

	_, err := svc.ExportAttendanceExcel(context.Background(), &dto.ExportFilter{
		StartDate: "2024-03-01",
		EndDate:   "2024-03-31",
		StudentID: 7,
	})
	require.NoError(t, err)

	require.NotNil(t, reporter.lastFilter.StartDate)
	require.NotNil(t, reporter.lastFilter.EndDate)
	assert.Equal(t, int64(7), reporter.lastFilter.StudentID)

	_, err = svc.ExportAttendanceExcel(context.Background(), &dto.ExportFilter{StartDate: "not-a-date"})
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
}
