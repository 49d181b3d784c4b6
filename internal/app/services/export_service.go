package services

import (
	"context"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
	"github.com/xuri/excelize/v2"

	"github.com/edutrack/backend/internal/app/models"
	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/repositories"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/helpers"
)

// AttendanceReporter supplies joined attendance rows for report rendering
type AttendanceReporter interface {
	GetReport(ctx context.Context, filter repositories.ReportFilter) ([]*models.AttendanceRecord, error)
}

// ActivityLister supplies activity rows for report rendering
type ActivityLister interface {
	List(ctx context.Context, filter repositories.ActivityFilter) ([]*models.Activity, error)
}

// ExportService renders attendance and activity reports as spreadsheets and
// PDFs.
type ExportService struct {
	attendanceRepo AttendanceReporter
	activityRepo   ActivityLister
}

// NewExportService creates a new export service
func NewExportService(attendanceRepo AttendanceReporter, activityRepo ActivityLister) *ExportService {
	return &ExportService{
		attendanceRepo: attendanceRepo,
		activityRepo:   activityRepo,
	}
}

// ExportAttendanceExcel builds an XLSX workbook of attendance records
// matching the filter.
func (s *ExportService) ExportAttendanceExcel(ctx context.Context, filter *dto.ExportFilter) (*excelize.File, error) {
	records, err := s.attendanceRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Attendance Report"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Student Name", "Email", "Date", "Status", "Marked By"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, record := range records {
		values := []any{
			record.StudentName,
			record.StudentEmail,
			record.Date.Format("2006-01-02"),
			string(record.Status),
			record.MarkerName,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	f.SetColWidth(sheet, "A", "E", 22)
	return f, nil
}

// ExportActivityExcel builds an XLSX workbook of activity entries matching
// the filter.
func (s *ExportService) ExportActivityExcel(ctx context.Context, filter *dto.ExportFilter) (*excelize.File, error) {
	repoFilter := repositories.ActivityFilter{
		StudentID: filter.StudentID,
		Class:     filter.Class,
	}

	startDate, endDate, err := parseExportDates(filter)
	if err != nil {
		return nil, err
	}
	repoFilter.StartDate = startDate
	repoFilter.EndDate = endDate

	activities, err := s.activityRepo.List(ctx, repoFilter)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	const sheet = "Activity Report"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{"Student Name", "Email", "Title", "Category", "Description", "Date", "Added By"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheet, cell, header)
	}

	for row, activity := range activities {
		values := []any{
			activity.StudentName,
			activity.StudentEmail,
			activity.Title,
			activity.Category,
			activity.Description,
			activity.Date.Format("2006-01-02"),
			activity.AdderName,
		}
		for col, value := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			f.SetCellValue(sheet, cell, value)
		}
	}

	f.SetColWidth(sheet, "A", "G", 22)
	return f, nil
}

// ExportAttendancePDF builds a PDF table of attendance records matching the
// filter.
func (s *ExportService) ExportAttendancePDF(ctx context.Context, filter *dto.ExportFilter) (*gofpdf.Fpdf, error) {
	records, err := s.attendanceRecords(ctx, filter)
	if err != nil {
		return nil, err
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(0, 10, "Attendance Report")
	pdf.Ln(8)

	pdf.SetFont("Arial", "", 10)
	pdf.Cell(0, 8, fmt.Sprintf("Generated: %s    Records: %d", time.Now().Format("2006-01-02 15:04"), len(records)))
	pdf.Ln(12)

	widths := []float64{50, 60, 30, 25, 25}
	headers := []string{"Student", "Email", "Date", "Status", "Marked By"}

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(230, 230, 230)
	for i, header := range headers {
		pdf.CellFormat(widths[i], 8, header, "1", 0, "L", true, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 9)
	for _, record := range records {
		cells := []string{
			record.StudentName,
			record.StudentEmail,
			record.Date.Format("2006-01-02"),
			string(record.Status),
			record.MarkerName,
		}
		for i, cell := range cells {
			pdf.CellFormat(widths[i], 7, cell, "1", 0, "L", false, 0, "")
		}
		pdf.Ln(-1)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("error building attendance PDF: %v", pdf.Error())
	}

	return pdf, nil
}

func (s *ExportService) attendanceRecords(ctx context.Context, filter *dto.ExportFilter) ([]*models.AttendanceRecord, error) {
	repoFilter := repositories.ReportFilter{
		StudentID: filter.StudentID,
		Class:     filter.Class,
	}

	startDate, endDate, err := parseExportDates(filter)
	if err != nil {
		return nil, err
	}
	repoFilter.StartDate = startDate
	repoFilter.EndDate = endDate

	return s.attendanceRepo.GetReport(ctx, repoFilter)
}

func parseExportDates(filter *dto.ExportFilter) (start, end *time.Time, err error) {
	if filter.StartDate != "" {
		parsed, err := helpers.ParseFlexibleDate(filter.StartDate)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("Invalid start date")
		}
		start = &parsed
	}
	if filter.EndDate != "" {
		parsed, err := helpers.ParseFlexibleDate(filter.EndDate)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("Invalid end date")
		}
		end = &parsed
	}
	return start, end, nil
}
