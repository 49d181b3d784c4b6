package dto

// ExportFilter carries the export query parameters shared by the
// spreadsheet and PDF endpoints.
type ExportFilter struct {
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
	StudentID int64  `form:"studentId"`
	Class     string `form:"classId"`
}
