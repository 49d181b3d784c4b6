package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/services"
	"github.com/edutrack/backend/internal/middleware"
	"github.com/edutrack/backend/internal/pkg/logger"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportController handles report export endpoints
type ExportController struct {
	exportService *services.ExportService
}

// NewExportController creates a new ExportController
func NewExportController(exportService *services.ExportService) *ExportController {
	return &ExportController{exportService: exportService}
}

// ExportAttendanceExcel handles GET /api/export/attendance/excel
func (c *ExportController) ExportAttendanceExcel(ctx *gin.Context) {
	var filter dto.ExportFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid export filters"))
		return
	}

	workbook, err := c.exportService.ExportAttendanceExcel(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Type", xlsxContentType)
	ctx.Header("Content-Disposition", `attachment; filename="attendance_report.xlsx"`)
	if err := workbook.Write(ctx.Writer); err != nil {
		logger.Error().Err(err).Msg("Failed to stream attendance workbook")
	}
}

// ExportActivityExcel handles GET /api/export/activity/excel
func (c *ExportController) ExportActivityExcel(ctx *gin.Context) {
	var filter dto.ExportFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid export filters"))
		return
	}

	workbook, err := c.exportService.ExportActivityExcel(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Type", xlsxContentType)
	ctx.Header("Content-Disposition", `attachment; filename="activity_report.xlsx"`)
	if err := workbook.Write(ctx.Writer); err != nil {
		logger.Error().Err(err).Msg("Failed to stream activity workbook")
	}
}

// ExportAttendancePDF handles GET /api/export/attendance/pdf
func (c *ExportController) ExportAttendancePDF(ctx *gin.Context) {
	var filter dto.ExportFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid export filters"))
		return
	}

	doc, err := c.exportService.ExportAttendancePDF(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "application/pdf")
	ctx.Header("Content-Disposition", `attachment; filename="attendance_report.pdf"`)
	if err := doc.Output(ctx.Writer); err != nil {
		logger.Error().Err(err).Msg("Failed to stream attendance PDF")
	}
}
