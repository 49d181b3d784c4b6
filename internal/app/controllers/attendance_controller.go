package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/services"
	"github.com/edutrack/backend/internal/middleware"
)

// AttendanceController handles attendance marking and reporting endpoints
type AttendanceController struct {
	attendanceService *services.AttendanceService
}

// NewAttendanceController creates a new AttendanceController
func NewAttendanceController(attendanceService *services.AttendanceService) *AttendanceController {
	return &AttendanceController{attendanceService: attendanceService}
}

// MarkAttendance handles POST /api/attendance/mark. The response is
// successful as a whole; per-item outcomes are reported in data.
func (c *AttendanceController) MarkAttendance(ctx *gin.Context) {
	var req dto.MarkAttendanceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please provide attendance records"))
		return
	}

	results, err := c.attendanceService.MarkAttendance(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(results))
}

// GetReport handles GET /api/attendance/report
func (c *AttendanceController) GetReport(ctx *gin.Context) {
	var filter dto.AttendanceReportFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid report filters"))
		return
	}

	records, stats, err := c.attendanceService.GetReport(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.AttendanceReportResponse{
		Success: true,
		Count:   len(records),
		Stats:   stats,
		Data:    records,
	})
}
