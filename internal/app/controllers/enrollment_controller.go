package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/services"
	"github.com/edutrack/backend/internal/middleware"
)

// EnrollmentController handles student/subject enrollment endpoints
type EnrollmentController struct {
	enrollmentService *services.EnrollmentService
}

// NewEnrollmentController creates a new EnrollmentController
func NewEnrollmentController(enrollmentService *services.EnrollmentService) *EnrollmentController {
	return &EnrollmentController{enrollmentService: enrollmentService}
}

// AddSubject handles POST /api/enrollment/add-subject
func (c *EnrollmentController) AddSubject(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please provide student and subject IDs"))
		return
	}

	student, err := c.enrollmentService.AddSubject(ctx, req.StudentID, req.SubjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subject added to student successfully", student))
}

// RemoveSubject handles POST /api/enrollment/remove-subject
func (c *EnrollmentController) RemoveSubject(ctx *gin.Context) {
	var req dto.EnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please provide student and subject IDs"))
		return
	}

	student, err := c.enrollmentService.RemoveSubject(ctx, req.StudentID, req.SubjectID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subject removed from student successfully", student))
}

// BulkAdd handles POST /api/enrollment/bulk-add
func (c *EnrollmentController) BulkAdd(ctx *gin.Context) {
	var req dto.BulkEnrollmentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please provide student and subject IDs"))
		return
	}

	student, added, err := c.enrollmentService.BulkAddSubjects(ctx, req.StudentID, req.SubjectIDs)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	message := fmt.Sprintf("%d subjects added successfully", added)
	ctx.JSON(http.StatusOK, dto.NewMessageResponse(message, student))
}

// GetStudentSubjects handles GET /api/enrollment/student/:studentId
func (c *EnrollmentController) GetStudentSubjects(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	subjects, err := c.enrollmentService.GetStudentSubjects(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(subjects), subjects))
}
