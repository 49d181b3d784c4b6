package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/services"
	"github.com/edutrack/backend/internal/middleware"
)

// SubjectController handles subject and curriculum topic endpoints
type SubjectController struct {
	subjectService *services.SubjectService
}

// NewSubjectController creates a new SubjectController
func NewSubjectController(subjectService *services.SubjectService) *SubjectController {
	return &SubjectController{subjectService: subjectService}
}

// CreateSubject handles POST /api/subjects
func (c *SubjectController) CreateSubject(ctx *gin.Context) {
	var req dto.CreateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please provide subject name and code"))
		return
	}

	subject, err := c.subjectService.CreateSubject(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Subject created successfully", subject))
}

// GetSubjects handles GET /api/subjects
func (c *SubjectController) GetSubjects(ctx *gin.Context) {
	subjects, err := c.subjectService.GetSubjects(ctx, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(subjects), subjects))
}

// GetSubject handles GET /api/subjects/:id
func (c *SubjectController) GetSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	subject, err := c.subjectService.GetSubject(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(subject))
}

// UpdateSubject handles PUT /api/subjects/:id
func (c *SubjectController) UpdateSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.UpdateSubjectRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid subject data"))
		return
	}

	subject, err := c.subjectService.UpdateSubject(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subject updated successfully", subject))
}

// DeleteSubject handles DELETE /api/subjects/:id
func (c *SubjectController) DeleteSubject(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteSubject(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Subject deleted successfully", nil))
}

// AddTopic handles POST /api/subjects/:id/topics
func (c *SubjectController) AddTopic(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddTopicRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please provide topic name"))
		return
	}

	topic, err := c.subjectService.AddTopic(ctx, subjectID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Topic added successfully", topic))
}

// CompleteTopic handles PUT /api/subjects/:id/topics/:topicId/complete
func (c *SubjectController) CompleteTopic(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	topicID, ok := parseIDParam(ctx, "topicId")
	if !ok {
		return
	}

	topic, err := c.subjectService.CompleteTopic(ctx, subjectID, topicID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Topic marked as completed", topic))
}

// DeleteTopic handles DELETE /api/subjects/:id/topics/:topicId
func (c *SubjectController) DeleteTopic(ctx *gin.Context) {
	subjectID, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}
	topicID, ok := parseIDParam(ctx, "topicId")
	if !ok {
		return
	}

	if err := c.subjectService.DeleteTopic(ctx, subjectID, topicID); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Topic deleted successfully", nil))
}
