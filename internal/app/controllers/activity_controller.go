package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/services"
	"github.com/edutrack/backend/internal/middleware"
)

// ActivityController handles co-curricular activity endpoints
type ActivityController struct {
	activityService *services.ActivityService
}

// NewActivityController creates a new ActivityController
func NewActivityController(activityService *services.ActivityService) *ActivityController {
	return &ActivityController{activityService: activityService}
}

// AddActivity handles POST /api/activity
func (c *ActivityController) AddActivity(ctx *gin.Context) {
	var req dto.AddActivityRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please provide all required fields"))
		return
	}

	activity, err := c.activityService.AddActivity(ctx, middleware.GetUserID(ctx), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Activity added successfully", activity))
}

// GetActivities handles GET /api/activity
func (c *ActivityController) GetActivities(ctx *gin.Context) {
	var filter dto.ActivityFilter
	if err := ctx.ShouldBindQuery(&filter); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid activity filters"))
		return
	}

	activities, err := c.activityService.GetActivities(ctx, &filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(activities), activities))
}

// DeleteActivity handles DELETE /api/activity/:id
func (c *ActivityController) DeleteActivity(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.activityService.DeleteActivity(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Activity deleted successfully", nil))
}
