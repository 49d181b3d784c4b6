package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/services"
	"github.com/edutrack/backend/internal/middleware"
)

// NotificationController handles notification endpoints
type NotificationController struct {
	notificationService *services.NotificationService
}

// NewNotificationController creates a new NotificationController
func NewNotificationController(notificationService *services.NotificationService) *NotificationController {
	return &NotificationController{notificationService: notificationService}
}

// GetNotifications handles GET /api/notifications. The read=false query
// filters down to unread notifications.
func (c *NotificationController) GetNotifications(ctx *gin.Context) {
	unreadOnly := ctx.Query("read") == "false"

	notifications, err := c.notificationService.GetNotifications(ctx, middleware.GetUserID(ctx), unreadOnly)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(notifications), notifications))
}

// MarkAsRead handles PUT /api/notifications/:id/read
func (c *NotificationController) MarkAsRead(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.notificationService.MarkAsRead(ctx, id, middleware.GetUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Notification marked as read", nil))
}

// MarkAllAsRead handles PUT /api/notifications/read-all
func (c *NotificationController) MarkAllAsRead(ctx *gin.Context) {
	if err := c.notificationService.MarkAllAsRead(ctx, middleware.GetUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("All notifications marked as read", nil))
}

// DeleteNotification handles DELETE /api/notifications/:id
func (c *NotificationController) DeleteNotification(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.notificationService.DeleteNotification(ctx, id, middleware.GetUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Notification deleted", nil))
}

// ClearAll handles DELETE /api/notifications
func (c *NotificationController) ClearAll(ctx *gin.Context) {
	if err := c.notificationService.ClearAll(ctx, middleware.GetUserID(ctx)); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("All notifications cleared", nil))
}

// GetUnreadCount handles GET /api/notifications/unread-count
func (c *NotificationController) GetUnreadCount(ctx *gin.Context) {
	count, err := c.notificationService.GetUnreadCount(ctx, middleware.GetUserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.UnreadCountResponse{Success: true, UnreadCount: count})
}

// Broadcast handles POST /api/notifications/broadcast
func (c *NotificationController) Broadcast(ctx *gin.Context) {
	var req dto.BroadcastRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Message is required"))
		return
	}

	sentTo, err := c.notificationService.Broadcast(ctx, req.Message, req.Role)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.BroadcastResponse{
		Success: true,
		Message: "Announcement broadcasted",
		SentTo:  sentTo,
	})
}

// SendAttendanceAlert handles POST /api/notifications/attendance-alert/:userId
func (c *NotificationController) SendAttendanceAlert(ctx *gin.Context) {
	userID, ok := parseIDParam(ctx, "userId")
	if !ok {
		return
	}

	notification, err := c.notificationService.SendAttendanceAlert(ctx, userID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Attendance alert sent", notification))
}
