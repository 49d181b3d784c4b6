package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/services"
	"github.com/edutrack/backend/internal/middleware"
)

// ChatbotController handles chatbot endpoints
type ChatbotController struct {
	chatbotService *services.ChatbotService
}

// NewChatbotController creates a new ChatbotController
func NewChatbotController(chatbotService *services.ChatbotService) *ChatbotController {
	return &ChatbotController{chatbotService: chatbotService}
}

// SendMessage handles POST /api/chatbot/message
func (c *ChatbotController) SendMessage(ctx *gin.Context) {
	var req dto.ChatMessageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please provide a message"))
		return
	}

	resp, err := c.chatbotService.SendMessage(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}

// GetSuggestions handles GET /api/chatbot/suggestions/:role
func (c *ChatbotController) GetSuggestions(ctx *gin.Context) {
	resp := c.chatbotService.GetSuggestions(ctx.Param("role"))
	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(resp))
}
