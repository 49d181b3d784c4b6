package dto

import (
	"time"
)

// ChatMessageRequest is the payload for a chatbot message
type ChatMessageRequest struct {
	Message string `json:"message" example:"How do I mark attendance?"`
	UserID  int64  `json:"userId,omitempty" example:"5"`
}

// ChatMessageResponse is the chatbot reply
type ChatMessageResponse struct {
	UserMessage string    `json:"userMessage"`
	BotResponse string    `json:"botResponse"`
	Confidence  float64   `json:"confidence"`
	Timestamp   time.Time `json:"timestamp"`
}

// SuggestionsResponse carries the canned suggestions for a role
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
	Role        string   `json:"role"`
}
