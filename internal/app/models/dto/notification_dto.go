package dto

// BroadcastRequest is the payload for broadcasting an announcement
type BroadcastRequest struct {
	Message string `json:"message"`
	Role    string `json:"role,omitempty" example:"teacher"` // Optional role filter
}

// BroadcastResponse reports how many users the announcement reached
type BroadcastResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	SentTo  int    `json:"sentTo"`
}

// UnreadCountResponse carries the unread notification count for a user
type UnreadCountResponse struct {
	Success     bool `json:"success"`
	UnreadCount int  `json:"unreadCount"`
}
