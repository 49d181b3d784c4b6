package dto

// APIResponse is the standard response envelope: {success, message?, data?}
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

// ListResponse is the envelope for collection endpoints, carrying a count
type ListResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Count   int         `json:"count"`
	Data    interface{} `json:"data"`
}

// ErrorResponse is the envelope for failed requests
type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// NewSuccessResponse creates a success envelope with data
func NewSuccessResponse(data interface{}) APIResponse {
	return APIResponse{Success: true, Data: data}
}

// NewMessageResponse creates a success envelope with a message and data
func NewMessageResponse(message string, data interface{}) APIResponse {
	return APIResponse{Success: true, Message: message, Data: data}
}

// NewListResponse creates a success envelope for collections
func NewListResponse(count int, data interface{}) ListResponse {
	return ListResponse{Success: true, Count: count, Data: data}
}

// NewErrorResponse creates a failure envelope
func NewErrorResponse(message string) ErrorResponse {
	return ErrorResponse{Success: false, Message: message}
}
