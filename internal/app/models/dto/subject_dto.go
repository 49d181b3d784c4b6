package dto

// CreateSubjectRequest is the payload for creating a subject
type CreateSubjectRequest struct {
	Name        string `json:"name" example:"Mathematics"`
	Code        string `json:"code" example:"MATH101"`
	Description string `json:"description,omitempty"`
}

// UpdateSubjectRequest carries the whitelisted subject fields
type UpdateSubjectRequest struct {
	Name        *string `json:"name,omitempty"`
	Code        *string `json:"code,omitempty"`
	Description *string `json:"description,omitempty"`
}

// AddTopicRequest is the payload for adding a curriculum topic to a subject
type AddTopicRequest struct {
	TopicName   string `json:"topicName" example:"Quadratic Equations"`
	Description string `json:"description,omitempty"`
}
