package dto

// AddActivityRequest is the payload for recording an activity
type AddActivityRequest struct {
	StudentID   int64  `json:"studentId" example:"7"`
	Title       string `json:"title" example:"Inter-school Debate"`
	Description string `json:"description,omitempty"`
	Category    string `json:"category,omitempty" example:"club"`
	Date        string `json:"date" example:"2024-03-05"`
}

// ActivityFilter carries the activity list query parameters
type ActivityFilter struct {
	StudentID int64  `form:"studentId"`
	Category  string `form:"category"`
	StartDate string `form:"startDate"`
	EndDate   string `form:"endDate"`
}
