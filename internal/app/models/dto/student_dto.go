package dto

// CreateStudentRequest is the payload for adding a student
type CreateStudentRequest struct {
	Name       string `json:"name" example:"Ali Khan"`
	Email      string `json:"email" example:"ali@student.edu"`
	RollNumber string `json:"rollNumber" example:"23"`
	Class      string `json:"class" example:"10-A"`
}

// UpdateStudentRequest carries the whitelisted student fields; only the
// fields present in the request are applied.
type UpdateStudentRequest struct {
	Name       *string `json:"name,omitempty"`
	Email      *string `json:"email,omitempty"`
	RollNumber *string `json:"rollNumber,omitempty"`
	Class      *string `json:"class,omitempty"`
}
