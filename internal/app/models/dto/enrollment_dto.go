package dto

// EnrollmentRequest is the payload for adding/removing one subject enrollment
type EnrollmentRequest struct {
	StudentID int64 `json:"studentId" example:"7"`
	SubjectID int64 `json:"subjectId" example:"3"`
}

// BulkEnrollmentRequest is the payload for enrolling a student in several
// subjects at once; already-enrolled subjects are skipped.
type BulkEnrollmentRequest struct {
	StudentID  int64   `json:"studentId" example:"7"`
	SubjectIDs []int64 `json:"subjectIds" example:"3,4,5"`
}
