package dto

// UploadCertificateRequest is the payload for recording a certificate
type UploadCertificateRequest struct {
	StudentID      int64  `json:"studentId" example:"7"`
	Activity       string `json:"activity" example:"Science Fair Winner"`
	IssueDate      string `json:"issueDate,omitempty" example:"2024-02-10"`
	CertificateURL string `json:"certificateUrl,omitempty"`
}
