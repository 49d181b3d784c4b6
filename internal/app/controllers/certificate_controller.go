package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/app/services"
	"github.com/edutrack/backend/internal/middleware"
)

// CertificateController handles certificate endpoints
type CertificateController struct {
	certificateService *services.CertificateService
}

// NewCertificateController creates a new CertificateController
func NewCertificateController(certificateService *services.CertificateService) *CertificateController {
	return &CertificateController{certificateService: certificateService}
}

// UploadCertificate handles POST /api/certificates
func (c *CertificateController) UploadCertificate(ctx *gin.Context) {
	var req dto.UploadCertificateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Please provide student ID and activity title"))
		return
	}

	certificate, err := c.certificateService.UploadCertificate(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Certificate uploaded successfully", certificate))
}

// GetCertificates handles GET /api/certificates
func (c *CertificateController) GetCertificates(ctx *gin.Context) {
	certificates, err := c.certificateService.GetCertificates(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(certificates), certificates))
}

// GetStudentCertificates handles GET /api/certificates/student/:studentId
func (c *CertificateController) GetStudentCertificates(ctx *gin.Context) {
	studentID, ok := parseIDParam(ctx, "studentId")
	if !ok {
		return
	}

	certificates, err := c.certificateService.GetStudentCertificates(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewListResponse(len(certificates), certificates))
}

// DeleteCertificate handles DELETE /api/certificates/:id
func (c *CertificateController) DeleteCertificate(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.certificateService.DeleteCertificate(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Certificate deleted successfully", nil))
}
