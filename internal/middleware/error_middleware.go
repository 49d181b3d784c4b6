package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/edutrack/backend/internal/app/models/dto"
	"github.com/edutrack/backend/internal/pkg/apperrors"
	"github.com/edutrack/backend/internal/pkg/logger"
)

// HandleAPIError maps service errors to HTTP status codes and the standard
// {success:false, message} envelope. Unrecognized errors return 500 with the
// raw error text.
func HandleAPIError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	message := err.Error()

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrStudentEmailExists):
		status = http.StatusBadRequest

	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrTokenExpired),
		errors.Is(err, apperrors.ErrTokenInvalid):
		status = http.StatusUnauthorized

	case errors.Is(err, apperrors.ErrPermissionDenied):
		status = http.StatusForbidden

	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrStudentNotFound),
		errors.Is(err, apperrors.ErrSubjectNotFound),
		errors.Is(err, apperrors.ErrTopicNotFound),
		errors.Is(err, apperrors.ErrActivityNotFound),
		errors.Is(err, apperrors.ErrCertificateNotFound),
		errors.Is(err, apperrors.ErrNotificationNotFound):
		status = http.StatusNotFound

	case errors.Is(err, apperrors.ErrConflict),
		errors.Is(err, apperrors.ErrEmailAlreadyExists),
		errors.Is(err, apperrors.ErrAlreadyEnrolled):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Unhandled API error")
	}

	c.JSON(status, dto.NewErrorResponse(message))
}
