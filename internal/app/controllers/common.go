// Package controllers contains the thin HTTP handlers. Each handler binds
// the request, delegates to a service, and serializes the standard
// {success, message?, data?} envelope.
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/edutrack/backend/internal/app/models/dto"
)

// parseIDParam parses a path parameter as int64, writing a 400 response on
// failure.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse("Invalid "+name))
		return 0, false
	}
	return id, true
}
