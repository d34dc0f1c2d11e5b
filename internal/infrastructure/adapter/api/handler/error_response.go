package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/api/dto"
)

// statusFor maps domain errors to HTTP status codes
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrDuplicateSprinter):
		return http.StatusConflict
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case domainerr.IsNegativeResultError(err):
		return http.StatusUnprocessableEntity
	case domainerr.IsValidationError(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes the error response and logs it with the error's own fields
func respondError(c *gin.Context, logger coreport.Logger, message string, err error) {
	status := statusFor(err)

	fields := domainerr.LogFields(err)
	fields["path"] = c.Request.URL.Path
	fields["status"] = status

	if status == http.StatusInternalServerError {
		logger.Error(message, fields)
		c.JSON(status, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
			Message: "Internal server error",
		})
		return
	}

	logger.Warn(message, fields)
	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	})
}

// respondBindError reports a request body that could not be decoded or validated
func respondBindError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Warn("Invalid request format", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}
