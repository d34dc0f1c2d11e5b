package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerr "github.com/amirhossein-jamali/relay-race-book/internal/domain/error"
	coreport "github.com/amirhossein-jamali/relay-race-book/internal/domain/port/core"
	"github.com/amirhossein-jamali/relay-race-book/internal/infrastructure/adapter/api/dto"
)

// ErrorHandler middleware recovers from panics and answers with a 500 error body
func ErrorHandler(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			recovered := recover()
			if recovered == nil {
				return
			}

			logger.Error("Panic recovered in API request", map[string]any{
				"error":      fmt.Sprint(recovered),
				"path":       c.Request.URL.Path,
				"method":     c.Request.Method,
				"client_ip":  c.ClientIP(),
				"request_id": c.GetString(RequestIDKey),
			})

			_ = c.Error(fmt.Errorf("%w: panic: %v", domainerr.ErrInternalServer, recovered))
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInternalServer),
				Message: "Internal server error",
			})
		}()

		c.Next()
	}
}
