package middleware

import (
	"errors"
	"net/http"

	"go-talent-tracking/internal/delivery/http/response"
	"go-talent-tracking/pkg/apperror"
	"go-talent-tracking/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors attached to the gin context onto the response
// envelope. AppError carries its own status code and client-safe message;
// anything else is logged server-side and surfaced as a generic 500 so no
// internal detail leaks.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("Internal server error", "error", err, "path", c.Request.URL.Path)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
