package middleware

import (
	"errors"

	"github.com/gin-gonic/gin"

	apperrors "dango/internal/errors"
	"dango/internal/logger"
)

// ErrorHandler returns a Gin middleware that converts errors set on the Gin
// context into the response envelope. AppErrors map to their own status code;
// anything else becomes a 500 with the underlying message in "details".
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		// Process the last error (most relevant in a middleware chain)
		err := c.Errors.Last().Err

		var appErr *apperrors.AppError
		if errors.As(err, &appErr) {
			body := gin.H{"error": appErr.Message}
			if appErr.Internal != nil {
				logger.Get().Errorw("app error",
					"code", appErr.Code,
					"message", appErr.Message,
					"internal", appErr.Internal.Error(),
					"path", c.Request.URL.Path,
				)
				body["details"] = appErr.Internal.Error()
			}
			c.JSON(appErr.StatusCode, body)
			return
		}

		logger.Get().Errorw("unexpected error",
			"error", err.Error(),
			"path", c.Request.URL.Path,
			"method", c.Request.Method,
		)
		c.JSON(apperrors.ErrInternalServer.StatusCode, gin.H{
			"error":   apperrors.ErrInternalServer.Message,
			"details": err.Error(),
		})
	}
}
