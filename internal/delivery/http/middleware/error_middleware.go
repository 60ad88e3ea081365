package middleware

import (
	"errors"
	"net/http"

	"go-portfolio-backend/internal/delivery/http/response"
	"go-portfolio-backend/pkg/apperror"
	"go-portfolio-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler maps errors collected on the gin context to the response
// envelope. With devMode set, internal error detail is included in the body;
// in production only the generic message leaves the server.
func ErrorHandler(devMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}
		// Once headers are out, nothing more may be written: any error
		// raised after the response committed is log-only.
		if c.Writer.Written() {
			logger.Log.Error("error raised after response commit", "error", c.Errors.Last().Err)
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("request failed", "code", appErr.Code, "error", appErr.Err)
				if devMode && appErr.Err != nil {
					response.Error(c, appErr.Code, appErr.Message, appErr.Err.Error())
					return
				}
			}
			response.Error(c, appErr.Code, appErr.Message, nil)
			return
		}

		// Never expose unclassified internal detail to clients.
		logger.Log.Error("unexpected error", "error", err)
		if devMode {
			response.Error(c, http.StatusInternalServerError, "Something went wrong!", err.Error())
			return
		}
		response.Error(c, http.StatusInternalServerError, "Something went wrong!", nil)
	}
}
