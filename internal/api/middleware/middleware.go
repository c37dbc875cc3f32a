package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	apierrors "github.com/proptoken/proptoken-backend/internal/api/shared/errors"
	"github.com/proptoken/proptoken-backend/internal/logger"
)

// REQUEST_ID_HEADER carries the request id in and out
const REQUEST_ID_HEADER = "X-Request-ID"

// RequestID tags each request with an id and attaches it to the request logger
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(REQUEST_ID_HEADER)
		if id == "" {
			id = uuid.New().String()
		}
		c.Header(REQUEST_ID_HEADER, id)

		ctx := logger.WithFields(c.Request.Context(), zap.String("requestID", id))
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}

// Logger returns a gin middleware for structured logging using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		}

		if c.Writer.Status() >= http.StatusInternalServerError {
			logger.WarnCtx(c.Request.Context(), "API request failed", fields...)
			return
		}
		logger.InfoCtx(c.Request.Context(), "API request", fields...)
	}
}

// Recovery returns a gin middleware for panic recovery with logging.
// The stack is included in the response only in debug mode.
func Recovery(debugMode bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", r),
					zap.String("path", c.Request.URL.Path),
					zap.String("stack", stack),
				)

				apiErr := apierrors.NewInternalError("Internal server error")
				if debugMode {
					apiErr.Stack = stack
				}
				c.AbortWithStatusJSON(http.StatusInternalServerError, apierrors.Failure(apiErr))
			}
		}()
		c.Next()
	}
}
