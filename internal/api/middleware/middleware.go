package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/evovision/evoq-api/internal/api/shared/constants"
	apierrors "github.com/evovision/evoq-api/internal/api/shared/errors"
	"github.com/evovision/evoq-api/internal/logger"
)

// contextKey is a custom type for context keys to avoid collisions
type contextKey string

const (
	REQUEST_ID_KEY contextKey = "request_id"
)

// RequestID returns a gin middleware that tags every request with an ID.
// An incoming X-Request-ID header is kept; otherwise a UUID is generated.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(constants.REQUEST_ID_HEADER)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		c.Set(string(REQUEST_ID_KEY), requestID)
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), REQUEST_ID_KEY, requestID))
		c.Header(constants.REQUEST_ID_HEADER, requestID)

		c.Next()
	}
}

// RequestIDFromContext returns the request ID stored by RequestID, if any
func RequestIDFromContext(ctx context.Context) string {
	requestID, _ := ctx.Value(REQUEST_ID_KEY).(string)
	return requestID
}

// Logger returns a gin middleware for structured logging using zap
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		query := c.Request.URL.RawQuery

		c.Next()

		duration := time.Since(start)

		logger.InfoCtx(c.Request.Context(), "API request",
			zap.String("request_id", RequestIDFromContext(c.Request.Context())),
			zap.String("method", c.Request.Method),
			zap.String("path", path),
			zap.String("query", query),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", duration),
			zap.String("client_ip", c.ClientIP()),
			zap.String("user_agent", c.Request.UserAgent()),
		)
	}
}

// Recovery returns a gin middleware for panic recovery with logging
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.ErrorCtx(c.Request.Context(), fmt.Errorf("panic recovered: %v", err),
					zap.String("request_id", RequestIDFromContext(c.Request.Context())),
					zap.String("path", c.Request.URL.Path),
				)
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": apierrors.NewInternalError("Internal server error"),
				})
			}
		}()
		c.Next()
	}
}
