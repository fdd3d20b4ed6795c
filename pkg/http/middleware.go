package http

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"liyu1981.xyz/plant-care-service/pkg/common"
)

// RequestLogger tags every request with an id (reusing the caller's
// X-Request-ID) and logs it once it completes.
func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(common.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(common.LoggerFieldRequestID, requestID)
		c.Header(common.HeaderRequestID, requestID)

		start := time.Now()
		c.Next()

		logger := common.GetLoggerWith(common.LoggerNameRestfulServer)
		fields := []zap.Field{
			zap.String(common.LoggerFieldRequestID, requestID),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
			zap.String("client_ip", c.ClientIP()),
		}

		switch status := c.Writer.Status(); {
		case status >= 500:
			logger.Error("Request completed", fields...)
		case status >= 400:
			logger.Warn("Request completed", fields...)
		default:
			logger.Info("Request completed", fields...)
		}
	}
}
