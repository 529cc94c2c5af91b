// README: Request logging middleware on zap.
package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func Logging(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		}
		// Handler-attached errors are server-side failures worth surfacing.
		for _, e := range c.Errors {
			fields = append(fields, zap.Error(e.Err))
		}
		if len(c.Errors) > 0 {
			log.Error("request failed", fields...)
			return
		}
		log.Info("request", fields...)
	}
}
