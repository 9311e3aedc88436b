package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"partner-commission-api/internal/logger"
)

var accessLog = logger.NewLogger("access")

func Recover() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				accessLog.Errorf("panic recovered: %v", r)
				c.JSON(500, gin.H{"code": 500, "msg": "internal error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// Logger 访问日志
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		accessLog.WithFields(map[string]interface{}{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"status": c.Writer.Status(),
			"cost":   time.Since(start).String(),
		}).Info("request")
	}
}
