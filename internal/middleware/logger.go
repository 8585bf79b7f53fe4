package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"bookreview/internal/logger"
)

func RequestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		logger.Debugf("%s %s %d %s", c.Request.Method, path, c.Writer.Status(), time.Since(start))
	}
}
