package middleware

import (
	"net/http"

	"cloudreel/internal/api/response"
	"cloudreel/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery 恢复中间件，捕获panic，请求进程不允许崩溃
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.Error("Panic recovered",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
				)

				response.Fail(c, http.StatusInternalServerError, "Unknown server error")
				c.Abort()
			}
		}()

		c.Next()
	}
}
