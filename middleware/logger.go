package middleware

import (
	"time"

	"github.com/BerniceZTT/sales_dashboard/utils"

	"github.com/gin-gonic/gin"
)

// Logger 日志中间件
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		utils.LogApiRequest(method, path, c.Request.URL.Query())

		c.Next()

		utils.LogApiResponse(method, path, c.Writer.Status(), time.Since(start))
	}
}

// Recovery 恢复中间件
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		// 记录崩溃信息
		utils.Logger.Error().
			Interface("panic", recovered).
			Str("path", c.Request.URL.Path).
			Msg("服务崩溃")

		c.AbortWithStatusJSON(500, gin.H{
			"success": false,
			"error":   "服务器内部错误",
		})
	})
}
