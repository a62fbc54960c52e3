package middleware

import (
	"strconv"
	"time"

	"github.com/BerniceZTT/sales_dashboard/utils"

	"github.com/gin-gonic/gin"
)

// Metrics 请求计数与耗时
func Metrics(m *utils.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		// 使用路由模板，避免路径参数导致标签膨胀
		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Requests.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
		m.RequestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
	}
}
