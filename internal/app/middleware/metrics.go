package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"straw-monitor-service/internal/metrics"
)

// Metrics 记录请求数和耗时，路径使用路由模板避免标签基数过大
func Metrics(m *metrics.Metrics) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}
		m.RequestDuration.WithLabelValues(c.Request.Method, path).Observe(time.Since(start).Seconds())
		m.RequestsTotal.WithLabelValues(c.Request.Method, path, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
