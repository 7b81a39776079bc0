package middleware

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/bookverse/inventory/pkg/metrics"
)

// Metrics Prometheus指标采集中间件
// 设计说明：
// 1. path标签使用路由模板（c.FullPath()），避免路径参数导致标签基数爆炸
//    例如 /api/v1/books/7f6f... 记为 /api/v1/books/:id
// 2. 未匹配任何路由的请求（404）统一记为"unmatched"
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		metrics.HTTPRequestsInProgress.Inc()
		defer metrics.HTTPRequestsInProgress.Dec()

		c.Next()

		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		method := c.Request.Method
		status := strconv.Itoa(c.Writer.Status())

		metrics.HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(method, path).Observe(time.Since(start).Seconds())
	}
}
