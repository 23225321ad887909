package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jcpao-csu/staff-directory-api/internal/service"
)

// unmatchedRoute labels requests that hit no route so probes for random paths
// cannot grow the label set.
const unmatchedRoute = "unmatched"

// Metrics returns middleware that records request duration by route pattern.
// Paths in skip (for example the scrape endpoint itself) are not recorded.
func Metrics(metricsSvc *service.MetricsService, skip ...string) gin.HandlerFunc {
	skipped := make(map[string]struct{}, len(skip))
	for _, p := range skip {
		skipped[p] = struct{}{}
	}
	return func(c *gin.Context) {
		if metricsSvc == nil {
			c.Next()
			return
		}
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if _, ok := skipped[route]; ok {
			return
		}
		if route == "" {
			route = unmatchedRoute
		}
		metricsSvc.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
