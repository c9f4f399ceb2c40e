package middleware

import (
	"net/http"
	"strings"

	"github.com/SscSPs/ratechart_app/internal/analytics"
	"github.com/gin-gonic/gin"
)

var untrackedPaths = map[string]bool{
	"/health": true,
}

// UsageTrackingMiddleware records one analytics event per successful
// authenticated request, named after the matched route.
func UsageTrackingMiddleware(client *analytics.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !client.IsInitialized() || untrackedPaths[c.Request.URL.Path] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		// "/api/v1/interestratecharts/:chart_id/chartslabs" -> "api_v1_interestratecharts_chart_id_chartslabs"
		eventName := strings.TrimPrefix(c.FullPath(), "/")
		eventName = strings.NewReplacer("/", "_", ":", "").Replace(eventName)
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}
		if template := c.Query("template"); template != "" {
			props["template"] = template
		}

		client.Enqueue(userID, eventName, props)
	}
}
