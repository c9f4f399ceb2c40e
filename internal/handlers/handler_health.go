package handlers

import (
	"log/slog"
	"net/http"

	portsrepo "github.com/SscSPs/ratechart_app/internal/core/ports/repositories"
	"github.com/SscSPs/ratechart_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// healthCheck godoc
// @Summary Health check
// @Description Reports whether the service and its database are reachable
// @Tags health
// @Produce  plain
// @Success 200 {string} string "OK"
// @Failure 503 {string} string "Database unavailable"
// @Router /health [get]
func healthCheck(checker portsrepo.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if checker != nil {
			if err := checker.Ping(c.Request.Context()); err != nil {
				middleware.GetLoggerFromCtx(c.Request.Context()).Error("Health check failed", slog.String("error", err.Error()))
				c.String(http.StatusServiceUnavailable, "Database unavailable")
				return
			}
		}
		c.String(http.StatusOK, "OK")
	}
}
