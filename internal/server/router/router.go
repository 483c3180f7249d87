package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/rentalhub/backoffice/internal/domain/models"
	"github.com/rentalhub/backoffice/internal/server/handlers"
)

// New wires the Gin engine with required routes and middlewares.
func New(handler *handlers.ReportHandler, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(zapLoggerMiddleware(logger))

	reports := r.Group("/reports", requireReportAccess())
	reports.GET("", handler.Generate)
	reports.GET("/snapshots", handler.Snapshots)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	if logger != nil {
		logger.Info("router initialized")
	}

	return r
}

// requireReportAccess denies callers whose role carries no report-viewing
// capability. Authentication happens upstream; the gateway forwards the
// resolved role in X-User-Role.
func requireReportAccess() gin.HandlerFunc {
	return func(c *gin.Context) {
		role := models.Role(c.GetHeader("X-User-Role"))
		if !models.CapabilitiesFor(role).CanViewReports {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "role not permitted to view reports"})
			return
		}
		c.Next()
	}
}

func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	if logger == nil {
		logger = zap.NewNop()
	}

	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info("request completed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("client_ip", c.ClientIP()))
	}
}
