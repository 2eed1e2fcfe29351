package server

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/sky-flux/leitner/internal/http/handlers"
	"github.com/sky-flux/leitner/internal/platform/logger"
)

type RouterConfig struct {
	Log           *logger.Logger
	DeckHandler   *httpH.DeckHandler
	HealthHandler *httpH.HealthHandler

	// ServiceName enables otelgin request spans when non-empty.
	ServiceName string
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.Log != nil {
		r.Use(requestLogger(cfg.Log))
	}
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	if h := cfg.DeckHandler; h != nil {
		api.GET("/practice", h.Practice)
		api.POST("/update", h.Update)
		api.GET("/hint", h.Hint)
		api.GET("/progress", h.Progress)
		api.GET("/report", h.Report)
		api.POST("/cards", h.AddCard)
		api.GET("/day", h.CurrentDay)
		api.POST("/day/next", h.AdvanceDay)
		api.GET("/forecast", h.Forecast)
	}
	return r
}

func requestLogger(baseLog *logger.Logger) gin.HandlerFunc {
	log := baseLog.With("component", "http")
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		log.Debug("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency", time.Since(start),
		)
	}
}
