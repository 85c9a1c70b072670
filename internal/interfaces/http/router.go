package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"likenovel/internal/infrastructure/config"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/interfaces/http/routes"
	"likenovel/internal/shared/logger"
)

// Router represents the HTTP router configuration
type Router struct {
	container *Container
}

// NewRouter builds the dependency container behind the HTTP engine.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Router, error) {
	container, err := NewContainer(db, cfg, log)
	if err != nil {
		return nil, err
	}
	return &Router{container: container}, nil
}

// SetupRoutes configures all the routes
func (r *Router) SetupRoutes() {
	c := r.container
	engine := c.engine

	engine.Use(middleware.Recovery(c.log, c.infra.metrics))
	engine.Use(middleware.Tracing(c.infra.analysis))
	engine.Use(middleware.Metrics(c.infra.metrics))
	engine.Use(middleware.CORS(c.cfg.Server.AllowedOrigins))
	engine.Use(middleware.SecurityHeaders())
	engine.Use(middleware.AccessLog(c.log))
	engine.Use(c.authMiddleware.Resolve())

	engine.GET("/health", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(c.infra.metrics.Handler()))

	cfg := c.routeConfig()
	routes.SetupQueryRoutes(engine, cfg)
	routes.SetupCommandRoutes(engine, cfg)
}

// GetEngine returns the gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.container.engine
}

// Shutdown releases resources held by the container.
func (r *Router) Shutdown() {
	r.container.Shutdown()
}
