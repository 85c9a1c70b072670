package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"likenovel/internal/infrastructure/config"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/logger"
)

// Container holds infrastructure components, repositories, use cases and handlers.
// It wires everything together and provides Shutdown() for graceful termination.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	infra *infrastructure
	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimitMiddleware  *middleware.RateLimitMiddleware
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(db *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     db,
		cfg:    cfg,
		log:    log,
	}

	if err := c.initInfrastructure(); err != nil {
		c.Shutdown()
		return nil, err
	}
	c.initUseCases()
	c.initMiddlewares()
	c.initHandlers()

	return c, nil
}

// Shutdown releases the analysis log file and the Redis connection.
func (c *Container) Shutdown() {
	if c.infra != nil && c.infra.analysis != nil {
		if err := c.infra.analysis.Close(); err != nil {
			c.log.Warnw("failed to close analysis log", "error", err)
		}
	}
	if c.redis != nil {
		if err := c.redis.Close(); err != nil {
			c.log.Warnw("failed to close Redis client", "error", err)
		}
	}
}
