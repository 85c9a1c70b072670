package http

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"likenovel/internal/application/notification"
	"likenovel/internal/application/statistics"
	"likenovel/internal/infrastructure/auth"
	"likenovel/internal/infrastructure/config"
	"likenovel/internal/infrastructure/metrics"
	"likenovel/internal/infrastructure/permission"
	"likenovel/internal/infrastructure/ratelimit"
	"likenovel/internal/infrastructure/storage"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/services/markdown"
)

// infrastructure holds the shared services built once at startup.
type infrastructure struct {
	txMgr         *db.TransactionManager
	markdown      *markdown.Renderer
	metrics       *metrics.Metrics
	analysis      *logger.AnalysisLogger
	authenticator *auth.Authenticator
	adminTokens   *auth.AdminTokenService
	hasher        *auth.AdminPasswords
	enforcer      *permission.Enforcer
	limiter       middleware.RequestLimiter
	presigner     *storage.S3Presigner
	recorder      *statistics.Recorder
	notifier      *notification.BenefitNotifier
}

// initInfrastructure initializes Redis, repositories and the services every
// use case shares. The order matters: repositories before recorder and notifier.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	if cfg.Redis.Enabled() {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.repos = newRepositories(c.db)

	infra := &infrastructure{
		txMgr:    db.NewTransactionManager(c.db),
		markdown: markdown.NewRenderer(),
		metrics:  metrics.New(),
		hasher:   auth.NewAdminPasswords(bcrypt.DefaultCost),
	}

	analysis, err := logger.NewAnalysisLogger(&cfg.AnalysisLog)
	if err != nil {
		return fmt.Errorf("failed to open analysis log: %w", err)
	}
	infra.analysis = analysis

	jwks := auth.NewJWKSCache(cfg.OIDC.CertsURL(), cfg.OIDC.JWKSTTL, cfg.OIDC.HTTPTimeout, log)
	oidc, err := auth.NewOIDCVerifier(cfg.OIDC, jwks, log)
	if err != nil {
		return fmt.Errorf("failed to create OIDC verifier: %w", err)
	}
	infra.adminTokens, err = auth.NewAdminTokenService(cfg.AdminToken)
	if err != nil {
		return fmt.Errorf("failed to create admin token service: %w", err)
	}
	infra.authenticator = auth.NewAuthenticator(oidc, infra.adminTokens)

	infra.enforcer, err = permission.NewEnforcer(c.db, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}

	limit := ratelimit.LimitFromConfig(cfg.RateLimit)
	if c.redis != nil {
		infra.limiter = ratelimit.NewRedisRateLimiter(c.redis, limit)
	} else {
		log.Infow("redis not configured, using in-process rate limiter")
		infra.limiter = ratelimit.NewMemoryRateLimiter(limit)
	}

	infra.presigner, err = storage.NewS3Presigner(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage presigner: %w", err)
	}

	infra.recorder = statistics.NewRecorder(c.repos.statisticsRepo)
	infra.notifier = notification.NewBenefitNotifier(c.repos.notificationRepo, infra.txMgr, log)

	c.infra = infra
	return nil
}

// initMiddlewares builds the request guards once use cases exist.
func (c *Container) initMiddlewares() {
	c.authMiddleware = middleware.NewAuthMiddleware(c.infra.authenticator, c.ucs.resolveSubject, c.infra.metrics, c.log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.infra.enforcer, c.log)
	c.rateLimitMiddleware = middleware.NewRateLimitMiddleware(c.infra.limiter, c.infra.metrics, c.log)
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx := context.Background()
	if err := redisClient.Ping(ctx).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established successfully")

	return redisClient, nil
}
