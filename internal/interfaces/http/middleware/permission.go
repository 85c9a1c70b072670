package middleware

import (
	"github.com/gin-gonic/gin"

	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

// PolicyEnforcer decides whether a role may call a route pattern with a method.
type PolicyEnforcer interface {
	Enforce(role, path, method string) (bool, error)
}

type PermissionMiddleware struct {
	enforcer PolicyEnforcer
	logger   logger.Interface
}

func NewPermissionMiddleware(enforcer PolicyEnforcer, logger logger.Interface) *PermissionMiddleware {
	return &PermissionMiddleware{
		enforcer: enforcer,
		logger:   logger,
	}
}

// RequirePermission checks the caller's role against the matched route pattern.
// It must run after RequireLogin.
func (m *PermissionMiddleware) RequirePermission() gin.HandlerFunc {
	return func(c *gin.Context) {
		subject := Subject(c)
		if subject.IsAnonymous() {
			utils.AbortWithError(c, errors.ErrLoginRequired)
			return
		}

		route := c.FullPath()
		allowed, err := m.enforcer.Enforce(subject.Role.String(), route, c.Request.Method)
		if err != nil {
			m.logger.Errorw("permission check failed", "error", err, "user_id", subject.UserID, "route", route)
			utils.AbortWithError(c, errors.NewInternalError("permission check failed").WithCause(err))
			return
		}

		if !allowed {
			m.logger.Warnw("permission denied",
				"user_id", subject.UserID,
				"role", subject.Role,
				"route", route,
				"method", c.Request.Method)
			utils.AbortWithError(c, errors.ErrPermissionDenied)
			return
		}

		c.Next()
	}
}
