package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"likenovel/internal/application/user/usecases"
	"likenovel/internal/domain/user"
	"likenovel/internal/infrastructure/auth"
	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

type TokenAuthenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Principal, error)
}

type SubjectResolver interface {
	Execute(ctx context.Context, p usecases.Principal) (user.Subject, error)
}

// AuthFailureRecorder counts rejected bearer tokens by reason.
type AuthFailureRecorder interface {
	AuthFailed(reason string)
}

type AuthMiddleware struct {
	tokens   TokenAuthenticator
	subjects SubjectResolver
	failures AuthFailureRecorder
	logger   logger.Interface
}

func NewAuthMiddleware(tokens TokenAuthenticator, subjects SubjectResolver, failures AuthFailureRecorder, logger logger.Interface) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:   tokens,
		subjects: subjects,
		failures: failures,
		logger:   logger,
	}
}

// Resolve attaches the caller's subject to every request. A missing or rejected bearer
// leaves the request anonymous; the rejection is kept so RequireLogin can report it.
func (m *AuthMiddleware) Resolve() gin.HandlerFunc {
	return func(c *gin.Context) {
		setSubject(c, user.Subject{})

		token, ok := bearerToken(c.GetHeader(constants.HeaderAuthorization))
		if !ok {
			c.Next()
			return
		}

		principal, err := m.tokens.Authenticate(c.Request.Context(), token)
		if err != nil {
			m.reject(c, "invalid_token", err)
			c.Next()
			return
		}

		subject, err := m.subjects.Execute(c.Request.Context(), usecases.Principal{
			Subject: principal.Subject,
			Azp:     principal.Azp,
			UserID:  principal.UserID,
		})
		if err != nil {
			if !errors.HasStatus(err, 401) {
				utils.AbortWithError(c, err)
				return
			}
			m.reject(c, "unknown_user", err)
			c.Next()
			return
		}

		setSubject(c, subject)
		c.Next()
	}
}

// RequireLogin rejects anonymous callers with the stored token failure, or LOGIN_REQUIRED
// when no bearer was presented.
func (m *AuthMiddleware) RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !Subject(c).IsAnonymous() {
			c.Next()
			return
		}
		if stored, ok := c.Get(constants.ContextKeyAuthError); ok {
			if err, ok := stored.(error); ok {
				utils.AbortWithError(c, err)
				return
			}
		}
		utils.AbortWithError(c, errors.ErrLoginRequired)
	}
}

func (m *AuthMiddleware) reject(c *gin.Context, reason string, err error) {
	m.logger.Debugw("bearer token rejected", "reason", reason, "error", err)
	if m.failures != nil {
		m.failures.AuthFailed(reason)
	}
	c.Set(constants.ContextKeyAuthError, err)
}

// Subject returns the resolved caller; anonymous when the resolver has not run.
func Subject(c *gin.Context) user.Subject {
	if v, ok := c.Get(constants.ContextKeySubject); ok {
		if s, ok := v.(user.Subject); ok {
			return s
		}
	}
	return user.Subject{}
}

func setSubject(c *gin.Context, s user.Subject) {
	c.Set(constants.ContextKeySubject, s)
	if s.IsAnonymous() {
		return
	}
	c.Set(constants.ContextKeyUserID, s.UserID)
	c.Set(constants.ContextKeyRole, s.Role.String())
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", false
	}
	token := strings.TrimSpace(parts[1])
	return token, token != ""
}
