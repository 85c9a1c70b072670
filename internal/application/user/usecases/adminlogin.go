package usecases

import (
	"context"
	"strings"
	"time"

	"likenovel/internal/application/user/dto"
	"likenovel/internal/domain/user"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type PasswordVerifier interface {
	Verify(password, hash string) error
}

type AdminTokenIssuer interface {
	Issue(userID int64, email string) (string, time.Time, error)
}

type AdminLoginCommand struct {
	Email    string
	Password string
}

type AdminLoginUseCase struct {
	repo     user.Repository
	verifier PasswordVerifier
	tokens   AdminTokenIssuer
	logger   logger.Interface
}

func NewAdminLoginUseCase(repo user.Repository, verifier PasswordVerifier, tokens AdminTokenIssuer, logger logger.Interface) *AdminLoginUseCase {
	return &AdminLoginUseCase{repo: repo, verifier: verifier, tokens: tokens, logger: logger}
}

// Execute returns the same error for an unknown email, a non-admin account and a wrong
// password.
func (uc *AdminLoginUseCase) Execute(ctx context.Context, cmd AdminLoginCommand) (*dto.AdminLoginDTO, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	u, err := uc.repo.GetAdminByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to load admin account", "error", err)
		return nil, err
	}
	if u == nil || u.PasswordHash == nil {
		return nil, errors.ErrInvalidCredentials
	}
	if err := uc.verifier.Verify(cmd.Password, *u.PasswordHash); err != nil {
		uc.logger.Warnw("admin login failed", "user_id", u.ID)
		return nil, errors.ErrInvalidCredentials
	}

	token, exp, err := uc.tokens.Issue(u.ID, u.Email)
	if err != nil {
		uc.logger.Errorw("failed to issue admin token", "user_id", u.ID, "error", err)
		return nil, errors.NewInternalError("토큰 발급에 실패했습니다.").WithCause(err)
	}

	uc.logger.Infow("admin logged in", "user_id", u.ID)
	return &dto.AdminLoginDTO{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresAt:   biztime.Format(exp),
	}, nil
}
