package usecases

import (
	"context"

	"likenovel/internal/domain/user"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

// Principal is the verified token holder as seen by this package.
type Principal struct {
	Subject string
	Azp     string
	UserID  int64
}

// ResolveSubjectUseCase maps a verified token to the internal user and derives its role.
type ResolveSubjectUseCase struct {
	repo   user.Repository
	logger logger.Interface
}

func NewResolveSubjectUseCase(repo user.Repository, logger logger.Interface) *ResolveSubjectUseCase {
	return &ResolveSubjectUseCase{repo: repo, logger: logger}
}

// Execute fails with 401 when no active user row backs the token.
func (uc *ResolveSubjectUseCase) Execute(ctx context.Context, p Principal) (user.Subject, error) {
	var (
		u   *user.User
		err error
	)
	if p.UserID > 0 {
		u, err = uc.repo.GetByID(ctx, p.UserID)
	} else {
		u, err = uc.repo.GetByKcUserID(ctx, p.Subject)
	}
	if err != nil {
		return user.Subject{}, err
	}
	if u == nil {
		uc.logger.Warnw("token subject has no user row", "sub", p.Subject, "user_id", p.UserID)
		return user.Subject{}, errors.ErrUserNotFound
	}

	apply, err := uc.repo.LatestApplyType(ctx, u.ID)
	if err != nil {
		return user.Subject{}, err
	}

	return user.Subject{
		Sub:    p.Subject,
		UserID: u.ID,
		Role:   user.ResolveRole(u.RoleType, apply),
		Azp:    p.Azp,
	}, nil
}
