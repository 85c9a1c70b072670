package usecases

import (
	"context"
	"time"

	"likenovel/internal/application/user/dto"
	"likenovel/internal/domain/user"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/errors"
)

type GetMeUseCase struct {
	repo user.Repository
	now  func() time.Time
}

func NewGetMeUseCase(repo user.Repository) *GetMeUseCase {
	return &GetMeUseCase{repo: repo, now: biztime.Now}
}

func (uc *GetMeUseCase) Execute(ctx context.Context, subject user.Subject) (*dto.MeDTO, error) {
	if subject.IsAnonymous() {
		return nil, errors.ErrLoginRequired
	}
	u, err := uc.repo.GetByID(ctx, subject.UserID)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, errors.ErrUserNotFound
	}
	profiles, err := uc.repo.ListProfiles(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	return &dto.MeDTO{
		UserID:   u.ID,
		KcUserID: u.KcUserID,
		Email:    u.Email,
		Role:     subject.Role.String(),
		Age:      u.Age(uc.now()),
		Profiles: dto.ToProfileDTOs(profiles),
	}, nil
}
