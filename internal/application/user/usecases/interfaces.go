package usecases

import (
	"context"

	"likenovel/internal/application/user/dto"
	"likenovel/internal/domain/user"
)

type GetMeExecutor interface {
	Execute(ctx context.Context, subject user.Subject) (*dto.MeDTO, error)
}

type AdminLoginExecutor interface {
	Execute(ctx context.Context, cmd AdminLoginCommand) (*dto.AdminLoginDTO, error)
}
