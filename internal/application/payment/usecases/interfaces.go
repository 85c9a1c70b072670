package usecases

import (
	"context"

	"likenovel/internal/application/payment/dto"
)

type SponsorAuthorExecutor interface {
	Execute(ctx context.Context, cmd SponsorAuthorCommand) (*dto.SponsorshipDTO, error)
}

type ConfirmVirtualAccountExecutor interface {
	Execute(ctx context.Context, cmd ConfirmVirtualAccountCommand) (bool, error)
}
