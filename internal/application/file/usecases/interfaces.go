package usecases

import (
	"context"

	"likenovel/internal/application/file/dto"
)

type PresignUploadExecutor interface {
	Execute(ctx context.Context, cmd PresignUploadCommand) (*dto.PresignedUploadDTO, error)
}
