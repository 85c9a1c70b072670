package usecases

import (
	"context"

	"likenovel/internal/application/chat/dto"
)

type CreateRoomExecutor interface {
	Execute(ctx context.Context, cmd CreateRoomCommand) (int64, error)
}

type SendMessageExecutor interface {
	Execute(ctx context.Context, cmd SendMessageCommand) (*dto.MessageDTO, error)
}

type ListRoomsExecutor interface {
	Execute(ctx context.Context, q ListRoomsQuery) ([]*dto.RoomDTO, int64, error)
}

type ListMessagesExecutor interface {
	Execute(ctx context.Context, q ListMessagesQuery) ([]*dto.MessageDTO, int64, error)
}

type LeaveRoomExecutor interface {
	Execute(ctx context.Context, roomID, userID int64) error
}

type ReportRoomExecutor interface {
	Execute(ctx context.Context, cmd ReportRoomCommand) error
}

type UnreadCountExecutor interface {
	Execute(ctx context.Context, userID int64) (int64, error)
}
