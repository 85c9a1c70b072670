package usecases

import (
	"context"
	"time"

	"likenovel/internal/domain/chat"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type CreateRoomCommand struct {
	UserID         int64
	TargetUserID   int64
	DefaultMessage *string
}

// CreateRoomUseCase always opens a new room; existing rooms between the pair are not reused.
// The room, both memberships and the optional first message commit together.
type CreateRoomUseCase struct {
	repo      chat.Repository
	users     UserLookup
	sanitizer ContentSanitizer
	txMgr     db.Runner
	logger    logger.Interface
	now       func() time.Time
}

func NewCreateRoomUseCase(
	repo chat.Repository,
	users UserLookup,
	sanitizer ContentSanitizer,
	txMgr db.Runner,
	logger logger.Interface,
) *CreateRoomUseCase {
	return &CreateRoomUseCase{
		repo:      repo,
		users:     users,
		sanitizer: sanitizer,
		txMgr:     txMgr,
		logger:    logger,
		now:       biztime.Now,
	}
}

func (uc *CreateRoomUseCase) Execute(ctx context.Context, cmd CreateRoomCommand) (int64, error) {
	if cmd.UserID <= 0 {
		return 0, errors.ErrLoginRequired
	}
	if err := chat.ValidateParticipants(cmd.UserID, cmd.TargetUserID); err != nil {
		return 0, err
	}

	var first string
	if cmd.DefaultMessage != nil {
		c, err := chat.NormalizeContent(uc.sanitizer.StripTags(*cmd.DefaultMessage))
		if err != nil {
			return 0, err
		}
		first = c
	}

	exists, err := uc.users.Exists(ctx, cmd.TargetUserID)
	if err != nil {
		return 0, err
	}
	if !exists {
		return 0, errors.ErrChatTargetNotFound
	}

	var roomID int64
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		now := uc.now()
		id, err := uc.repo.CreateRoom(txCtx, cmd.UserID, cmd.TargetUserID, now)
		if err != nil {
			return err
		}
		if first != "" {
			if _, err := uc.repo.AppendMessage(txCtx, id, cmd.UserID, first, now); err != nil {
				return err
			}
		}
		roomID = id
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to create chat room", "user_id", cmd.UserID, "target_user_id", cmd.TargetUserID, "error", err)
		return 0, err
	}

	uc.logger.Infow("chat room created", "room_id", roomID, "user_id", cmd.UserID, "target_user_id", cmd.TargetUserID)
	return roomID, nil
}
