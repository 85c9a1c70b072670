package usecases

import (
	"context"
	"time"

	"likenovel/internal/application/chat/dto"
	"likenovel/internal/domain/chat"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/logger"
)

type SendMessageCommand struct {
	RoomID  int64
	UserID  int64
	Content string
}

type SendMessageUseCase struct {
	repo      chat.Repository
	sanitizer ContentSanitizer
	txMgr     db.Runner
	logger    logger.Interface
	now       func() time.Time
}

func NewSendMessageUseCase(repo chat.Repository, sanitizer ContentSanitizer, txMgr db.Runner, logger logger.Interface) *SendMessageUseCase {
	return &SendMessageUseCase{repo: repo, sanitizer: sanitizer, txMgr: txMgr, logger: logger, now: biztime.Now}
}

// Execute appends the message and reactivates a counterpart who had left the room.
func (uc *SendMessageUseCase) Execute(ctx context.Context, cmd SendMessageCommand) (*dto.MessageDTO, error) {
	content, err := chat.NormalizeContent(uc.sanitizer.StripTags(cmd.Content))
	if err != nil {
		return nil, err
	}

	var msg *chat.Message
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := requireMember(txCtx, uc.repo, cmd.RoomID, cmd.UserID); err != nil {
			return err
		}
		now := uc.now()
		m, err := uc.repo.AppendMessage(txCtx, cmd.RoomID, cmd.UserID, content, now)
		if err != nil {
			return err
		}
		other, err := uc.repo.Counterpart(txCtx, cmd.RoomID, cmd.UserID)
		if err != nil {
			return err
		}
		if other != nil && !other.IsActive {
			if err := uc.repo.SetActive(txCtx, cmd.RoomID, other.UserID, true, now); err != nil {
				return err
			}
			uc.logger.Infow("chat member reactivated", "room_id", cmd.RoomID, "user_id", other.UserID)
		}
		msg = m
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dto.ToMessageDTO(msg), nil
}
