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

type ListMessagesQuery struct {
	RoomID       int64
	UserID       int64
	Page         int
	CountPerPage int
}

type ListMessagesUseCase struct {
	repo   chat.Repository
	txMgr  db.Runner
	logger logger.Interface
	now    func() time.Time
}

func NewListMessagesUseCase(repo chat.Repository, txMgr db.Runner, logger logger.Interface) *ListMessagesUseCase {
	return &ListMessagesUseCase{repo: repo, txMgr: txMgr, logger: logger, now: biztime.Now}
}

// Execute marks every counterpart message read before reading the page, so the returned
// rows already carry is_read=Y.
func (uc *ListMessagesUseCase) Execute(ctx context.Context, q ListMessagesQuery) ([]*dto.MessageDTO, int64, error) {
	var (
		msgs  []*chat.Message
		total int64
	)
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if _, err := requireMember(txCtx, uc.repo, q.RoomID, q.UserID); err != nil {
			return err
		}
		n, err := uc.repo.MarkRead(txCtx, q.RoomID, q.UserID, uc.now())
		if err != nil {
			return err
		}
		if n > 0 {
			uc.logger.Debugw("chat messages marked read", "room_id", q.RoomID, "user_id", q.UserID, "count", n)
		}
		msgs, total, err = uc.repo.ListMessages(txCtx, q.RoomID, q.Page, q.CountPerPage)
		return err
	})
	if err != nil {
		return nil, 0, err
	}
	return dto.ToMessageDTOs(msgs), total, nil
}
