package usecases

import (
	"context"
	"time"

	"likenovel/internal/domain/ticket"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type UseTicketbookCommand struct {
	TicketbookID int64
	UserID       int64
}

type UseTicketbookUseCase struct {
	repo   ticket.TicketbookRepository
	txMgr  db.Runner
	logger logger.Interface
	now    func() time.Time
}

func NewUseTicketbookUseCase(repo ticket.TicketbookRepository, txMgr db.Runner, logger logger.Interface) *UseTicketbookUseCase {
	return &UseTicketbookUseCase{repo: repo, txMgr: txMgr, logger: logger, now: biztime.Now}
}

// Execute moves the pass from unused to used. The final write is guarded by use_yn so two
// concurrent callers cannot both succeed.
func (uc *UseTicketbookUseCase) Execute(ctx context.Context, cmd UseTicketbookCommand) error {
	if cmd.UserID <= 0 {
		return errors.ErrLoginRequired
	}
	return uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		tb, err := uc.repo.GetByID(txCtx, cmd.TicketbookID)
		if err != nil {
			return err
		}
		if tb == nil {
			return errors.ErrNotFoundTicketbook
		}

		now := uc.now()
		if err := tb.Use(cmd.UserID, now); err != nil {
			uc.logger.Warnw("ticketbook use rejected",
				"ticketbook_id", cmd.TicketbookID,
				"user_id", cmd.UserID,
				"error", err)
			return err
		}

		ok, err := uc.repo.MarkUsed(txCtx, tb.ID(), cmd.UserID, now)
		if err != nil {
			return err
		}
		if !ok {
			return errors.ErrAlreadyUsedTicketbook
		}

		uc.logger.Infow("ticketbook used", "ticketbook_id", tb.ID(), "user_id", cmd.UserID)
		return nil
	})
}
