package usecases

import (
	"context"
	"time"

	"likenovel/internal/application/statistics"
	"likenovel/internal/application/ticket/dto"
	"likenovel/internal/domain/ticket"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type PostTicketbookCommand struct {
	UserID         int64
	ProductID      *int64
	UseExpiredDate *time.Time
	WriterID       int64
}

// PostTicketbookUseCase grants a period pass. The insert and its statistics row share one
// transaction; the benefit notification is best-effort.
type PostTicketbookUseCase struct {
	repo     ticket.TicketbookRepository
	recorder SiteRecorder
	notifier Notifier
	txMgr    db.Runner
	logger   logger.Interface
}

func NewPostTicketbookUseCase(
	repo ticket.TicketbookRepository,
	recorder SiteRecorder,
	notifier Notifier,
	txMgr db.Runner,
	logger logger.Interface,
) *PostTicketbookUseCase {
	return &PostTicketbookUseCase{
		repo:     repo,
		recorder: recorder,
		notifier: notifier,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *PostTicketbookUseCase) Execute(ctx context.Context, cmd PostTicketbookCommand) (*dto.TicketbookDTO, error) {
	var result *dto.TicketbookDTO
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		tb, err := uc.post(txCtx, cmd)
		if err != nil {
			return err
		}
		result = dto.ToTicketbookDTO(tb)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// post runs inside the caller's transaction; issuance reuses it per recipient.
func (uc *PostTicketbookUseCase) post(ctx context.Context, cmd PostTicketbookCommand) (*ticket.Ticketbook, error) {
	tb, err := ticket.NewTicketbook(cmd.UserID, cmd.ProductID, cmd.UseExpiredDate)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, tb, cmd.WriterID); err != nil {
		uc.logger.Errorw("failed to create ticketbook", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	if err := uc.recorder.Site(ctx, statistics.SiteActive, cmd.UserID); err != nil {
		uc.logger.Errorw("failed to record ticketbook statistics", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.notifier.Notify(ctx, cmd.UserID, "이용권이 지급되었습니다.", ticketbookNotice(tb))

	uc.logger.Infow("ticketbook posted", "ticketbook_id", tb.ID(), "user_id", cmd.UserID)
	return tb, nil
}

func ticketbookNotice(tb *ticket.Ticketbook) string {
	if tb.UseExpiredDate() == nil {
		return "이용권을 확인해 주세요."
	}
	return biztime.Format(*tb.UseExpiredDate()) + "까지 사용할 수 있는 이용권이 지급되었습니다."
}
