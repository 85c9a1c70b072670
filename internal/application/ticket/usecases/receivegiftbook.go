package usecases

import (
	"context"
	"time"

	"likenovel/internal/application/ticket/dto"
	"likenovel/internal/domain/ticket"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type ReceiveGiftbookCommand struct {
	GiftbookID int64
	UserID     int64
}

// ReceiveGiftbookUseCase turns a gift into productbooks. The received flip and every
// minted productbook commit together or not at all.
type ReceiveGiftbookUseCase struct {
	gifts        ticket.GiftbookRepository
	productbooks ticket.ProductbookRepository
	txMgr        db.Runner
	logger       logger.Interface
	now          func() time.Time
}

func NewReceiveGiftbookUseCase(
	gifts ticket.GiftbookRepository,
	productbooks ticket.ProductbookRepository,
	txMgr db.Runner,
	logger logger.Interface,
) *ReceiveGiftbookUseCase {
	return &ReceiveGiftbookUseCase{
		gifts:        gifts,
		productbooks: productbooks,
		txMgr:        txMgr,
		logger:       logger,
		now:          biztime.Now,
	}
}

func (uc *ReceiveGiftbookUseCase) Execute(ctx context.Context, cmd ReceiveGiftbookCommand) ([]*dto.ProductbookDTO, error) {
	if cmd.UserID <= 0 {
		return nil, errors.ErrLoginRequired
	}

	var minted []*ticket.Productbook
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		g, err := uc.gifts.GetByID(txCtx, cmd.GiftbookID)
		if err != nil {
			return err
		}
		if g == nil {
			return errors.ErrGiftNotFound
		}

		now := uc.now()
		books, err := g.Receive(cmd.UserID, now)
		if err != nil {
			uc.logger.Warnw("giftbook receive rejected",
				"giftbook_id", cmd.GiftbookID,
				"user_id", cmd.UserID,
				"error", err)
			return err
		}

		ok, err := uc.gifts.MarkReceived(txCtx, g.ID(), cmd.UserID, now)
		if err != nil {
			return err
		}
		if !ok {
			return errors.ErrGiftAlreadyReceived
		}

		if err := uc.productbooks.CreateBatch(txCtx, books, cmd.UserID); err != nil {
			return err
		}
		minted = books
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("giftbook received",
		"giftbook_id", cmd.GiftbookID,
		"user_id", cmd.UserID,
		"productbooks", len(minted))
	return dto.ToProductbookDTOs(minted), nil
}
