package usecases

import (
	"context"
	"crypto/subtle"
	"time"

	"likenovel/internal/application/statistics"
	"likenovel/internal/domain/payment"
	vo "likenovel/internal/domain/payment/valueobjects"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type ConfirmVirtualAccountCommand struct {
	OrderNo string
	Secret  string
}

// ConfirmVirtualAccountUseCase marks a deposit as received. Only an order still awaiting
// deposit moves; any other state is a no-op reported as false.
type ConfirmVirtualAccountUseCase struct {
	orders   payment.OrderRepository
	recorder PaymentRecorder
	txMgr    db.Runner
	secret   string
	logger   logger.Interface
	now      func() time.Time
}

func NewConfirmVirtualAccountUseCase(
	orders payment.OrderRepository,
	recorder PaymentRecorder,
	txMgr db.Runner,
	webhookSecret string,
	logger logger.Interface,
) *ConfirmVirtualAccountUseCase {
	return &ConfirmVirtualAccountUseCase{
		orders:   orders,
		recorder: recorder,
		txMgr:    txMgr,
		secret:   webhookSecret,
		logger:   logger,
		now:      biztime.Now,
	}
}

func (uc *ConfirmVirtualAccountUseCase) Execute(ctx context.Context, cmd ConfirmVirtualAccountCommand) (bool, error) {
	// An unconfigured secret rejects every caller.
	if uc.secret == "" || subtle.ConstantTimeCompare([]byte(uc.secret), []byte(cmd.Secret)) != 1 {
		uc.logger.Warnw("virtual account confirmation with bad secret", "order_no", cmd.OrderNo)
		return false, errors.ErrInvalidWebhookSecret
	}
	if cmd.OrderNo == "" {
		return false, errors.NewValidationError("orderNo 항목은 필수입니다.")
	}

	var moved bool
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		order, err := uc.orders.GetByOrderNo(txCtx, cmd.OrderNo)
		if err != nil {
			return err
		}
		if order == nil || !order.Status.CanConfirm() {
			return nil
		}
		ok, err := uc.orders.TransitionStatus(txCtx, cmd.OrderNo,
			vo.OrderStatusAwaitingDeposit, vo.OrderStatusConfirmed,
			constants.SystemWriterID, uc.now())
		if err != nil || !ok {
			return err
		}
		if err := uc.recorder.Payment(txCtx, statistics.PaymentDeposit, order.UserID, order.TotalPrice); err != nil {
			return err
		}
		moved = true
		return nil
	})
	if err != nil {
		uc.logger.Errorw("virtual account confirmation failed", "order_no", cmd.OrderNo, "error", err)
		return false, err
	}

	uc.logger.Infow("virtual account confirmation", "order_no", cmd.OrderNo, "confirmed", moved)
	return moved, nil
}
