// Package notification persists in-app notifications.
package notification

import (
	"context"
	"time"

	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/logger"
)

// NotiTypeBenefit is the opt-out key for ticket and gift notices.
const NotiTypeBenefit = "benefit"

type Repository interface {
	Enabled(ctx context.Context, userID int64, notiType string) (bool, error)
	InsertItem(ctx context.Context, userID int64, notiType, title, content string, writerID int64, now time.Time) error
}

// BenefitNotifier writes benefit notifications. It never fails the caller: when a
// transaction is open it writes inside a savepoint so a failed insert does not poison the
// parent, and every error is logged and dropped.
type BenefitNotifier struct {
	repo   Repository
	tx     db.Runner
	logger logger.Interface
	now    func() time.Time
}

func NewBenefitNotifier(repo Repository, tx db.Runner, logger logger.Interface) *BenefitNotifier {
	return &BenefitNotifier{repo: repo, tx: tx, logger: logger, now: biztime.Now}
}

func (n *BenefitNotifier) Notify(ctx context.Context, userID int64, title, content string) {
	err := n.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		enabled, err := n.repo.Enabled(txCtx, userID, NotiTypeBenefit)
		if err != nil {
			return err
		}
		if !enabled {
			return nil
		}
		// TODO: hand the stored item to a push sender once one is configured.
		return n.repo.InsertItem(txCtx, userID, NotiTypeBenefit, title, content, constants.SystemWriterID, n.now())
	})
	if err != nil {
		n.logger.WithContext(ctx).Warnw("failed to write benefit notification",
			"user_id", userID,
			"error", err)
	}
}
