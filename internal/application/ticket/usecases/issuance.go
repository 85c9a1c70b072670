package usecases

import (
	"context"
	"fmt"
	"time"

	"likenovel/internal/domain/ticket"
	vo "likenovel/internal/domain/ticket/valueobjects"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type IssueCommand struct {
	TicketID  int64
	UserIDs   []int64
	ProductID *int64
	EpisodeID *int64
	// Amount is the number of productbooks per user; values below 1 mean 1.
	// Values above ticket.MaxIssueAmount are rejected.
	Amount   int
	WriterID int64
}

// IssuanceUseCase mints passes from a catalog item for a list of users. An inactive item,
// or one whose ticket_type differs from the requested kind, returns false and writes nothing.
type IssuanceUseCase struct {
	items        ticket.ItemRepository
	productbooks ticket.ProductbookRepository
	post         *PostTicketbookUseCase
	notifier     Notifier
	txMgr        db.Runner
	logger       logger.Interface
	now          func() time.Time
}

func NewIssuanceUseCase(
	items ticket.ItemRepository,
	productbooks ticket.ProductbookRepository,
	post *PostTicketbookUseCase,
	notifier Notifier,
	txMgr db.Runner,
	logger logger.Interface,
) *IssuanceUseCase {
	return &IssuanceUseCase{
		items:        items,
		productbooks: productbooks,
		post:         post,
		notifier:     notifier,
		txMgr:        txMgr,
		logger:       logger,
		now:          biztime.Now,
	}
}

func (uc *IssuanceUseCase) loadIssuable(ctx context.Context, cmd IssueCommand, kind vo.TicketType) (*ticket.Item, error) {
	if len(cmd.UserIDs) == 0 {
		return nil, errors.NewValidationError("userIds 항목은 필수입니다.")
	}
	if len(cmd.UserIDs) > ticket.MaxIssueUsers {
		return nil, errors.NewValidationError(fmt.Sprintf("userIds 는 %d명 이하여야 합니다.", ticket.MaxIssueUsers))
	}
	item, err := uc.items.GetByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, errors.ErrNotFoundTicketItem
	}
	if !item.Issues(kind) || !item.InUse() {
		uc.logger.Warnw("ticket item not issuable",
			"ticket_id", cmd.TicketID,
			"item_type", item.TicketType(),
			"requested", kind,
			"in_use", item.InUse())
		return nil, nil
	}
	if !item.AppliesTo(cmd.ProductID) {
		return nil, errors.ErrTicketItemProductNotTarget
	}
	return item, nil
}

// IssueTicketbooks posts one period pass per user through the regular post path.
func (uc *IssuanceUseCase) IssueTicketbooks(ctx context.Context, cmd IssueCommand) (bool, error) {
	item, err := uc.loadIssuable(ctx, cmd, vo.TicketTypeTicketbook)
	if err != nil || item == nil {
		return false, err
	}

	expiresAt := item.ExpiresAt(uc.now())
	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		for _, userID := range cmd.UserIDs {
			if _, err := uc.post.post(txCtx, PostTicketbookCommand{
				UserID:         userID,
				ProductID:      cmd.ProductID,
				UseExpiredDate: expiresAt,
				WriterID:       cmd.WriterID,
			}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return false, err
	}

	uc.logger.Infow("ticketbooks issued", "ticket_id", item.ID(), "users", len(cmd.UserIDs))
	return true, nil
}

// IssueProductbooks creates Amount rental productbooks per user, acquired from the item.
func (uc *IssuanceUseCase) IssueProductbooks(ctx context.Context, cmd IssueCommand) (bool, error) {
	amount := cmd.Amount
	if amount < 1 {
		amount = 1
	}
	if amount > ticket.MaxIssueAmount {
		return false, errors.NewValidationError(fmt.Sprintf("amount 는 %d 이하여야 합니다.", ticket.MaxIssueAmount))
	}

	item, err := uc.loadIssuable(ctx, cmd, vo.TicketTypeProductbook)
	if err != nil || item == nil {
		return false, err
	}

	acquisition := vo.AcquisitionAdmin
	itemID := item.ID()
	expiresAt := item.ExpiresAt(uc.now())

	books := make([]*ticket.Productbook, 0, amount*len(cmd.UserIDs))
	for _, userID := range cmd.UserIDs {
		for i := 0; i < amount; i++ {
			pb, err := ticket.NewProductbook(ticket.ProductbookParams{
				OwnType:           vo.OwnTypeRental,
				UserID:            userID,
				ProductID:         cmd.ProductID,
				EpisodeID:         cmd.EpisodeID,
				AcquisitionType:   &acquisition,
				AcquisitionID:     &itemID,
				RentalExpiredDate: expiresAt,
			})
			if err != nil {
				return false, errors.NewValidationError(err.Error())
			}
			books = append(books, pb)
		}
	}

	err = uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.productbooks.CreateBatch(txCtx, books, cmd.WriterID); err != nil {
			return err
		}
		for _, userID := range cmd.UserIDs {
			uc.notifier.Notify(txCtx, userID, "대여권이 지급되었습니다.", item.Name())
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to issue productbooks", "ticket_id", item.ID(), "error", err)
		return false, err
	}

	uc.logger.Infow("productbooks issued", "ticket_id", item.ID(), "users", len(cmd.UserIDs), "amount", amount)
	return true, nil
}
