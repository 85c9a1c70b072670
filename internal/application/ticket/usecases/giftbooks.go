package usecases

import (
	"context"
	"time"

	"likenovel/internal/application/ticket/dto"
	"likenovel/internal/domain/ticket"
	vo "likenovel/internal/domain/ticket/valueobjects"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type ListGiftbooksQuery struct {
	UserID       int64
	Page         int
	CountPerPage int
}

type ListGiftbooksUseCase struct {
	repo ticket.GiftbookRepository
}

func NewListGiftbooksUseCase(repo ticket.GiftbookRepository) *ListGiftbooksUseCase {
	return &ListGiftbooksUseCase{repo: repo}
}

func (uc *ListGiftbooksUseCase) Execute(ctx context.Context, q ListGiftbooksQuery) ([]*dto.GiftbookDTO, int64, error) {
	gifts, total, err := uc.repo.ListByUser(ctx, q.UserID, q.Page, q.CountPerPage)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.GiftbookDTO, 0, len(gifts))
	for _, g := range gifts {
		out = append(out, dto.ToGiftbookDTO(g))
	}
	return out, total, nil
}

type ReadGiftbookUseCase struct {
	repo ticket.GiftbookRepository
	now  func() time.Time
}

func NewReadGiftbookUseCase(repo ticket.GiftbookRepository) *ReadGiftbookUseCase {
	return &ReadGiftbookUseCase{repo: repo, now: biztime.Now}
}

func (uc *ReadGiftbookUseCase) Execute(ctx context.Context, giftbookID, userID int64) error {
	g, err := uc.repo.GetByID(ctx, giftbookID)
	if err != nil {
		return err
	}
	if g == nil {
		return errors.ErrGiftNotFound
	}
	if err := g.MarkRead(userID); err != nil {
		return err
	}
	return uc.repo.MarkRead(ctx, giftbookID, userID, uc.now())
}

type CreateGiftbookCommand struct {
	UserID                int64
	ProductID             *int64
	EpisodeID             *int64
	TicketType            string
	OwnType               string
	AcquisitionType       *string
	AcquisitionID         *int64
	Reason                *string
	Amount                int
	PromotionType         *string
	ExpirationDate        *time.Time
	TicketExpirationType  string
	TicketExpirationValue int
	WriterID              int64
}

type CreateGiftbookUseCase struct {
	repo     ticket.GiftbookRepository
	notifier Notifier
	logger   logger.Interface
	now      func() time.Time
}

func NewCreateGiftbookUseCase(repo ticket.GiftbookRepository, notifier Notifier, logger logger.Interface) *CreateGiftbookUseCase {
	return &CreateGiftbookUseCase{repo: repo, notifier: notifier, logger: logger, now: biztime.Now}
}

func (uc *CreateGiftbookUseCase) Execute(ctx context.Context, cmd CreateGiftbookCommand) (*dto.GiftbookDTO, error) {
	params, err := giftbookParams(cmd)
	if err != nil {
		return nil, err
	}
	g, err := ticket.NewGiftbook(params, uc.now())
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, g, cmd.WriterID); err != nil {
		uc.logger.Errorw("failed to create giftbook", "user_id", cmd.UserID, "error", err)
		return nil, err
	}

	uc.notifier.Notify(ctx, cmd.UserID, "선물이 도착했습니다.", "선물함에서 7일 이내에 받아주세요.")
	uc.logger.Infow("giftbook created", "giftbook_id", g.ID(), "user_id", cmd.UserID, "amount", cmd.Amount)
	return dto.ToGiftbookDTO(g), nil
}

func giftbookParams(cmd CreateGiftbookCommand) (ticket.GiftbookParams, error) {
	t, err := vo.ParseTicketType(cmd.TicketType)
	if err != nil {
		return ticket.GiftbookParams{}, errors.NewValidationError("ticket_type 값이 올바르지 않습니다.")
	}
	own, err := vo.ParseOwnType(cmd.OwnType)
	if err != nil {
		return ticket.GiftbookParams{}, errors.NewValidationError("own_type 값이 올바르지 않습니다.")
	}
	exp, err := vo.ParseExpirationType(cmd.TicketExpirationType)
	if err != nil {
		return ticket.GiftbookParams{}, errors.NewValidationError("ticket_expiration_type 값이 올바르지 않습니다.")
	}
	var acq *vo.AcquisitionType
	if cmd.AcquisitionType != nil {
		a, err := vo.ParseAcquisitionType(*cmd.AcquisitionType)
		if err != nil {
			return ticket.GiftbookParams{}, errors.NewValidationError("acquisition_type 값이 올바르지 않습니다.")
		}
		acq = &a
	}
	return ticket.GiftbookParams{
		UserID:                cmd.UserID,
		ProductID:             cmd.ProductID,
		EpisodeID:             cmd.EpisodeID,
		TicketType:            t,
		OwnType:               own,
		AcquisitionType:       acq,
		AcquisitionID:         cmd.AcquisitionID,
		Reason:                cmd.Reason,
		Amount:                cmd.Amount,
		PromotionType:         cmd.PromotionType,
		ExpirationDate:        cmd.ExpirationDate,
		TicketExpirationType:  exp,
		TicketExpirationValue: cmd.TicketExpirationValue,
	}, nil
}
