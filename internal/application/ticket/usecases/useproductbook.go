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

type UseProductbookCommand struct {
	ProductbookID int64
	UserID        int64
	EpisodeID     int64
}

type UseProductbookUseCase struct {
	repo     ticket.ProductbookRepository
	episodes ticket.EpisodeLookup
	txMgr    db.Runner
	logger   logger.Interface
	now      func() time.Time
}

func NewUseProductbookUseCase(
	repo ticket.ProductbookRepository,
	episodes ticket.EpisodeLookup,
	txMgr db.Runner,
	logger logger.Interface,
) *UseProductbookUseCase {
	return &UseProductbookUseCase{
		repo:     repo,
		episodes: episodes,
		txMgr:    txMgr,
		logger:   logger,
		now:      biztime.Now,
	}
}

// Execute spends the pass on an episode after ownership, state, expiry and scope checks.
func (uc *UseProductbookUseCase) Execute(ctx context.Context, cmd UseProductbookCommand) (*dto.ProductbookDTO, error) {
	if cmd.UserID <= 0 {
		return nil, errors.ErrLoginRequired
	}
	if cmd.EpisodeID <= 0 {
		return nil, errors.NewValidationError("episode_id 항목은 필수입니다.")
	}

	var result *dto.ProductbookDTO
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		pb, err := uc.repo.GetByID(txCtx, cmd.ProductbookID)
		if err != nil {
			return err
		}
		if pb == nil {
			return errors.ErrNotFoundProductbook
		}

		productID, err := uc.episodes.GetProductIDOfEpisode(txCtx, cmd.EpisodeID)
		if err != nil {
			return err
		}

		now := uc.now()
		if err := pb.Use(cmd.UserID, productID, cmd.EpisodeID, now); err != nil {
			uc.logger.Warnw("productbook use rejected",
				"productbook_id", cmd.ProductbookID,
				"user_id", cmd.UserID,
				"episode_id", cmd.EpisodeID,
				"error", err)
			return err
		}

		ok, err := uc.repo.MarkUsed(txCtx, pb.ID(), productID, cmd.EpisodeID, cmd.UserID, now)
		if err != nil {
			return err
		}
		if !ok {
			return errors.ErrAlreadyUsedProductbook
		}
		result = dto.ToProductbookDTO(pb)
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("productbook used", "productbook_id", cmd.ProductbookID, "episode_id", cmd.EpisodeID)
	return result, nil
}
