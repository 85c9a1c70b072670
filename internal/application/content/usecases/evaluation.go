package usecases

import (
	"context"

	"likenovel/internal/application/content/dto"
	"likenovel/internal/domain/content"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type CreateEvaluationCommand struct {
	ProductID int64
	EpisodeID int64
	UserID    int64
	EvalCode  string
}

// CreateEvaluationUseCase records one evaluation per user, product and episode.
type CreateEvaluationUseCase struct {
	store  content.EvaluationStore
	txMgr  db.Runner
	logger logger.Interface
}

func NewCreateEvaluationUseCase(store content.EvaluationStore, txMgr db.Runner, logger logger.Interface) *CreateEvaluationUseCase {
	return &CreateEvaluationUseCase{store: store, txMgr: txMgr, logger: logger}
}

func (uc *CreateEvaluationUseCase) Execute(ctx context.Context, cmd CreateEvaluationCommand) (*dto.EvaluationDTO, error) {
	if cmd.UserID <= 0 {
		return nil, errors.ErrLoginRequired
	}
	if cmd.ProductID <= 0 || cmd.EpisodeID <= 0 || cmd.EvalCode == "" {
		return nil, errors.NewValidationError("productId, episodeId, evalCode 항목은 필수입니다.")
	}

	e := &content.Evaluation{
		ProductID: cmd.ProductID,
		EpisodeID: cmd.EpisodeID,
		UserID:    cmd.UserID,
		EvalCode:  cmd.EvalCode,
	}
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		exists, err := uc.store.Exists(txCtx, cmd.UserID, cmd.ProductID, cmd.EpisodeID)
		if err != nil {
			return err
		}
		if exists {
			return errors.ErrDuplicateEvaluation
		}
		e.ID, err = uc.store.Create(txCtx, e, cmd.UserID)
		return err
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("evaluation created", "id", e.ID, "user_id", cmd.UserID, "episode_id", cmd.EpisodeID)
	out := dto.ToEvaluationDTO(e)
	return &out, nil
}
