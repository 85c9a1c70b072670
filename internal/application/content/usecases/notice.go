package usecases

import (
	"context"

	"likenovel/internal/application/content/dto"
	"likenovel/internal/domain/content"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

// GetNoticeUseCase reads a notice and bumps its view count in the same transaction.
type GetNoticeUseCase struct {
	store    content.NoticeStore
	renderer Renderer
	txMgr    db.Runner
	logger   logger.Interface
}

func NewGetNoticeUseCase(store content.NoticeStore, renderer Renderer, txMgr db.Runner, logger logger.Interface) *GetNoticeUseCase {
	return &GetNoticeUseCase{store: store, renderer: renderer, txMgr: txMgr, logger: logger}
}

func (uc *GetNoticeUseCase) Execute(ctx context.Context, id int64) (*dto.NoticeDTO, error) {
	var notice *content.Notice
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		n, err := uc.store.Get(txCtx, id)
		if err != nil {
			return err
		}
		if n == nil || !n.Active {
			return errors.ErrNotFoundNotice
		}
		if err := uc.store.IncrementViewCount(txCtx, id); err != nil {
			return err
		}
		n.ViewCount++
		notice = n
		return nil
	})
	if err != nil {
		return nil, err
	}

	out := dto.ToNoticeDTO(notice)
	out.ContentHTML = renderHTML(uc.renderer, uc.logger, notice.Content)
	return &out, nil
}
