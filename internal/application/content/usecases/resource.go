package usecases

import (
	"context"

	"likenovel/internal/domain/content"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/logger"
)

// Renderer turns stored markdown into safe HTML.
type Renderer interface {
	ToHTMLSanitized(markdown string) (string, error)
}

type ListQuery struct {
	Page         int
	CountPerPage int
	ActiveOnly   bool
	Filters      map[string]interface{}
}

// ResourceUseCase runs list/detail/create/update/delete for one content kind.
type ResourceUseCase[E any, D any] struct {
	name     string
	store    content.Store[E]
	toDTO    func(*E) D
	notFound error
	detail   func(D) D
	txMgr    db.Runner
	logger   logger.Interface
}

func NewResourceUseCase[E any, D any](
	name string,
	store content.Store[E],
	toDTO func(*E) D,
	notFound error,
	txMgr db.Runner,
	logger logger.Interface,
) *ResourceUseCase[E, D] {
	return &ResourceUseCase[E, D]{
		name:     name,
		store:    store,
		toDTO:    toDTO,
		notFound: notFound,
		txMgr:    txMgr,
		logger:   logger,
	}
}

func (uc *ResourceUseCase[E, D]) List(ctx context.Context, q ListQuery) ([]D, int64, error) {
	rows, total, err := uc.store.List(ctx, content.ListFilter{
		Page:         q.Page,
		CountPerPage: q.CountPerPage,
		ActiveOnly:   q.ActiveOnly,
		Filters:      q.Filters,
	})
	if err != nil {
		uc.logger.Errorw("failed to list "+uc.name, "error", err)
		return nil, 0, err
	}
	items := make([]D, 0, len(rows))
	for _, r := range rows {
		items = append(items, uc.toDTO(r))
	}
	return items, total, nil
}

func (uc *ResourceUseCase[E, D]) Get(ctx context.Context, id int64) (*D, error) {
	e, err := uc.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, uc.notFound
	}
	d := uc.toDTO(e)
	if uc.detail != nil {
		d = uc.detail(d)
	}
	return &d, nil
}

func (uc *ResourceUseCase[E, D]) Create(ctx context.Context, e *E, writerID int64) (int64, error) {
	var id int64
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		var err error
		id, err = uc.store.Create(txCtx, e, writerID)
		return err
	})
	if err != nil {
		uc.logger.Errorw("failed to create "+uc.name, "writer_id", writerID, "error", err)
		return 0, err
	}
	uc.logger.Infow(uc.name+" created", "id", id, "writer_id", writerID)
	return id, nil
}

func (uc *ResourceUseCase[E, D]) Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.store.Update(txCtx, id, fields, writerID)
	})
	if err != nil {
		return err
	}
	uc.logger.Infow(uc.name+" updated", "id", id, "writer_id", writerID)
	return nil
}

func (uc *ResourceUseCase[E, D]) Delete(ctx context.Context, id int64) error {
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		return uc.store.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}
	uc.logger.Infow(uc.name+" deleted", "id", id)
	return nil
}

// renderHTML falls back to no HTML when rendering fails; the raw content is still served.
func renderHTML(r Renderer, log logger.Interface, markdown string) string {
	out, err := r.ToHTMLSanitized(markdown)
	if err != nil {
		log.Warnw("failed to render content", "error", err)
		return ""
	}
	return out
}
