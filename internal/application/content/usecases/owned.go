package usecases

import (
	"context"

	"likenovel/internal/shared/errors"
)

// OwnedResourceUseCase restricts update and delete to the row's author.
type OwnedResourceUseCase[E any, D any] struct {
	*ResourceUseCase[E, D]
	ownerOf func(*E) int64
}

func NewOwnedResourceUseCase[E any, D any](base *ResourceUseCase[E, D], ownerOf func(*E) int64) *OwnedResourceUseCase[E, D] {
	return &OwnedResourceUseCase[E, D]{ResourceUseCase: base, ownerOf: ownerOf}
}

func (uc *OwnedResourceUseCase[E, D]) UpdateOwned(ctx context.Context, id int64, fields map[string]interface{}, userID int64) error {
	if userID <= 0 {
		return errors.ErrLoginRequired
	}
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.requireOwner(txCtx, id, userID); err != nil {
			return err
		}
		return uc.store.Update(txCtx, id, fields, userID)
	})
	if err != nil {
		return err
	}
	uc.logger.Infow(uc.name+" updated", "id", id, "user_id", userID)
	return nil
}

func (uc *OwnedResourceUseCase[E, D]) DeleteOwned(ctx context.Context, id int64, userID int64) error {
	if userID <= 0 {
		return errors.ErrLoginRequired
	}
	err := uc.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.requireOwner(txCtx, id, userID); err != nil {
			return err
		}
		return uc.store.Delete(txCtx, id)
	})
	if err != nil {
		return err
	}
	uc.logger.Infow(uc.name+" deleted", "id", id, "user_id", userID)
	return nil
}

func (uc *OwnedResourceUseCase[E, D]) requireOwner(ctx context.Context, id, userID int64) error {
	e, err := uc.store.Get(ctx, id)
	if err != nil {
		return err
	}
	if e == nil {
		return uc.notFound
	}
	if uc.ownerOf(e) != userID {
		return errors.ErrNotOwner
	}
	return nil
}

