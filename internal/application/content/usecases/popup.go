package usecases

import (
	"context"
	"time"

	"likenovel/internal/application/content/dto"
	"likenovel/internal/domain/content"
	"likenovel/internal/shared/biztime"
)

// CurrentPopupUseCase returns the popup to show now, or nil.
type CurrentPopupUseCase struct {
	store content.PopupStore
	now   func() time.Time
}

func NewCurrentPopupUseCase(store content.PopupStore) *CurrentPopupUseCase {
	return &CurrentPopupUseCase{store: store, now: biztime.Now}
}

func (uc *CurrentPopupUseCase) Execute(ctx context.Context) (*dto.PopupDTO, error) {
	p, err := uc.store.Current(ctx, uc.now())
	if err != nil || p == nil {
		return nil, err
	}
	out := dto.ToPopupDTO(p)
	return &out, nil
}
