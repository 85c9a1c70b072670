package usecases

import (
	"context"

	"likenovel/internal/application/content/dto"
)

type ResourceReader[D any] interface {
	List(ctx context.Context, q ListQuery) ([]D, int64, error)
	Get(ctx context.Context, id int64) (*D, error)
}

type EntityCreator[E any] interface {
	Create(ctx context.Context, e *E, writerID int64) (int64, error)
}

// ResourceExecutor is the admin-managed list/detail/create/update/delete surface.
type ResourceExecutor[E any, D any] interface {
	ResourceReader[D]
	EntityCreator[E]
	Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error
	Delete(ctx context.Context, id int64) error
}

// OwnedResourceExecutor limits mutation to the row's author.
type OwnedResourceExecutor[D any] interface {
	ResourceReader[D]
	UpdateOwned(ctx context.Context, id int64, fields map[string]interface{}, userID int64) error
	DeleteOwned(ctx context.Context, id int64, userID int64) error
}

type GetNoticeExecutor interface {
	Execute(ctx context.Context, id int64) (*dto.NoticeDTO, error)
}

type CurrentPopupExecutor interface {
	Execute(ctx context.Context) (*dto.PopupDTO, error)
}

type GetRatesExecutor interface {
	Execute(ctx context.Context) (map[string]float64, error)
}

type CreateEvaluationExecutor interface {
	Execute(ctx context.Context, cmd CreateEvaluationCommand) (*dto.EvaluationDTO, error)
}
