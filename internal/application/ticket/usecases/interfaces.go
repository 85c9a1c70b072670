package usecases

import (
	"context"

	"likenovel/internal/application/ticket/dto"
)

type CreateTicketItemExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketItemCommand) (*dto.TicketItemDTO, error)
}

type GetTicketItemExecutor interface {
	Execute(ctx context.Context, id int64) (*dto.TicketItemDTO, error)
}

type ListTicketItemsExecutor interface {
	Execute(ctx context.Context, q ListTicketItemsQuery) ([]*dto.TicketItemDTO, int64, error)
}

type UpdateTicketItemExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketItemCommand) error
}

// DeleteByIDExecutor covers every admin delete in this package.
type DeleteByIDExecutor interface {
	Execute(ctx context.Context, id int64) error
}

type IssuanceExecutor interface {
	IssueTicketbooks(ctx context.Context, cmd IssueCommand) (bool, error)
	IssueProductbooks(ctx context.Context, cmd IssueCommand) (bool, error)
}

type PostTicketbookExecutor interface {
	Execute(ctx context.Context, cmd PostTicketbookCommand) (*dto.TicketbookDTO, error)
}

type UseTicketbookExecutor interface {
	Execute(ctx context.Context, cmd UseTicketbookCommand) error
}

type ListTicketbooksExecutor interface {
	Execute(ctx context.Context, q ListTicketbooksQuery) ([]*dto.TicketbookDTO, int64, error)
}

type UpdateTicketbookExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketbookCommand) error
}

type CreateProductbookExecutor interface {
	Execute(ctx context.Context, cmd CreateProductbookCommand) (*dto.ProductbookDTO, error)
}

type ListProductbooksExecutor interface {
	Execute(ctx context.Context, q ListProductbooksQuery) ([]*dto.ProductbookDTO, error)
}

type UseProductbookExecutor interface {
	Execute(ctx context.Context, cmd UseProductbookCommand) (*dto.ProductbookDTO, error)
}

type UpdateProductbookExecutor interface {
	Execute(ctx context.Context, cmd UpdateProductbookCommand) error
}

type CreateGiftbookExecutor interface {
	Execute(ctx context.Context, cmd CreateGiftbookCommand) (*dto.GiftbookDTO, error)
}

type ListGiftbooksExecutor interface {
	Execute(ctx context.Context, q ListGiftbooksQuery) ([]*dto.GiftbookDTO, int64, error)
}

type ReadGiftbookExecutor interface {
	Execute(ctx context.Context, giftbookID, userID int64) error
}

type ReceiveGiftbookExecutor interface {
	Execute(ctx context.Context, cmd ReceiveGiftbookCommand) ([]*dto.ProductbookDTO, error)
}
