package usecases

import (
	"context"
	"fmt"

	"likenovel/internal/application/ticket/dto"
	"likenovel/internal/domain/ticket"
	vo "likenovel/internal/domain/ticket/valueobjects"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

type CreateTicketItemCommand struct {
	TicketType     string
	TicketName     string
	Price          int64
	SettlementYN   string
	ExpiredHour    int
	UseYN          string
	TargetProducts []int64
	WriterID       int64
}

type CreateTicketItemUseCase struct {
	repo   ticket.ItemRepository
	logger logger.Interface
}

func NewCreateTicketItemUseCase(repo ticket.ItemRepository, logger logger.Interface) *CreateTicketItemUseCase {
	return &CreateTicketItemUseCase{repo: repo, logger: logger}
}

// Execute stores a catalog entry. Flags default to settlement N and use Y, and a missing
// target list is stored as an empty JSON array.
func (uc *CreateTicketItemUseCase) Execute(ctx context.Context, cmd CreateTicketItemCommand) (*dto.TicketItemDTO, error) {
	t, err := vo.ParseTicketType(cmd.TicketType)
	if err != nil {
		return nil, errors.NewValidationError("ticket_type 값이 올바르지 않습니다.")
	}
	item, err := ticket.NewItem(
		t,
		cmd.TicketName,
		cmd.Price,
		utils.IsYes(utils.DefaultYN(cmd.SettlementYN, "N")),
		cmd.ExpiredHour,
		utils.IsYes(utils.DefaultYN(cmd.UseYN, "Y")),
		cmd.TargetProducts,
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.repo.Create(ctx, item, cmd.WriterID); err != nil {
		uc.logger.Errorw("failed to create ticket item", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket item created", "ticket_id", item.ID(), "ticket_type", t)
	return dto.ToTicketItemDTO(item), nil
}

type GetTicketItemUseCase struct {
	repo ticket.ItemRepository
}

func NewGetTicketItemUseCase(repo ticket.ItemRepository) *GetTicketItemUseCase {
	return &GetTicketItemUseCase{repo: repo}
}

// Execute returns nil without error when the item does not exist.
func (uc *GetTicketItemUseCase) Execute(ctx context.Context, id int64) (*dto.TicketItemDTO, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	return dto.ToTicketItemDTO(item), nil
}

type ListTicketItemsQuery struct {
	TicketType   string
	UseYN        string
	Page         int
	CountPerPage int
}

type ListTicketItemsUseCase struct {
	repo ticket.ItemRepository
}

func NewListTicketItemsUseCase(repo ticket.ItemRepository) *ListTicketItemsUseCase {
	return &ListTicketItemsUseCase{repo: repo}
}

func (uc *ListTicketItemsUseCase) Execute(ctx context.Context, q ListTicketItemsQuery) ([]*dto.TicketItemDTO, int64, error) {
	items, total, err := uc.repo.List(ctx, ticket.ItemFilter{
		TicketType:   q.TicketType,
		UseYN:        q.UseYN,
		Page:         q.Page,
		CountPerPage: q.CountPerPage,
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.TicketItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.ToTicketItemDTO(item))
	}
	return out, total, nil
}

type UpdateTicketItemCommand struct {
	ID       int64
	Fields   map[string]interface{}
	WriterID int64
}

type UpdateTicketItemUseCase struct {
	repo   ticket.ItemRepository
	logger logger.Interface
}

func NewUpdateTicketItemUseCase(repo ticket.ItemRepository, logger logger.Interface) *UpdateTicketItemUseCase {
	return &UpdateTicketItemUseCase{repo: repo, logger: logger}
}

func (uc *UpdateTicketItemUseCase) Execute(ctx context.Context, cmd UpdateTicketItemCommand) error {
	item, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if item == nil {
		return errors.ErrNotFoundTicketItem
	}
	if v, ok := cmd.Fields["ticket_type"]; ok {
		if _, err := vo.ParseTicketType(fmt.Sprint(v)); err != nil {
			return errors.NewValidationError("ticket_type 값이 올바르지 않습니다.")
		}
	}
	if err := uc.repo.Update(ctx, cmd.ID, cmd.Fields, cmd.WriterID); err != nil {
		uc.logger.Errorw("failed to update ticket item", "ticket_id", cmd.ID, "error", err)
		return err
	}
	return nil
}

type DeleteTicketItemUseCase struct {
	repo   ticket.ItemRepository
	logger logger.Interface
}

func NewDeleteTicketItemUseCase(repo ticket.ItemRepository, logger logger.Interface) *DeleteTicketItemUseCase {
	return &DeleteTicketItemUseCase{repo: repo, logger: logger}
}

func (uc *DeleteTicketItemUseCase) Execute(ctx context.Context, id int64) error {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if item == nil {
		return errors.ErrNotFoundTicketItem
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete ticket item", "ticket_id", id, "error", err)
		return err
	}
	uc.logger.Infow("ticket item deleted", "ticket_id", id)
	return nil
}
