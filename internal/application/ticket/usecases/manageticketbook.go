package usecases

import (
	"context"

	"likenovel/internal/application/ticket/dto"
	"likenovel/internal/domain/ticket"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type ListTicketbooksQuery struct {
	UserID       int64
	Page         int
	CountPerPage int
}

type ListTicketbooksUseCase struct {
	repo ticket.TicketbookRepository
}

func NewListTicketbooksUseCase(repo ticket.TicketbookRepository) *ListTicketbooksUseCase {
	return &ListTicketbooksUseCase{repo: repo}
}

func (uc *ListTicketbooksUseCase) Execute(ctx context.Context, q ListTicketbooksQuery) ([]*dto.TicketbookDTO, int64, error) {
	books, total, err := uc.repo.ListByUser(ctx, q.UserID, q.Page, q.CountPerPage)
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.TicketbookDTO, 0, len(books))
	for _, b := range books {
		out = append(out, dto.ToTicketbookDTO(b))
	}
	return out, total, nil
}

type UpdateTicketbookCommand struct {
	ID       int64
	Fields   map[string]interface{}
	WriterID int64
}

// UpdateTicketbookUseCase is the admin edit; the repository applies the allow-list.
type UpdateTicketbookUseCase struct {
	repo   ticket.TicketbookRepository
	logger logger.Interface
}

func NewUpdateTicketbookUseCase(repo ticket.TicketbookRepository, logger logger.Interface) *UpdateTicketbookUseCase {
	return &UpdateTicketbookUseCase{repo: repo, logger: logger}
}

func (uc *UpdateTicketbookUseCase) Execute(ctx context.Context, cmd UpdateTicketbookCommand) error {
	tb, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if tb == nil {
		return errors.ErrNotFoundTicketbook
	}
	if err := uc.repo.Update(ctx, cmd.ID, cmd.Fields, cmd.WriterID); err != nil {
		uc.logger.Errorw("failed to update ticketbook", "ticketbook_id", cmd.ID, "error", err)
		return err
	}
	return nil
}

type DeleteTicketbookUseCase struct {
	repo   ticket.TicketbookRepository
	logger logger.Interface
}

func NewDeleteTicketbookUseCase(repo ticket.TicketbookRepository, logger logger.Interface) *DeleteTicketbookUseCase {
	return &DeleteTicketbookUseCase{repo: repo, logger: logger}
}

func (uc *DeleteTicketbookUseCase) Execute(ctx context.Context, id int64) error {
	tb, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if tb == nil {
		return errors.ErrNotFoundTicketbook
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		uc.logger.Errorw("failed to delete ticketbook", "ticketbook_id", id, "error", err)
		return err
	}
	return nil
}
