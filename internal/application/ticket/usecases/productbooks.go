package usecases

import (
	"context"
	"time"

	"likenovel/internal/application/ticket/dto"
	"likenovel/internal/domain/ticket"
	vo "likenovel/internal/domain/ticket/valueobjects"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type CreateProductbookCommand struct {
	OwnType           string
	UserID            int64
	ProfileID         *int64
	ProductID         *int64
	EpisodeID         *int64
	AcquisitionType   *string
	AcquisitionID     *int64
	RentalExpiredDate *time.Time
	WriterID          int64
}

type CreateProductbookUseCase struct {
	repo   ticket.ProductbookRepository
	logger logger.Interface
}

func NewCreateProductbookUseCase(repo ticket.ProductbookRepository, logger logger.Interface) *CreateProductbookUseCase {
	return &CreateProductbookUseCase{repo: repo, logger: logger}
}

func (uc *CreateProductbookUseCase) Execute(ctx context.Context, cmd CreateProductbookCommand) (*dto.ProductbookDTO, error) {
	own, err := vo.ParseOwnType(cmd.OwnType)
	if err != nil {
		return nil, errors.NewValidationError("own_type 값이 올바르지 않습니다.")
	}
	var acq *vo.AcquisitionType
	if cmd.AcquisitionType != nil {
		a, err := vo.ParseAcquisitionType(*cmd.AcquisitionType)
		if err != nil {
			return nil, errors.NewValidationError("acquisition_type 값이 올바르지 않습니다.")
		}
		acq = &a
	}

	pb, err := ticket.NewProductbook(ticket.ProductbookParams{
		OwnType:           own,
		UserID:            cmd.UserID,
		ProfileID:         cmd.ProfileID,
		ProductID:         cmd.ProductID,
		EpisodeID:         cmd.EpisodeID,
		AcquisitionType:   acq,
		AcquisitionID:     cmd.AcquisitionID,
		RentalExpiredDate: cmd.RentalExpiredDate,
	})
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if err := uc.repo.Create(ctx, pb, cmd.WriterID); err != nil {
		uc.logger.Errorw("failed to create productbook", "user_id", cmd.UserID, "error", err)
		return nil, err
	}
	uc.logger.Infow("productbook created", "productbook_id", pb.ID(), "user_id", cmd.UserID)
	return dto.ToProductbookDTO(pb), nil
}

type ListProductbooksQuery struct {
	UserID    int64
	ProductID *int64
}

// ListProductbooksUseCase returns the caller's usable passes.
type ListProductbooksUseCase struct {
	repo ticket.ProductbookRepository
	now  func() time.Time
}

func NewListProductbooksUseCase(repo ticket.ProductbookRepository) *ListProductbooksUseCase {
	return &ListProductbooksUseCase{repo: repo, now: biztime.Now}
}

func (uc *ListProductbooksUseCase) Execute(ctx context.Context, q ListProductbooksQuery) ([]*dto.ProductbookDTO, error) {
	books, err := uc.repo.ListUsableByUser(ctx, q.UserID, q.ProductID, uc.now())
	if err != nil {
		return nil, err
	}
	return dto.ToProductbookDTOs(books), nil
}

type UpdateProductbookCommand struct {
	ID       int64
	Fields   map[string]interface{}
	WriterID int64
}

type UpdateProductbookUseCase struct {
	repo   ticket.ProductbookRepository
	logger logger.Interface
}

func NewUpdateProductbookUseCase(repo ticket.ProductbookRepository, logger logger.Interface) *UpdateProductbookUseCase {
	return &UpdateProductbookUseCase{repo: repo, logger: logger}
}

func (uc *UpdateProductbookUseCase) Execute(ctx context.Context, cmd UpdateProductbookCommand) error {
	pb, err := uc.repo.GetByID(ctx, cmd.ID)
	if err != nil {
		return err
	}
	if pb == nil {
		return errors.ErrNotFoundProductbook
	}
	if v, ok := cmd.Fields["own_type"].(string); ok {
		if _, err := vo.ParseOwnType(v); err != nil {
			return errors.NewValidationError("own_type 값이 올바르지 않습니다.")
		}
	}
	if err := uc.repo.Update(ctx, cmd.ID, cmd.Fields, cmd.WriterID); err != nil {
		uc.logger.Errorw("failed to update productbook", "productbook_id", cmd.ID, "error", err)
		return err
	}
	return nil
}

type DeleteProductbookUseCase struct {
	repo   ticket.ProductbookRepository
	logger logger.Interface
}

func NewDeleteProductbookUseCase(repo ticket.ProductbookRepository, logger logger.Interface) *DeleteProductbookUseCase {
	return &DeleteProductbookUseCase{repo: repo, logger: logger}
}

func (uc *DeleteProductbookUseCase) Execute(ctx context.Context, id int64) error {
	pb, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if pb == nil {
		return errors.ErrNotFoundProductbook
	}
	return uc.repo.Delete(ctx, id)
}
