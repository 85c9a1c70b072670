package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"likenovel/internal/domain/ticket"
	"likenovel/internal/infrastructure/persistence/mappers"
	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/db"
)

var productbookUpdatable = db.NewAllowList("product_id", "episode_id", "rental_expired_date", "use_yn", "own_type")

type UserProductbookRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	now    func() time.Time
}

func NewUserProductbookRepository(db *gorm.DB) *UserProductbookRepository {
	return &UserProductbookRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		now:    biztime.Now,
	}
}

func (r *UserProductbookRepository) Create(ctx context.Context, pb *ticket.Productbook, writerID int64) error {
	model := r.mapper.ProductbookToModel(pb, writerID, r.now())
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return wrapDB("create productbook", err)
	}
	pb.SetID(model.ID)
	return nil
}

// CreateBatch inserts all productbooks in one statement.
func (r *UserProductbookRepository) CreateBatch(ctx context.Context, pbs []*ticket.Productbook, writerID int64) error {
	if len(pbs) == 0 {
		return nil
	}
	now := r.now()
	rows := make([]*models.UserProductbookModel, len(pbs))
	for i, pb := range pbs {
		rows[i] = r.mapper.ProductbookToModel(pb, writerID, now)
	}

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(&rows).Error; err != nil {
		return wrapDB("create productbooks", err)
	}
	for i, pb := range pbs {
		pb.SetID(rows[i].ID)
	}
	return nil
}

func (r *UserProductbookRepository) GetByID(ctx context.Context, id int64) (*ticket.Productbook, error) {
	var model models.UserProductbookModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDB("get productbook", err)
	}
	return r.mapper.ProductbookToDomain(&model)
}

// ListUsableByUser returns unused, unexpired productbooks. A product filter also matches
// passes that are not bound to any product.
func (r *UserProductbookRepository) ListUsableByUser(ctx context.Context, userID int64, productID *int64, now time.Time) ([]*ticket.Productbook, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserProductbookModel{}).
		Where("user_id = ? AND use_yn = ?", userID, constants.FlagNo).
		Where("(rental_expired_date IS NULL OR rental_expired_date > ?)", now)
	if productID != nil {
		query = query.Where("(product_id IS NULL OR product_id = ?)", *productID)
	}

	var rows []models.UserProductbookModel
	if err := query.Order("rental_expired_date IS NULL").Order("rental_expired_date ASC").Order("id ASC").
		Find(&rows).Error; err != nil {
		return nil, wrapDB("list productbooks", err)
	}

	books := make([]*ticket.Productbook, 0, len(rows))
	for i := range rows {
		pb, err := r.mapper.ProductbookToDomain(&rows[i])
		if err != nil {
			return nil, err
		}
		books = append(books, pb)
	}
	return books, nil
}

// MarkUsed binds the product and episode and flips use_yn only if the row is still unused.
func (r *UserProductbookRepository) MarkUsed(ctx context.Context, id, productID, episodeID, writerID int64, now time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserProductbookModel{}).
		Where("id = ? AND use_yn = ?", id, constants.FlagNo).
		Updates(map[string]interface{}{
			"use_yn":       constants.FlagYes,
			"product_id":   productID,
			"episode_id":   episodeID,
			"updated_id":   writerID,
			"updated_date": now,
		})
	if result.Error != nil {
		return false, wrapDB("use productbook", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *UserProductbookRepository) Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserProductbookModel{}).
		Where("id = ?", id).
		Updates(db.UpdateMap(productbookUpdatable, fields, writerID, r.now()))
	if result.Error != nil {
		return wrapDB("update productbook", result.Error)
	}
	return nil
}

func (r *UserProductbookRepository) Delete(ctx context.Context, id int64) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", id).Delete(&models.UserProductbookModel{}).Error; err != nil {
		return wrapDB("delete productbook", err)
	}
	return nil
}
