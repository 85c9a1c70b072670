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

type UserGiftbookRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	now    func() time.Time
}

func NewUserGiftbookRepository(db *gorm.DB) *UserGiftbookRepository {
	return &UserGiftbookRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		now:    biztime.Now,
	}
}

func (r *UserGiftbookRepository) Create(ctx context.Context, g *ticket.Giftbook, writerID int64) error {
	model := r.mapper.GiftbookToModel(g, writerID, r.now())
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return wrapDB("create giftbook", err)
	}
	g.SetID(model.ID)
	return nil
}

func (r *UserGiftbookRepository) GetByID(ctx context.Context, id int64) (*ticket.Giftbook, error) {
	var model models.UserGiftbookModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDB("get giftbook", err)
	}
	return r.mapper.GiftbookToDomain(&model)
}

func (r *UserGiftbookRepository) ListByUser(ctx context.Context, userID int64, page, countPerPage int) ([]*ticket.Giftbook, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserGiftbookModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDB("count giftbooks", err)
	}

	var rows []models.UserGiftbookModel
	if err := query.Order("created_date DESC").Order("id DESC").
		Scopes(db.Paginate(page, countPerPage)).
		Find(&rows).Error; err != nil {
		return nil, 0, wrapDB("list giftbooks", err)
	}

	gifts := make([]*ticket.Giftbook, 0, len(rows))
	for i := range rows {
		g, err := r.mapper.GiftbookToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		gifts = append(gifts, g)
	}
	return gifts, total, nil
}

func (r *UserGiftbookRepository) MarkRead(ctx context.Context, id, writerID int64, now time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserGiftbookModel{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"read_yn":      constants.FlagYes,
			"updated_id":   writerID,
			"updated_date": now,
		})
	if result.Error != nil {
		return wrapDB("read giftbook", result.Error)
	}
	return nil
}

// MarkReceived flips received_yn under a guard so a concurrent second receive affects no rows.
func (r *UserGiftbookRepository) MarkReceived(ctx context.Context, id, writerID int64, now time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserGiftbookModel{}).
		Where("id = ? AND received_yn = ?", id, constants.FlagNo).
		Updates(map[string]interface{}{
			"received_yn":   constants.FlagYes,
			"read_yn":       constants.FlagYes,
			"received_date": now,
			"updated_id":    writerID,
			"updated_date":  now,
		})
	if result.Error != nil {
		return false, wrapDB("receive giftbook", result.Error)
	}
	return result.RowsAffected == 1, nil
}
