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

var ticketbookUpdatable = db.NewAllowList("product_id", "use_expired_date", "use_yn")

type UserTicketbookRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	now    func() time.Time
}

func NewUserTicketbookRepository(db *gorm.DB) *UserTicketbookRepository {
	return &UserTicketbookRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		now:    biztime.Now,
	}
}

func (r *UserTicketbookRepository) Create(ctx context.Context, tb *ticket.Ticketbook, writerID int64) error {
	model := r.mapper.TicketbookToModel(tb, writerID, r.now())
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return wrapDB("create ticketbook", err)
	}
	tb.SetID(model.ID)
	return nil
}

func (r *UserTicketbookRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticketbook, error) {
	var model models.UserTicketbookModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDB("get ticketbook", err)
	}
	return r.mapper.TicketbookToDomain(&model), nil
}

func (r *UserTicketbookRepository) ListByUser(ctx context.Context, userID int64, page, countPerPage int) ([]*ticket.Ticketbook, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.UserTicketbookModel{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDB("count ticketbooks", err)
	}

	var rows []models.UserTicketbookModel
	if err := query.Order("created_date DESC").Order("id DESC").
		Scopes(db.Paginate(page, countPerPage)).
		Find(&rows).Error; err != nil {
		return nil, 0, wrapDB("list ticketbooks", err)
	}

	books := make([]*ticket.Ticketbook, 0, len(rows))
	for i := range rows {
		books = append(books, r.mapper.TicketbookToDomain(&rows[i]))
	}
	return books, total, nil
}

// MarkUsed is a conditional update; concurrent callers race on the use_yn guard and
// only one of them sees a row affected.
func (r *UserTicketbookRepository) MarkUsed(ctx context.Context, id, writerID int64, now time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserTicketbookModel{}).
		Where("id = ? AND use_yn = ?", id, constants.FlagNo).
		Updates(map[string]interface{}{
			"use_yn":       constants.FlagYes,
			"updated_id":   writerID,
			"updated_date": now,
		})
	if result.Error != nil {
		return false, wrapDB("use ticketbook", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *UserTicketbookRepository) Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserTicketbookModel{}).
		Where("id = ?", id).
		Updates(db.UpdateMap(ticketbookUpdatable, fields, writerID, r.now()))
	if result.Error != nil {
		return wrapDB("update ticketbook", result.Error)
	}
	return nil
}

func (r *UserTicketbookRepository) Delete(ctx context.Context, id int64) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("id = ?", id).Delete(&models.UserTicketbookModel{}).Error; err != nil {
		return wrapDB("delete ticketbook", err)
	}
	return nil
}
