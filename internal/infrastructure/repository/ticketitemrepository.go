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
	"likenovel/internal/shared/db"
)

// ticketItemUpdatable lists the catalog columns an admin may change.
var ticketItemUpdatable = db.NewAllowList(
	"ticket_type", "ticket_name", "price", "settlement_yn", "expired_hour", "use_yn", "target_products",
)

type TicketItemRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
	now    func() time.Time
}

func NewTicketItemRepository(db *gorm.DB) *TicketItemRepository {
	return &TicketItemRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
		now:    biztime.Now,
	}
}

func (r *TicketItemRepository) Create(ctx context.Context, item *ticket.Item, writerID int64) error {
	model, err := r.mapper.ItemToModel(item, writerID, r.now())
	if err != nil {
		return err
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return wrapDB("create ticket item", err)
	}
	item.SetID(model.TicketID)
	return nil
}

func (r *TicketItemRepository) GetByID(ctx context.Context, id int64) (*ticket.Item, error) {
	var model models.TicketItemModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDB("get ticket item", err)
	}
	return r.mapper.ItemToDomain(&model)
}

func (r *TicketItemRepository) List(ctx context.Context, filter ticket.ItemFilter) ([]*ticket.Item, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketItemModel{})
	if filter.TicketType != "" {
		query = query.Where("ticket_type = ?", filter.TicketType)
	}
	if filter.UseYN != "" {
		query = query.Where("use_yn = ?", filter.UseYN)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDB("count ticket items", err)
	}

	query = query.Scopes(db.LatestFirst())
	if filter.CountPerPage > 0 {
		query = query.Scopes(db.Paginate(filter.Page, filter.CountPerPage))
	}

	var rows []models.TicketItemModel
	if err := query.Find(&rows).Error; err != nil {
		return nil, 0, wrapDB("list ticket items", err)
	}

	items := make([]*ticket.Item, 0, len(rows))
	for i := range rows {
		item, err := r.mapper.ItemToDomain(&rows[i])
		if err != nil {
			return nil, 0, err
		}
		items = append(items, item)
	}
	return items, total, nil
}

// Update applies the allow-listed fields. target_products, when present, must already be
// a []int64 and is re-encoded as a JSON array.
func (r *TicketItemRepository) Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error {
	values := db.UpdateMap(ticketItemUpdatable, fields, writerID, r.now())
	if raw, ok := values["target_products"]; ok {
		ids, _ := raw.([]int64)
		encoded, err := mappers.EncodeTargetProducts(ids)
		if err != nil {
			return err
		}
		values["target_products"] = encoded
	}

	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.TicketItemModel{}).Where("ticket_id = ?", id).Updates(values)
	if result.Error != nil {
		return wrapDB("update ticket item", result.Error)
	}
	return nil
}

func (r *TicketItemRepository) Delete(ctx context.Context, id int64) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketItemModel{}).Error; err != nil {
		return wrapDB("delete ticket item", err)
	}
	return nil
}
