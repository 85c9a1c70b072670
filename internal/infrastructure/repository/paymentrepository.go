package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"likenovel/internal/domain/payment"
	vo "likenovel/internal/domain/payment/valueobjects"
	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/db"
)

type CashbookRepository struct {
	db *gorm.DB
}

func NewCashbookRepository(db *gorm.DB) *CashbookRepository {
	return &CashbookRepository{db: db}
}

func (r *CashbookRepository) Balance(ctx context.Context, userID int64) (int64, error) {
	var model models.UserCashbookModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, wrapDB("get cashbook", err)
	}
	return model.Balance, nil
}

// Debit is guarded by balance >= amount so the balance never goes negative under races.
func (r *CashbookRepository) Debit(ctx context.Context, userID, amount, writerID int64, now time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.UserCashbookModel{}).
		Where("user_id = ? AND balance >= ?", userID, amount).
		Updates(map[string]interface{}{
			"balance":      gorm.Expr("balance - ?", amount),
			"updated_id":   writerID,
			"updated_date": now,
		})
	if result.Error != nil {
		return false, wrapDB("debit cashbook", result.Error)
	}
	return result.RowsAffected == 1, nil
}

func (r *CashbookRepository) Credit(ctx context.Context, userID, amount, writerID int64, now time.Time) error {
	tx := db.GetTxFromContext(ctx, r.db)
	model := &models.UserCashbookModel{
		UserID:       userID,
		Balance:      amount,
		AuditColumns: models.NewAuditColumns(writerID, now),
	}
	err := tx.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"balance":      gorm.Expr("balance + ?", amount),
			"updated_id":   writerID,
			"updated_date": now,
		}),
	}).Create(model).Error
	if err != nil {
		return wrapDB("credit cashbook", err)
	}
	return nil
}

type SponsorshipRepository struct {
	db  *gorm.DB
	now func() time.Time
}

func NewSponsorshipRepository(db *gorm.DB) *SponsorshipRepository {
	return &SponsorshipRepository{db: db, now: biztime.Now}
}

func (r *SponsorshipRepository) Create(ctx context.Context, s *payment.Sponsorship, writerID int64) error {
	model := &models.AuthorSponsorshipModel{
		AuthorProfileID:  s.AuthorProfileID(),
		AuthorUserID:     s.AuthorUserID(),
		SponsorUserID:    s.SponsorUserID(),
		SponsorProfileID: s.SponsorProfileID(),
		DonationPrice:    s.DonationPrice(),
		Message:          s.Message(),
		AuditColumns:     models.NewAuditColumns(writerID, r.now()),
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return wrapDB("create sponsorship", err)
	}
	s.SetID(model.ID)
	return nil
}

type StoreOrderRepository struct {
	db *gorm.DB
}

func NewStoreOrderRepository(db *gorm.DB) *StoreOrderRepository {
	return &StoreOrderRepository{db: db}
}

func (r *StoreOrderRepository) GetByOrderNo(ctx context.Context, orderNo string) (*payment.Order, error) {
	var model models.StoreOrderModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("order_no = ?", orderNo).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDB("get store order", err)
	}
	return &payment.Order{
		ID:         model.OrderID,
		OrderNo:    model.OrderNo,
		UserID:     model.UserID,
		TotalPrice: model.TotalPrice,
		Status:     vo.OrderStatus(model.OrderStatus),
	}, nil
}

func (r *StoreOrderRepository) TransitionStatus(ctx context.Context, orderNo string, from, to vo.OrderStatus, writerID int64, now time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.StoreOrderModel{}).
		Where("order_no = ? AND order_status = ?", orderNo, from.String()).
		Updates(map[string]interface{}{
			"order_status": to.String(),
			"updated_id":   writerID,
			"updated_date": now,
		})
	if result.Error != nil {
		return false, wrapDB("update store order", result.Error)
	}
	return result.RowsAffected == 1, nil
}
