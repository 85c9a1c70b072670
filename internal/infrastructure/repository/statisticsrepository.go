package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/db"
)

// StatisticsRepository appends rows to the site and payment statistics logs.
type StatisticsRepository struct {
	db *gorm.DB
}

func NewStatisticsRepository(db *gorm.DB) *StatisticsRepository {
	return &StatisticsRepository{db: db}
}

func (r *StatisticsRepository) InsertSiteLog(ctx context.Context, logType string, userID, writerID int64, now time.Time) error {
	model := &models.SiteStatisticsLogModel{
		LogDate:      biztime.StartOfDay(now),
		LogType:      logType,
		UserID:       userID,
		AuditColumns: models.NewAuditColumns(writerID, now),
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return wrapDB("write site statistics log", err)
	}
	return nil
}

func (r *StatisticsRepository) InsertPaymentLog(ctx context.Context, logType string, userID, amount, writerID int64, now time.Time) error {
	model := &models.PaymentStatisticsLogModel{
		LogDate:      biztime.StartOfDay(now),
		LogType:      logType,
		UserID:       userID,
		Amount:       amount,
		AuditColumns: models.NewAuditColumns(writerID, now),
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return wrapDB("write payment statistics log", err)
	}
	return nil
}
