package repository

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/db"
)

type NotificationRepository struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Enabled reports whether the user accepts notiType notifications. A missing setting counts as opted in.
func (r *NotificationRepository) Enabled(ctx context.Context, userID int64, notiType string) (bool, error) {
	var model models.UserNotificationModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ? AND noti_type = ?", userID, notiType).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return true, nil
		}
		return false, wrapDB("get notification setting", err)
	}
	return model.NotiYN == constants.FlagYes, nil
}

func (r *NotificationRepository) InsertItem(ctx context.Context, userID int64, notiType, title, content string, writerID int64, now time.Time) error {
	model := &models.UserNotificationItemModel{
		UserID:       userID,
		NotiType:     notiType,
		Title:        title,
		Content:      content,
		ReadYN:       constants.FlagNo,
		AuditColumns: models.NewAuditColumns(writerID, now),
	}
	if err := db.GetTxFromContext(ctx, r.db).Create(model).Error; err != nil {
		return wrapDB("write notification", err)
	}
	return nil
}
