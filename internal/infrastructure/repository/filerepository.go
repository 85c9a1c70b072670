package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"likenovel/internal/domain/file"
	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/db"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

func (r *FileRepository) NameInUse(ctx context.Context, name string) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.CommonFileItemModel{}).
		Where("file_name = ?", name).
		Scopes(db.UseYN()).
		Count(&count).Error; err != nil {
		return false, wrapDB("check file name", err)
	}
	return count > 0, nil
}

func (r *FileRepository) CreateGroup(ctx context.Context, group file.GroupType, writerID int64, now time.Time) (int64, error) {
	model := &models.CommonFileModel{
		GroupType:    string(group),
		UseYN:        constants.FlagYes,
		AuditColumns: models.NewAuditColumns(writerID, now),
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return 0, wrapDB("create file group", err)
	}
	return model.FileGroupID, nil
}

func (r *FileRepository) CreateItem(ctx context.Context, item *file.Item, writerID int64, now time.Time) error {
	model := &models.CommonFileItemModel{
		FileGroupID:  item.FileGroupID,
		FileName:     item.FileName,
		FileOrgName:  item.FileOrgName,
		FilePath:     item.FilePath,
		FileSize:     item.FileSize,
		UseYN:        constants.FlagYes,
		AuditColumns: models.NewAuditColumns(writerID, now),
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return wrapDB("create file item", err)
	}
	item.FileID = model.FileID
	return nil
}
