package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/db"
	apperrors "likenovel/internal/shared/errors"
)

type EpisodeRepository struct {
	db *gorm.DB
}

func NewEpisodeRepository(db *gorm.DB) *EpisodeRepository {
	return &EpisodeRepository{db: db}
}

// GetProductIDOfEpisode fails with NOT_FOUND_EPISODE when the episode does not exist.
func (r *EpisodeRepository) GetProductIDOfEpisode(ctx context.Context, episodeID int64) (int64, error) {
	var model models.ProductEpisodeModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Select("episode_id", "product_id").Where("episode_id = ?", episodeID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrNotFoundEpisode
		}
		return 0, wrapDB("get episode", err)
	}
	return model.ProductID, nil
}
