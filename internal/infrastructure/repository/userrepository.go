package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"likenovel/internal/domain/user"
	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/db"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func toUser(m *models.UserModel) *user.User {
	return &user.User{
		ID:           m.UserID,
		KcUserID:     m.KcUserID,
		Email:        m.Email,
		PasswordHash: m.Password,
		RoleType:     m.RoleType,
		Birthdate:    m.Birthdate,
	}
}

func toProfile(m *models.UserProfileModel) *user.Profile {
	return &user.Profile{
		ProfileID: m.ProfileID,
		UserID:    m.UserID,
		Nickname:  m.Nickname,
		RoleType:  m.RoleType,
		Default:   m.DefaultYN == constants.FlagYes,
	}
}

func (r *UserRepository) first(ctx context.Context, op string, query interface{}, args ...interface{}) (*user.User, error) {
	var model models.UserModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where(query, args...).Scopes(db.UseYN()).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDB(op, err)
	}
	return toUser(&model), nil
}

func (r *UserRepository) GetByKcUserID(ctx context.Context, kcUserID string) (*user.User, error) {
	return r.first(ctx, "get user by subject", "kc_user_id = ?", kcUserID)
}

func (r *UserRepository) GetByID(ctx context.Context, userID int64) (*user.User, error) {
	return r.first(ctx, "get user", "user_id = ?", userID)
}

func (r *UserRepository) GetAdminByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.first(ctx, "get admin", "email = ? AND role_type = ?", email, user.RoleAdmin.String())
}

func (r *UserRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.UserModel{}).Where("user_id = ?", userID).Scopes(db.UseYN()).Count(&count).Error; err != nil {
		return false, wrapDB("check user", err)
	}
	return count > 0, nil
}

// LatestApplyType returns the apply_type of the most recent profile application.
func (r *UserRepository) LatestApplyType(ctx context.Context, userID int64) (*user.ApplyType, error) {
	var model models.UserProfileApplyModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).
		Order("created_date DESC").Order("id DESC").
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDB("get profile application", err)
	}
	t := user.ApplyType(model.ApplyType)
	return &t, nil
}

func (r *UserRepository) ListProfiles(ctx context.Context, userID int64) ([]*user.Profile, error) {
	var rows []models.UserProfileModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", userID).
		Order("default_yn DESC").Order("profile_id ASC").
		Find(&rows).Error; err != nil {
		return nil, wrapDB("list profiles", err)
	}
	profiles := make([]*user.Profile, 0, len(rows))
	for i := range rows {
		profiles = append(profiles, toProfile(&rows[i]))
	}
	return profiles, nil
}

func (r *UserRepository) GetProfile(ctx context.Context, profileID int64) (*user.Profile, error) {
	var model models.UserProfileModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("profile_id = ?", profileID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDB("get profile", err)
	}
	return toProfile(&model), nil
}

func (r *UserRepository) GetDefaultProfile(ctx context.Context, userID int64) (*user.Profile, error) {
	var model models.UserProfileModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ? AND default_yn = ?", userID, constants.FlagYes).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDB("get default profile", err)
	}
	return toProfile(&model), nil
}
