package user

import "context"

type Repository interface {
	// GetByKcUserID returns nil when no row matches.
	GetByKcUserID(ctx context.Context, kcUserID string) (*User, error)
	GetByID(ctx context.Context, userID int64) (*User, error)
	GetAdminByEmail(ctx context.Context, email string) (*User, error)
	LatestApplyType(ctx context.Context, userID int64) (*ApplyType, error)
	ListProfiles(ctx context.Context, userID int64) ([]*Profile, error)
	GetProfile(ctx context.Context, profileID int64) (*Profile, error)
	GetDefaultProfile(ctx context.Context, userID int64) (*Profile, error)
	Exists(ctx context.Context, userID int64) (bool, error)
}
