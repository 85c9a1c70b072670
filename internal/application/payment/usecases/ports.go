package usecases

import (
	"context"

	"likenovel/internal/domain/user"
)

// ProfileLookup resolves the author and sponsor personas.
type ProfileLookup interface {
	GetProfile(ctx context.Context, profileID int64) (*user.Profile, error)
	GetDefaultProfile(ctx context.Context, userID int64) (*user.Profile, error)
}

// PaymentRecorder appends payment statistics rows on the caller's transaction.
type PaymentRecorder interface {
	Payment(ctx context.Context, logType string, userID, amount int64) error
}
