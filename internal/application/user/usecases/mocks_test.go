package usecases

import (
	"context"
	"fmt"
	"time"

	"likenovel/internal/domain/user"
)

type mockUserRepository struct {
	GetByKcUserIDFunc     func(ctx context.Context, kcUserID string) (*user.User, error)
	GetByIDFunc           func(ctx context.Context, userID int64) (*user.User, error)
	GetAdminByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	LatestApplyTypeFunc   func(ctx context.Context, userID int64) (*user.ApplyType, error)
	ListProfilesFunc      func(ctx context.Context, userID int64) ([]*user.Profile, error)
	GetProfileFunc        func(ctx context.Context, profileID int64) (*user.Profile, error)
	GetDefaultProfileFunc func(ctx context.Context, userID int64) (*user.Profile, error)
	ExistsFunc            func(ctx context.Context, userID int64) (bool, error)
}

func (m *mockUserRepository) GetByKcUserID(ctx context.Context, kcUserID string) (*user.User, error) {
	if m.GetByKcUserIDFunc != nil {
		return m.GetByKcUserIDFunc(ctx, kcUserID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, userID int64) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetAdminByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetAdminByEmailFunc != nil {
		return m.GetAdminByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) LatestApplyType(ctx context.Context, userID int64) (*user.ApplyType, error) {
	if m.LatestApplyTypeFunc != nil {
		return m.LatestApplyTypeFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) ListProfiles(ctx context.Context, userID int64) ([]*user.Profile, error) {
	if m.ListProfilesFunc != nil {
		return m.ListProfilesFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetProfile(ctx context.Context, profileID int64) (*user.Profile, error) {
	if m.GetProfileFunc != nil {
		return m.GetProfileFunc(ctx, profileID)
	}
	return nil, nil
}

func (m *mockUserRepository) GetDefaultProfile(ctx context.Context, userID int64) (*user.Profile, error) {
	if m.GetDefaultProfileFunc != nil {
		return m.GetDefaultProfileFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockUserRepository) Exists(ctx context.Context, userID int64) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, userID)
	}
	return false, nil
}

type plainVerifier struct{}

func (plainVerifier) Verify(password, hash string) error {
	if password != hash {
		return fmt.Errorf("mismatch")
	}
	return nil
}

type stubIssuer struct {
	issued int64
}

func (s *stubIssuer) Issue(userID int64, email string) (string, time.Time, error) {
	s.issued = userID
	return "signed-token", time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC), nil
}
