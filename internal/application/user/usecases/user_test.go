package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"likenovel/internal/domain/user"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

func TestResolveSubject(t *testing.T) {
	editor := user.ApplyTypeEditor
	tests := []struct {
		name     string
		stored   string
		apply    *user.ApplyType
		wantRole user.Role
	}{
		{name: "plain user", stored: "user", wantRole: user.RoleUser},
		{name: "editor application", stored: "user", apply: &editor, wantRole: user.RoleAuthor},
		{name: "stored admin wins", stored: "admin", apply: &editor, wantRole: user.RoleAdmin},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepository{
				GetByKcUserIDFunc: func(ctx context.Context, kcUserID string) (*user.User, error) {
					assert.Equal(t, "kc-1", kcUserID)
					return &user.User{ID: 10, KcUserID: kcUserID, RoleType: tt.stored}, nil
				},
				LatestApplyTypeFunc: func(ctx context.Context, userID int64) (*user.ApplyType, error) {
					return tt.apply, nil
				},
			}
			s, err := NewResolveSubjectUseCase(repo, logger.NewNopLogger()).
				Execute(context.Background(), Principal{Subject: "kc-1", Azp: "web"})
			require.NoError(t, err)
			assert.Equal(t, int64(10), s.UserID)
			assert.Equal(t, tt.wantRole, s.Role)
			assert.False(t, s.IsAnonymous())
		})
	}
}

func TestResolveSubject_UnknownSubjectIsUnauthorized(t *testing.T) {
	_, err := NewResolveSubjectUseCase(&mockUserRepository{}, logger.NewNopLogger()).
		Execute(context.Background(), Principal{Subject: "ghost"})
	assert.ErrorIs(t, err, errors.ErrUserNotFound)
	assert.True(t, errors.HasStatus(err, 401))
}

func TestResolveSubject_LocalTokenUsesUserID(t *testing.T) {
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID int64) (*user.User, error) {
			return &user.User{ID: userID, RoleType: "admin"}, nil
		},
		GetByKcUserIDFunc: func(ctx context.Context, kcUserID string) (*user.User, error) {
			t.Fatal("local tokens must not be resolved by subject")
			return nil, nil
		},
	}
	s, err := NewResolveSubjectUseCase(repo, logger.NewNopLogger()).
		Execute(context.Background(), Principal{Subject: "admin:3", UserID: 3})
	require.NoError(t, err)
	assert.True(t, s.IsAdmin())
}

func TestAdminLogin(t *testing.T) {
	hash := "pw!12345"
	repo := &mockUserRepository{
		GetAdminByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			if email != "admin@likenovel.net" {
				return nil, nil
			}
			return &user.User{ID: 1, Email: email, RoleType: "admin", PasswordHash: &hash}, nil
		},
	}
	issuer := &stubIssuer{}
	uc := NewAdminLoginUseCase(repo, plainVerifier{}, issuer, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), AdminLoginCommand{Email: " Admin@Likenovel.net ", Password: hash})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.AccessToken)
	assert.Equal(t, int64(1), issuer.issued)

	_, err = uc.Execute(context.Background(), AdminLoginCommand{Email: "admin@likenovel.net", Password: "wrong"})
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)

	_, err = uc.Execute(context.Background(), AdminLoginCommand{Email: "nobody@likenovel.net", Password: hash})
	assert.ErrorIs(t, err, errors.ErrInvalidCredentials)
}

func TestGetMe(t *testing.T) {
	birth := time.Date(2000, 6, 15, 0, 0, 0, 0, time.UTC)
	repo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, userID int64) (*user.User, error) {
			return &user.User{ID: userID, KcUserID: "kc-1", Email: "a@b.c", Birthdate: &birth}, nil
		},
		ListProfilesFunc: func(ctx context.Context, userID int64) ([]*user.Profile, error) {
			return []*user.Profile{{ProfileID: 5, UserID: userID, Nickname: "작가", Default: true}}, nil
		},
	}
	uc := NewGetMeUseCase(repo)
	uc.now = func() time.Time { return time.Date(2025, 6, 14, 0, 0, 0, 0, time.UTC) }

	out, err := uc.Execute(context.Background(), user.Subject{Sub: "kc-1", UserID: 9, Role: user.RoleAuthor})
	require.NoError(t, err)
	assert.Equal(t, "author", out.Role)
	require.NotNil(t, out.Age)
	assert.Equal(t, 24, *out.Age)
	require.Len(t, out.Profiles, 1)
	assert.Equal(t, "Y", out.Profiles[0].DefaultYN)

	_, err = uc.Execute(context.Background(), user.Subject{})
	assert.ErrorIs(t, err, errors.ErrLoginRequired)
}
