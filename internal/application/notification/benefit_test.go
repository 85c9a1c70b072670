package notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"likenovel/internal/shared/logger"
)

type mockRepository struct {
	EnabledFunc    func(ctx context.Context, userID int64, notiType string) (bool, error)
	InsertItemFunc func(ctx context.Context, userID int64, notiType, title, content string, writerID int64, now time.Time) error
}

func (m *mockRepository) Enabled(ctx context.Context, userID int64, notiType string) (bool, error) {
	if m.EnabledFunc != nil {
		return m.EnabledFunc(ctx, userID, notiType)
	}
	return true, nil
}

func (m *mockRepository) InsertItem(ctx context.Context, userID int64, notiType, title, content string, writerID int64, now time.Time) error {
	if m.InsertItemFunc != nil {
		return m.InsertItemFunc(ctx, userID, notiType, title, content, writerID, now)
	}
	return nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func TestBenefitNotifier_WritesWhenEnabled(t *testing.T) {
	var written int
	repo := &mockRepository{
		InsertItemFunc: func(ctx context.Context, userID int64, notiType, title, content string, writerID int64, now time.Time) error {
			written++
			assert.Equal(t, NotiTypeBenefit, notiType)
			assert.Equal(t, int64(-1), writerID)
			return nil
		},
	}

	NewBenefitNotifier(repo, passthroughTx{}, logger.NewNopLogger()).Notify(context.Background(), 42, "t", "c")
	assert.Equal(t, 1, written)
}

func TestBenefitNotifier_SkipsWhenOptedOut(t *testing.T) {
	repo := &mockRepository{
		EnabledFunc: func(ctx context.Context, userID int64, notiType string) (bool, error) {
			return false, nil
		},
		InsertItemFunc: func(ctx context.Context, userID int64, notiType, title, content string, writerID int64, now time.Time) error {
			t.Fatal("must not write for an opted-out user")
			return nil
		},
	}

	NewBenefitNotifier(repo, passthroughTx{}, logger.NewNopLogger()).Notify(context.Background(), 42, "t", "c")
}

func TestBenefitNotifier_SwallowsFailures(t *testing.T) {
	repo := &mockRepository{
		InsertItemFunc: func(ctx context.Context, userID int64, notiType, title, content string, writerID int64, now time.Time) error {
			return errors.New("insert failed")
		},
	}

	assert.NotPanics(t, func() {
		NewBenefitNotifier(repo, passthroughTx{}, logger.NewNopLogger()).Notify(context.Background(), 42, "t", "c")
	})
}
