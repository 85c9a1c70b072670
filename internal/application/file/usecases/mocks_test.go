package usecases

import (
	"context"
	"time"

	"likenovel/internal/domain/file"
)

type mockRepository struct {
	NameInUseFunc func(ctx context.Context, name string) (bool, error)
	groups        []file.GroupType
	items         []*file.Item
}

func (m *mockRepository) NameInUse(ctx context.Context, name string) (bool, error) {
	if m.NameInUseFunc != nil {
		return m.NameInUseFunc(ctx, name)
	}
	return false, nil
}

func (m *mockRepository) CreateGroup(ctx context.Context, group file.GroupType, writerID int64, now time.Time) (int64, error) {
	m.groups = append(m.groups, group)
	return int64(len(m.groups)), nil
}

func (m *mockRepository) CreateItem(ctx context.Context, item *file.Item, writerID int64, now time.Time) error {
	m.items = append(m.items, item)
	item.FileID = int64(len(m.items))
	return nil
}

type mockPresigner struct {
	keys []string
	err  error
}

func (m *mockPresigner) PresignUpload(ctx context.Context, key, contentType string) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	m.keys = append(m.keys, key)
	return "https://s3.example.com/bucket/" + key + "?X-Amz-Signature=abc", nil
}

// rollbackTx reports whether the callback failed, standing in for a rollback.
type rollbackTx struct {
	rolledBack bool
}

func (r *rollbackTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	err := fn(ctx)
	r.rolledBack = err != nil
	return err
}
