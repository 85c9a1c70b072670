package usecases

import (
	"context"
	"time"

	"likenovel/internal/domain/ticket"
	"likenovel/internal/shared/errors"
)

type mockItemRepository struct {
	CreateFunc  func(ctx context.Context, item *ticket.Item, writerID int64) error
	GetByIDFunc func(ctx context.Context, id int64) (*ticket.Item, error)
	ListFunc    func(ctx context.Context, filter ticket.ItemFilter) ([]*ticket.Item, int64, error)
	UpdateFunc  func(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error
	DeleteFunc  func(ctx context.Context, id int64) error
}

func (m *mockItemRepository) Create(ctx context.Context, item *ticket.Item, writerID int64) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, item, writerID)
	}
	item.SetID(1)
	return nil
}

func (m *mockItemRepository) GetByID(ctx context.Context, id int64) (*ticket.Item, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockItemRepository) List(ctx context.Context, filter ticket.ItemFilter) ([]*ticket.Item, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockItemRepository) Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields, writerID)
	}
	return nil
}

func (m *mockItemRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockTicketbookRepository struct {
	CreateFunc     func(ctx context.Context, tb *ticket.Ticketbook, writerID int64) error
	GetByIDFunc    func(ctx context.Context, id int64) (*ticket.Ticketbook, error)
	ListByUserFunc func(ctx context.Context, userID int64, page, countPerPage int) ([]*ticket.Ticketbook, int64, error)
	MarkUsedFunc   func(ctx context.Context, id int64, writerID int64, now time.Time) (bool, error)
	UpdateFunc     func(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error
	DeleteFunc     func(ctx context.Context, id int64) error
}

func (m *mockTicketbookRepository) Create(ctx context.Context, tb *ticket.Ticketbook, writerID int64) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tb, writerID)
	}
	tb.SetID(1)
	return nil
}

func (m *mockTicketbookRepository) GetByID(ctx context.Context, id int64) (*ticket.Ticketbook, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketbookRepository) ListByUser(ctx context.Context, userID int64, page, countPerPage int) ([]*ticket.Ticketbook, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, page, countPerPage)
	}
	return nil, 0, nil
}

func (m *mockTicketbookRepository) MarkUsed(ctx context.Context, id int64, writerID int64, now time.Time) (bool, error) {
	if m.MarkUsedFunc != nil {
		return m.MarkUsedFunc(ctx, id, writerID, now)
	}
	return true, nil
}

func (m *mockTicketbookRepository) Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields, writerID)
	}
	return nil
}

func (m *mockTicketbookRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockProductbookRepository struct {
	CreateFunc           func(ctx context.Context, pb *ticket.Productbook, writerID int64) error
	CreateBatchFunc      func(ctx context.Context, pbs []*ticket.Productbook, writerID int64) error
	GetByIDFunc          func(ctx context.Context, id int64) (*ticket.Productbook, error)
	ListUsableByUserFunc func(ctx context.Context, userID int64, productID *int64, now time.Time) ([]*ticket.Productbook, error)
	MarkUsedFunc         func(ctx context.Context, id, productID, episodeID, writerID int64, now time.Time) (bool, error)
	UpdateFunc           func(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error
	DeleteFunc           func(ctx context.Context, id int64) error
}

func (m *mockProductbookRepository) Create(ctx context.Context, pb *ticket.Productbook, writerID int64) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, pb, writerID)
	}
	pb.SetID(1)
	return nil
}

func (m *mockProductbookRepository) CreateBatch(ctx context.Context, pbs []*ticket.Productbook, writerID int64) error {
	if m.CreateBatchFunc != nil {
		return m.CreateBatchFunc(ctx, pbs, writerID)
	}
	return nil
}

func (m *mockProductbookRepository) GetByID(ctx context.Context, id int64) (*ticket.Productbook, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockProductbookRepository) ListUsableByUser(ctx context.Context, userID int64, productID *int64, now time.Time) ([]*ticket.Productbook, error) {
	if m.ListUsableByUserFunc != nil {
		return m.ListUsableByUserFunc(ctx, userID, productID, now)
	}
	return nil, nil
}

func (m *mockProductbookRepository) MarkUsed(ctx context.Context, id, productID, episodeID, writerID int64, now time.Time) (bool, error) {
	if m.MarkUsedFunc != nil {
		return m.MarkUsedFunc(ctx, id, productID, episodeID, writerID, now)
	}
	return true, nil
}

func (m *mockProductbookRepository) Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, id, fields, writerID)
	}
	return nil
}

func (m *mockProductbookRepository) Delete(ctx context.Context, id int64) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockGiftbookRepository struct {
	CreateFunc       func(ctx context.Context, g *ticket.Giftbook, writerID int64) error
	GetByIDFunc      func(ctx context.Context, id int64) (*ticket.Giftbook, error)
	ListByUserFunc   func(ctx context.Context, userID int64, page, countPerPage int) ([]*ticket.Giftbook, int64, error)
	MarkReadFunc     func(ctx context.Context, id, writerID int64, now time.Time) error
	MarkReceivedFunc func(ctx context.Context, id, writerID int64, now time.Time) (bool, error)
}

func (m *mockGiftbookRepository) Create(ctx context.Context, g *ticket.Giftbook, writerID int64) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, g, writerID)
	}
	g.SetID(1)
	return nil
}

func (m *mockGiftbookRepository) GetByID(ctx context.Context, id int64) (*ticket.Giftbook, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockGiftbookRepository) ListByUser(ctx context.Context, userID int64, page, countPerPage int) ([]*ticket.Giftbook, int64, error) {
	if m.ListByUserFunc != nil {
		return m.ListByUserFunc(ctx, userID, page, countPerPage)
	}
	return nil, 0, nil
}

func (m *mockGiftbookRepository) MarkRead(ctx context.Context, id, writerID int64, now time.Time) error {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, id, writerID, now)
	}
	return nil
}

func (m *mockGiftbookRepository) MarkReceived(ctx context.Context, id, writerID int64, now time.Time) (bool, error) {
	if m.MarkReceivedFunc != nil {
		return m.MarkReceivedFunc(ctx, id, writerID, now)
	}
	return true, nil
}

type mockEpisodeLookup struct {
	productOf map[int64]int64
}

func (m *mockEpisodeLookup) GetProductIDOfEpisode(ctx context.Context, episodeID int64) (int64, error) {
	if p, ok := m.productOf[episodeID]; ok {
		return p, nil
	}
	return 0, errors.ErrNotFoundEpisode
}

type recordingSite struct {
	calls []int64
	err   error
}

func (r *recordingSite) Site(ctx context.Context, logType string, userID int64) error {
	r.calls = append(r.calls, userID)
	return r.err
}

type recordingNotifier struct {
	users []int64
}

func (r *recordingNotifier) Notify(ctx context.Context, userID int64, title, content string) {
	r.users = append(r.users, userID)
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func int64Ptr(v int64) *int64 { return &v }
