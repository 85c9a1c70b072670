package usecases

import (
	"context"
	"time"

	"likenovel/internal/domain/content"
)

// memStore is a map-backed content.Store.
type memStore[E any] struct {
	rows    map[int64]*E
	next    int64
	setID   func(*E, int64)
	updates map[int64]map[string]interface{}
}

func newMemStore[E any](setID func(*E, int64), seed ...*E) *memStore[E] {
	s := &memStore[E]{rows: map[int64]*E{}, setID: setID, updates: map[int64]map[string]interface{}{}}
	for _, e := range seed {
		s.next++
		setID(e, s.next)
		s.rows[s.next] = e
	}
	return s
}

func (s *memStore[E]) List(ctx context.Context, f content.ListFilter) ([]*E, int64, error) {
	out := make([]*E, 0, len(s.rows))
	for id := int64(1); id <= s.next; id++ {
		if e, ok := s.rows[id]; ok {
			out = append(out, e)
		}
	}
	return out, int64(len(out)), nil
}

func (s *memStore[E]) Get(ctx context.Context, id int64) (*E, error) {
	return s.rows[id], nil
}

func (s *memStore[E]) Create(ctx context.Context, e *E, writerID int64) (int64, error) {
	s.next++
	s.setID(e, s.next)
	s.rows[s.next] = e
	return s.next, nil
}

func (s *memStore[E]) Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error {
	s.updates[id] = fields
	return nil
}

func (s *memStore[E]) Delete(ctx context.Context, id int64) error {
	delete(s.rows, id)
	return nil
}

type memNotices struct {
	*memStore[content.Notice]
	views int
}

func (m *memNotices) IncrementViewCount(ctx context.Context, id int64) error {
	m.views++
	return nil
}

type memPopups struct {
	*memStore[content.Popup]
}

func (m *memPopups) Current(ctx context.Context, now time.Time) (*content.Popup, error) {
	var current *content.Popup
	for id := int64(1); id <= m.next; id++ {
		if p, ok := m.rows[id]; ok && p.Showing(now) {
			current = p
		}
	}
	return current, nil
}

type memCodes struct {
	*memStore[content.CommonCode]
}

func (m *memCodes) ListGroup(ctx context.Context, group string) ([]*content.CommonCode, error) {
	var out []*content.CommonCode
	for _, c := range m.rows {
		if c.CodeGroup == group && c.Active {
			out = append(out, c)
		}
	}
	return out, nil
}

type memEvaluations struct {
	*memStore[content.Evaluation]
}

func (m *memEvaluations) Exists(ctx context.Context, userID, productID, episodeID int64) (bool, error) {
	for _, e := range m.rows {
		if e.UserID == userID && e.ProductID == productID && e.EpisodeID == episodeID {
			return true, nil
		}
	}
	return false, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
