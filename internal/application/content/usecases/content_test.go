package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"likenovel/internal/domain/content"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/services/markdown"
)

func TestGetNotice_BumpsViewCountAndRenders(t *testing.T) {
	store := &memNotices{memStore: newMemStore(func(n *content.Notice, id int64) { n.ID = id },
		&content.Notice{Subject: "점검 안내", Content: "**02:00** 점검", ViewCount: 4, Active: true},
		&content.Notice{Subject: "숨김", Content: "x"},
	)}
	uc := NewGetNoticeUseCase(store, markdown.NewRenderer(), passthroughTx{}, logger.NewNopLogger())

	out, err := uc.Execute(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int64(5), out.ViewCount)
	assert.Contains(t, out.ContentHTML, "<strong>02:00</strong>")
	assert.Equal(t, 1, store.views)

	_, err = uc.Execute(context.Background(), 2)
	assert.ErrorIs(t, err, errors.ErrNotFoundNotice)
	_, err = uc.Execute(context.Background(), 99)
	assert.ErrorIs(t, err, errors.ErrNotFoundNotice)
	assert.Equal(t, 1, store.views)
}

func TestFaqUseCase_DetailRendersListDoesNot(t *testing.T) {
	store := newMemStore(func(f *content.Faq, id int64) { f.ID = id },
		&content.Faq{FaqType: "account", Subject: "q", Content: "# 제목", Active: true})
	uc := NewFaqUseCase(store, markdown.NewRenderer(), passthroughTx{}, logger.NewNopLogger())

	items, total, err := uc.List(context.Background(), ListQuery{Page: 1, CountPerPage: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	assert.Empty(t, items[0].ContentHTML)

	got, err := uc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Contains(t, got.ContentHTML, "<h1")

	_, err = uc.Get(context.Background(), 2)
	assert.ErrorIs(t, err, errors.ErrNotFoundFaq)
}

func TestResourceUseCase_CreateUpdateDelete(t *testing.T) {
	store := newMemStore(func(c *content.Carousel, id int64) { c.ID = id })
	uc := NewCarouselUseCase(store, passthroughTx{}, logger.NewNopLogger())
	ctx := context.Background()

	id, err := uc.Create(ctx, &content.Carousel{Division: "main", Title: "배너", Active: true}, -1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)

	require.NoError(t, uc.Update(ctx, id, map[string]interface{}{"title": "새 배너"}, -1))
	assert.Equal(t, "새 배너", store.updates[id]["title"])

	require.NoError(t, uc.Delete(ctx, id))
	_, err = uc.Get(ctx, id)
	assert.ErrorIs(t, err, errors.ErrNotFoundCarousel)
}

func TestReviewUseCase_OwnerOnly(t *testing.T) {
	store := newMemStore(func(r *content.Review, id int64) { r.ID = id },
		&content.Review{ProductID: 3, UserID: 7, ReviewText: "재밌어요", Open: true})
	uc := NewReviewUseCase(store, passthroughTx{}, logger.NewNopLogger())
	ctx := context.Background()

	tests := []struct {
		name    string
		id      int64
		userID  int64
		wantErr error
	}{
		{name: "stranger", id: 1, userID: 8, wantErr: errors.ErrNotOwner},
		{name: "anonymous", id: 1, userID: 0, wantErr: errors.ErrLoginRequired},
		{name: "missing", id: 5, userID: 7, wantErr: errors.ErrNotFoundReview},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, uc.UpdateOwned(ctx, tt.id, map[string]interface{}{"review_text": "x"}, tt.userID), tt.wantErr)
			assert.ErrorIs(t, uc.DeleteOwned(ctx, tt.id, tt.userID), tt.wantErr)
		})
	}
	assert.Empty(t, store.updates)

	require.NoError(t, uc.UpdateOwned(ctx, 1, map[string]interface{}{"review_text": "최고"}, 7))
	require.NoError(t, uc.DeleteOwned(ctx, 1, 7))
	assert.Empty(t, store.rows)
}

func TestCreateEvaluation_OnePerEpisode(t *testing.T) {
	store := &memEvaluations{memStore: newMemStore(func(e *content.Evaluation, id int64) { e.ID = id })}
	uc := NewCreateEvaluationUseCase(store, passthroughTx{}, logger.NewNopLogger())
	cmd := CreateEvaluationCommand{ProductID: 3, EpisodeID: 30, UserID: 7, EvalCode: "good"}

	out, err := uc.Execute(context.Background(), cmd)
	require.NoError(t, err)
	assert.Equal(t, int64(1), out.ID)

	_, err = uc.Execute(context.Background(), cmd)
	assert.ErrorIs(t, err, errors.ErrDuplicateEvaluation)

	cmd.EvalCode = ""
	_, err = uc.Execute(context.Background(), cmd)
	assert.True(t, errors.HasStatus(err, 400))
}

func TestCurrentPopup(t *testing.T) {
	now := time.Now()
	past := now.Add(-48 * time.Hour)
	store := &memPopups{memStore: newMemStore(func(p *content.Popup, id int64) { p.ID = id })}
	uc := NewCurrentPopupUseCase(store)
	uc.now = func() time.Time { return now }

	got, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)

	_, _ = store.Create(context.Background(), &content.Popup{URL: "https://x/event/1", ImagePath: "https://cdn/img.webp", Active: true}, -1)
	_, _ = store.Create(context.Background(), &content.Popup{URL: "https://x/old", Active: true, EndDate: &past}, -1)

	got, err = uc.Execute(context.Background())
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, int64(1), got.ID)
	assert.Equal(t, "https://cdn/img.webp", got.ImagePath)
}

func TestGetRates(t *testing.T) {
	store := &memCodes{memStore: newMemStore(func(c *content.CommonCode, id int64) { c.ID = id },
		&content.CommonCode{CodeGroup: content.RateCodeGroup, CodeKey: "default_settlement_rate", CodeValue: "0.7", Active: true},
		&content.CommonCode{CodeGroup: content.RateCodeGroup, CodeKey: "donation_settlement_rate", CodeValue: "0.9", Active: true},
		&content.CommonCode{CodeGroup: content.RateCodeGroup, CodeKey: "payment_fee_rate", CodeValue: "abc", Active: true},
		&content.CommonCode{CodeGroup: "other", CodeKey: "tax_amount_rate", CodeValue: "0.1", Active: true},
	)}

	rates, err := NewGetRatesUseCase(store, logger.NewNopLogger()).Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]float64{
		"default_settlement_rate":  0.7,
		"donation_settlement_rate": 0.9,
		"payment_fee_rate":         0,
		"tax_amount_rate":          0,
	}, rates)
}
