package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"likenovel/internal/domain/chat"
	"likenovel/internal/domain/content"
	"likenovel/internal/domain/payment/valueobjects"
	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := gdb.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, gdb.AutoMigrate(models.All()...))
	return gdb
}

func TestUserTicketbookRepository_MarkUsed(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewUserTicketbookRepository(gdb)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, gdb.Create(&models.UserTicketbookModel{
		ID: 7, TicketType: "ticketbook", UserID: 42, UseYN: "N",
		AuditColumns: models.NewAuditColumns(-1, now),
	}).Error)

	ok, err := repo.MarkUsed(ctx, 7, 42, now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.MarkUsed(ctx, 7, 42, now)
	require.NoError(t, err)
	assert.False(t, ok, "second use must not affect the row")

	tb, err := repo.GetByID(ctx, 7)
	require.NoError(t, err)
	require.NotNil(t, tb)
	assert.True(t, tb.Used())
}

func TestContentStore_UpdateIgnoresUnknownFields(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCarouselRepository(gdb)
	ctx := context.Background()

	id, err := repo.Create(ctx, &content.Carousel{Division: "main", Title: "old", Active: true}, 1)
	require.NoError(t, err)

	err = repo.Update(ctx, id, map[string]interface{}{
		"title":      "new",
		"created_id": 999,
		"bogus":      "x",
	}, 5)
	require.NoError(t, err)

	var row models.CarouselModel
	require.NoError(t, gdb.First(&row, id).Error)
	assert.Equal(t, "new", row.Title)
	assert.Equal(t, int64(1), row.CreatedID)
	assert.Equal(t, int64(5), row.UpdatedID)
}

func TestContentStore_UpdateMissingRow(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCarouselRepository(gdb)

	err := repo.Update(context.Background(), 404, map[string]interface{}{"title": "x"}, 1)
	require.Error(t, err)
	assert.True(t, errors.HasStatus(err, 404))
}

func TestCrudRepository_CreateWritesOnlyCreatableColumns(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCrudRepository[models.CarouselModel](gdb, CrudOptions{
		Creatable: db.NewAllowList("division", "title", "use_yn"),
		NotFound:  "NOT_FOUND_CAROUSEL",
	})
	ctx := context.Background()

	m := &models.CarouselModel{Division: "main", Title: "t", ShowOrder: 9, UseYN: "Y",
		AuditColumns: models.AuditColumns{CreatedID: 999}}
	require.NoError(t, repo.Create(ctx, m, 4))
	require.NotZero(t, m.ID)
	assert.Equal(t, int64(4), m.CreatedID)
	assert.Equal(t, int64(4), m.UpdatedID)
	assert.False(t, m.CreatedDate.IsZero())

	got, err := repo.MustGet(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, "t", got.Title)
	assert.Equal(t, 0, got.ShowOrder, "show_order is not creatable")
	assert.Equal(t, int64(4), got.CreatedID)
}

func TestCrudRepository_MustGetMissingRow(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCrudRepository[models.CarouselModel](gdb, CrudOptions{NotFound: "NOT_FOUND_CAROUSEL"})
	ctx := context.Background()

	_, err := repo.MustGet(ctx, 404)
	require.Error(t, err)
	assert.True(t, errors.HasStatus(err, 404))
	assert.Contains(t, err.Error(), "NOT_FOUND_CAROUSEL")

	m, err := repo.Get(ctx, 404)
	require.NoError(t, err)
	assert.Nil(t, m)
}

func TestContentStore_ListFilters(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCarouselRepository(gdb)
	ctx := context.Background()

	_, err := repo.Create(ctx, &content.Carousel{Division: "main", Title: "a", Active: true}, 1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, &content.Carousel{Division: "main", Title: "b", Active: false}, 1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, &content.Carousel{Division: "event", Title: "c", Active: true}, 1)
	require.NoError(t, err)

	rows, total, err := repo.List(ctx, content.ListFilter{ActiveOnly: true, Filters: map[string]interface{}{"division": "main", "title": "ignored"}})
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, "a", rows[0].Title)

	_, total, err = repo.List(ctx, content.ListFilter{})
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
}

func TestContentStore_ListOrdering(t *testing.T) {
	gdb := setupTestDB(t)
	ctx := context.Background()
	base := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)
	touch := func(table string, id int64, at time.Time) {
		require.NoError(t, gdb.Table(table).Where("id = ?", id).UpdateColumn("updated_date", at).Error)
	}

	t.Run("latest update first", func(t *testing.T) {
		repo := NewCarouselRepository(gdb)
		ids := map[string]int64{}
		for i, title := range []string{"a", "b", "c"} {
			id, err := repo.Create(ctx, &content.Carousel{Division: "main", Title: title, ShowOrder: i, Active: true}, 1)
			require.NoError(t, err)
			ids[title] = id
		}
		touch("tb_carousel", ids["a"], base.Add(3*time.Hour))
		touch("tb_carousel", ids["b"], base.Add(1*time.Hour))
		touch("tb_carousel", ids["c"], base.Add(2*time.Hour))

		rows, _, err := repo.List(ctx, content.ListFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"a", "c", "b"}, []string{rows[0].Title, rows[1].Title, rows[2].Title})
	})

	t.Run("pinned rows lead", func(t *testing.T) {
		repo := NewNoticeRepository(gdb)
		pinned, err := repo.Create(ctx, &content.Notice{Subject: "pinned", Pinned: true, Active: true}, 1)
		require.NoError(t, err)
		fresh, err := repo.Create(ctx, &content.Notice{Subject: "fresh", Active: true}, 1)
		require.NoError(t, err)
		touch("tb_notice", pinned, base)
		touch("tb_notice", fresh, base.Add(time.Hour))

		rows, _, err := repo.List(ctx, content.ListFilter{})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "pinned", rows[0].Subject)
		assert.Equal(t, "fresh", rows[1].Subject)
	})
}

func TestPopupRepository_Current(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewPopupRepository(gdb)
	ctx := context.Background()
	now := time.Now()

	popup, err := repo.Current(ctx, now)
	require.NoError(t, err)
	assert.Nil(t, popup)

	past := now.Add(-48 * time.Hour)
	yesterday := now.Add(-24 * time.Hour)
	_, err = repo.Create(ctx, &content.Popup{URL: "https://x/old", ImagePath: "/old.webp", StartDate: &past, EndDate: &yesterday, Active: true}, 1)
	require.NoError(t, err)
	_, err = repo.Create(ctx, &content.Popup{URL: "https://x/off", ImagePath: "/off.webp", Active: false}, 1)
	require.NoError(t, err)

	popup, err = repo.Current(ctx, now)
	require.NoError(t, err)
	assert.Nil(t, popup, "expired and retired popups are not shown")

	id, err := repo.Create(ctx, &content.Popup{URL: "https://x/event/1", ImagePath: "/img.webp", Active: true}, 1)
	require.NoError(t, err)

	popup, err = repo.Current(ctx, now)
	require.NoError(t, err)
	require.NotNil(t, popup)
	assert.Equal(t, id, popup.ID)
}

func TestChatRepository_UnreadFlow(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewChatRepository(gdb)
	ctx := context.Background()
	now := time.Now()

	roomID, err := repo.CreateRoom(ctx, 1, 2, now)
	require.NoError(t, err)

	_, err = repo.AppendMessage(ctx, roomID, 1, "hi", now)
	require.NoError(t, err)

	n, err := repo.CountRoomsWithUnread(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = repo.CountRoomsWithUnread(ctx, 1)
	require.NoError(t, err)
	assert.Zero(t, n, "own messages are never unread")

	marked, err := repo.MarkRead(ctx, roomID, 2, now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), marked)

	n, err = repo.CountRoomsWithUnread(ctx, 2)
	require.NoError(t, err)
	assert.Zero(t, n)

	created, err := repo.SaveReport(ctx, roomID, 2, chat.ReportSpam, nil, now)
	require.NoError(t, err)
	assert.True(t, created)
	created, err = repo.SaveReport(ctx, roomID, 2, chat.ReportAbuse, nil, now)
	require.NoError(t, err)
	assert.False(t, created)
}

func TestCashbookRepository_DebitNeverOverdraws(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCashbookRepository(gdb)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, repo.Credit(ctx, 42, 100, 42, now))
	require.NoError(t, repo.Credit(ctx, 42, 50, 42, now))

	balance, err := repo.Balance(ctx, 42)
	require.NoError(t, err)
	assert.Equal(t, int64(150), balance)

	ok, err := repo.Debit(ctx, 42, 200, 42, now)
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = repo.Debit(ctx, 42, 150, 42, now)
	require.NoError(t, err)
	assert.True(t, ok)

	balance, err = repo.Balance(ctx, 42)
	require.NoError(t, err)
	assert.Zero(t, balance)
}

func TestStoreOrderRepository_TransitionStatus(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewStoreOrderRepository(gdb)
	ctx := context.Background()
	now := time.Now()

	require.NoError(t, gdb.Create(&models.StoreOrderModel{
		OrderNo: "ORD-1", UserID: 42, PayMethod: "vbank", TotalPrice: 1000, OrderStatus: "10",
		AuditColumns: models.NewAuditColumns(42, now),
	}).Error)

	ok, err := repo.TransitionStatus(ctx, "ORD-1", valueobjects.OrderStatusAwaitingDeposit, valueobjects.OrderStatusConfirmed, -1, now)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = repo.TransitionStatus(ctx, "ORD-1", valueobjects.OrderStatusAwaitingDeposit, valueobjects.OrderStatusConfirmed, -1, now)
	require.NoError(t, err)
	assert.False(t, ok, "only an awaiting order transitions")
}

func TestTransactionManager_RollsBackRepositoryWrites(t *testing.T) {
	gdb := setupTestDB(t)
	repo := NewCashbookRepository(gdb)
	txMgr := db.NewTransactionManager(gdb)
	ctx := context.Background()

	err := txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := repo.Credit(txCtx, 7, 500, 7, time.Now()); err != nil {
			return err
		}
		return errors.ErrInsufficientBalance
	})
	require.ErrorIs(t, err, errors.ErrInsufficientBalance)

	balance, err := repo.Balance(ctx, 7)
	require.NoError(t, err)
	assert.Zero(t, balance)
}
