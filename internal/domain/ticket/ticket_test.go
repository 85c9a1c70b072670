package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "likenovel/internal/domain/ticket/valueobjects"
	"likenovel/internal/shared/errors"
)

func int64Ptr(v int64) *int64 { return &v }

func TestNewItem(t *testing.T) {
	item, err := NewItem(vo.TicketTypeTicketbook, "7일 이용권", 1000, false, 168, true, nil)
	require.NoError(t, err)
	assert.Equal(t, []int64{}, item.TargetProducts())

	_, err = NewItem(vo.TicketTypeTicketbook, "bad", -1, false, 0, true, nil)
	assert.Error(t, err)

	_, err = NewItem(vo.TicketTypeProductbook, "bad", 0, false, -3, true, nil)
	assert.Error(t, err)

	_, err = NewItem("coupon", "bad", 0, false, 0, true, nil)
	assert.Error(t, err)
}

func TestItem_AppliesToAndExpiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	all := ReconstructItem(1, vo.TicketTypeProductbook, "all", 0, false, 0, true, nil)
	assert.True(t, all.AppliesTo(int64Ptr(99)))
	assert.Nil(t, all.ExpiresAt(now))

	scoped := ReconstructItem(2, vo.TicketTypeProductbook, "scoped", 0, false, 24, true, []int64{10, 11})
	assert.True(t, scoped.AppliesTo(int64Ptr(10)))
	assert.False(t, scoped.AppliesTo(int64Ptr(12)))
	assert.True(t, scoped.AppliesTo(nil))
	require.NotNil(t, scoped.ExpiresAt(now))
	assert.Equal(t, now.Add(24*time.Hour), *scoped.ExpiresAt(now))

	assert.True(t, scoped.Issues(vo.TicketTypeProductbook))
	assert.False(t, scoped.Issues(vo.TicketTypeTicketbook))
}

func TestTicketbook_Use(t *testing.T) {
	now := time.Now()

	tb := ReconstructTicketbook(7, vo.TicketTypeTicketbook, 42, nil, nil, false, now, now)
	assert.Same(t, errors.ErrForbiddenTicketbookOwner, tb.Use(43, now))
	require.NoError(t, tb.Use(42, now))
	assert.True(t, tb.Used())
	assert.Same(t, errors.ErrAlreadyUsedTicketbook, tb.Use(42, now))
}

func TestProductbook_Use(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	tests := []struct {
		name    string
		params  ProductbookParams
		used    bool
		userID  int64
		product int64
		episode int64
		wantErr error
	}{
		{"any product", ProductbookParams{OwnType: vo.OwnTypeRental, UserID: 1}, false, 1, 5, 50, nil},
		{"not owner", ProductbookParams{OwnType: vo.OwnTypeRental, UserID: 1}, false, 2, 5, 50, errors.ErrForbiddenProductbookOwner},
		{"already used", ProductbookParams{OwnType: vo.OwnTypeRental, UserID: 1}, true, 1, 5, 50, errors.ErrAlreadyUsedProductbook},
		{"expired", ProductbookParams{OwnType: vo.OwnTypeRental, UserID: 1, RentalExpiredDate: &past}, false, 1, 5, 50, errors.ErrExpiredProductbook},
		{"not yet expired", ProductbookParams{OwnType: vo.OwnTypeRental, UserID: 1, RentalExpiredDate: &future}, false, 1, 5, 50, nil},
		{"other product", ProductbookParams{OwnType: vo.OwnTypeRental, UserID: 1, ProductID: int64Ptr(6)}, false, 1, 5, 50, errors.ErrProductbookScopeMismatch},
		{"other episode", ProductbookParams{OwnType: vo.OwnTypeOwn, UserID: 1, ProductID: int64Ptr(5), EpisodeID: int64Ptr(51)}, false, 1, 5, 50, errors.ErrProductbookScopeMismatch},
		{"exact episode", ProductbookParams{OwnType: vo.OwnTypeOwn, UserID: 1, ProductID: int64Ptr(5), EpisodeID: int64Ptr(50)}, false, 1, 5, 50, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pb := ReconstructProductbook(1, vo.TicketTypeProductbook, tt.params, tt.used, now)
			err := pb.Use(tt.userID, tt.product, tt.episode, now)
			if tt.wantErr != nil {
				assert.Same(t, tt.wantErr, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, pb.Used())
			assert.Equal(t, tt.episode, *pb.EpisodeID())
		})
	}
}

func newGift(t *testing.T, createdAt time.Time, mutate func(*GiftbookParams)) *Giftbook {
	t.Helper()
	acq := vo.AcquisitionEvent
	p := GiftbookParams{
		UserID:                42,
		ProductID:             int64Ptr(5),
		TicketType:            vo.TicketTypeProductbook,
		OwnType:               vo.OwnTypeRental,
		AcquisitionType:       &acq,
		AcquisitionID:         int64Ptr(900),
		Amount:                3,
		TicketExpirationType:  vo.ExpirationDays,
		TicketExpirationValue: 2,
	}
	if mutate != nil {
		mutate(&p)
	}
	return ReconstructGiftbook(1, p, false, false, nil, createdAt)
}

func TestGiftbook_Receive(t *testing.T) {
	now := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)

	t.Run("mints amount productbooks", func(t *testing.T) {
		g := newGift(t, now.Add(-24*time.Hour), nil)
		books, err := g.Receive(42, now)
		require.NoError(t, err)
		require.Len(t, books, 3)
		for _, b := range books {
			assert.Equal(t, vo.OwnTypeRental, b.OwnType())
			assert.Equal(t, int64(5), *b.ProductID())
			assert.Equal(t, int64(900), *b.AcquisitionID())
			require.NotNil(t, b.RentalExpiredDate())
			assert.Equal(t, now.AddDate(0, 0, 2), *b.RentalExpiredDate())
		}
		assert.True(t, g.Received())

		_, err = g.Receive(42, now)
		assert.Same(t, errors.ErrGiftAlreadyReceived, err)
	})

	t.Run("none expiration yields null rental date", func(t *testing.T) {
		g := newGift(t, now, func(p *GiftbookParams) { p.TicketExpirationType = vo.ExpirationNone; p.Amount = 1 })
		books, err := g.Receive(42, now)
		require.NoError(t, err)
		assert.Nil(t, books[0].RentalExpiredDate())
	})

	t.Run("hours expiration", func(t *testing.T) {
		g := newGift(t, now, func(p *GiftbookParams) { p.TicketExpirationType = vo.ExpirationHours; p.TicketExpirationValue = 5 })
		books, err := g.Receive(42, now)
		require.NoError(t, err)
		assert.Equal(t, now.Add(5*time.Hour), *books[0].RentalExpiredDate())
	})

	t.Run("expired after seven days", func(t *testing.T) {
		g := newGift(t, now.Add(-8*24*time.Hour), nil)
		_, err := g.Receive(42, now)
		assert.Same(t, errors.ErrGiftExpired, err)
		assert.False(t, g.Received())
	})

	t.Run("past expiration date", func(t *testing.T) {
		past := now.Add(-time.Minute)
		g := newGift(t, now.Add(-time.Hour), func(p *GiftbookParams) { p.ExpirationDate = &past })
		_, err := g.Receive(42, now)
		assert.Same(t, errors.ErrGiftExpired, err)
	})

	t.Run("not owner", func(t *testing.T) {
		g := newGift(t, now, nil)
		_, err := g.Receive(7, now)
		assert.Same(t, errors.ErrGiftForbidden, err)
	})
}

func TestNewGiftbook_Validation(t *testing.T) {
	now := time.Now()
	_, err := NewGiftbook(GiftbookParams{UserID: 1, Amount: 0, TicketType: vo.TicketTypeProductbook, OwnType: vo.OwnTypeRental}, now)
	assert.Error(t, err)

	_, err = NewGiftbook(GiftbookParams{UserID: 1, Amount: MaxIssueAmount + 1, TicketType: vo.TicketTypeProductbook, OwnType: vo.OwnTypeRental}, now)
	assert.Error(t, err)

	g, err := NewGiftbook(GiftbookParams{UserID: 1, Amount: 1, TicketType: vo.TicketTypeProductbook, OwnType: vo.OwnTypeRental}, now)
	require.NoError(t, err)
	assert.Equal(t, vo.ExpirationNone, g.TicketExpirationType())
}
