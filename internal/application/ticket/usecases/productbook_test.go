package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"likenovel/internal/domain/ticket"
	vo "likenovel/internal/domain/ticket/valueobjects"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

func rentalBook(userID int64, productID *int64, expires *time.Time, used bool) *ticket.Productbook {
	return ticket.ReconstructProductbook(5, vo.TicketTypeProductbook, ticket.ProductbookParams{
		OwnType:           vo.OwnTypeRental,
		UserID:            userID,
		ProductID:         productID,
		RentalExpiredDate: expires,
	}, used, fixedNow)
}

func TestUseProductbook(t *testing.T) {
	past := fixedNow.Add(-time.Hour)
	future := fixedNow.Add(time.Hour)

	tests := []struct {
		name     string
		book     *ticket.Productbook
		episode  int64
		markUsed bool
		wantErr  error
	}{
		{name: "missing pass", episode: 100, wantErr: errors.ErrNotFoundProductbook},
		{name: "unknown episode", book: rentalBook(7, nil, nil, false), episode: 404, wantErr: errors.ErrNotFoundEpisode},
		{name: "other owner", book: rentalBook(8, nil, nil, false), episode: 100, wantErr: errors.ErrForbiddenProductbookOwner},
		{name: "expired", book: rentalBook(7, nil, &past, false), episode: 100, wantErr: errors.ErrExpiredProductbook},
		{name: "wrong work", book: rentalBook(7, int64Ptr(11), nil, false), episode: 100, wantErr: errors.ErrProductbookScopeMismatch},
		{name: "lost the race", book: rentalBook(7, nil, &future, false), episode: 100, wantErr: errors.ErrAlreadyUsedProductbook},
		{name: "success", book: rentalBook(7, int64Ptr(10), &future, false), episode: 100, markUsed: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var boundEpisode int64
			repo := &mockProductbookRepository{
				GetByIDFunc: func(ctx context.Context, id int64) (*ticket.Productbook, error) {
					return tt.book, nil
				},
				MarkUsedFunc: func(ctx context.Context, id, productID, episodeID, writerID int64, now time.Time) (bool, error) {
					boundEpisode = episodeID
					return tt.markUsed, nil
				},
			}
			episodes := &mockEpisodeLookup{productOf: map[int64]int64{100: 10}}
			uc := NewUseProductbookUseCase(repo, episodes, passthroughTx{}, logger.NewNopLogger())
			uc.now = func() time.Time { return fixedNow }

			out, err := uc.Execute(context.Background(), UseProductbookCommand{ProductbookID: 5, UserID: 7, EpisodeID: tt.episode})
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(100), boundEpisode)
			assert.Equal(t, "Y", out.UseYN)
		})
	}
}

func TestListProductbooks_PassesClock(t *testing.T) {
	var seen time.Time
	repo := &mockProductbookRepository{
		ListUsableByUserFunc: func(ctx context.Context, userID int64, productID *int64, now time.Time) ([]*ticket.Productbook, error) {
			seen = now
			return []*ticket.Productbook{rentalBook(userID, productID, nil, false)}, nil
		},
	}
	uc := NewListProductbooksUseCase(repo)
	uc.now = func() time.Time { return fixedNow }

	out, err := uc.Execute(context.Background(), ListProductbooksQuery{UserID: 7, ProductID: int64Ptr(10)})
	require.NoError(t, err)
	assert.Len(t, out, 1)
	assert.Equal(t, fixedNow, seen)
}

func TestCreateProductbook_RejectsUnknownOwnType(t *testing.T) {
	uc := NewCreateProductbookUseCase(&mockProductbookRepository{}, logger.NewNopLogger())
	_, err := uc.Execute(context.Background(), CreateProductbookCommand{OwnType: "lease", UserID: 7})
	assert.True(t, errors.HasStatus(err, 400))
}
