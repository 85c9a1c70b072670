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

type issuanceFixture struct {
	uc       *IssuanceUseCase
	tickets  *mockTicketbookRepository
	books    *mockProductbookRepository
	site     *recordingSite
	notifier *recordingNotifier
	created  int
	batched  []*ticket.Productbook
}

func newIssuanceFixture(item *ticket.Item) *issuanceFixture {
	f := &issuanceFixture{site: &recordingSite{}, notifier: &recordingNotifier{}}
	f.tickets = &mockTicketbookRepository{
		CreateFunc: func(ctx context.Context, tb *ticket.Ticketbook, writerID int64) error {
			f.created++
			tb.SetID(int64(f.created))
			return nil
		},
	}
	f.books = &mockProductbookRepository{
		CreateBatchFunc: func(ctx context.Context, pbs []*ticket.Productbook, writerID int64) error {
			f.batched = append(f.batched, pbs...)
			return nil
		},
	}
	items := &mockItemRepository{
		GetByIDFunc: func(ctx context.Context, id int64) (*ticket.Item, error) {
			return item, nil
		},
	}
	post := NewPostTicketbookUseCase(f.tickets, f.site, f.notifier, passthroughTx{}, logger.NewNopLogger())
	f.uc = NewIssuanceUseCase(items, f.books, post, f.notifier, passthroughTx{}, logger.NewNopLogger())
	f.uc.now = func() time.Time { return fixedNow }
	return f
}

func TestIssueTicketbooks_PostsPerUser(t *testing.T) {
	item := ticket.ReconstructItem(3, vo.TicketTypeTicketbook, "주말 이용권", 0, false, 48, true, nil)
	f := newIssuanceFixture(item)

	ok, err := f.uc.IssueTicketbooks(context.Background(), IssueCommand{TicketID: 3, UserIDs: []int64{1, 2}})
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 2, f.created)
	assert.Equal(t, []int64{1, 2}, f.site.calls)
}

func TestIssueTicketbooks_KindMismatchReturnsFalse(t *testing.T) {
	item := ticket.ReconstructItem(3, vo.TicketTypeProductbook, "대여권", 0, false, 0, true, nil)
	f := newIssuanceFixture(item)

	ok, err := f.uc.IssueTicketbooks(context.Background(), IssueCommand{TicketID: 3, UserIDs: []int64{1}})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, f.created)
	assert.Empty(t, f.site.calls)
}

func TestIssueTicketbooks_InactiveItemReturnsFalse(t *testing.T) {
	item := ticket.ReconstructItem(3, vo.TicketTypeTicketbook, "중지된 이용권", 0, false, 0, false, nil)
	f := newIssuanceFixture(item)

	ok, err := f.uc.IssueTicketbooks(context.Background(), IssueCommand{TicketID: 3, UserIDs: []int64{1}})
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, f.created)
}

func TestIssueTicketbooks_MissingItem(t *testing.T) {
	f := newIssuanceFixture(nil)
	_, err := f.uc.IssueTicketbooks(context.Background(), IssueCommand{TicketID: 3, UserIDs: []int64{1}})
	assert.ErrorIs(t, err, errors.ErrNotFoundTicketItem)
}

func TestIssueProductbooks_ProductOutsideTargets(t *testing.T) {
	item := ticket.ReconstructItem(4, vo.TicketTypeProductbook, "대여권", 0, false, 0, true, []int64{10, 11})
	f := newIssuanceFixture(item)

	_, err := f.uc.IssueProductbooks(context.Background(), IssueCommand{
		TicketID:  4,
		UserIDs:   []int64{1},
		ProductID: int64Ptr(99),
	})
	assert.ErrorIs(t, err, errors.ErrTicketItemProductNotTarget)
	assert.Empty(t, f.batched)
}

func TestIssueProductbooks_RejectsOversizedIssuance(t *testing.T) {
	item := ticket.ReconstructItem(4, vo.TicketTypeProductbook, "대여권", 0, false, 72, true, nil)

	t.Run("amount", func(t *testing.T) {
		f := newIssuanceFixture(item)
		ok, err := f.uc.IssueProductbooks(context.Background(), IssueCommand{
			TicketID: 4,
			UserIDs:  []int64{1},
			Amount:   ticket.MaxIssueAmount + 1,
		})
		assert.True(t, errors.HasStatus(err, 400))
		assert.False(t, ok)
		assert.Empty(t, f.batched)
	})

	t.Run("recipients", func(t *testing.T) {
		f := newIssuanceFixture(item)
		users := make([]int64, ticket.MaxIssueUsers+1)
		for i := range users {
			users[i] = int64(i + 1)
		}
		ok, err := f.uc.IssueProductbooks(context.Background(), IssueCommand{TicketID: 4, UserIDs: users, Amount: 1})
		assert.True(t, errors.HasStatus(err, 400))
		assert.False(t, ok)
		assert.Empty(t, f.batched)
	})
}

func TestIssueProductbooks_MintsAmountPerUser(t *testing.T) {
	item := ticket.ReconstructItem(4, vo.TicketTypeProductbook, "대여권", 0, false, 72, true, []int64{10})
	f := newIssuanceFixture(item)

	ok, err := f.uc.IssueProductbooks(context.Background(), IssueCommand{
		TicketID:  4,
		UserIDs:   []int64{1, 2},
		ProductID: int64Ptr(10),
		Amount:    3,
	})
	require.NoError(t, err)
	assert.True(t, ok)
	require.Len(t, f.batched, 6)

	pb := f.batched[0]
	assert.Equal(t, vo.OwnTypeRental, pb.OwnType())
	require.NotNil(t, pb.AcquisitionType())
	assert.Equal(t, vo.AcquisitionAdmin, *pb.AcquisitionType())
	assert.Equal(t, int64(4), *pb.AcquisitionID())
	require.NotNil(t, pb.RentalExpiredDate())
	assert.Equal(t, fixedNow.Add(72*time.Hour), *pb.RentalExpiredDate())
	assert.Equal(t, []int64{1, 2}, f.notifier.users)
}

func TestIssueProductbooks_RequiresUsers(t *testing.T) {
	f := newIssuanceFixture(nil)
	_, err := f.uc.IssueProductbooks(context.Background(), IssueCommand{TicketID: 4})
	assert.True(t, errors.HasStatus(err, 400))
}
