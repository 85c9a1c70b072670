package ticket

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"likenovel/internal/application/ticket/dto"
	"likenovel/internal/application/ticket/usecases"
	"likenovel/internal/domain/user"
	"likenovel/internal/interfaces/http/handlers/testutil"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

// =====================================================================
// Mock use cases
// =====================================================================

type mockUseTicketbook struct {
	err  error
	last usecases.UseTicketbookCommand
}

func (m *mockUseTicketbook) Execute(ctx context.Context, cmd usecases.UseTicketbookCommand) error {
	m.last = cmd
	return m.err
}

type mockIssuance struct {
	result bool
	err    error
	last   usecases.IssueCommand
	kind   string
}

func (m *mockIssuance) IssueTicketbooks(ctx context.Context, cmd usecases.IssueCommand) (bool, error) {
	m.last, m.kind = cmd, "ticketbook"
	return m.result, m.err
}

func (m *mockIssuance) IssueProductbooks(ctx context.Context, cmd usecases.IssueCommand) (bool, error) {
	m.last, m.kind = cmd, "productbook"
	return m.result, m.err
}

type mockReceiveGiftbook struct {
	result []*dto.ProductbookDTO
	err    error
}

func (m *mockReceiveGiftbook) Execute(ctx context.Context, cmd usecases.ReceiveGiftbookCommand) ([]*dto.ProductbookDTO, error) {
	return m.result, m.err
}

type mockUseProductbook struct {
	result *dto.ProductbookDTO
	err    error
	last   usecases.UseProductbookCommand
}

func (m *mockUseProductbook) Execute(ctx context.Context, cmd usecases.UseProductbookCommand) (*dto.ProductbookDTO, error) {
	m.last = cmd
	return m.result, m.err
}

type mockCreateTicketItem struct {
	result *dto.TicketItemDTO
	err    error
	last   usecases.CreateTicketItemCommand
}

func (m *mockCreateTicketItem) Execute(ctx context.Context, cmd usecases.CreateTicketItemCommand) (*dto.TicketItemDTO, error) {
	m.last = cmd
	return m.result, m.err
}

// =====================================================================
// Ticketbook
// =====================================================================

func TestTicketbookHandler_Use(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{"success", nil, http.StatusOK, ""},
		{"missing", errors.ErrNotFoundTicketbook, http.StatusNotFound, "NOT_FOUND_TICKETBOOK"},
		{"not owner", errors.ErrForbiddenTicketbookOwner, http.StatusForbidden, "FORBIDDEN_NOT_OWNER_OF_TICKETBOOK"},
		{"already used", errors.ErrAlreadyUsedTicketbook, http.StatusBadRequest, "ALREADY_USED_TICKETBOOK"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseTicketbook{err: tt.err}
			h := NewTicketbookHandler(nil, uc, nil, nil, nil, logger.NewNopLogger())

			c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/user-ticketbook/7/use", nil)
			testutil.SetURLParam(c, "id", "7")
			testutil.SetSubject(c, 42, user.RoleUser)

			h.Use(c)

			assert.Equal(t, tt.wantStatus, w.Code)
			assert.Equal(t, usecases.UseTicketbookCommand{TicketbookID: 7, UserID: 42}, uc.last)
			if tt.err == nil {
				var resp testutil.ResultResponse
				require.NoError(t, testutil.ParseResponse(w, &resp))
				assert.True(t, resp.Result)
				return
			}
			var resp testutil.ErrorResponse
			require.NoError(t, testutil.ParseResponse(w, &resp))
			assert.Equal(t, tt.wantMsg, resp.Message)
		})
	}
}

func TestTicketbookHandler_Use_InvalidID(t *testing.T) {
	uc := &mockUseTicketbook{}
	h := NewTicketbookHandler(nil, uc, nil, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/user-ticketbook/abc/use", nil)
	testutil.SetURLParam(c, "id", "abc")
	testutil.SetSubject(c, 42, user.RoleUser)

	h.Use(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, uc.last.TicketbookID)
}

// =====================================================================
// Ticket items
// =====================================================================

func TestItemHandler_Create_ValidatesBody(t *testing.T) {
	uc := &mockCreateTicketItem{}
	h := NewItemHandler(uc, nil, nil, nil, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/ticket-items", map[string]any{
		"ticket_type": "coupon",
		"ticket_name": "x",
	})
	testutil.SetSubject(c, 1, user.RoleAdmin)

	h.Create(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var resp testutil.ErrorResponse
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Contains(t, resp.Message, "ticket_type")
}

func TestItemHandler_Create_StampsWriter(t *testing.T) {
	uc := &mockCreateTicketItem{result: &dto.TicketItemDTO{TicketID: 5, TargetProducts: []int64{}}}
	h := NewItemHandler(uc, nil, nil, nil, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/ticket-items", map[string]any{
		"ticket_type":  "ticketbook",
		"ticket_name":  "3일 자유이용권",
		"price":        0,
		"expired_hour": 72,
	})
	testutil.SetSubject(c, 9, user.RoleAdmin)

	h.Create(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Result dto.TicketItemDTO `json:"result"`
	}
	require.NoError(t, testutil.ParseResponse(w, &resp))
	assert.Equal(t, int64(5), resp.Result.TicketID)
	assert.Equal(t, int64(9), uc.last.WriterID)
	assert.Equal(t, 72, uc.last.ExpiredHour)
}

func TestItemHandler_Issuance(t *testing.T) {
	t.Run("kind mismatch reports false", func(t *testing.T) {
		uc := &mockIssuance{result: false}
		h := NewItemHandler(nil, nil, nil, nil, nil, uc, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/ticket-items/3/issuance/productbook", map[string]any{
			"userIds": []int64{1, 2},
			"amount":  2,
		})
		testutil.SetURLParam(c, "id", "3")
		testutil.SetSubject(c, 1, user.RoleAdmin)

		h.IssueProductbooks(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"result":false}`, w.Body.String())
		assert.Equal(t, "productbook", uc.kind)
		assert.Equal(t, int64(3), uc.last.TicketID)
		assert.Equal(t, []int64{1, 2}, uc.last.UserIDs)
		assert.Equal(t, 2, uc.last.Amount)
	})

	t.Run("camel case body", func(t *testing.T) {
		uc := &mockIssuance{result: true}
		h := NewItemHandler(nil, nil, nil, nil, nil, uc, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/ticket-items/3/issuance/productbook", map[string]any{
			"userIds":   []int64{5},
			"productId": 10,
			"episodeId": 11,
		})
		testutil.SetURLParam(c, "id", "3")
		testutil.SetSubject(c, 1, user.RoleAdmin)

		h.IssueProductbooks(c)

		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
		require.NotNil(t, uc.last.ProductID)
		require.NotNil(t, uc.last.EpisodeID)
		assert.Equal(t, int64(10), *uc.last.ProductID)
		assert.Equal(t, int64(11), *uc.last.EpisodeID)
	})

	t.Run("amount above cap", func(t *testing.T) {
		uc := &mockIssuance{result: true}
		h := NewItemHandler(nil, nil, nil, nil, nil, uc, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/ticket-items/3/issuance/productbook", map[string]any{
			"userIds": []int64{1},
			"amount":  101,
		})
		testutil.SetURLParam(c, "id", "3")
		testutil.SetSubject(c, 1, user.RoleAdmin)

		h.IssueProductbooks(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, uc.kind)
	})

	t.Run("requires users", func(t *testing.T) {
		uc := &mockIssuance{result: true}
		h := NewItemHandler(nil, nil, nil, nil, nil, uc, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/ticket-items/3/issuance/ticketbook", map[string]any{
			"userIds": []int64{},
		})
		testutil.SetURLParam(c, "id", "3")
		testutil.SetSubject(c, 1, user.RoleAdmin)

		h.IssueTicketbooks(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Empty(t, uc.kind)
	})
}

// =====================================================================
// Productbook and giftbook
// =====================================================================

func TestProductbookHandler_Use_RequiresEpisode(t *testing.T) {
	uc := &mockUseProductbook{}
	h := NewProductbookHandler(nil, nil, uc, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/user-productbook/4/use", map[string]any{})
	testutil.SetURLParam(c, "id", "4")
	testutil.SetSubject(c, 42, user.RoleUser)

	h.Use(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Zero(t, uc.last.ProductbookID)
}

func TestProductbookHandler_Use(t *testing.T) {
	uc := &mockUseProductbook{result: &dto.ProductbookDTO{ID: 4, UseYN: "Y"}}
	h := NewProductbookHandler(nil, nil, uc, nil, nil, logger.NewNopLogger())

	c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/user-productbook/4/use", map[string]any{"episode_id": 11})
	testutil.SetURLParam(c, "id", "4")
	testutil.SetSubject(c, 42, user.RoleUser)

	h.Use(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, usecases.UseProductbookCommand{ProductbookID: 4, UserID: 42, EpisodeID: 11}, uc.last)
}

func TestGiftbookHandler_Receive(t *testing.T) {
	t.Run("expired", func(t *testing.T) {
		h := NewGiftbookHandler(nil, nil, nil, &mockReceiveGiftbook{err: errors.ErrGiftExpired}, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/user-giftbook/3/receive", nil)
		testutil.SetURLParam(c, "id", "3")
		testutil.SetSubject(c, 42, user.RoleUser)

		h.Receive(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		var resp testutil.ErrorResponse
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Equal(t, "선물의 유효기간(7일)이 만료되었습니다.", resp.Message)
	})

	t.Run("minted", func(t *testing.T) {
		h := NewGiftbookHandler(nil, nil, nil, &mockReceiveGiftbook{result: []*dto.ProductbookDTO{{ID: 1}, {ID: 2}}}, logger.NewNopLogger())

		c, w := testutil.NewTestContext(http.MethodPost, "/v1/command/user-giftbook/3/receive", nil)
		testutil.SetURLParam(c, "id", "3")
		testutil.SetSubject(c, 42, user.RoleUser)

		h.Receive(c)

		assert.Equal(t, http.StatusOK, w.Code)
		var resp struct {
			Data []dto.ProductbookDTO `json:"data"`
		}
		require.NoError(t, testutil.ParseResponse(w, &resp))
		assert.Len(t, resp.Data, 2)
	})
}
