package usecases

import (
	"context"
	"time"

	"likenovel/internal/domain/chat"
)

type mockRepository struct {
	CreateRoomFunc           func(ctx context.Context, creatorID, targetID int64, now time.Time) (int64, error)
	GetMemberFunc            func(ctx context.Context, roomID, userID int64) (*chat.Member, error)
	CounterpartFunc          func(ctx context.Context, roomID, userID int64) (*chat.Member, error)
	RoomExistsFunc           func(ctx context.Context, roomID int64) (bool, error)
	AppendMessageFunc        func(ctx context.Context, roomID, senderID int64, content string, now time.Time) (*chat.Message, error)
	SetActiveFunc            func(ctx context.Context, roomID, userID int64, active bool, now time.Time) error
	ListRoomsFunc            func(ctx context.Context, q chat.RoomQuery) ([]*chat.RoomSummary, int64, error)
	ListMessagesFunc         func(ctx context.Context, roomID int64, page, countPerPage int) ([]*chat.Message, int64, error)
	MarkReadFunc             func(ctx context.Context, roomID, readerID int64, now time.Time) (int64, error)
	SaveReportFunc           func(ctx context.Context, roomID, reporterID int64, reason chat.ReportReason, detail *string, now time.Time) (bool, error)
	CountRoomsWithUnreadFunc func(ctx context.Context, userID int64) (int64, error)
}

func (m *mockRepository) CreateRoom(ctx context.Context, creatorID, targetID int64, now time.Time) (int64, error) {
	if m.CreateRoomFunc != nil {
		return m.CreateRoomFunc(ctx, creatorID, targetID, now)
	}
	return 1, nil
}

func (m *mockRepository) GetMember(ctx context.Context, roomID, userID int64) (*chat.Member, error) {
	if m.GetMemberFunc != nil {
		return m.GetMemberFunc(ctx, roomID, userID)
	}
	return &chat.Member{RoomID: roomID, UserID: userID, IsActive: true}, nil
}

func (m *mockRepository) Counterpart(ctx context.Context, roomID, userID int64) (*chat.Member, error) {
	if m.CounterpartFunc != nil {
		return m.CounterpartFunc(ctx, roomID, userID)
	}
	return nil, nil
}

func (m *mockRepository) RoomExists(ctx context.Context, roomID int64) (bool, error) {
	if m.RoomExistsFunc != nil {
		return m.RoomExistsFunc(ctx, roomID)
	}
	return true, nil
}

func (m *mockRepository) AppendMessage(ctx context.Context, roomID, senderID int64, content string, now time.Time) (*chat.Message, error) {
	if m.AppendMessageFunc != nil {
		return m.AppendMessageFunc(ctx, roomID, senderID, content, now)
	}
	return &chat.Message{MessageID: 1, RoomID: roomID, SenderUserID: senderID, Content: content, CreatedDate: now}, nil
}

func (m *mockRepository) SetActive(ctx context.Context, roomID, userID int64, active bool, now time.Time) error {
	if m.SetActiveFunc != nil {
		return m.SetActiveFunc(ctx, roomID, userID, active, now)
	}
	return nil
}

func (m *mockRepository) ListRooms(ctx context.Context, q chat.RoomQuery) ([]*chat.RoomSummary, int64, error) {
	if m.ListRoomsFunc != nil {
		return m.ListRoomsFunc(ctx, q)
	}
	return nil, 0, nil
}

func (m *mockRepository) ListMessages(ctx context.Context, roomID int64, page, countPerPage int) ([]*chat.Message, int64, error) {
	if m.ListMessagesFunc != nil {
		return m.ListMessagesFunc(ctx, roomID, page, countPerPage)
	}
	return nil, 0, nil
}

func (m *mockRepository) MarkRead(ctx context.Context, roomID, readerID int64, now time.Time) (int64, error) {
	if m.MarkReadFunc != nil {
		return m.MarkReadFunc(ctx, roomID, readerID, now)
	}
	return 0, nil
}

func (m *mockRepository) SaveReport(ctx context.Context, roomID, reporterID int64, reason chat.ReportReason, detail *string, now time.Time) (bool, error) {
	if m.SaveReportFunc != nil {
		return m.SaveReportFunc(ctx, roomID, reporterID, reason, detail, now)
	}
	return true, nil
}

func (m *mockRepository) CountRoomsWithUnread(ctx context.Context, userID int64) (int64, error) {
	if m.CountRoomsWithUnreadFunc != nil {
		return m.CountRoomsWithUnreadFunc(ctx, userID)
	}
	return 0, nil
}

type mockUsers struct {
	exists bool
}

func (m mockUsers) Exists(ctx context.Context, userID int64) (bool, error) {
	return m.exists, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
