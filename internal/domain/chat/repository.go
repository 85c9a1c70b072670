package chat

import (
	"context"
	"time"
)

type Repository interface {
	CreateRoom(ctx context.Context, creatorID, targetID int64, now time.Time) (int64, error)
	GetMember(ctx context.Context, roomID, userID int64) (*Member, error)
	// Counterpart returns the other member of a two-person room, nil when absent.
	Counterpart(ctx context.Context, roomID, userID int64) (*Member, error)
	RoomExists(ctx context.Context, roomID int64) (bool, error)
	AppendMessage(ctx context.Context, roomID, senderID int64, content string, now time.Time) (*Message, error)
	SetActive(ctx context.Context, roomID, userID int64, active bool, now time.Time) error
	ListRooms(ctx context.Context, q RoomQuery) ([]*RoomSummary, int64, error)
	ListMessages(ctx context.Context, roomID int64, page, countPerPage int) ([]*Message, int64, error)
	// MarkRead flips every message in the room not sent by readerID to read.
	MarkRead(ctx context.Context, roomID, readerID int64, now time.Time) (int64, error)
	// SaveReport is idempotent by (room, reporter); created is false when a report already existed.
	SaveReport(ctx context.Context, roomID, reporterID int64, reason ReportReason, detail *string, now time.Time) (created bool, err error)
	CountRoomsWithUnread(ctx context.Context, userID int64) (int64, error)
}
