package usecases

import (
	"context"

	"golang.org/x/text/unicode/norm"

	"likenovel/internal/application/chat/dto"
	"likenovel/internal/domain/chat"
	"likenovel/internal/shared/errors"
)

type ListRoomsQuery struct {
	UserID       int64
	Filter       string
	Search       string
	Page         int
	CountPerPage int
}

type ListRoomsUseCase struct {
	repo chat.Repository
}

func NewListRoomsUseCase(repo chat.Repository) *ListRoomsUseCase {
	return &ListRoomsUseCase{repo: repo}
}

func (uc *ListRoomsUseCase) Execute(ctx context.Context, q ListRoomsQuery) ([]*dto.RoomDTO, int64, error) {
	if q.UserID <= 0 {
		return nil, 0, errors.ErrLoginRequired
	}
	filter, err := chat.ParseRoomFilter(q.Filter)
	if err != nil {
		return nil, 0, err
	}

	rows, total, err := uc.repo.ListRooms(ctx, chat.RoomQuery{
		UserID:       q.UserID,
		Filter:       filter,
		Search:       norm.NFC.String(q.Search),
		Page:         q.Page,
		CountPerPage: q.CountPerPage,
	})
	if err != nil {
		return nil, 0, err
	}
	out := make([]*dto.RoomDTO, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ToRoomDTO(r))
	}
	return out, total, nil
}

type UnreadCountUseCase struct {
	repo chat.Repository
}

func NewUnreadCountUseCase(repo chat.Repository) *UnreadCountUseCase {
	return &UnreadCountUseCase{repo: repo}
}

// Execute counts rooms holding at least one unread message from the counterpart.
func (uc *UnreadCountUseCase) Execute(ctx context.Context, userID int64) (int64, error) {
	if userID <= 0 {
		return 0, errors.ErrLoginRequired
	}
	return uc.repo.CountRoomsWithUnread(ctx, userID)
}
