package usecases

import (
	"context"

	"likenovel/internal/domain/chat"
	"likenovel/internal/shared/errors"
)

// requireMember resolves the caller's membership, distinguishing a missing room from an
// outsider.
func requireMember(ctx context.Context, repo chat.Repository, roomID, userID int64) (*chat.Member, error) {
	if userID <= 0 {
		return nil, errors.ErrLoginRequired
	}
	m, err := repo.GetMember(ctx, roomID, userID)
	if err != nil {
		return nil, err
	}
	if m != nil {
		return m, nil
	}
	exists, err := repo.RoomExists(ctx, roomID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errors.ErrChatRoomNotFound
	}
	return nil, errors.ErrChatNotParticipant
}
