package dto

import (
	"likenovel/internal/domain/chat"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/utils"
)

// Chat payloads keep the snake_case keys the mobile client already reads.

type RoomDTO struct {
	RoomID                int64   `json:"room_id"`
	CounterpartUserID     int64   `json:"counterpart_user_id"`
	CounterpartNickname   *string `json:"counterpart_nickname"`
	CounterpartProfileImg *string `json:"counterpart_profile_image_path"`
	InterestBadgePath     *string `json:"interest_badge_image_path"`
	EventBadgePath        *string `json:"event_badge_image_path"`
	LastMessageContent    *string `json:"last_message_content"`
	LastMessageDate       *string `json:"last_message_date"`
	UnreadMessageCount    int64   `json:"unread_message_count"`
	IsActive              string  `json:"is_active"`
}

func ToRoomDTO(s *chat.RoomSummary) *RoomDTO {
	return &RoomDTO{
		RoomID:                s.RoomID,
		CounterpartUserID:     s.CounterpartUserID,
		CounterpartNickname:   s.CounterpartNickname,
		CounterpartProfileImg: s.CounterpartProfileImg,
		InterestBadgePath:     s.InterestBadgePath,
		EventBadgePath:        s.EventBadgePath,
		LastMessageContent:    s.LastMessageContent,
		LastMessageDate:       biztime.FormatPtr(s.LastMessageDate),
		UnreadMessageCount:    s.UnreadMessageCount,
		IsActive:              utils.YN(s.IsActive),
	}
}

type MessageDTO struct {
	MessageID    int64  `json:"message_id"`
	RoomID       int64  `json:"room_id"`
	SenderUserID int64  `json:"sender_user_id"`
	Content      string `json:"content"`
	IsRead       string `json:"is_read"`
	CreatedDate  string `json:"created_date"`
}

func ToMessageDTO(m *chat.Message) *MessageDTO {
	return &MessageDTO{
		MessageID:    m.MessageID,
		RoomID:       m.RoomID,
		SenderUserID: m.SenderUserID,
		Content:      m.Content,
		IsRead:       utils.YN(m.IsRead),
		CreatedDate:  biztime.Format(m.CreatedDate),
	}
}

func ToMessageDTOs(msgs []*chat.Message) []*MessageDTO {
	out := make([]*MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, ToMessageDTO(m))
	}
	return out
}
