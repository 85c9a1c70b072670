// Package chat models one-to-one chat rooms between users.
package chat

import (
	"strings"
	"time"
	"unicode/utf8"

	"likenovel/internal/shared/errors"
)

// MaxMessageLength bounds a message in runes.
const MaxMessageLength = 2000

// ReportReason is the closed set of reasons a room can be reported for.
type ReportReason string

const (
	ReportSpam    ReportReason = "spam"
	ReportAbuse   ReportReason = "abuse"
	ReportSexual  ReportReason = "sexual"
	ReportFraud   ReportReason = "fraud"
	ReportPrivacy ReportReason = "privacy"
	ReportEtc     ReportReason = "etc"
)

func (r ReportReason) IsValid() bool {
	switch r {
	case ReportSpam, ReportAbuse, ReportSexual, ReportFraud, ReportPrivacy, ReportEtc:
		return true
	}
	return false
}

func ParseReportReason(s string) (ReportReason, error) {
	r := ReportReason(strings.ToLower(strings.TrimSpace(s)))
	if !r.IsValid() {
		return "", errors.ErrChatInvalidReason
	}
	return r, nil
}

// RoomFilter narrows the room list.
type RoomFilter string

const (
	FilterAll    RoomFilter = "all"
	FilterUnread RoomFilter = "unread"
)

// ParseRoomFilter maps an empty value to FilterAll.
func ParseRoomFilter(s string) (RoomFilter, error) {
	switch RoomFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterUnread:
		return FilterUnread, nil
	}
	return "", errors.ErrChatInvalidFilter
}

// NormalizeContent trims the message and enforces the length bounds.
func NormalizeContent(content string) (string, error) {
	c := strings.TrimSpace(content)
	if c == "" {
		return "", errors.ErrChatEmptyMessage
	}
	if utf8.RuneCountInString(c) > MaxMessageLength {
		return "", errors.ErrChatMessageTooLong
	}
	return c, nil
}

// ValidateParticipants rejects a room with oneself.
func ValidateParticipants(initiator, target int64) error {
	if target <= 0 {
		return errors.ErrChatTargetNotFound
	}
	if initiator == target {
		return errors.ErrChatSelfTarget
	}
	return nil
}

// Member is one side of a room.
type Member struct {
	RoomID   int64
	UserID   int64
	IsActive bool
}

// Message is a single chat line.
type Message struct {
	MessageID    int64     `json:"message_id"`
	RoomID       int64     `json:"room_id"`
	SenderUserID int64     `json:"sender_user_id"`
	Content      string    `json:"content"`
	IsRead       bool      `json:"is_read"`
	CreatedDate  time.Time `json:"created_date"`
}

// RoomSummary is a row of the room list as seen by one participant.
type RoomSummary struct {
	RoomID                int64
	CounterpartUserID     int64
	CounterpartNickname   *string
	CounterpartProfileImg *string
	InterestBadgePath     *string
	EventBadgePath        *string
	LastMessageContent    *string
	LastMessageDate       *time.Time
	UnreadMessageCount    int64
	IsActive              bool
}

// RoomQuery selects rooms for a participant.
type RoomQuery struct {
	UserID       int64
	Filter       RoomFilter
	Search       string
	Page         int
	CountPerPage int
}
