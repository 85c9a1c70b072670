package models

import "time"

type ChatRoomModel struct {
	RoomID        int64 `gorm:"column:room_id;primaryKey;autoIncrement"`
	CreatorUserID int64 `gorm:"column:creator_user_id;not null"`
	AuditColumns
}

func (ChatRoomModel) TableName() string {
	return "tb_chat_room"
}

// ChatRoomMemberModel holds each participant's leave state.
type ChatRoomMemberModel struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	RoomID   int64  `gorm:"column:room_id;not null;uniqueIndex:uk_room_member"`
	UserID   int64  `gorm:"column:user_id;not null;uniqueIndex:uk_room_member;index"`
	IsActive string `gorm:"column:is_active;size:1;not null;default:Y"`
	AuditColumns
}

func (ChatRoomMemberModel) TableName() string {
	return "tb_chat_room_member"
}

type ChatMessageModel struct {
	MessageID    int64     `gorm:"column:message_id;primaryKey;autoIncrement"`
	RoomID       int64     `gorm:"column:room_id;not null;index:idx_room_created"`
	SenderUserID int64     `gorm:"column:sender_user_id;not null"`
	Content      string    `gorm:"column:content;type:text;not null"`
	IsRead       string    `gorm:"column:is_read;size:1;not null;default:N"`
	CreatedDate  time.Time `gorm:"column:created_date;not null;index:idx_room_created"`
	UpdatedDate  time.Time `gorm:"column:updated_date;not null"`
}

func (ChatMessageModel) TableName() string {
	return "tb_chat_message"
}

type ChatRoomReportModel struct {
	ID             int64   `gorm:"column:id;primaryKey;autoIncrement"`
	RoomID         int64   `gorm:"column:room_id;not null;uniqueIndex:uk_room_reporter"`
	ReporterUserID int64   `gorm:"column:reporter_user_id;not null;uniqueIndex:uk_room_reporter"`
	ReportReason   string  `gorm:"column:report_reason;size:20;not null"`
	ReportDetail   *string `gorm:"column:report_detail;size:1000"`
	AuditColumns
}

func (ChatRoomReportModel) TableName() string {
	return "tb_chat_room_report"
}
