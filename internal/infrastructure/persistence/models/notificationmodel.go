package models

type UserNotificationModel struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID   int64  `gorm:"column:user_id;not null;uniqueIndex:uk_user_noti"`
	NotiType string `gorm:"column:noti_type;size:20;not null;uniqueIndex:uk_user_noti"`
	NotiYN   string `gorm:"column:noti_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (UserNotificationModel) TableName() string {
	return "tb_user_notification"
}

type UserNotificationItemModel struct {
	ID       int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID   int64  `gorm:"column:user_id;not null;index"`
	NotiType string `gorm:"column:noti_type;size:20;not null"`
	Title    string `gorm:"column:title;size:200;not null"`
	Content  string `gorm:"column:content;size:1000;not null"`
	ReadYN   string `gorm:"column:read_yn;size:1;not null;default:N"`
	AuditColumns
}

func (UserNotificationItemModel) TableName() string {
	return "tb_user_notification_item"
}
