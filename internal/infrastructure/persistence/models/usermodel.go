package models

import "time"

type UserModel struct {
	UserID    int64      `gorm:"column:user_id;primaryKey;autoIncrement"`
	KcUserID  string     `gorm:"column:kc_user_id;size:64;not null;uniqueIndex"`
	Email     string     `gorm:"column:email;size:100;not null;index"`
	Password  *string    `gorm:"column:password;size:255"`
	RoleType  string     `gorm:"column:role_type;size:20;not null;default:user"`
	Birthdate *time.Time `gorm:"column:birthdate;type:date"`
	Gender    *string    `gorm:"column:gender;size:1"`
	UseYN     string     `gorm:"column:use_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (UserModel) TableName() string {
	return "tb_user"
}

type UserProfileModel struct {
	ProfileID           int64  `gorm:"column:profile_id;primaryKey;autoIncrement"`
	UserID              int64  `gorm:"column:user_id;not null;index"`
	Nickname            string `gorm:"column:nickname;size:50;not null;index"`
	ProfileImageID      *int64 `gorm:"column:profile_image_id"`
	InterestBadgeFileID *int64 `gorm:"column:interest_badge_file_id"`
	EventBadgeFileID    *int64 `gorm:"column:event_badge_file_id"`
	RoleType            string `gorm:"column:role_type;size:20;not null;default:user"`
	DefaultYN           string `gorm:"column:default_yn;size:1;not null;default:N"`
	AuditColumns
}

func (UserProfileModel) TableName() string {
	return "tb_user_profile"
}

type UserProfileApplyModel struct {
	ID           int64  `gorm:"column:id;primaryKey;autoIncrement"`
	UserID       int64  `gorm:"column:user_id;not null;index"`
	ApplyType    string `gorm:"column:apply_type;size:20;not null"`
	ApprovalCode string `gorm:"column:approval_code;size:20;not null;default:review"`
	AuditColumns
}

func (UserProfileApplyModel) TableName() string {
	return "tb_user_profile_apply"
}
