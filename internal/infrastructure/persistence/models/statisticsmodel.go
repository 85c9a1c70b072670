package models

import "time"

type SiteStatisticsLogModel struct {
	ID      int64     `gorm:"column:id;primaryKey;autoIncrement"`
	LogDate time.Time `gorm:"column:log_date;type:date;not null;index"`
	LogType string    `gorm:"column:log_type;size:20;not null"`
	UserID  int64     `gorm:"column:user_id;not null"`
	AuditColumns
}

func (SiteStatisticsLogModel) TableName() string {
	return "tb_site_statistics_log"
}

type PaymentStatisticsLogModel struct {
	ID      int64     `gorm:"column:id;primaryKey;autoIncrement"`
	LogDate time.Time `gorm:"column:log_date;type:date;not null;index"`
	LogType string    `gorm:"column:log_type;size:20;not null"`
	UserID  int64     `gorm:"column:user_id;not null"`
	Amount  int64     `gorm:"column:amount;not null;default:0"`
	AuditColumns
}

func (PaymentStatisticsLogModel) TableName() string {
	return "tb_payment_statistics_log"
}
