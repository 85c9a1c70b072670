package models

import "time"

// AuditColumns is embedded by every table that carries writer and timestamp columns.
type AuditColumns struct {
	CreatedID   int64     `gorm:"column:created_id;not null"`
	CreatedDate time.Time `gorm:"column:created_date;not null"`
	UpdatedID   int64     `gorm:"column:updated_id;not null"`
	UpdatedDate time.Time `gorm:"column:updated_date;not null"`
}

// NewAuditColumns stamps both writer pairs.
func NewAuditColumns(writerID int64, now time.Time) AuditColumns {
	return AuditColumns{CreatedID: writerID, CreatedDate: now, UpdatedID: writerID, UpdatedDate: now}
}
