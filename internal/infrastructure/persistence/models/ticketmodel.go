package models

import (
	"time"

	"gorm.io/datatypes"
)

type TicketItemModel struct {
	TicketID       int64          `gorm:"column:ticket_id;primaryKey;autoIncrement"`
	TicketType     string         `gorm:"column:ticket_type;size:20;not null"`
	TicketName     string         `gorm:"column:ticket_name;size:100;not null"`
	Price          int64          `gorm:"column:price;not null;default:0"`
	SettlementYN   string         `gorm:"column:settlement_yn;size:1;not null;default:N"`
	ExpiredHour    int            `gorm:"column:expired_hour;not null;default:0"`
	UseYN          string         `gorm:"column:use_yn;size:1;not null;default:Y"`
	TargetProducts datatypes.JSON `gorm:"column:target_products;type:json"`
	AuditColumns
}

func (TicketItemModel) TableName() string {
	return "tb_ticket_item"
}

type UserTicketbookModel struct {
	ID             int64      `gorm:"column:id;primaryKey;autoIncrement"`
	TicketType     string     `gorm:"column:ticket_type;size:20;not null"`
	UserID         int64      `gorm:"column:user_id;not null;index"`
	ProductID      *int64     `gorm:"column:product_id"`
	UseExpiredDate *time.Time `gorm:"column:use_expired_date"`
	UseYN          string     `gorm:"column:use_yn;size:1;not null;default:N"`
	AuditColumns
}

func (UserTicketbookModel) TableName() string {
	return "tb_user_ticketbook"
}

type UserProductbookModel struct {
	ID                int64      `gorm:"column:id;primaryKey;autoIncrement"`
	TicketType        string     `gorm:"column:ticket_type;size:20;not null"`
	OwnType           string     `gorm:"column:own_type;size:20;not null"`
	UserID            int64      `gorm:"column:user_id;not null;index"`
	ProfileID         *int64     `gorm:"column:profile_id"`
	ProductID         *int64     `gorm:"column:product_id;index"`
	EpisodeID         *int64     `gorm:"column:episode_id"`
	AcquisitionType   *string    `gorm:"column:acquisition_type;size:20"`
	AcquisitionID     *int64     `gorm:"column:acquisition_id"`
	RentalExpiredDate *time.Time `gorm:"column:rental_expired_date"`
	UseYN             string     `gorm:"column:use_yn;size:1;not null;default:N"`
	AuditColumns
}

func (UserProductbookModel) TableName() string {
	return "tb_user_productbook"
}

type UserGiftbookModel struct {
	ID                    int64      `gorm:"column:id;primaryKey;autoIncrement"`
	UserID                int64      `gorm:"column:user_id;not null;index"`
	ProductID             *int64     `gorm:"column:product_id"`
	EpisodeID             *int64     `gorm:"column:episode_id"`
	TicketType            string     `gorm:"column:ticket_type;size:20;not null"`
	OwnType               string     `gorm:"column:own_type;size:20;not null"`
	AcquisitionType       *string    `gorm:"column:acquisition_type;size:20"`
	AcquisitionID         *int64     `gorm:"column:acquisition_id"`
	ReadYN                string     `gorm:"column:read_yn;size:1;not null;default:N"`
	ReceivedYN            string     `gorm:"column:received_yn;size:1;not null;default:N"`
	ReceivedDate          *time.Time `gorm:"column:received_date"`
	Reason                *string    `gorm:"column:reason;size:200"`
	Amount                int        `gorm:"column:amount;not null;default:1"`
	PromotionType         *string    `gorm:"column:promotion_type;size:30"`
	ExpirationDate        *time.Time `gorm:"column:expiration_date"`
	TicketExpirationType  string     `gorm:"column:ticket_expiration_type;size:20;not null;default:none"`
	TicketExpirationValue int        `gorm:"column:ticket_expiration_value;not null;default:0"`
	AuditColumns
}

func (UserGiftbookModel) TableName() string {
	return "tb_user_giftbook"
}
