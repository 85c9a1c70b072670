package models

type UserCashbookModel struct {
	CashbookID int64 `gorm:"column:cashbook_id;primaryKey;autoIncrement"`
	UserID     int64 `gorm:"column:user_id;not null;uniqueIndex"`
	Balance    int64 `gorm:"column:balance;not null;default:0"`
	AuditColumns
}

func (UserCashbookModel) TableName() string {
	return "tb_user_cashbook"
}

type AuthorSponsorshipModel struct {
	ID               int64   `gorm:"column:id;primaryKey;autoIncrement"`
	AuthorProfileID  int64   `gorm:"column:author_profile_id;not null;index"`
	AuthorUserID     int64   `gorm:"column:author_user_id;not null"`
	SponsorUserID    int64   `gorm:"column:sponsor_user_id;not null;index"`
	SponsorProfileID int64   `gorm:"column:sponsor_profile_id;not null"`
	DonationPrice    int64   `gorm:"column:donation_price;not null"`
	Message          *string `gorm:"column:message;size:500"`
	AuditColumns
}

func (AuthorSponsorshipModel) TableName() string {
	return "tb_author_sponsorship"
}

type StoreOrderModel struct {
	OrderID     int64  `gorm:"column:order_id;primaryKey;autoIncrement"`
	OrderNo     string `gorm:"column:order_no;size:50;not null;uniqueIndex"`
	UserID      int64  `gorm:"column:user_id;not null;index"`
	PayMethod   string `gorm:"column:pay_method;size:20;not null"`
	TotalPrice  int64  `gorm:"column:total_price;not null"`
	OrderStatus string `gorm:"column:order_status;size:2;not null;default:10"`
	AuditColumns
}

func (StoreOrderModel) TableName() string {
	return "tb_store_order"
}
