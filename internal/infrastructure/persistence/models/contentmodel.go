package models

import "time"

type NoticeModel struct {
	ID          int64  `gorm:"column:id;primaryKey;autoIncrement"`
	Subject     string `gorm:"column:subject;size:200;not null"`
	Content     string `gorm:"column:content;type:text;not null"`
	PrimaryYN   string `gorm:"column:primary_yn;size:1;not null;default:N"`
	FileGroupID *int64 `gorm:"column:file_group_id"`
	ViewCount   int64  `gorm:"column:view_count;not null;default:0"`
	UseYN       string `gorm:"column:use_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (NoticeModel) TableName() string {
	return "tb_notice"
}

type FaqModel struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	FaqType   string `gorm:"column:faq_type;size:20;not null"`
	Subject   string `gorm:"column:subject;size:200;not null"`
	Content   string `gorm:"column:content;type:text;not null"`
	PrimaryYN string `gorm:"column:primary_yn;size:1;not null;default:N"`
	UseYN     string `gorm:"column:use_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (FaqModel) TableName() string {
	return "tb_faq"
}

type CarouselModel struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	Division  string     `gorm:"column:division;size:20;not null"`
	Title     string     `gorm:"column:title;size:200;not null"`
	ImageID   *int64     `gorm:"column:image_id"`
	URL       *string    `gorm:"column:url;size:500"`
	ShowOrder int        `gorm:"column:show_order;not null;default:0"`
	StartDate *time.Time `gorm:"column:start_date"`
	EndDate   *time.Time `gorm:"column:end_date"`
	UseYN     string     `gorm:"column:use_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (CarouselModel) TableName() string {
	return "tb_carousel"
}

type PublisherPromotionModel struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID int64      `gorm:"column:product_id;not null;index"`
	ShowOrder int        `gorm:"column:show_order;not null;default:0"`
	StartDate *time.Time `gorm:"column:start_date"`
	EndDate   *time.Time `gorm:"column:end_date"`
	UseYN     string     `gorm:"column:use_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (PublisherPromotionModel) TableName() string {
	return "tb_publisher_promotion"
}

type PopupModel struct {
	ID        int64      `gorm:"column:id;primaryKey;autoIncrement"`
	URL       string     `gorm:"column:url;size:500;not null"`
	ImagePath string     `gorm:"column:image_path;size:500;not null"`
	StartDate *time.Time `gorm:"column:start_date"`
	EndDate   *time.Time `gorm:"column:end_date"`
	UseYN     string     `gorm:"column:use_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (PopupModel) TableName() string {
	return "tb_comm_popup"
}

type CommonCodeModel struct {
	ID        int64   `gorm:"column:id;primaryKey;autoIncrement"`
	CodeGroup string  `gorm:"column:code_group;size:50;not null;uniqueIndex:uk_code"`
	CodeKey   string  `gorm:"column:code_key;size:50;not null;uniqueIndex:uk_code"`
	CodeValue string  `gorm:"column:code_value;size:200;not null"`
	CodeDesc  *string `gorm:"column:code_desc;size:200"`
	UseYN     string  `gorm:"column:use_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (CommonCodeModel) TableName() string {
	return "tb_common_code"
}
