package models

type ProductModel struct {
	ProductID int64  `gorm:"column:product_id;primaryKey;autoIncrement"`
	Title     string `gorm:"column:title;size:200;not null"`
	UserID    int64  `gorm:"column:user_id;not null;index"`
	ProfileID *int64 `gorm:"column:profile_id"`
	OpenYN    string `gorm:"column:open_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (ProductModel) TableName() string {
	return "tb_product"
}

type ProductEpisodeModel struct {
	EpisodeID    int64  `gorm:"column:episode_id;primaryKey;autoIncrement"`
	ProductID    int64  `gorm:"column:product_id;not null;index"`
	EpisodeNo    int    `gorm:"column:episode_no;not null"`
	EpisodeTitle string `gorm:"column:episode_title;size:200;not null"`
	PriceType    string `gorm:"column:price_type;size:10;not null;default:free"`
	UseYN        string `gorm:"column:use_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (ProductEpisodeModel) TableName() string {
	return "tb_product_episode"
}

type ProductEvaluationModel struct {
	ID        int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID int64  `gorm:"column:product_id;not null;uniqueIndex:uk_evaluation"`
	EpisodeID int64  `gorm:"column:episode_id;not null;uniqueIndex:uk_evaluation"`
	UserID    int64  `gorm:"column:user_id;not null;uniqueIndex:uk_evaluation"`
	EvalCode  string `gorm:"column:eval_code;size:20;not null"`
	AuditColumns
}

func (ProductEvaluationModel) TableName() string {
	return "tb_product_evaluation"
}

type ProductReviewModel struct {
	ID         int64  `gorm:"column:id;primaryKey;autoIncrement"`
	ProductID  int64  `gorm:"column:product_id;not null;index"`
	EpisodeID  *int64 `gorm:"column:episode_id"`
	UserID     int64  `gorm:"column:user_id;not null;index"`
	ReviewText string `gorm:"column:review_text;type:text;not null"`
	OpenYN     string `gorm:"column:open_yn;size:1;not null;default:Y"`
	AuditColumns
}

func (ProductReviewModel) TableName() string {
	return "tb_product_review"
}
