package content

import (
	"time"

	"likenovel/internal/domain/content"
	"likenovel/internal/shared/constants"
)

// EntityRequest is a create body that maps onto one content entity.
type EntityRequest[E any] interface {
	ToEntity() *E
}

type CreatedResponse struct {
	ID int64 `json:"id"`
}

type NoticeRequest struct {
	Subject     string `json:"subject" binding:"required,max=200"`
	Content     string `json:"content" binding:"required"`
	PrimaryYN   string `json:"primary_yn" binding:"omitempty,yn"`
	FileGroupID *int64 `json:"file_group_id"`
	UseYN       string `json:"use_yn" binding:"omitempty,yn"`
}

func (r NoticeRequest) ToEntity() *content.Notice {
	return &content.Notice{
		Subject:     r.Subject,
		Content:     r.Content,
		Pinned:      r.PrimaryYN == constants.FlagYes,
		FileGroupID: r.FileGroupID,
		Active:      r.UseYN != constants.FlagNo,
	}
}

type FaqRequest struct {
	FaqType   string `json:"faq_type" binding:"required,max=50"`
	Subject   string `json:"subject" binding:"required,max=200"`
	Content   string `json:"content" binding:"required"`
	PrimaryYN string `json:"primary_yn" binding:"omitempty,yn"`
	UseYN     string `json:"use_yn" binding:"omitempty,yn"`
}

func (r FaqRequest) ToEntity() *content.Faq {
	return &content.Faq{
		FaqType: r.FaqType,
		Subject: r.Subject,
		Content: r.Content,
		Pinned:  r.PrimaryYN == constants.FlagYes,
		Active:  r.UseYN != constants.FlagNo,
	}
}

type CarouselRequest struct {
	Division  string     `json:"division" binding:"required,max=50"`
	Title     string     `json:"title" binding:"required,max=200"`
	ImageID   *int64     `json:"image_id"`
	URL       *string    `json:"url" binding:"omitempty,max=500"`
	ShowOrder int        `json:"show_order" binding:"min=0"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	UseYN     string     `json:"use_yn" binding:"omitempty,yn"`
}

func (r CarouselRequest) ToEntity() *content.Carousel {
	return &content.Carousel{
		Division:  r.Division,
		Title:     r.Title,
		ImageID:   r.ImageID,
		URL:       r.URL,
		ShowOrder: r.ShowOrder,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Active:    r.UseYN != constants.FlagNo,
	}
}

type PublisherPromotionRequest struct {
	ProductID int64      `json:"product_id" binding:"required,min=1"`
	ShowOrder int        `json:"show_order" binding:"min=0"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	UseYN     string     `json:"use_yn" binding:"omitempty,yn"`
}

func (r PublisherPromotionRequest) ToEntity() *content.PublisherPromotion {
	return &content.PublisherPromotion{
		ProductID: r.ProductID,
		ShowOrder: r.ShowOrder,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Active:    r.UseYN != constants.FlagNo,
	}
}

type PopupRequest struct {
	URL       string     `json:"url" binding:"required,max=500"`
	ImagePath string     `json:"image_path" binding:"required,max=500"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
	UseYN     string     `json:"use_yn" binding:"omitempty,yn"`
}

func (r PopupRequest) ToEntity() *content.Popup {
	return &content.Popup{
		URL:       r.URL,
		ImagePath: r.ImagePath,
		StartDate: r.StartDate,
		EndDate:   r.EndDate,
		Active:    r.UseYN != constants.FlagNo,
	}
}

type CommonCodeRequest struct {
	CodeGroup string  `json:"code_group" binding:"required,max=50"`
	CodeKey   string  `json:"code_key" binding:"required,max=100"`
	CodeValue string  `json:"code_value" binding:"required,max=500"`
	CodeDesc  *string `json:"code_desc"`
	UseYN     string  `json:"use_yn" binding:"omitempty,yn"`
}

func (r CommonCodeRequest) ToEntity() *content.CommonCode {
	return &content.CommonCode{
		CodeGroup: r.CodeGroup,
		CodeKey:   r.CodeKey,
		CodeValue: r.CodeValue,
		CodeDesc:  r.CodeDesc,
		Active:    r.UseYN != constants.FlagNo,
	}
}

type CreateReviewRequest struct {
	ProductID  int64  `json:"product_id" binding:"required,min=1"`
	EpisodeID  *int64 `json:"episode_id"`
	ReviewText string `json:"review_text" binding:"required,max=2000"`
	OpenYN     string `json:"open_yn" binding:"omitempty,yn"`
}

func (r CreateReviewRequest) toEntity(userID int64) *content.Review {
	return &content.Review{
		ProductID:  r.ProductID,
		EpisodeID:  r.EpisodeID,
		UserID:     userID,
		ReviewText: r.ReviewText,
		Open:       r.OpenYN != constants.FlagNo,
	}
}

type CreateEvaluationRequest struct {
	ProductID int64  `json:"product_id" binding:"required,min=1"`
	EpisodeID int64  `json:"episode_id" binding:"required,min=1"`
	EvalCode  string `json:"eval_code" binding:"required,max=50"`
}
