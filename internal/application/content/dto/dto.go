package dto

import (
	"likenovel/internal/domain/content"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/utils"
)

type NoticeDTO struct {
	ID          int64  `json:"id"`
	Subject     string `json:"subject"`
	Content     string `json:"content"`
	ContentHTML string `json:"contentHtml,omitempty"`
	PrimaryYN   string `json:"primaryYn"`
	FileGroupID *int64 `json:"fileGroupId"`
	ViewCount   int64  `json:"viewCount"`
	UseYN       string `json:"useYn"`
	CreatedDate string `json:"createdDate"`
	UpdatedDate string `json:"updatedDate"`
}

func ToNoticeDTO(n *content.Notice) NoticeDTO {
	return NoticeDTO{
		ID:          n.ID,
		Subject:     n.Subject,
		Content:     n.Content,
		PrimaryYN:   utils.YN(n.Pinned),
		FileGroupID: n.FileGroupID,
		ViewCount:   n.ViewCount,
		UseYN:       utils.YN(n.Active),
		CreatedDate: biztime.Format(n.CreatedDate),
		UpdatedDate: biztime.Format(n.UpdatedDate),
	}
}

type FaqDTO struct {
	ID          int64  `json:"id"`
	FaqType     string `json:"faqType"`
	Subject     string `json:"subject"`
	Content     string `json:"content"`
	ContentHTML string `json:"contentHtml,omitempty"`
	PrimaryYN   string `json:"primaryYn"`
	UseYN       string `json:"useYn"`
	CreatedDate string `json:"createdDate"`
}

func ToFaqDTO(f *content.Faq) FaqDTO {
	return FaqDTO{
		ID:          f.ID,
		FaqType:     f.FaqType,
		Subject:     f.Subject,
		Content:     f.Content,
		PrimaryYN:   utils.YN(f.Pinned),
		UseYN:       utils.YN(f.Active),
		CreatedDate: biztime.Format(f.CreatedDate),
	}
}

type CarouselDTO struct {
	ID        int64   `json:"id"`
	Division  string  `json:"division"`
	Title     string  `json:"title"`
	ImageID   *int64  `json:"imageId"`
	URL       *string `json:"url"`
	ShowOrder int     `json:"showOrder"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	UseYN     string  `json:"useYn"`
}

func ToCarouselDTO(c *content.Carousel) CarouselDTO {
	return CarouselDTO{
		ID:        c.ID,
		Division:  c.Division,
		Title:     c.Title,
		ImageID:   c.ImageID,
		URL:       c.URL,
		ShowOrder: c.ShowOrder,
		StartDate: biztime.FormatPtr(c.StartDate),
		EndDate:   biztime.FormatPtr(c.EndDate),
		UseYN:     utils.YN(c.Active),
	}
}

type PublisherPromotionDTO struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	ShowOrder int     `json:"showOrder"`
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	UseYN     string  `json:"useYn"`
}

func ToPublisherPromotionDTO(p *content.PublisherPromotion) PublisherPromotionDTO {
	return PublisherPromotionDTO{
		ID:        p.ID,
		ProductID: p.ProductID,
		ShowOrder: p.ShowOrder,
		StartDate: biztime.FormatPtr(p.StartDate),
		EndDate:   biztime.FormatPtr(p.EndDate),
		UseYN:     utils.YN(p.Active),
	}
}

// PopupDTO is the public shape of the current popup.
type PopupDTO struct {
	ID        int64  `json:"id"`
	URL       string `json:"url"`
	ImagePath string `json:"imagePath"`
}

func ToPopupDTO(p *content.Popup) PopupDTO {
	return PopupDTO{ID: p.ID, URL: p.URL, ImagePath: p.ImagePath}
}

// PopupAdminDTO carries the scheduling columns for the admin screens.
type PopupAdminDTO struct {
	PopupDTO
	StartDate *string `json:"startDate"`
	EndDate   *string `json:"endDate"`
	UseYN     string  `json:"useYn"`
}

func ToPopupAdminDTO(p *content.Popup) PopupAdminDTO {
	return PopupAdminDTO{
		PopupDTO:  ToPopupDTO(p),
		StartDate: biztime.FormatPtr(p.StartDate),
		EndDate:   biztime.FormatPtr(p.EndDate),
		UseYN:     utils.YN(p.Active),
	}
}

type CommonCodeDTO struct {
	ID        int64   `json:"id"`
	CodeGroup string  `json:"codeGroup"`
	CodeKey   string  `json:"codeKey"`
	CodeValue string  `json:"codeValue"`
	CodeDesc  *string `json:"codeDesc"`
	UseYN     string  `json:"useYn"`
}

func ToCommonCodeDTO(c *content.CommonCode) CommonCodeDTO {
	return CommonCodeDTO{
		ID:        c.ID,
		CodeGroup: c.CodeGroup,
		CodeKey:   c.CodeKey,
		CodeValue: c.CodeValue,
		CodeDesc:  c.CodeDesc,
		UseYN:     utils.YN(c.Active),
	}
}

type EvaluationDTO struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productId"`
	EpisodeID   int64  `json:"episodeId"`
	UserID      int64  `json:"userId"`
	EvalCode    string `json:"evalCode"`
	CreatedDate string `json:"createdDate"`
}

func ToEvaluationDTO(e *content.Evaluation) EvaluationDTO {
	return EvaluationDTO{
		ID:          e.ID,
		ProductID:   e.ProductID,
		EpisodeID:   e.EpisodeID,
		UserID:      e.UserID,
		EvalCode:    e.EvalCode,
		CreatedDate: biztime.Format(e.CreatedDate),
	}
}

type ReviewDTO struct {
	ID          int64  `json:"id"`
	ProductID   int64  `json:"productId"`
	EpisodeID   *int64 `json:"episodeId"`
	UserID      int64  `json:"userId"`
	ReviewText  string `json:"reviewText"`
	OpenYN      string `json:"openYn"`
	CreatedDate string `json:"createdDate"`
}

func ToReviewDTO(r *content.Review) ReviewDTO {
	return ReviewDTO{
		ID:          r.ID,
		ProductID:   r.ProductID,
		EpisodeID:   r.EpisodeID,
		UserID:      r.UserID,
		ReviewText:  r.ReviewText,
		OpenYN:      utils.YN(r.Open),
		CreatedDate: biztime.Format(r.CreatedDate),
	}
}
