package usecases

import (
	"likenovel/internal/application/content/dto"
	"likenovel/internal/domain/content"
	"likenovel/internal/shared/db"
	"likenovel/internal/shared/errors"
	"likenovel/internal/shared/logger"
)

type (
	FaqUseCase                = ResourceUseCase[content.Faq, dto.FaqDTO]
	CarouselUseCase           = ResourceUseCase[content.Carousel, dto.CarouselDTO]
	PublisherPromotionUseCase = ResourceUseCase[content.PublisherPromotion, dto.PublisherPromotionDTO]
	PopupAdminUseCase         = ResourceUseCase[content.Popup, dto.PopupAdminDTO]
	CommonCodeUseCase         = ResourceUseCase[content.CommonCode, dto.CommonCodeDTO]
	NoticeAdminUseCase        = ResourceUseCase[content.Notice, dto.NoticeDTO]
	EvaluationUseCase         = OwnedResourceUseCase[content.Evaluation, dto.EvaluationDTO]
	ReviewUseCase             = OwnedResourceUseCase[content.Review, dto.ReviewDTO]
)

func NewNoticeAdminUseCase(store content.Store[content.Notice], txMgr db.Runner, log logger.Interface) *NoticeAdminUseCase {
	return NewResourceUseCase("notice", store, dto.ToNoticeDTO, errors.ErrNotFoundNotice, txMgr, log)
}

// NewFaqUseCase renders contentHtml on detail reads.
func NewFaqUseCase(store content.Store[content.Faq], renderer Renderer, txMgr db.Runner, log logger.Interface) *FaqUseCase {
	uc := NewResourceUseCase("faq", store, dto.ToFaqDTO, errors.ErrNotFoundFaq, txMgr, log)
	uc.detail = func(d dto.FaqDTO) dto.FaqDTO {
		d.ContentHTML = renderHTML(renderer, log, d.Content)
		return d
	}
	return uc
}

func NewCarouselUseCase(store content.Store[content.Carousel], txMgr db.Runner, log logger.Interface) *CarouselUseCase {
	return NewResourceUseCase("carousel", store, dto.ToCarouselDTO, errors.ErrNotFoundCarousel, txMgr, log)
}

func NewPublisherPromotionUseCase(store content.Store[content.PublisherPromotion], txMgr db.Runner, log logger.Interface) *PublisherPromotionUseCase {
	return NewResourceUseCase("publisher promotion", store, dto.ToPublisherPromotionDTO, errors.ErrNotFoundPublisherPromotion, txMgr, log)
}

func NewPopupAdminUseCase(store content.Store[content.Popup], txMgr db.Runner, log logger.Interface) *PopupAdminUseCase {
	return NewResourceUseCase("popup", store, dto.ToPopupAdminDTO, errors.ErrNotFoundPopup, txMgr, log)
}

func NewCommonCodeUseCase(store content.Store[content.CommonCode], txMgr db.Runner, log logger.Interface) *CommonCodeUseCase {
	return NewResourceUseCase("common code", store, dto.ToCommonCodeDTO, errors.ErrNotFoundCommonCode, txMgr, log)
}

func NewEvaluationUseCase(store content.Store[content.Evaluation], txMgr db.Runner, log logger.Interface) *EvaluationUseCase {
	base := NewResourceUseCase("evaluation", store, dto.ToEvaluationDTO, errors.ErrNotFoundEvaluation, txMgr, log)
	return NewOwnedResourceUseCase(base, func(e *content.Evaluation) int64 { return e.UserID })
}

func NewReviewUseCase(store content.Store[content.Review], txMgr db.Runner, log logger.Interface) *ReviewUseCase {
	base := NewResourceUseCase("review", store, dto.ToReviewDTO, errors.ErrNotFoundReview, txMgr, log)
	return NewOwnedResourceUseCase(base, func(r *content.Review) int64 { return r.UserID })
}
