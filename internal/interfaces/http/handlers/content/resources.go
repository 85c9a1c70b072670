package content

import (
	"likenovel/internal/application/content/dto"
	"likenovel/internal/application/content/usecases"
	"likenovel/internal/domain/content"
	"likenovel/internal/shared/logger"
)

type (
	NoticeHandler             = ResourceHandler[content.Notice, dto.NoticeDTO, NoticeRequest]
	FaqHandler                = ResourceHandler[content.Faq, dto.FaqDTO, FaqRequest]
	CarouselHandler           = ResourceHandler[content.Carousel, dto.CarouselDTO, CarouselRequest]
	PublisherPromotionHandler = ResourceHandler[content.PublisherPromotion, dto.PublisherPromotionDTO, PublisherPromotionRequest]
	PopupHandler              = ResourceHandler[content.Popup, dto.PopupAdminDTO, PopupRequest]
	CommonCodeHandler         = ResourceHandler[content.CommonCode, dto.CommonCodeDTO, CommonCodeRequest]
	EvaluationHandler         = OwnedHandler[dto.EvaluationDTO]
	ReviewHandler             = OwnedHandler[dto.ReviewDTO]
)

func NewNoticeHandler(uc usecases.ResourceExecutor[content.Notice, dto.NoticeDTO], log logger.Interface) *NoticeHandler {
	return NewResourceHandler[content.Notice, dto.NoticeDTO, NoticeRequest]("notice", uc, log)
}

func NewFaqHandler(uc usecases.ResourceExecutor[content.Faq, dto.FaqDTO], log logger.Interface) *FaqHandler {
	return NewResourceHandler[content.Faq, dto.FaqDTO, FaqRequest]("faq", uc, log)
}

func NewCarouselHandler(uc usecases.ResourceExecutor[content.Carousel, dto.CarouselDTO], log logger.Interface) *CarouselHandler {
	return NewResourceHandler[content.Carousel, dto.CarouselDTO, CarouselRequest]("carousel", uc, log)
}

func NewPublisherPromotionHandler(uc usecases.ResourceExecutor[content.PublisherPromotion, dto.PublisherPromotionDTO], log logger.Interface) *PublisherPromotionHandler {
	return NewResourceHandler[content.PublisherPromotion, dto.PublisherPromotionDTO, PublisherPromotionRequest]("publisher promotion", uc, log)
}

func NewPopupHandler(uc usecases.ResourceExecutor[content.Popup, dto.PopupAdminDTO], log logger.Interface) *PopupHandler {
	return NewResourceHandler[content.Popup, dto.PopupAdminDTO, PopupRequest]("popup", uc, log)
}

func NewCommonCodeHandler(uc usecases.ResourceExecutor[content.CommonCode, dto.CommonCodeDTO], log logger.Interface) *CommonCodeHandler {
	return NewResourceHandler[content.CommonCode, dto.CommonCodeDTO, CommonCodeRequest]("common code", uc, log)
}

func NewEvaluationHandler(uc usecases.OwnedResourceExecutor[dto.EvaluationDTO], log logger.Interface) *EvaluationHandler {
	return NewOwnedHandler[dto.EvaluationDTO]("evaluation", uc, log)
}

func NewReviewHandler(uc usecases.OwnedResourceExecutor[dto.ReviewDTO], log logger.Interface) *ReviewHandler {
	return NewOwnedHandler[dto.ReviewDTO]("review", uc, log)
}
