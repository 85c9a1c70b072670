package http

import (
	"gorm.io/gorm"

	"likenovel/internal/domain/chat"
	"likenovel/internal/domain/content"
	"likenovel/internal/domain/file"
	"likenovel/internal/domain/ticket"
	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/infrastructure/repository"
)

// repositories holds all repository instances used by the application.
type repositories struct {
	userRepo         *repository.UserRepository
	episodeRepo      *repository.EpisodeRepository
	ticketItemRepo   ticket.ItemRepository
	ticketbookRepo   ticket.TicketbookRepository
	productbookRepo  ticket.ProductbookRepository
	giftbookRepo     ticket.GiftbookRepository
	chatRepo         chat.Repository
	fileRepo         file.Repository
	cashbookRepo     *repository.CashbookRepository
	sponsorshipRepo  *repository.SponsorshipRepository
	orderRepo        *repository.StoreOrderRepository
	statisticsRepo   *repository.StatisticsRepository
	notificationRepo *repository.NotificationRepository

	noticeRepo             *repository.NoticeRepository
	faqRepo                content.Store[content.Faq]
	carouselRepo           content.Store[content.Carousel]
	publisherPromotionRepo content.Store[content.PublisherPromotion]
	popupRepo              *repository.PopupRepository
	commonCodeRepo         *repository.CommonCodeRepository
	evaluationRepo         *repository.EvaluationRepository
	reviewRepo             *repository.ContentStore[content.Review, models.ProductReviewModel]
}

// newRepositories creates all repository instances from the database connection.
func newRepositories(db *gorm.DB) *repositories {
	return &repositories{
		userRepo:         repository.NewUserRepository(db),
		episodeRepo:      repository.NewEpisodeRepository(db),
		ticketItemRepo:   repository.NewTicketItemRepository(db),
		ticketbookRepo:   repository.NewUserTicketbookRepository(db),
		productbookRepo:  repository.NewUserProductbookRepository(db),
		giftbookRepo:     repository.NewUserGiftbookRepository(db),
		chatRepo:         repository.NewChatRepository(db),
		fileRepo:         repository.NewFileRepository(db),
		cashbookRepo:     repository.NewCashbookRepository(db),
		sponsorshipRepo:  repository.NewSponsorshipRepository(db),
		orderRepo:        repository.NewStoreOrderRepository(db),
		statisticsRepo:   repository.NewStatisticsRepository(db),
		notificationRepo: repository.NewNotificationRepository(db),

		noticeRepo:             repository.NewNoticeRepository(db),
		faqRepo:                repository.NewFaqRepository(db),
		carouselRepo:           repository.NewCarouselRepository(db),
		publisherPromotionRepo: repository.NewPublisherPromotionRepository(db),
		popupRepo:              repository.NewPopupRepository(db),
		commonCodeRepo:         repository.NewCommonCodeRepository(db),
		evaluationRepo:         repository.NewEvaluationRepository(db),
		reviewRepo:             repository.NewReviewRepository(db),
	}
}
