package http

import (
	chatHandlers "likenovel/internal/interfaces/http/handlers/chat"
	contentHandlers "likenovel/internal/interfaces/http/handlers/content"
	fileHandlers "likenovel/internal/interfaces/http/handlers/file"
	paymentHandlers "likenovel/internal/interfaces/http/handlers/payment"
	ticketHandlers "likenovel/internal/interfaces/http/handlers/ticket"
	userHandlers "likenovel/internal/interfaces/http/handlers/user"
	"likenovel/internal/interfaces/http/routes"
)

// allHandlers holds the HTTP handlers registered by the route tables.
type allHandlers struct {
	user        *userHandlers.Handler
	ticketItem  *ticketHandlers.ItemHandler
	ticketbook  *ticketHandlers.TicketbookHandler
	productbook *ticketHandlers.ProductbookHandler
	giftbook    *ticketHandlers.GiftbookHandler
	chat        *chatHandlers.Handler
	file        *fileHandlers.Handler
	payment     *paymentHandlers.Handler

	content            *contentHandlers.Handler
	notice             *contentHandlers.NoticeHandler
	faq                *contentHandlers.FaqHandler
	carousel           *contentHandlers.CarouselHandler
	publisherPromotion *contentHandlers.PublisherPromotionHandler
	popup              *contentHandlers.PopupHandler
	commonCode         *contentHandlers.CommonCodeHandler
	evaluation         *contentHandlers.EvaluationHandler
	review             *contentHandlers.ReviewHandler
}

func (c *Container) initHandlers() {
	u := c.ucs
	log := c.log

	c.hdlrs = &allHandlers{
		user:        userHandlers.NewHandler(u.getMe, u.adminLogin, log),
		ticketItem:  ticketHandlers.NewItemHandler(u.createTicketItem, u.getTicketItem, u.listTicketItems, u.updateTicketItem, u.deleteTicketItem, u.issuance, log),
		ticketbook:  ticketHandlers.NewTicketbookHandler(u.postTicketbook, u.useTicketbook, u.listTicketbooks, u.updateTicketbook, u.deleteTicketbook, log),
		productbook: ticketHandlers.NewProductbookHandler(u.createProductbook, u.listProductbooks, u.useProductbook, u.updateProductbook, u.deleteProductbook, log),
		giftbook:    ticketHandlers.NewGiftbookHandler(u.createGiftbook, u.listGiftbooks, u.readGiftbook, u.receiveGiftbook, log),
		chat:        chatHandlers.NewHandler(u.createRoom, u.sendMessage, u.listRooms, u.listMessages, u.leaveRoom, u.reportRoom, u.unreadCount, log),
		file:        fileHandlers.NewHandler(u.presignUpload, log),
		payment:     paymentHandlers.NewHandler(u.sponsorAuthor, u.confirmVirtualAccount, log),

		content:            contentHandlers.NewHandler(u.getNotice, u.currentPopup, u.getRates, u.createEvaluation, u.reviews, log),
		notice:             contentHandlers.NewNoticeHandler(u.notices, log),
		faq:                contentHandlers.NewFaqHandler(u.faqs, log),
		carousel:           contentHandlers.NewCarouselHandler(u.carousels, log),
		publisherPromotion: contentHandlers.NewPublisherPromotionHandler(u.publisherPromotions, log),
		popup:              contentHandlers.NewPopupHandler(u.popups, log),
		commonCode:         contentHandlers.NewCommonCodeHandler(u.commonCodes, log),
		evaluation:         contentHandlers.NewEvaluationHandler(u.evaluations, log),
		review:             contentHandlers.NewReviewHandler(u.reviews, log),
	}
}

// routeConfig exposes handlers and guards to the route tables.
func (c *Container) routeConfig() *routes.RouteConfig {
	h := c.hdlrs
	return &routes.RouteConfig{
		AuthMiddleware:       c.authMiddleware,
		PermissionMiddleware: c.permissionMiddleware,
		RateLimitMiddleware:  c.rateLimitMiddleware,

		UserHandler:        h.user,
		TicketItemHandler:  h.ticketItem,
		TicketbookHandler:  h.ticketbook,
		ProductbookHandler: h.productbook,
		GiftbookHandler:    h.giftbook,
		ChatHandler:        h.chat,
		FileHandler:        h.file,
		PaymentHandler:     h.payment,

		ContentHandler:            h.content,
		NoticeHandler:             h.notice,
		FaqHandler:                h.faq,
		CarouselHandler:           h.carousel,
		PublisherPromotionHandler: h.publisherPromotion,
		PopupHandler:              h.popup,
		CommonCodeHandler:         h.commonCode,
		EvaluationHandler:         h.evaluation,
		ReviewHandler:             h.review,
	}
}
