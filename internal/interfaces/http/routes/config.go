package routes

import (
	chathandlers "likenovel/internal/interfaces/http/handlers/chat"
	contenthandlers "likenovel/internal/interfaces/http/handlers/content"
	filehandlers "likenovel/internal/interfaces/http/handlers/file"
	paymenthandlers "likenovel/internal/interfaces/http/handlers/payment"
	tickethandlers "likenovel/internal/interfaces/http/handlers/ticket"
	userhandlers "likenovel/internal/interfaces/http/handlers/user"
	"likenovel/internal/interfaces/http/middleware"
)

// RouteConfig carries the handlers and guards shared by the query and command tables.
type RouteConfig struct {
	AuthMiddleware       *middleware.AuthMiddleware
	PermissionMiddleware *middleware.PermissionMiddleware
	RateLimitMiddleware  *middleware.RateLimitMiddleware

	UserHandler        *userhandlers.Handler
	TicketItemHandler  *tickethandlers.ItemHandler
	TicketbookHandler  *tickethandlers.TicketbookHandler
	ProductbookHandler *tickethandlers.ProductbookHandler
	GiftbookHandler    *tickethandlers.GiftbookHandler
	ChatHandler        *chathandlers.Handler
	FileHandler        *filehandlers.Handler
	PaymentHandler     *paymenthandlers.Handler

	ContentHandler            *contenthandlers.Handler
	NoticeHandler             *contenthandlers.NoticeHandler
	FaqHandler                *contenthandlers.FaqHandler
	CarouselHandler           *contenthandlers.CarouselHandler
	PublisherPromotionHandler *contenthandlers.PublisherPromotionHandler
	PopupHandler              *contenthandlers.PopupHandler
	CommonCodeHandler         *contenthandlers.CommonCodeHandler
	EvaluationHandler         *contenthandlers.EvaluationHandler
	ReviewHandler             *contenthandlers.ReviewHandler
}
