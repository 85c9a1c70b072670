package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupQueryRoutes registers the read side under /v1/query.
func SetupQueryRoutes(engine *gin.Engine, config *RouteConfig) {
	login := config.AuthMiddleware.RequireLogin()
	permitted := config.PermissionMiddleware.RequirePermission()

	query := engine.Group("/v1/query")
	{
		query.GET("/users/me", login, config.UserHandler.GetMe)

		// Admin catalog
		query.GET("/ticket-items", login, permitted, config.TicketItemHandler.List)
		query.GET("/ticket-items/:id", login, permitted, config.TicketItemHandler.Get)

		// Caller's own passes
		query.GET("/user-ticketbooks", login, config.TicketbookHandler.ListMine)
		query.GET("/user-productbooks", login, config.ProductbookHandler.ListMine)
		query.GET("/user-giftbooks", login, config.GiftbookHandler.ListMine)

		// Chat
		query.GET("/messages/chat-rooms", login, config.ChatHandler.ListRooms)
		query.GET("/messages/chat-rooms/:id/messages", login, config.ChatHandler.ListMessages)
		query.GET("/messages/unread-count", login, config.ChatHandler.UnreadCount)

		// Content
		query.GET("/notices", config.NoticeHandler.List)
		query.GET("/notices/:id", config.ContentHandler.GetNotice)
		query.GET("/faqs", config.FaqHandler.List)
		query.GET("/faqs/:id", config.FaqHandler.Get)
		query.GET("/carousels", config.CarouselHandler.List)
		query.GET("/carousels/:id", config.CarouselHandler.Get)
		query.GET("/publisher-promotions", config.PublisherPromotionHandler.List)
		query.GET("/publisher-promotions/:id", config.PublisherPromotionHandler.Get)
		query.GET("/popup", config.ContentHandler.CurrentPopup)
		query.GET("/popups", login, permitted, config.PopupHandler.List)
		query.GET("/popups/:id", login, permitted, config.PopupHandler.Get)
		query.GET("/common-codes", config.CommonCodeHandler.List)
		query.GET("/common-codes/rates", config.ContentHandler.Rates)
		query.GET("/common-codes/:id", config.CommonCodeHandler.Get)
		query.GET("/evaluations", config.EvaluationHandler.List)
		query.GET("/evaluations/:id", config.EvaluationHandler.Get)
		query.GET("/reviews", config.ReviewHandler.List)
		query.GET("/reviews/:id", config.ReviewHandler.Get)
	}
}
