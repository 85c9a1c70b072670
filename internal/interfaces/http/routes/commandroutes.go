package routes

import (
	"github.com/gin-gonic/gin"
)

// crudHandler is the mutation half of an admin-managed resource.
type crudHandler interface {
	Create(c *gin.Context)
	Update(c *gin.Context)
	Delete(c *gin.Context)
}

// SetupCommandRoutes registers the write side under /v1/command. Every command is rate limited.
func SetupCommandRoutes(engine *gin.Engine, config *RouteConfig) {
	login := config.AuthMiddleware.RequireLogin()
	permitted := config.PermissionMiddleware.RequirePermission()

	command := engine.Group("/v1/command")
	command.Use(config.RateLimitMiddleware.Limit())
	{
		command.POST("/admin/auth/login", config.UserHandler.AdminLogin)

		items := command.Group("/ticket-items", login, permitted)
		{
			items.POST("", config.TicketItemHandler.Create)
			items.POST("/:id/issuance/ticketbook", config.TicketItemHandler.IssueTicketbooks)
			items.POST("/:id/issuance/productbook", config.TicketItemHandler.IssueProductbooks)
			items.PUT("/:id", config.TicketItemHandler.Update)
			items.DELETE("/:id", config.TicketItemHandler.Delete)
		}

		ticketbooks := command.Group("/user-ticketbook", login)
		{
			ticketbooks.POST("", permitted, config.TicketbookHandler.Post)
			ticketbooks.POST("/:id/use", config.TicketbookHandler.Use)
			ticketbooks.PUT("/:id", permitted, config.TicketbookHandler.Update)
			ticketbooks.DELETE("/:id", permitted, config.TicketbookHandler.Delete)
		}

		productbooks := command.Group("/user-productbook", login)
		{
			productbooks.POST("", permitted, config.ProductbookHandler.Create)
			productbooks.POST("/:id/use", config.ProductbookHandler.Use)
			productbooks.PUT("/:id", permitted, config.ProductbookHandler.Update)
			productbooks.DELETE("/:id", permitted, config.ProductbookHandler.Delete)
		}

		giftbooks := command.Group("/user-giftbook", login)
		{
			giftbooks.POST("", permitted, config.GiftbookHandler.Create)
			giftbooks.POST("/:id/read", config.GiftbookHandler.Read)
			giftbooks.POST("/:id/receive", config.GiftbookHandler.Receive)
		}

		rooms := command.Group("/messages/chat-rooms", login)
		{
			rooms.POST("", config.ChatHandler.CreateRoom)
			rooms.POST("/:id/messages", config.ChatHandler.SendMessage)
			rooms.POST("/:id/leave", config.ChatHandler.Leave)
			rooms.POST("/:id/report", config.ChatHandler.Report)
		}

		command.POST("/files/presigned-upload", login, config.FileHandler.PresignUpload)
		command.POST("/authors/:profileId/sponsorships", login, config.PaymentHandler.Sponsor)
		command.POST("/payments/virtual-account/confirm", config.PaymentHandler.ConfirmVirtualAccount)

		setupCrud(command.Group("/notices", login, permitted), config.NoticeHandler)
		setupCrud(command.Group("/faqs", login, permitted), config.FaqHandler)
		setupCrud(command.Group("/carousels", login, permitted), config.CarouselHandler)
		setupCrud(command.Group("/popups", login, permitted), config.PopupHandler)
		setupCrud(command.Group("/common-codes", login, permitted), config.CommonCodeHandler)
		setupCrud(command.Group("/publisher-promotions", login, permitted), config.PublisherPromotionHandler)

		evaluations := command.Group("/evaluations", login)
		{
			evaluations.POST("", config.ContentHandler.CreateEvaluation)
			evaluations.PUT("/:id", config.EvaluationHandler.Update)
			evaluations.DELETE("/:id", config.EvaluationHandler.Delete)
		}

		reviews := command.Group("/reviews", login)
		{
			reviews.POST("", config.ContentHandler.CreateReview)
			reviews.PUT("/:id", config.ReviewHandler.Update)
			reviews.DELETE("/:id", config.ReviewHandler.Delete)
		}
	}
}

func setupCrud(group *gin.RouterGroup, h crudHandler) {
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
}
