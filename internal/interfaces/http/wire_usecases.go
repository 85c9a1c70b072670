package http

import (
	chatUsecases "likenovel/internal/application/chat/usecases"
	contentUsecases "likenovel/internal/application/content/usecases"
	fileUsecases "likenovel/internal/application/file/usecases"
	paymentUsecases "likenovel/internal/application/payment/usecases"
	ticketUsecases "likenovel/internal/application/ticket/usecases"
	userUsecases "likenovel/internal/application/user/usecases"
)

// allUseCases holds every use case the handlers depend on.
type allUseCases struct {
	// User
	getMe          *userUsecases.GetMeUseCase
	adminLogin     *userUsecases.AdminLoginUseCase
	resolveSubject *userUsecases.ResolveSubjectUseCase

	// Ticket items and benefit books
	createTicketItem  *ticketUsecases.CreateTicketItemUseCase
	getTicketItem     *ticketUsecases.GetTicketItemUseCase
	listTicketItems   *ticketUsecases.ListTicketItemsUseCase
	updateTicketItem  *ticketUsecases.UpdateTicketItemUseCase
	deleteTicketItem  *ticketUsecases.DeleteTicketItemUseCase
	issuance          *ticketUsecases.IssuanceUseCase
	postTicketbook    *ticketUsecases.PostTicketbookUseCase
	useTicketbook     *ticketUsecases.UseTicketbookUseCase
	listTicketbooks   *ticketUsecases.ListTicketbooksUseCase
	updateTicketbook  *ticketUsecases.UpdateTicketbookUseCase
	deleteTicketbook  *ticketUsecases.DeleteTicketbookUseCase
	createProductbook *ticketUsecases.CreateProductbookUseCase
	listProductbooks  *ticketUsecases.ListProductbooksUseCase
	useProductbook    *ticketUsecases.UseProductbookUseCase
	updateProductbook *ticketUsecases.UpdateProductbookUseCase
	deleteProductbook *ticketUsecases.DeleteProductbookUseCase
	createGiftbook    *ticketUsecases.CreateGiftbookUseCase
	listGiftbooks     *ticketUsecases.ListGiftbooksUseCase
	readGiftbook      *ticketUsecases.ReadGiftbookUseCase
	receiveGiftbook   *ticketUsecases.ReceiveGiftbookUseCase

	// Chat
	createRoom   *chatUsecases.CreateRoomUseCase
	sendMessage  *chatUsecases.SendMessageUseCase
	listRooms    *chatUsecases.ListRoomsUseCase
	listMessages *chatUsecases.ListMessagesUseCase
	leaveRoom    *chatUsecases.LeaveRoomUseCase
	reportRoom   *chatUsecases.ReportRoomUseCase
	unreadCount  *chatUsecases.UnreadCountUseCase

	// File and payment
	presignUpload         *fileUsecases.PresignUploadUseCase
	sponsorAuthor         *paymentUsecases.SponsorAuthorUseCase
	confirmVirtualAccount *paymentUsecases.ConfirmVirtualAccountUseCase

	// Content
	notices             *contentUsecases.NoticeAdminUseCase
	faqs                *contentUsecases.FaqUseCase
	carousels           *contentUsecases.CarouselUseCase
	publisherPromotions *contentUsecases.PublisherPromotionUseCase
	popups              *contentUsecases.PopupAdminUseCase
	commonCodes         *contentUsecases.CommonCodeUseCase
	evaluations         *contentUsecases.EvaluationUseCase
	reviews             *contentUsecases.ReviewUseCase
	getNotice           *contentUsecases.GetNoticeUseCase
	currentPopup        *contentUsecases.CurrentPopupUseCase
	getRates            *contentUsecases.GetRatesUseCase
	createEvaluation    *contentUsecases.CreateEvaluationUseCase
}

// initUseCases wires use cases to repositories and shared services.
func (c *Container) initUseCases() {
	r := c.repos
	infra := c.infra
	log := c.log
	tx := infra.txMgr

	postTicketbook := ticketUsecases.NewPostTicketbookUseCase(r.ticketbookRepo, infra.recorder, infra.notifier, tx, log)

	c.ucs = &allUseCases{
		getMe:          userUsecases.NewGetMeUseCase(r.userRepo),
		adminLogin:     userUsecases.NewAdminLoginUseCase(r.userRepo, infra.hasher, infra.adminTokens, log),
		resolveSubject: userUsecases.NewResolveSubjectUseCase(r.userRepo, log),

		createTicketItem:  ticketUsecases.NewCreateTicketItemUseCase(r.ticketItemRepo, log),
		getTicketItem:     ticketUsecases.NewGetTicketItemUseCase(r.ticketItemRepo),
		listTicketItems:   ticketUsecases.NewListTicketItemsUseCase(r.ticketItemRepo),
		updateTicketItem:  ticketUsecases.NewUpdateTicketItemUseCase(r.ticketItemRepo, log),
		deleteTicketItem:  ticketUsecases.NewDeleteTicketItemUseCase(r.ticketItemRepo, log),
		issuance:          ticketUsecases.NewIssuanceUseCase(r.ticketItemRepo, r.productbookRepo, postTicketbook, infra.notifier, tx, log),
		postTicketbook:    postTicketbook,
		useTicketbook:     ticketUsecases.NewUseTicketbookUseCase(r.ticketbookRepo, tx, log),
		listTicketbooks:   ticketUsecases.NewListTicketbooksUseCase(r.ticketbookRepo),
		updateTicketbook:  ticketUsecases.NewUpdateTicketbookUseCase(r.ticketbookRepo, log),
		deleteTicketbook:  ticketUsecases.NewDeleteTicketbookUseCase(r.ticketbookRepo, log),
		createProductbook: ticketUsecases.NewCreateProductbookUseCase(r.productbookRepo, log),
		listProductbooks:  ticketUsecases.NewListProductbooksUseCase(r.productbookRepo),
		useProductbook:    ticketUsecases.NewUseProductbookUseCase(r.productbookRepo, r.episodeRepo, tx, log),
		updateProductbook: ticketUsecases.NewUpdateProductbookUseCase(r.productbookRepo, log),
		deleteProductbook: ticketUsecases.NewDeleteProductbookUseCase(r.productbookRepo, log),
		createGiftbook:    ticketUsecases.NewCreateGiftbookUseCase(r.giftbookRepo, infra.notifier, log),
		listGiftbooks:     ticketUsecases.NewListGiftbooksUseCase(r.giftbookRepo),
		readGiftbook:      ticketUsecases.NewReadGiftbookUseCase(r.giftbookRepo),
		receiveGiftbook:   ticketUsecases.NewReceiveGiftbookUseCase(r.giftbookRepo, r.productbookRepo, tx, log),

		createRoom:   chatUsecases.NewCreateRoomUseCase(r.chatRepo, r.userRepo, infra.markdown, tx, log),
		sendMessage:  chatUsecases.NewSendMessageUseCase(r.chatRepo, infra.markdown, tx, log),
		listRooms:    chatUsecases.NewListRoomsUseCase(r.chatRepo),
		listMessages: chatUsecases.NewListMessagesUseCase(r.chatRepo, tx, log),
		leaveRoom:    chatUsecases.NewLeaveRoomUseCase(r.chatRepo, log),
		reportRoom:   chatUsecases.NewReportRoomUseCase(r.chatRepo, log),
		unreadCount:  chatUsecases.NewUnreadCountUseCase(r.chatRepo),

		presignUpload:         fileUsecases.NewPresignUploadUseCase(r.fileRepo, infra.presigner, c.cfg.Storage.CDNURL, tx, log),
		sponsorAuthor:         paymentUsecases.NewSponsorAuthorUseCase(r.userRepo, r.cashbookRepo, r.sponsorshipRepo, infra.recorder, tx, log),
		confirmVirtualAccount: paymentUsecases.NewConfirmVirtualAccountUseCase(r.orderRepo, infra.recorder, tx, c.cfg.Payment.WebhookSecret, log),

		notices:             contentUsecases.NewNoticeAdminUseCase(r.noticeRepo, tx, log),
		faqs:                contentUsecases.NewFaqUseCase(r.faqRepo, infra.markdown, tx, log),
		carousels:           contentUsecases.NewCarouselUseCase(r.carouselRepo, tx, log),
		publisherPromotions: contentUsecases.NewPublisherPromotionUseCase(r.publisherPromotionRepo, tx, log),
		popups:              contentUsecases.NewPopupAdminUseCase(r.popupRepo, tx, log),
		commonCodes:         contentUsecases.NewCommonCodeUseCase(r.commonCodeRepo, tx, log),
		evaluations:         contentUsecases.NewEvaluationUseCase(r.evaluationRepo, tx, log),
		reviews:             contentUsecases.NewReviewUseCase(r.reviewRepo, tx, log),
		getNotice:           contentUsecases.NewGetNoticeUseCase(r.noticeRepo, infra.markdown, tx, log),
		currentPopup:        contentUsecases.NewCurrentPopupUseCase(r.popupRepo),
		getRates:            contentUsecases.NewGetRatesUseCase(r.commonCodeRepo, log),
		createEvaluation:    contentUsecases.NewCreateEvaluationUseCase(r.evaluationRepo, tx, log),
	}
}
