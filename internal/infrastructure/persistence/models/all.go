package models

// All lists every table model, in dependency-free order, for AutoMigrate.
func All() []interface{} {
	return []interface{}{
		&UserModel{},
		&UserProfileModel{},
		&UserProfileApplyModel{},
		&ProductModel{},
		&ProductEpisodeModel{},
		&ProductEvaluationModel{},
		&ProductReviewModel{},
		&TicketItemModel{},
		&UserTicketbookModel{},
		&UserProductbookModel{},
		&UserGiftbookModel{},
		&ChatRoomModel{},
		&ChatRoomMemberModel{},
		&ChatMessageModel{},
		&ChatRoomReportModel{},
		&NoticeModel{},
		&FaqModel{},
		&CarouselModel{},
		&PublisherPromotionModel{},
		&PopupModel{},
		&CommonCodeModel{},
		&CommonFileModel{},
		&CommonFileItemModel{},
		&UserCashbookModel{},
		&AuthorSponsorshipModel{},
		&StoreOrderModel{},
		&SiteStatisticsLogModel{},
		&PaymentStatisticsLogModel{},
		&UserNotificationModel{},
		&UserNotificationItemModel{},
	}
}
