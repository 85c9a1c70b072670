package errors

import "net/http"

// Message catalog. Codes named in the API contract are kept verbatim.
var (
	ErrLoginRequired      = New(http.StatusUnauthorized, CodeUnauthorized, "LOGIN_REQUIRED")
	ErrExpiredAccessToken = New(http.StatusUnauthorized, CodeUnauthorized, "EXPIRED_ACCESS_TOKEN")
	ErrUserNotFound       = New(http.StatusUnauthorized, CodeUnauthorized, "NOT_FOUND_USER")
	ErrInvalidCredentials = New(http.StatusUnauthorized, CodeUnauthorized, "INVALID_CREDENTIALS")

	ErrPermissionDenied = NewForbiddenError("PERMISSION_DENIED")

	ErrNotFoundTicketbook         = NewNotFoundError("NOT_FOUND_TICKETBOOK")
	ErrForbiddenTicketbookOwner   = NewForbiddenError("FORBIDDEN_NOT_OWNER_OF_TICKETBOOK")
	ErrAlreadyUsedTicketbook      = NewBadRequestError("ALREADY_USED_TICKETBOOK")
	ErrNotFoundProductbook        = NewNotFoundError("NOT_FOUND_PRODUCTBOOK")
	ErrForbiddenProductbookOwner  = NewForbiddenError("FORBIDDEN_NOT_OWNER_OF_PRODUCTBOOK")
	ErrAlreadyUsedProductbook     = NewBadRequestError("ALREADY_USED_PRODUCTBOOK")
	ErrExpiredProductbook         = NewBadRequestError("EXPIRED_PRODUCTBOOK")
	ErrProductbookScopeMismatch   = NewBadRequestError("PRODUCTBOOK_NOT_APPLICABLE_TO_EPISODE")
	ErrNotFoundTicketItem         = NewNotFoundError("NOT_FOUND_TICKET_ITEM")
	ErrTicketItemProductNotTarget = NewBadRequestError("PRODUCT_NOT_IN_TICKET_TARGET")
	ErrNotFoundEpisode            = NewNotFoundError("NOT_FOUND_EPISODE")

	ErrGiftNotFound        = NewNotFoundError("Not Found")
	ErrGiftForbidden       = NewForbiddenError("본인의 선물만 받을 수 있습니다.")
	ErrGiftAlreadyReceived = NewBadRequestError("이미 수령한 선물입니다.")
	ErrGiftExpired         = NewBadRequestError("선물의 유효기간(7일)이 만료되었습니다.")

	ErrChatRoomNotFound   = NewNotFoundError("NOT_FOUND_CHAT_ROOM")
	ErrChatNotParticipant = NewForbiddenError("FORBIDDEN_NOT_PARTICIPANT_OF_CHAT_ROOM")
	ErrChatTargetNotFound = NewNotFoundError("NOT_FOUND_TARGET_USER")
	ErrChatSelfTarget     = NewBadRequestError("자기 자신과는 대화할 수 없습니다.")
	ErrChatEmptyMessage   = NewValidationError("메시지 내용을 입력해주세요.")
	ErrChatMessageTooLong = NewValidationError("메시지는 2000자 이하로 입력해주세요.")
	ErrChatInvalidReason  = NewValidationError("신고 사유가 올바르지 않습니다.")
	ErrChatInvalidFilter  = NewValidationError("filter 값이 올바르지 않습니다.")

	ErrAuthorNotFound       = NewNotFoundError("NOT_FOUND_AUTHOR")
	ErrProfileNotFound      = NewNotFoundError("NOT_FOUND_PROFILE")
	ErrInsufficientBalance  = NewBadRequestError("insufficient_balance")
	ErrSelfSponsorship      = NewBadRequestError("자신에게는 후원할 수 없습니다.")
	ErrInvalidWebhookSecret = NewForbiddenError("INVALID_WEBHOOK_SECRET")

	ErrInvalidGroupType = NewValidationError("group_type 값이 올바르지 않습니다.")
	ErrPresignFailed    = NewUnavailableError("파일 업로드 URL 생성에 실패했습니다.")

	ErrNotOwner = NewForbiddenError("FORBIDDEN_NOT_OWNER")

	ErrNotFoundNotice             = NewNotFoundError("NOT_FOUND_NOTICE")
	ErrNotFoundFaq                = NewNotFoundError("NOT_FOUND_FAQ")
	ErrNotFoundCarousel           = NewNotFoundError("NOT_FOUND_CAROUSEL")
	ErrNotFoundPublisherPromotion = NewNotFoundError("NOT_FOUND_PUBLISHER_PROMOTION")
	ErrNotFoundPopup              = NewNotFoundError("NOT_FOUND_POPUP")
	ErrNotFoundCommonCode         = NewNotFoundError("NOT_FOUND_COMMON_CODE")
	ErrNotFoundEvaluation         = NewNotFoundError("NOT_FOUND_EVALUATION")
	ErrNotFoundReview             = NewNotFoundError("NOT_FOUND_REVIEW")
	ErrDuplicateEvaluation        = NewBadRequestError("이미 평가한 회차입니다.")

	ErrTooManyRequests = NewTooManyRequestsError("TOO_MANY_REQUESTS")
)
