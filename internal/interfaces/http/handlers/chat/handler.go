package chat

import (
	"github.com/gin-gonic/gin"

	"likenovel/internal/application/chat/usecases"
	"likenovel/internal/interfaces/http/middleware"
	"likenovel/internal/shared/logger"
	"likenovel/internal/shared/utils"
)

type CreateRoomRequest struct {
	TargetUserID   int64   `json:"target_user_id" binding:"required,min=1"`
	DefaultMessage *string `json:"default_message"`
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

type ReportRoomRequest struct {
	ReportReason string  `json:"report_reason" binding:"required"`
	ReportDetail *string `json:"report_detail"`
}

type RoomCreatedResponse struct {
	RoomID int64 `json:"roomId"`
}

type UnreadCountResponse struct {
	UnreadCount int64 `json:"unread_count"`
}

type Handler struct {
	createRoomUC   usecases.CreateRoomExecutor
	sendMessageUC  usecases.SendMessageExecutor
	listRoomsUC    usecases.ListRoomsExecutor
	listMessagesUC usecases.ListMessagesExecutor
	leaveUC        usecases.LeaveRoomExecutor
	reportUC       usecases.ReportRoomExecutor
	unreadUC       usecases.UnreadCountExecutor
	logger         logger.Interface
}

func NewHandler(
	createRoomUC usecases.CreateRoomExecutor,
	sendMessageUC usecases.SendMessageExecutor,
	listRoomsUC usecases.ListRoomsExecutor,
	listMessagesUC usecases.ListMessagesExecutor,
	leaveUC usecases.LeaveRoomExecutor,
	reportUC usecases.ReportRoomExecutor,
	unreadUC usecases.UnreadCountExecutor,
	logger logger.Interface,
) *Handler {
	return &Handler{
		createRoomUC:   createRoomUC,
		sendMessageUC:  sendMessageUC,
		listRoomsUC:    listRoomsUC,
		listMessagesUC: listMessagesUC,
		leaveUC:        leaveUC,
		reportUC:       reportUC,
		unreadUC:       unreadUC,
		logger:         logger,
	}
}

// CreateRoom handles POST /messages/chat-rooms
func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	roomID, err := h.createRoomUC.Execute(c.Request.Context(), usecases.CreateRoomCommand{
		UserID:         middleware.Subject(c).UserID,
		TargetUserID:   req.TargetUserID,
		DefaultMessage: req.DefaultMessage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, RoomCreatedResponse{RoomID: roomID})
}

// SendMessage handles POST /messages/chat-rooms/:id/messages
func (h *Handler) SendMessage(c *gin.Context) {
	roomID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req SendMessageRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	msg, err := h.sendMessageUC.Execute(c.Request.Context(), usecases.SendMessageCommand{
		RoomID:  roomID,
		UserID:  middleware.Subject(c).UserID,
		Content: req.Content,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, msg)
}

// ListRooms handles GET /messages/chat-rooms?filter=&search=
func (h *Handler) ListRooms(c *gin.Context) {
	page := utils.ParsePagination(c)
	rooms, total, err := h.listRoomsUC.Execute(c.Request.Context(), usecases.ListRoomsQuery{
		UserID:       middleware.Subject(c).UserID,
		Filter:       c.Query("filter"),
		Search:       c.Query("search"),
		Page:         page.Page,
		CountPerPage: page.CountPerPage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Paged(c, rooms, total, page)
}

// ListMessages handles GET /messages/chat-rooms/:id/messages
func (h *Handler) ListMessages(c *gin.Context) {
	roomID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	page := utils.ParsePaginationWithDefault(c, 50)
	msgs, total, err := h.listMessagesUC.Execute(c.Request.Context(), usecases.ListMessagesQuery{
		RoomID:       roomID,
		UserID:       middleware.Subject(c).UserID,
		Page:         page.Page,
		CountPerPage: page.CountPerPage,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Paged(c, msgs, total, page)
}

// Leave handles POST /messages/chat-rooms/:id/leave
func (h *Handler) Leave(c *gin.Context) {
	roomID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	if err := h.leaveUC.Execute(c.Request.Context(), roomID, middleware.Subject(c).UserID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}

// Report handles POST /messages/chat-rooms/:id/report
func (h *Handler) Report(c *gin.Context) {
	roomID, err := utils.ParseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	var req ReportRoomRequest
	if err := utils.BindJSON(c, &req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.reportUC.Execute(c.Request.Context(), usecases.ReportRoomCommand{
		RoomID: roomID,
		UserID: middleware.Subject(c).UserID,
		Reason: req.ReportReason,
		Detail: req.ReportDetail,
	}); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Result(c, true)
}

// UnreadCount handles GET /messages/unread-count
func (h *Handler) UnreadCount(c *gin.Context) {
	n, err := h.unreadUC.Execute(c.Request.Context(), middleware.Subject(c).UserID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.Data(c, UnreadCountResponse{UnreadCount: n})
}
