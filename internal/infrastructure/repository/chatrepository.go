package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"

	"likenovel/internal/domain/chat"
	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/constants"
	"likenovel/internal/shared/db"
	apperrors "likenovel/internal/shared/errors"
)

type ChatRepository struct {
	db *gorm.DB
}

func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// CreateRoom inserts the room and both members as active.
func (r *ChatRepository) CreateRoom(ctx context.Context, creatorID, targetID int64, now time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	room := &models.ChatRoomModel{
		CreatorUserID: creatorID,
		AuditColumns:  models.NewAuditColumns(creatorID, now),
	}
	if err := tx.Create(room).Error; err != nil {
		return 0, wrapDB("create chat room", err)
	}

	members := []models.ChatRoomMemberModel{
		{RoomID: room.RoomID, UserID: creatorID, IsActive: constants.FlagYes, AuditColumns: models.NewAuditColumns(creatorID, now)},
		{RoomID: room.RoomID, UserID: targetID, IsActive: constants.FlagYes, AuditColumns: models.NewAuditColumns(creatorID, now)},
	}
	if err := tx.Create(&members).Error; err != nil {
		return 0, wrapDB("create chat room members", err)
	}
	return room.RoomID, nil
}

func toMember(m *models.ChatRoomMemberModel) *chat.Member {
	return &chat.Member{RoomID: m.RoomID, UserID: m.UserID, IsActive: m.IsActive == constants.FlagYes}
}

func toMessage(m *models.ChatMessageModel) *chat.Message {
	return &chat.Message{
		MessageID:    m.MessageID,
		RoomID:       m.RoomID,
		SenderUserID: m.SenderUserID,
		Content:      m.Content,
		IsRead:       m.IsRead == constants.FlagYes,
		CreatedDate:  m.CreatedDate,
	}
}

func (r *ChatRepository) GetMember(ctx context.Context, roomID, userID int64) (*chat.Member, error) {
	var model models.ChatRoomMemberModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("room_id = ? AND user_id = ?", roomID, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDB("get chat member", err)
	}
	return toMember(&model), nil
}

func (r *ChatRepository) Counterpart(ctx context.Context, roomID, userID int64) (*chat.Member, error) {
	var model models.ChatRoomMemberModel
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("room_id = ? AND user_id <> ?", roomID, userID).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, wrapDB("get chat counterpart", err)
	}
	return toMember(&model), nil
}

func (r *ChatRepository) RoomExists(ctx context.Context, roomID int64) (bool, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Model(&models.ChatRoomModel{}).Where("room_id = ?", roomID).Count(&count).Error; err != nil {
		return false, wrapDB("check chat room", err)
	}
	return count > 0, nil
}

func (r *ChatRepository) AppendMessage(ctx context.Context, roomID, senderID int64, content string, now time.Time) (*chat.Message, error) {
	model := &models.ChatMessageModel{
		RoomID:       roomID,
		SenderUserID: senderID,
		Content:      content,
		IsRead:       constants.FlagNo,
		CreatedDate:  now,
		UpdatedDate:  now,
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Create(model).Error; err != nil {
		return nil, wrapDB("append chat message", err)
	}
	return toMessage(model), nil
}

func (r *ChatRepository) SetActive(ctx context.Context, roomID, userID int64, active bool, now time.Time) error {
	flag := constants.FlagNo
	if active {
		flag = constants.FlagYes
	}
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ChatRoomMemberModel{}).
		Where("room_id = ? AND user_id = ?", roomID, userID).
		Updates(map[string]interface{}{
			"is_active":    flag,
			"updated_id":   userID,
			"updated_date": now,
		})
	if result.Error != nil {
		return wrapDB("update chat member", result.Error)
	}
	return nil
}

// chatRoomRow is one scanned row of the room list.
type chatRoomRow struct {
	RoomID                int64
	CounterpartUserID     int64
	CounterpartNickname   *string
	CounterpartProfileImg *string
	InterestBadgePath     *string
	EventBadgePath        *string
	UnreadMessageCount    int64
	IsActive              string
}

const unreadFromCounterpart = "SELECT COUNT(*) FROM tb_chat_message um WHERE um.room_id = m.room_id AND um.sender_user_id <> m.user_id AND um.is_read = 'N'"

// ListRooms pages the caller's rooms, most recently active first.
func (r *ChatRepository) ListRooms(ctx context.Context, q chat.RoomQuery) ([]*chat.RoomSummary, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	base := tx.Table("tb_chat_room_member AS m").
		Joins("JOIN tb_chat_room_member cp ON cp.room_id = m.room_id AND cp.user_id <> m.user_id").
		Joins("LEFT JOIN tb_user_profile p ON p.user_id = cp.user_id AND p.default_yn = ?", constants.FlagYes).
		Where("m.user_id = ?", q.UserID)

	if q.Filter == chat.FilterUnread {
		base = base.Where("(" + unreadFromCounterpart + ") > 0")
	}
	if search := strings.TrimSpace(q.Search); search != "" {
		base = base.Where("p.nickname LIKE ? ESCAPE '!'", "%"+escapeLike(norm.NFC.String(search))+"%")
	}

	var total int64
	if err := base.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, wrapDB("count chat rooms", err)
	}

	var rows []chatRoomRow
	err := base.Select(strings.Join([]string{
		"m.room_id AS room_id",
		"cp.user_id AS counterpart_user_id",
		"p.nickname AS counterpart_nickname",
		db.FilePathSubquery("p.profile_image_id", "counterpart_profile_img"),
		db.FilePathSubquery("p.interest_badge_file_id", "interest_badge_path"),
		db.FilePathSubquery("p.event_badge_file_id", "event_badge_path"),
		"(" + unreadFromCounterpart + ") AS unread_message_count",
		"m.is_active AS is_active",
	}, ", ")).
		Order("COALESCE((SELECT MAX(lm.message_id) FROM tb_chat_message lm WHERE lm.room_id = m.room_id), 0) DESC").
		Order("m.room_id DESC").
		Scopes(db.Paginate(q.Page, q.CountPerPage)).
		Scan(&rows).Error
	if err != nil {
		return nil, 0, wrapDB("list chat rooms", err)
	}

	last, err := r.lastMessages(ctx, rows)
	if err != nil {
		return nil, 0, err
	}

	rooms := make([]*chat.RoomSummary, 0, len(rows))
	for _, row := range rows {
		s := &chat.RoomSummary{
			RoomID:                row.RoomID,
			CounterpartUserID:     row.CounterpartUserID,
			CounterpartNickname:   row.CounterpartNickname,
			CounterpartProfileImg: row.CounterpartProfileImg,
			InterestBadgePath:     row.InterestBadgePath,
			EventBadgePath:        row.EventBadgePath,
			UnreadMessageCount:    row.UnreadMessageCount,
			IsActive:              row.IsActive == constants.FlagYes,
		}
		if msg, ok := last[row.RoomID]; ok {
			content := msg.Content
			created := msg.CreatedDate
			s.LastMessageContent = &content
			s.LastMessageDate = &created
		}
		rooms = append(rooms, s)
	}
	return rooms, total, nil
}

// lastMessages loads the newest message of each listed room.
func (r *ChatRepository) lastMessages(ctx context.Context, rows []chatRoomRow) (map[int64]models.ChatMessageModel, error) {
	out := make(map[int64]models.ChatMessageModel, len(rows))
	if len(rows) == 0 {
		return out, nil
	}
	roomIDs := make([]int64, len(rows))
	for i, row := range rows {
		roomIDs[i] = row.RoomID
	}

	tx := db.GetTxFromContext(ctx, r.db)
	latest := tx.Model(&models.ChatMessageModel{}).
		Select("MAX(message_id)").
		Where("room_id IN ?", roomIDs).
		Group("room_id")

	var msgs []models.ChatMessageModel
	if err := tx.Where("message_id IN (?)", latest).Find(&msgs).Error; err != nil {
		return nil, wrapDB("load last chat messages", err)
	}
	for _, msg := range msgs {
		out[msg.RoomID] = msg
	}
	return out, nil
}

func (r *ChatRepository) ListMessages(ctx context.Context, roomID int64, page, countPerPage int) ([]*chat.Message, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.ChatMessageModel{}).Where("room_id = ?", roomID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDB("count chat messages", err)
	}

	var rows []models.ChatMessageModel
	if err := query.Order("created_date ASC").Order("message_id ASC").
		Scopes(db.Paginate(page, countPerPage)).
		Find(&rows).Error; err != nil {
		return nil, 0, wrapDB("list chat messages", err)
	}

	msgs := make([]*chat.Message, 0, len(rows))
	for i := range rows {
		msgs = append(msgs, toMessage(&rows[i]))
	}
	return msgs, total, nil
}

func (r *ChatRepository) MarkRead(ctx context.Context, roomID, readerID int64, now time.Time) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Model(&models.ChatMessageModel{}).
		Where("room_id = ? AND sender_user_id <> ? AND is_read = ?", roomID, readerID, constants.FlagNo).
		Updates(map[string]interface{}{
			"is_read":      constants.FlagYes,
			"updated_date": now,
		})
	if result.Error != nil {
		return 0, wrapDB("mark chat messages read", result.Error)
	}
	return result.RowsAffected, nil
}

func (r *ChatRepository) SaveReport(ctx context.Context, roomID, reporterID int64, reason chat.ReportReason, detail *string, now time.Time) (bool, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	if err := tx.Model(&models.ChatRoomReportModel{}).
		Where("room_id = ? AND reporter_user_id = ?", roomID, reporterID).
		Count(&count).Error; err != nil {
		return false, wrapDB("check chat report", err)
	}
	if count > 0 {
		return false, nil
	}

	report := &models.ChatRoomReportModel{
		RoomID:         roomID,
		ReporterUserID: reporterID,
		ReportReason:   string(reason),
		ReportDetail:   detail,
		AuditColumns:   models.NewAuditColumns(reporterID, now),
	}
	if err := tx.Create(report).Error; err != nil {
		if apperrors.IsDuplicateError(err) {
			return false, nil
		}
		return false, wrapDB("save chat report", err)
	}
	return true, nil
}

func (r *ChatRepository) CountRoomsWithUnread(ctx context.Context, userID int64) (int64, error) {
	var count int64
	tx := db.GetTxFromContext(ctx, r.db)
	err := tx.Table("tb_chat_message AS msg").
		Joins("JOIN tb_chat_room_member m ON m.room_id = msg.room_id AND m.user_id = ?", userID).
		Where("msg.sender_user_id <> ? AND msg.is_read = ?", userID, constants.FlagNo).
		Distinct("msg.room_id").
		Count(&count).Error
	if err != nil {
		return 0, wrapDB("count unread chat rooms", err)
	}
	return count, nil
}

func escapeLike(s string) string {
	r := strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")
	return r.Replace(s)
}
