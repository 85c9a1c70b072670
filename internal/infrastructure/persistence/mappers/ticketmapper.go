package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/datatypes"

	"likenovel/internal/domain/ticket"
	vo "likenovel/internal/domain/ticket/valueobjects"
	"likenovel/internal/infrastructure/persistence/models"
	"likenovel/internal/shared/utils"
)

// TicketMapper converts between ticket entities and their tables.
type TicketMapper interface {
	ItemToModel(item *ticket.Item, writerID int64, now time.Time) (*models.TicketItemModel, error)
	ItemToDomain(model *models.TicketItemModel) (*ticket.Item, error)

	TicketbookToModel(tb *ticket.Ticketbook, writerID int64, now time.Time) *models.UserTicketbookModel
	TicketbookToDomain(model *models.UserTicketbookModel) *ticket.Ticketbook

	ProductbookToModel(pb *ticket.Productbook, writerID int64, now time.Time) *models.UserProductbookModel
	ProductbookToDomain(model *models.UserProductbookModel) (*ticket.Productbook, error)

	GiftbookToModel(g *ticket.Giftbook, writerID int64, now time.Time) *models.UserGiftbookModel
	GiftbookToDomain(model *models.UserGiftbookModel) (*ticket.Giftbook, error)
}

type ticketMapper struct{}

func NewTicketMapper() TicketMapper {
	return &ticketMapper{}
}

// EncodeTargetProducts always renders a JSON array, "[]" when empty.
func EncodeTargetProducts(ids []int64) (datatypes.JSON, error) {
	if ids == nil {
		ids = []int64{}
	}
	b, err := json.Marshal(ids)
	if err != nil {
		return nil, fmt.Errorf("failed to encode target products: %w", err)
	}
	return datatypes.JSON(b), nil
}

// DecodeTargetProducts accepts NULL, "" and "[]" as the empty list.
func DecodeTargetProducts(raw datatypes.JSON) ([]int64, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return []int64{}, nil
	}
	var ids []int64
	if err := json.Unmarshal(raw, &ids); err != nil {
		return nil, fmt.Errorf("failed to decode target products: %w", err)
	}
	if ids == nil {
		ids = []int64{}
	}
	return ids, nil
}

func (m *ticketMapper) ItemToModel(item *ticket.Item, writerID int64, now time.Time) (*models.TicketItemModel, error) {
	targets, err := EncodeTargetProducts(item.TargetProducts())
	if err != nil {
		return nil, err
	}
	return &models.TicketItemModel{
		TicketID:       item.ID(),
		TicketType:     item.TicketType().String(),
		TicketName:     item.Name(),
		Price:          item.Price(),
		SettlementYN:   utils.YN(item.Settlement()),
		ExpiredHour:    item.ExpiredHour(),
		UseYN:          utils.YN(item.InUse()),
		TargetProducts: targets,
		AuditColumns:   models.NewAuditColumns(writerID, now),
	}, nil
}

func (m *ticketMapper) ItemToDomain(model *models.TicketItemModel) (*ticket.Item, error) {
	t, err := vo.ParseTicketType(model.TicketType)
	if err != nil {
		return nil, err
	}
	targets, err := DecodeTargetProducts(model.TargetProducts)
	if err != nil {
		return nil, err
	}
	return ticket.ReconstructItem(
		model.TicketID,
		t,
		model.TicketName,
		model.Price,
		utils.IsYes(model.SettlementYN),
		model.ExpiredHour,
		utils.IsYes(model.UseYN),
		targets,
	), nil
}

func (m *ticketMapper) TicketbookToModel(tb *ticket.Ticketbook, writerID int64, now time.Time) *models.UserTicketbookModel {
	return &models.UserTicketbookModel{
		ID:             tb.ID(),
		TicketType:     tb.TicketType().String(),
		UserID:         tb.UserID(),
		ProductID:      tb.ProductID(),
		UseExpiredDate: tb.UseExpiredDate(),
		UseYN:          utils.YN(tb.Used()),
		AuditColumns:   models.NewAuditColumns(writerID, now),
	}
}

func (m *ticketMapper) TicketbookToDomain(model *models.UserTicketbookModel) *ticket.Ticketbook {
	return ticket.ReconstructTicketbook(
		model.ID,
		vo.TicketType(model.TicketType),
		model.UserID,
		model.ProductID,
		model.UseExpiredDate,
		utils.IsYes(model.UseYN),
		model.CreatedDate,
		model.UpdatedDate,
	)
}

func (m *ticketMapper) ProductbookToModel(pb *ticket.Productbook, writerID int64, now time.Time) *models.UserProductbookModel {
	model := &models.UserProductbookModel{
		ID:                pb.ID(),
		TicketType:        pb.TicketType().String(),
		OwnType:           pb.OwnType().String(),
		UserID:            pb.UserID(),
		ProfileID:         pb.ProfileID(),
		ProductID:         pb.ProductID(),
		EpisodeID:         pb.EpisodeID(),
		AcquisitionID:     pb.AcquisitionID(),
		RentalExpiredDate: pb.RentalExpiredDate(),
		UseYN:             utils.YN(pb.Used()),
		AuditColumns:      models.NewAuditColumns(writerID, now),
	}
	if at := pb.AcquisitionType(); at != nil {
		s := at.String()
		model.AcquisitionType = &s
	}
	return model
}

func (m *ticketMapper) ProductbookToDomain(model *models.UserProductbookModel) (*ticket.Productbook, error) {
	own, err := vo.ParseOwnType(model.OwnType)
	if err != nil {
		return nil, err
	}
	acq, err := parseAcquisition(model.AcquisitionType)
	if err != nil {
		return nil, err
	}
	return ticket.ReconstructProductbook(model.ID, vo.TicketType(model.TicketType), ticket.ProductbookParams{
		OwnType:           own,
		UserID:            model.UserID,
		ProfileID:         model.ProfileID,
		ProductID:         model.ProductID,
		EpisodeID:         model.EpisodeID,
		AcquisitionType:   acq,
		AcquisitionID:     model.AcquisitionID,
		RentalExpiredDate: model.RentalExpiredDate,
	}, utils.IsYes(model.UseYN), model.CreatedDate), nil
}

func (m *ticketMapper) GiftbookToModel(g *ticket.Giftbook, writerID int64, now time.Time) *models.UserGiftbookModel {
	model := &models.UserGiftbookModel{
		ID:                    g.ID(),
		UserID:                g.UserID(),
		ProductID:             g.ProductID(),
		EpisodeID:             g.EpisodeID(),
		TicketType:            g.TicketType().String(),
		OwnType:               g.OwnType().String(),
		AcquisitionID:         g.AcquisitionID(),
		ReadYN:                utils.YN(g.Read()),
		ReceivedYN:            utils.YN(g.Received()),
		ReceivedDate:          g.ReceivedAt(),
		Reason:                g.Reason(),
		Amount:                g.Amount(),
		PromotionType:         g.PromotionType(),
		ExpirationDate:        g.ExpirationDate(),
		TicketExpirationType:  g.TicketExpirationType().String(),
		TicketExpirationValue: g.TicketExpirationValue(),
		AuditColumns:          models.NewAuditColumns(writerID, now),
	}
	if at := g.AcquisitionType(); at != nil {
		s := at.String()
		model.AcquisitionType = &s
	}
	if !g.CreatedAt().IsZero() {
		model.CreatedDate = g.CreatedAt()
	}
	return model
}

func (m *ticketMapper) GiftbookToDomain(model *models.UserGiftbookModel) (*ticket.Giftbook, error) {
	t, err := vo.ParseTicketType(model.TicketType)
	if err != nil {
		return nil, err
	}
	own, err := vo.ParseOwnType(model.OwnType)
	if err != nil {
		return nil, err
	}
	exp, err := vo.ParseExpirationType(model.TicketExpirationType)
	if err != nil {
		return nil, err
	}
	acq, err := parseAcquisition(model.AcquisitionType)
	if err != nil {
		return nil, err
	}
	return ticket.ReconstructGiftbook(model.ID, ticket.GiftbookParams{
		UserID:                model.UserID,
		ProductID:             model.ProductID,
		EpisodeID:             model.EpisodeID,
		TicketType:            t,
		OwnType:               own,
		AcquisitionType:       acq,
		AcquisitionID:         model.AcquisitionID,
		Reason:                model.Reason,
		Amount:                model.Amount,
		PromotionType:         model.PromotionType,
		ExpirationDate:        model.ExpirationDate,
		TicketExpirationType:  exp,
		TicketExpirationValue: model.TicketExpirationValue,
	}, utils.IsYes(model.ReadYN), utils.IsYes(model.ReceivedYN), model.ReceivedDate, model.CreatedDate), nil
}

func parseAcquisition(s *string) (*vo.AcquisitionType, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	a, err := vo.ParseAcquisitionType(*s)
	if err != nil {
		return nil, err
	}
	return &a, nil
}
