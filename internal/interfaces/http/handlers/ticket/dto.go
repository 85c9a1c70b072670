package ticket

import (
	"time"

	"likenovel/internal/application/ticket/usecases"
)

type CreateTicketItemRequest struct {
	TicketType     string  `json:"ticket_type" binding:"required,oneof=ticketbook productbook"`
	TicketName     string  `json:"ticket_name" binding:"required,max=200"`
	Price          int64   `json:"price" binding:"min=0"`
	SettlementYN   string  `json:"settlement_yn" binding:"omitempty,yn"`
	ExpiredHour    int     `json:"expired_hour" binding:"min=0"`
	UseYN          string  `json:"use_yn" binding:"omitempty,yn"`
	TargetProducts []int64 `json:"target_products"`
}

func (r *CreateTicketItemRequest) ToCommand(writerID int64) usecases.CreateTicketItemCommand {
	return usecases.CreateTicketItemCommand{
		TicketType:     r.TicketType,
		TicketName:     r.TicketName,
		Price:          r.Price,
		SettlementYN:   r.SettlementYN,
		ExpiredHour:    r.ExpiredHour,
		UseYN:          r.UseYN,
		TargetProducts: r.TargetProducts,
		WriterID:       writerID,
	}
}

type IssuanceRequest struct {
	UserIDs   []int64 `json:"userIds" binding:"required,min=1,max=1000"`
	ProductID *int64  `json:"productId"`
	EpisodeID *int64  `json:"episodeId"`
	Amount    int     `json:"amount" binding:"min=0,max=100"`
}

func (r *IssuanceRequest) ToCommand(ticketID, writerID int64) usecases.IssueCommand {
	return usecases.IssueCommand{
		TicketID:  ticketID,
		UserIDs:   r.UserIDs,
		ProductID: r.ProductID,
		EpisodeID: r.EpisodeID,
		Amount:    r.Amount,
		WriterID:  writerID,
	}
}

type PostTicketbookRequest struct {
	UserID         int64      `json:"user_id" binding:"required,min=1"`
	ProductID      *int64     `json:"product_id"`
	UseExpiredDate *time.Time `json:"use_expired_date"`
}

func (r *PostTicketbookRequest) ToCommand(writerID int64) usecases.PostTicketbookCommand {
	return usecases.PostTicketbookCommand{
		UserID:         r.UserID,
		ProductID:      r.ProductID,
		UseExpiredDate: r.UseExpiredDate,
		WriterID:       writerID,
	}
}

type CreateProductbookRequest struct {
	OwnType           string     `json:"own_type" binding:"required"`
	UserID            int64      `json:"user_id" binding:"required,min=1"`
	ProfileID         *int64     `json:"profile_id"`
	ProductID         *int64     `json:"product_id"`
	EpisodeID         *int64     `json:"episode_id"`
	AcquisitionType   *string    `json:"acquisition_type"`
	AcquisitionID     *int64     `json:"acquisition_id"`
	RentalExpiredDate *time.Time `json:"rental_expired_date"`
}

func (r *CreateProductbookRequest) ToCommand(writerID int64) usecases.CreateProductbookCommand {
	return usecases.CreateProductbookCommand{
		OwnType:           r.OwnType,
		UserID:            r.UserID,
		ProfileID:         r.ProfileID,
		ProductID:         r.ProductID,
		EpisodeID:         r.EpisodeID,
		AcquisitionType:   r.AcquisitionType,
		AcquisitionID:     r.AcquisitionID,
		RentalExpiredDate: r.RentalExpiredDate,
		WriterID:          writerID,
	}
}

type UseProductbookRequest struct {
	EpisodeID int64 `json:"episode_id" binding:"required,min=1"`
}

type CreateGiftbookRequest struct {
	UserID                int64      `json:"user_id" binding:"required,min=1"`
	ProductID             *int64     `json:"product_id"`
	EpisodeID             *int64     `json:"episode_id"`
	TicketType            string     `json:"ticket_type" binding:"required"`
	OwnType               string     `json:"own_type" binding:"required"`
	AcquisitionType       *string    `json:"acquisition_type"`
	AcquisitionID         *int64     `json:"acquisition_id"`
	Reason                *string    `json:"reason"`
	Amount                int        `json:"amount" binding:"min=0,max=100"`
	PromotionType         *string    `json:"promotion_type"`
	ExpirationDate        *time.Time `json:"expiration_date"`
	TicketExpirationType  string     `json:"ticket_expiration_type"`
	TicketExpirationValue int        `json:"ticket_expiration_value" binding:"min=0"`
}

func (r *CreateGiftbookRequest) ToCommand(writerID int64) usecases.CreateGiftbookCommand {
	return usecases.CreateGiftbookCommand{
		UserID:                r.UserID,
		ProductID:             r.ProductID,
		EpisodeID:             r.EpisodeID,
		TicketType:            r.TicketType,
		OwnType:               r.OwnType,
		AcquisitionType:       r.AcquisitionType,
		AcquisitionID:         r.AcquisitionID,
		Reason:                r.Reason,
		Amount:                r.Amount,
		PromotionType:         r.PromotionType,
		ExpirationDate:        r.ExpirationDate,
		TicketExpirationType:  r.TicketExpirationType,
		TicketExpirationValue: r.TicketExpirationValue,
		WriterID:              writerID,
	}
}
