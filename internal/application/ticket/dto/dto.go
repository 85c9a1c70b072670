package dto

import (
	"likenovel/internal/domain/ticket"
	"likenovel/internal/shared/biztime"
	"likenovel/internal/shared/utils"
)

type TicketItemDTO struct {
	TicketID       int64   `json:"ticketId"`
	TicketType     string  `json:"ticketType"`
	TicketName     string  `json:"ticketName"`
	Price          int64   `json:"price"`
	SettlementYN   string  `json:"settlementYn"`
	ExpiredHour    int     `json:"expiredHour"`
	UseYN          string  `json:"useYn"`
	TargetProducts []int64 `json:"targetProducts"`
}

func ToTicketItemDTO(i *ticket.Item) *TicketItemDTO {
	targets := i.TargetProducts()
	if targets == nil {
		targets = []int64{}
	}
	return &TicketItemDTO{
		TicketID:       i.ID(),
		TicketType:     i.TicketType().String(),
		TicketName:     i.Name(),
		Price:          i.Price(),
		SettlementYN:   utils.YN(i.Settlement()),
		ExpiredHour:    i.ExpiredHour(),
		UseYN:          utils.YN(i.InUse()),
		TargetProducts: targets,
	}
}

type TicketbookDTO struct {
	ID             int64   `json:"id"`
	TicketType     string  `json:"ticketType"`
	UserID         int64   `json:"userId"`
	ProductID      *int64  `json:"productId"`
	UseExpiredDate *string `json:"useExpiredDate"`
	UseYN          string  `json:"useYn"`
	CreatedDate    string  `json:"createdDate"`
}

func ToTicketbookDTO(t *ticket.Ticketbook) *TicketbookDTO {
	return &TicketbookDTO{
		ID:             t.ID(),
		TicketType:     t.TicketType().String(),
		UserID:         t.UserID(),
		ProductID:      t.ProductID(),
		UseExpiredDate: biztime.FormatPtr(t.UseExpiredDate()),
		UseYN:          utils.YN(t.Used()),
		CreatedDate:    biztime.Format(t.CreatedAt()),
	}
}

type ProductbookDTO struct {
	ID                int64   `json:"id"`
	TicketType        string  `json:"ticketType"`
	OwnType           string  `json:"ownType"`
	UserID            int64   `json:"userId"`
	ProfileID         *int64  `json:"profileId"`
	ProductID         *int64  `json:"productId"`
	EpisodeID         *int64  `json:"episodeId"`
	AcquisitionType   *string `json:"acquisitionType"`
	AcquisitionID     *int64  `json:"acquisitionId"`
	RentalExpiredDate *string `json:"rentalExpiredDate"`
	UseYN             string  `json:"useYn"`
}

func ToProductbookDTO(p *ticket.Productbook) *ProductbookDTO {
	d := &ProductbookDTO{
		ID:                p.ID(),
		TicketType:        p.TicketType().String(),
		OwnType:           p.OwnType().String(),
		UserID:            p.UserID(),
		ProfileID:         p.ProfileID(),
		ProductID:         p.ProductID(),
		EpisodeID:         p.EpisodeID(),
		AcquisitionID:     p.AcquisitionID(),
		RentalExpiredDate: biztime.FormatPtr(p.RentalExpiredDate()),
		UseYN:             utils.YN(p.Used()),
	}
	if at := p.AcquisitionType(); at != nil {
		s := at.String()
		d.AcquisitionType = &s
	}
	return d
}

func ToProductbookDTOs(books []*ticket.Productbook) []*ProductbookDTO {
	out := make([]*ProductbookDTO, 0, len(books))
	for _, b := range books {
		out = append(out, ToProductbookDTO(b))
	}
	return out
}

type GiftbookDTO struct {
	ID                    int64   `json:"id"`
	ProductID             *int64  `json:"productId"`
	EpisodeID             *int64  `json:"episodeId"`
	TicketType            string  `json:"ticketType"`
	OwnType               string  `json:"ownType"`
	ReadYN                string  `json:"readYn"`
	ReceivedYN            string  `json:"receivedYn"`
	ReceivedDate          *string `json:"receivedDate"`
	Reason                *string `json:"reason"`
	Amount                int     `json:"amount"`
	PromotionType         *string `json:"promotionType"`
	ExpirationDate        *string `json:"expirationDate"`
	TicketExpirationType  string  `json:"ticketExpirationType"`
	TicketExpirationValue int     `json:"ticketExpirationValue"`
	CreatedDate           string  `json:"createdDate"`
}

func ToGiftbookDTO(g *ticket.Giftbook) *GiftbookDTO {
	return &GiftbookDTO{
		ID:                    g.ID(),
		ProductID:             g.ProductID(),
		EpisodeID:             g.EpisodeID(),
		TicketType:            g.TicketType().String(),
		OwnType:               g.OwnType().String(),
		ReadYN:                utils.YN(g.Read()),
		ReceivedYN:            utils.YN(g.Received()),
		ReceivedDate:          biztime.FormatPtr(g.ReceivedAt()),
		Reason:                g.Reason(),
		Amount:                g.Amount(),
		PromotionType:         g.PromotionType(),
		ExpirationDate:        biztime.FormatPtr(g.ExpirationDate()),
		TicketExpirationType:  g.TicketExpirationType().String(),
		TicketExpirationValue: g.TicketExpirationValue(),
		CreatedDate:           biztime.Format(g.CreatedAt()),
	}
}
