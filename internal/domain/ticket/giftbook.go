package ticket

import (
	"fmt"
	"time"

	vo "likenovel/internal/domain/ticket/valueobjects"
	"likenovel/internal/shared/errors"
)

// GiftShelfLife is how long a gift may wait before it can no longer be received.
const GiftShelfLife = 7 * 24 * time.Hour

// Issuance bounds. MaxIssueAmount caps the passes minted per recipient and MaxIssueUsers
// the recipients of one issuance call.
const (
	MaxIssueAmount = 100
	MaxIssueUsers  = 1000
)

// Giftbook is a pending grant that turns into productbooks when received.
type Giftbook struct {
	id                    int64
	userID                int64
	productID             *int64
	episodeID             *int64
	ticketType            vo.TicketType
	ownType               vo.OwnType
	acquisitionType       *vo.AcquisitionType
	acquisitionID         *int64
	read                  bool
	received              bool
	receivedAt            *time.Time
	reason                *string
	amount                int
	promotionType         *string
	expirationDate        *time.Time
	ticketExpirationType  vo.ExpirationType
	ticketExpirationValue int
	createdAt             time.Time
}

// GiftbookParams carries the fields of a new gift.
type GiftbookParams struct {
	UserID                int64
	ProductID             *int64
	EpisodeID             *int64
	TicketType            vo.TicketType
	OwnType               vo.OwnType
	AcquisitionType       *vo.AcquisitionType
	AcquisitionID         *int64
	Reason                *string
	Amount                int
	PromotionType         *string
	ExpirationDate        *time.Time
	TicketExpirationType  vo.ExpirationType
	TicketExpirationValue int
}

func NewGiftbook(p GiftbookParams, now time.Time) (*Giftbook, error) {
	if p.UserID <= 0 {
		return nil, fmt.Errorf("user id is required")
	}
	if p.Amount < 1 || p.Amount > MaxIssueAmount {
		return nil, fmt.Errorf("amount must be between 1 and %d", MaxIssueAmount)
	}
	if !p.TicketType.IsValid() || !p.OwnType.IsValid() {
		return nil, fmt.Errorf("invalid ticket or own type")
	}
	if p.TicketExpirationType == "" {
		p.TicketExpirationType = vo.ExpirationNone
	}
	if !p.TicketExpirationType.IsValid() {
		return nil, fmt.Errorf("invalid ticket expiration type")
	}
	if p.TicketExpirationValue < 0 {
		return nil, fmt.Errorf("ticket expiration value must not be negative")
	}
	g := ReconstructGiftbook(0, p, false, false, nil, now)
	return g, nil
}

func ReconstructGiftbook(id int64, p GiftbookParams, read, received bool, receivedAt *time.Time, createdAt time.Time) *Giftbook {
	return &Giftbook{
		id:                    id,
		userID:                p.UserID,
		productID:             p.ProductID,
		episodeID:             p.EpisodeID,
		ticketType:            p.TicketType,
		ownType:               p.OwnType,
		acquisitionType:       p.AcquisitionType,
		acquisitionID:         p.AcquisitionID,
		read:                  read,
		received:              received,
		receivedAt:            receivedAt,
		reason:                p.Reason,
		amount:                p.Amount,
		promotionType:         p.PromotionType,
		expirationDate:        p.ExpirationDate,
		ticketExpirationType:  p.TicketExpirationType,
		ticketExpirationValue: p.TicketExpirationValue,
		createdAt:             createdAt,
	}
}

func (g *Giftbook) ID() int64                               { return g.id }
func (g *Giftbook) UserID() int64                           { return g.userID }
func (g *Giftbook) ProductID() *int64                       { return g.productID }
func (g *Giftbook) EpisodeID() *int64                       { return g.episodeID }
func (g *Giftbook) TicketType() vo.TicketType               { return g.ticketType }
func (g *Giftbook) OwnType() vo.OwnType                     { return g.ownType }
func (g *Giftbook) AcquisitionType() *vo.AcquisitionType    { return g.acquisitionType }
func (g *Giftbook) AcquisitionID() *int64                   { return g.acquisitionID }
func (g *Giftbook) Read() bool                              { return g.read }
func (g *Giftbook) Received() bool                          { return g.received }
func (g *Giftbook) ReceivedAt() *time.Time                  { return g.receivedAt }
func (g *Giftbook) Reason() *string                         { return g.reason }
func (g *Giftbook) Amount() int                             { return g.amount }
func (g *Giftbook) PromotionType() *string                  { return g.promotionType }
func (g *Giftbook) ExpirationDate() *time.Time              { return g.expirationDate }
func (g *Giftbook) TicketExpirationType() vo.ExpirationType { return g.ticketExpirationType }
func (g *Giftbook) TicketExpirationValue() int              { return g.ticketExpirationValue }
func (g *Giftbook) CreatedAt() time.Time                    { return g.createdAt }
func (g *Giftbook) SetID(id int64)                          { g.id = id }

// Params returns the creation fields, used by mappers.
func (g *Giftbook) Params() GiftbookParams {
	return GiftbookParams{
		UserID:                g.userID,
		ProductID:             g.productID,
		EpisodeID:             g.episodeID,
		TicketType:            g.ticketType,
		OwnType:               g.ownType,
		AcquisitionType:       g.acquisitionType,
		AcquisitionID:         g.acquisitionID,
		Reason:                g.reason,
		Amount:                g.amount,
		PromotionType:         g.promotionType,
		ExpirationDate:        g.expirationDate,
		TicketExpirationType:  g.ticketExpirationType,
		TicketExpirationValue: g.ticketExpirationValue,
	}
}

// MarkRead flags the gift as seen by its owner.
func (g *Giftbook) MarkRead(userID int64) error {
	if g.userID != userID {
		return errors.ErrGiftForbidden
	}
	g.read = true
	return nil
}

// Expired reports whether the gift is past its shelf life or its own expiration date.
func (g *Giftbook) Expired(now time.Time) bool {
	if now.Sub(g.createdAt) > GiftShelfLife {
		return true
	}
	return g.expirationDate != nil && g.expirationDate.Before(now)
}

// Receive validates the transition and returns the productbooks to mint, one per amount.
// The caller persists them together with the received flag.
func (g *Giftbook) Receive(userID int64, now time.Time) ([]*Productbook, error) {
	if g.userID != userID {
		return nil, errors.ErrGiftForbidden
	}
	if g.received {
		return nil, errors.ErrGiftAlreadyReceived
	}
	if g.Expired(now) {
		return nil, errors.ErrGiftExpired
	}

	expiresAt := g.ticketExpirationType.ExpiresAt(now, g.ticketExpirationValue)
	books := make([]*Productbook, 0, g.amount)
	for i := 0; i < g.amount; i++ {
		pb, err := NewProductbook(ProductbookParams{
			OwnType:           g.ownType,
			UserID:            g.userID,
			ProductID:         g.productID,
			EpisodeID:         g.episodeID,
			AcquisitionType:   g.acquisitionType,
			AcquisitionID:     g.acquisitionID,
			RentalExpiredDate: expiresAt,
		})
		if err != nil {
			return nil, err
		}
		pb.ticketType = g.ticketType
		books = append(books, pb)
	}

	g.received = true
	g.read = true
	g.receivedAt = &now
	return books, nil
}
