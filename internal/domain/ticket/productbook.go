package ticket

import (
	"fmt"
	"time"

	vo "likenovel/internal/domain/ticket/valueobjects"
	"likenovel/internal/shared/errors"
)

// Productbook is a per-episode pass. A nil product covers every work and a nil episode
// covers every episode of the product.
type Productbook struct {
	id                int64
	ticketType        vo.TicketType
	ownType           vo.OwnType
	userID            int64
	profileID         *int64
	productID         *int64
	episodeID         *int64
	acquisitionType   *vo.AcquisitionType
	acquisitionID     *int64
	rentalExpiredDate *time.Time
	used              bool
	createdAt         time.Time
}

// ProductbookParams carries the fields a new productbook is created from.
type ProductbookParams struct {
	OwnType           vo.OwnType
	UserID            int64
	ProfileID         *int64
	ProductID         *int64
	EpisodeID         *int64
	AcquisitionType   *vo.AcquisitionType
	AcquisitionID     *int64
	RentalExpiredDate *time.Time
}

func NewProductbook(p ProductbookParams) (*Productbook, error) {
	if p.UserID <= 0 {
		return nil, fmt.Errorf("user id is required")
	}
	if !p.OwnType.IsValid() {
		return nil, fmt.Errorf("invalid own type")
	}
	if p.AcquisitionType != nil && !p.AcquisitionType.IsValid() {
		return nil, fmt.Errorf("invalid acquisition type")
	}
	return &Productbook{
		ticketType:        vo.TicketTypeProductbook,
		ownType:           p.OwnType,
		userID:            p.UserID,
		profileID:         p.ProfileID,
		productID:         p.ProductID,
		episodeID:         p.EpisodeID,
		acquisitionType:   p.AcquisitionType,
		acquisitionID:     p.AcquisitionID,
		rentalExpiredDate: p.RentalExpiredDate,
	}, nil
}

func ReconstructProductbook(id int64, ticketType vo.TicketType, p ProductbookParams, used bool, createdAt time.Time) *Productbook {
	return &Productbook{
		id:                id,
		ticketType:        ticketType,
		ownType:           p.OwnType,
		userID:            p.UserID,
		profileID:         p.ProfileID,
		productID:         p.ProductID,
		episodeID:         p.EpisodeID,
		acquisitionType:   p.AcquisitionType,
		acquisitionID:     p.AcquisitionID,
		rentalExpiredDate: p.RentalExpiredDate,
		used:              used,
		createdAt:         createdAt,
	}
}

func (p *Productbook) ID() int64                            { return p.id }
func (p *Productbook) TicketType() vo.TicketType            { return p.ticketType }
func (p *Productbook) OwnType() vo.OwnType                  { return p.ownType }
func (p *Productbook) UserID() int64                        { return p.userID }
func (p *Productbook) ProfileID() *int64                    { return p.profileID }
func (p *Productbook) ProductID() *int64                    { return p.productID }
func (p *Productbook) EpisodeID() *int64                    { return p.episodeID }
func (p *Productbook) AcquisitionType() *vo.AcquisitionType { return p.acquisitionType }
func (p *Productbook) AcquisitionID() *int64                { return p.acquisitionID }
func (p *Productbook) RentalExpiredDate() *time.Time        { return p.rentalExpiredDate }
func (p *Productbook) Used() bool                           { return p.used }
func (p *Productbook) CreatedAt() time.Time                 { return p.createdAt }
func (p *Productbook) SetID(id int64)                       { p.id = id }

// Expired reports whether a rental window has closed at now.
func (p *Productbook) Expired(now time.Time) bool {
	return p.rentalExpiredDate != nil && !p.rentalExpiredDate.After(now)
}

// Covers reports whether the pass applies to the episode of the given product.
func (p *Productbook) Covers(productID, episodeID int64) bool {
	if p.productID != nil && *p.productID != productID {
		return false
	}
	if p.episodeID != nil && *p.episodeID != episodeID {
		return false
	}
	return true
}

// Use binds the pass to an episode after checking owner, state, expiry and scope.
func (p *Productbook) Use(userID, productID, episodeID int64, now time.Time) error {
	if p.userID != userID {
		return errors.ErrForbiddenProductbookOwner
	}
	if p.used {
		return errors.ErrAlreadyUsedProductbook
	}
	if p.Expired(now) {
		return errors.ErrExpiredProductbook
	}
	if !p.Covers(productID, episodeID) {
		return errors.ErrProductbookScopeMismatch
	}
	p.used = true
	p.productID = &productID
	p.episodeID = &episodeID
	return nil
}
