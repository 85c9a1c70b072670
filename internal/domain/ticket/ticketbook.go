package ticket

import (
	"fmt"
	"time"

	vo "likenovel/internal/domain/ticket/valueobjects"
	"likenovel/internal/shared/errors"
)

// Ticketbook is a period pass. It moves from unused to used once, by its owner.
type Ticketbook struct {
	id             int64
	ticketType     vo.TicketType
	userID         int64
	productID      *int64
	useExpiredDate *time.Time
	used           bool
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicketbook(userID int64, productID *int64, useExpiredDate *time.Time) (*Ticketbook, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("user id is required")
	}
	return &Ticketbook{
		ticketType:     vo.TicketTypeTicketbook,
		userID:         userID,
		productID:      productID,
		useExpiredDate: useExpiredDate,
	}, nil
}

func ReconstructTicketbook(id int64, ticketType vo.TicketType, userID int64, productID *int64, useExpiredDate *time.Time, used bool, createdAt, updatedAt time.Time) *Ticketbook {
	return &Ticketbook{
		id:             id,
		ticketType:     ticketType,
		userID:         userID,
		productID:      productID,
		useExpiredDate: useExpiredDate,
		used:           used,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}
}

func (t *Ticketbook) ID() int64                  { return t.id }
func (t *Ticketbook) TicketType() vo.TicketType  { return t.ticketType }
func (t *Ticketbook) UserID() int64              { return t.userID }
func (t *Ticketbook) ProductID() *int64          { return t.productID }
func (t *Ticketbook) UseExpiredDate() *time.Time { return t.useExpiredDate }
func (t *Ticketbook) Used() bool                 { return t.used }
func (t *Ticketbook) CreatedAt() time.Time       { return t.createdAt }
func (t *Ticketbook) UpdatedAt() time.Time       { return t.updatedAt }
func (t *Ticketbook) SetID(id int64)             { t.id = id }

// Use checks ownership and state, then marks the pass used.
func (t *Ticketbook) Use(userID int64, now time.Time) error {
	if t.userID != userID {
		return errors.ErrForbiddenTicketbookOwner
	}
	if t.used {
		return errors.ErrAlreadyUsedTicketbook
	}
	t.used = true
	t.updatedAt = now
	return nil
}
