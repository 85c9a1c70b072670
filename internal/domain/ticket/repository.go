package ticket

import (
	"context"
	"time"
)

// ItemRepository persists the ticket-item catalog.
type ItemRepository interface {
	Create(ctx context.Context, item *Item, writerID int64) error
	GetByID(ctx context.Context, id int64) (*Item, error)
	List(ctx context.Context, filter ItemFilter) ([]*Item, int64, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error
	Delete(ctx context.Context, id int64) error
}

type ItemFilter struct {
	TicketType   string
	UseYN        string
	Page         int
	CountPerPage int
}

// TicketbookRepository persists period passes.
type TicketbookRepository interface {
	Create(ctx context.Context, tb *Ticketbook, writerID int64) error
	GetByID(ctx context.Context, id int64) (*Ticketbook, error)
	ListByUser(ctx context.Context, userID int64, page, countPerPage int) ([]*Ticketbook, int64, error)
	// MarkUsed flips use_yn N->Y only if still unused; false means another caller won.
	MarkUsed(ctx context.Context, id int64, writerID int64, now time.Time) (bool, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error
	Delete(ctx context.Context, id int64) error
}

// ProductbookRepository persists per-episode passes.
type ProductbookRepository interface {
	Create(ctx context.Context, pb *Productbook, writerID int64) error
	CreateBatch(ctx context.Context, pbs []*Productbook, writerID int64) error
	GetByID(ctx context.Context, id int64) (*Productbook, error)
	ListUsableByUser(ctx context.Context, userID int64, productID *int64, now time.Time) ([]*Productbook, error)
	// MarkUsed binds the episode only if the row is still unused.
	MarkUsed(ctx context.Context, id, productID, episodeID, writerID int64, now time.Time) (bool, error)
	Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error
	Delete(ctx context.Context, id int64) error
}

// GiftbookRepository persists pending gifts.
type GiftbookRepository interface {
	Create(ctx context.Context, g *Giftbook, writerID int64) error
	GetByID(ctx context.Context, id int64) (*Giftbook, error)
	ListByUser(ctx context.Context, userID int64, page, countPerPage int) ([]*Giftbook, int64, error)
	MarkRead(ctx context.Context, id, writerID int64, now time.Time) error
	// MarkReceived flips received_yn N->Y only if still unreceived.
	MarkReceived(ctx context.Context, id, writerID int64, now time.Time) (bool, error)
}

// EpisodeLookup resolves the product an episode belongs to.
type EpisodeLookup interface {
	GetProductIDOfEpisode(ctx context.Context, episodeID int64) (int64, error)
}
