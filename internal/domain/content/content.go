// Package content holds the plainly-stored editorial records: notices, FAQs, carousels,
// publisher promotions, popups, common codes, and reader evaluations and reviews.
package content

import (
	"context"
	"time"
)

// Common-code group holding the finance ratios.
const RateCodeGroup = "common_rate"

// Rate keys inside RateCodeGroup.
var RateKeys = []string{
	"default_settlement_rate",
	"donation_settlement_rate",
	"payment_fee_rate",
	"tax_amount_rate",
}

type Notice struct {
	ID          int64
	Subject     string
	Content     string
	Pinned      bool
	FileGroupID *int64
	ViewCount   int64
	Active      bool
	CreatedDate time.Time
	UpdatedDate time.Time
}

type Faq struct {
	ID          int64
	FaqType     string
	Subject     string
	Content     string
	Pinned      bool
	Active      bool
	CreatedDate time.Time
}

type Carousel struct {
	ID        int64
	Division  string
	Title     string
	ImageID   *int64
	URL       *string
	ShowOrder int
	StartDate *time.Time
	EndDate   *time.Time
	Active    bool
}

type PublisherPromotion struct {
	ID        int64
	ProductID int64
	ShowOrder int
	StartDate *time.Time
	EndDate   *time.Time
	Active    bool
}

type Popup struct {
	ID        int64
	URL       string
	ImagePath string
	StartDate *time.Time
	EndDate   *time.Time
	Active    bool
}

// Showing reports whether an active popup's nullable window contains now.
func (p *Popup) Showing(now time.Time) bool {
	if !p.Active {
		return false
	}
	if p.StartDate != nil && now.Before(*p.StartDate) {
		return false
	}
	if p.EndDate != nil && now.After(*p.EndDate) {
		return false
	}
	return true
}

type CommonCode struct {
	ID        int64
	CodeGroup string
	CodeKey   string
	CodeValue string
	CodeDesc  *string
	Active    bool
}

// Evaluation is one reader's verdict on an episode; at most one per user, product and episode.
type Evaluation struct {
	ID          int64
	ProductID   int64
	EpisodeID   int64
	UserID      int64
	EvalCode    string
	CreatedDate time.Time
}

type Review struct {
	ID          int64
	ProductID   int64
	EpisodeID   *int64
	UserID      int64
	ReviewText  string
	Open        bool
	CreatedDate time.Time
}

// ListFilter pages a list. Filters maps column names to equality values; a store drops
// columns it does not allow.
type ListFilter struct {
	Page         int
	CountPerPage int
	ActiveOnly   bool
	Filters      map[string]interface{}
}

// Store is the uniform list/detail/create/update/delete contract.
type Store[E any] interface {
	List(ctx context.Context, f ListFilter) ([]*E, int64, error)
	// Get returns nil when the row does not exist.
	Get(ctx context.Context, id int64) (*E, error)
	Create(ctx context.Context, e *E, writerID int64) (int64, error)
	// Update writes only allow-listed columns and always stamps the writer.
	Update(ctx context.Context, id int64, fields map[string]interface{}, writerID int64) error
	Delete(ctx context.Context, id int64) error
}

type NoticeStore interface {
	Store[Notice]
	IncrementViewCount(ctx context.Context, id int64) error
}

type PopupStore interface {
	Store[Popup]
	// Current returns the most recent active popup whose window contains now, or nil.
	Current(ctx context.Context, now time.Time) (*Popup, error)
}

type CommonCodeStore interface {
	Store[CommonCode]
	ListGroup(ctx context.Context, group string) ([]*CommonCode, error)
}

type EvaluationStore interface {
	Store[Evaluation]
	Exists(ctx context.Context, userID, productID, episodeID int64) (bool, error)
}
