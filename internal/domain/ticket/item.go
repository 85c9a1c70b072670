package ticket

import (
	"fmt"
	"time"

	vo "likenovel/internal/domain/ticket/valueobjects"
)

// Item is a catalog entry from which passes are issued.
type Item struct {
	id             int64
	ticketType     vo.TicketType
	name           string
	price          int64
	settlement     bool
	expiredHour    int
	use            bool
	targetProducts []int64
}

// NewItem validates a catalog entry. A nil targetProducts becomes an empty list,
// meaning the item applies to every work.
func NewItem(ticketType vo.TicketType, name string, price int64, settlement bool, expiredHour int, use bool, targetProducts []int64) (*Item, error) {
	if !ticketType.IsValid() {
		return nil, fmt.Errorf("invalid ticket type")
	}
	if name == "" {
		return nil, fmt.Errorf("ticket name is required")
	}
	if price < 0 {
		return nil, fmt.Errorf("price must not be negative")
	}
	if expiredHour < 0 {
		return nil, fmt.Errorf("expired hour must not be negative")
	}
	if targetProducts == nil {
		targetProducts = []int64{}
	}
	return &Item{
		ticketType:     ticketType,
		name:           name,
		price:          price,
		settlement:     settlement,
		expiredHour:    expiredHour,
		use:            use,
		targetProducts: targetProducts,
	}, nil
}

func ReconstructItem(id int64, ticketType vo.TicketType, name string, price int64, settlement bool, expiredHour int, use bool, targetProducts []int64) *Item {
	if targetProducts == nil {
		targetProducts = []int64{}
	}
	return &Item{
		id:             id,
		ticketType:     ticketType,
		name:           name,
		price:          price,
		settlement:     settlement,
		expiredHour:    expiredHour,
		use:            use,
		targetProducts: targetProducts,
	}
}

func (i *Item) ID() int64                  { return i.id }
func (i *Item) TicketType() vo.TicketType  { return i.ticketType }
func (i *Item) Name() string               { return i.name }
func (i *Item) Price() int64               { return i.price }
func (i *Item) Settlement() bool           { return i.settlement }
func (i *Item) ExpiredHour() int           { return i.expiredHour }
func (i *Item) InUse() bool                { return i.use }
func (i *Item) TargetProducts() []int64    { return i.targetProducts }
func (i *Item) SetID(id int64)             { i.id = id }

// Issues reports whether the item mints passes of kind t.
func (i *Item) Issues(t vo.TicketType) bool {
	return i.ticketType == t
}

// AppliesTo reports whether productID is covered. An empty target list covers all works,
// and a nil productID is always accepted.
func (i *Item) AppliesTo(productID *int64) bool {
	if productID == nil || len(i.targetProducts) == 0 {
		return true
	}
	for _, p := range i.targetProducts {
		if p == *productID {
			return true
		}
	}
	return false
}

// ExpiresAt returns now + expired_hour, or nil when the item never expires.
func (i *Item) ExpiresAt(now time.Time) *time.Time {
	if i.expiredHour <= 0 {
		return nil
	}
	t := now.Add(time.Duration(i.expiredHour) * time.Hour)
	return &t
}
