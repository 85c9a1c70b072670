package payment

import (
	"context"
	"time"

	vo "likenovel/internal/domain/payment/valueobjects"
)

// CashbookRepository holds per-user cash balances.
type CashbookRepository interface {
	// Balance returns 0 when the user has no cashbook row.
	Balance(ctx context.Context, userID int64) (int64, error)
	// Debit subtracts amount only if the balance covers it; false means it did not.
	Debit(ctx context.Context, userID, amount, writerID int64, now time.Time) (bool, error)
	// Credit adds amount, creating the cashbook row when absent.
	Credit(ctx context.Context, userID, amount, writerID int64, now time.Time) error
}

type SponsorshipRepository interface {
	Create(ctx context.Context, s *Sponsorship, writerID int64) error
}

// Order is the subset of tb_store_order the confirmation flow reads.
type Order struct {
	ID         int64
	OrderNo    string
	UserID     int64
	TotalPrice int64
	Status     vo.OrderStatus
}

type OrderRepository interface {
	GetByOrderNo(ctx context.Context, orderNo string) (*Order, error)
	// TransitionStatus moves from -> to only when the row is currently in from.
	TransitionStatus(ctx context.Context, orderNo string, from, to vo.OrderStatus, writerID int64, now time.Time) (bool, error)
}
