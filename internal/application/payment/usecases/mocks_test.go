package usecases

import (
	"context"
	"time"

	"likenovel/internal/domain/payment"
	vo "likenovel/internal/domain/payment/valueobjects"
	"likenovel/internal/domain/user"
)

type mockProfiles struct {
	profiles map[int64]*user.Profile
	defaults map[int64]*user.Profile
}

func (m *mockProfiles) GetProfile(ctx context.Context, profileID int64) (*user.Profile, error) {
	return m.profiles[profileID], nil
}

func (m *mockProfiles) GetDefaultProfile(ctx context.Context, userID int64) (*user.Profile, error) {
	return m.defaults[userID], nil
}

// memCashbooks is an in-memory ledger with the same guard as the SQL debit.
type memCashbooks struct {
	balances map[int64]int64
}

func (m *memCashbooks) Balance(ctx context.Context, userID int64) (int64, error) {
	return m.balances[userID], nil
}

func (m *memCashbooks) Debit(ctx context.Context, userID, amount, writerID int64, now time.Time) (bool, error) {
	if m.balances[userID] < amount {
		return false, nil
	}
	m.balances[userID] -= amount
	return true, nil
}

func (m *memCashbooks) Credit(ctx context.Context, userID, amount, writerID int64, now time.Time) error {
	m.balances[userID] += amount
	return nil
}

type mockSponsorships struct {
	created []*payment.Sponsorship
}

func (m *mockSponsorships) Create(ctx context.Context, s *payment.Sponsorship, writerID int64) error {
	s.SetID(int64(len(m.created) + 1))
	m.created = append(m.created, s)
	return nil
}

type paymentCall struct {
	logType string
	userID  int64
	amount  int64
}

type recordingPayments struct {
	calls []paymentCall
}

func (r *recordingPayments) Payment(ctx context.Context, logType string, userID, amount int64) error {
	r.calls = append(r.calls, paymentCall{logType, userID, amount})
	return nil
}

type mockOrders struct {
	GetByOrderNoFunc     func(ctx context.Context, orderNo string) (*payment.Order, error)
	TransitionStatusFunc func(ctx context.Context, orderNo string, from, to vo.OrderStatus, writerID int64, now time.Time) (bool, error)
}

func (m *mockOrders) GetByOrderNo(ctx context.Context, orderNo string) (*payment.Order, error) {
	if m.GetByOrderNoFunc != nil {
		return m.GetByOrderNoFunc(ctx, orderNo)
	}
	return nil, nil
}

func (m *mockOrders) TransitionStatus(ctx context.Context, orderNo string, from, to vo.OrderStatus, writerID int64, now time.Time) (bool, error) {
	if m.TransitionStatusFunc != nil {
		return m.TransitionStatusFunc(ctx, orderNo, from, to, writerID, now)
	}
	return true, nil
}

type passthroughTx struct{}

func (passthroughTx) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
