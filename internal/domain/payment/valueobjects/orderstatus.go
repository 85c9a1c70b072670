package valueobjects

// OrderStatus is the two-digit store order state stored in tb_store_order.order_status.
type OrderStatus string

const (
	OrderStatusAwaitingDeposit OrderStatus = "10"
	OrderStatusConfirmed       OrderStatus = "20"
)

var validOrderStatuses = map[OrderStatus]bool{
	OrderStatusAwaitingDeposit: true,
	OrderStatusConfirmed:       true,
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	return validOrderStatuses[s]
}

// CanConfirm reports whether a virtual-account deposit may confirm the order.
func (s OrderStatus) CanConfirm() bool {
	return s == OrderStatusAwaitingDeposit
}

// StatisticsType is the type column of tb_payment_statistics_log.
type StatisticsType string

const (
	StatisticsDonation StatisticsType = "donation"
	StatisticsDeposit  StatisticsType = "deposit"
)
