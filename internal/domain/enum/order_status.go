package enum

// OrderStatus represents the lifecycle status of an order record
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusApproved  OrderStatus = "approved"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCompleted OrderStatus = "completed"
	OrderStatusCancelled OrderStatus = "cancelled"
	OrderStatusRejected  OrderStatus = "rejected"
)

// ExcludedFromMonetaryAggregation lists the statuses removed from monetary
// aggregation inputs when no explicit status filter is supplied.
func ExcludedFromMonetaryAggregation() []OrderStatus {
	return []OrderStatus{OrderStatusCancelled, OrderStatusRejected}
}

// Valid reports whether the status is a known value.
func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStatusPending, OrderStatusApproved, OrderStatusDelivered,
		OrderStatusCompleted, OrderStatusCancelled, OrderStatusRejected:
		return true
	}
	return false
}
