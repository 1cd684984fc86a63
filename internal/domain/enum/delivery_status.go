package enum

// DeliveryStatus represents the dispatch state of an order record
type DeliveryStatus string

const (
	DeliveryStatusPending    DeliveryStatus = "pending"
	DeliveryStatusDispatched DeliveryStatus = "dispatched"
	DeliveryStatusDelivered  DeliveryStatus = "delivered"
	DeliveryStatusReturned   DeliveryStatus = "returned"
)

// Valid reports whether the status is a known value.
func (s DeliveryStatus) Valid() bool {
	switch s {
	case DeliveryStatusPending, DeliveryStatusDispatched,
		DeliveryStatusDelivered, DeliveryStatusReturned:
		return true
	}
	return false
}
