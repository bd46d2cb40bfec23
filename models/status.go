package models

// Order and Prescription share one lifecycle enumeration.
const (
	StatusPending    = "pending"
	StatusProcessed  = "processed"
	StatusDispatched = "dispatched"
	StatusDelivered  = "delivered"
)

// Delivery task lifecycle, forward order: assigned -> picked_up ->
// out_for_delivery -> delivered.
const (
	DeliveryAssigned       = "assigned"
	DeliveryPickedUp       = "picked_up"
	DeliveryOutForDelivery = "out_for_delivery"
	DeliveryDelivered      = "delivered"
)

// ValidOrderStatus reports whether s is a member of the order/prescription
// status enumeration. Membership is the only check applied on updates: any
// member status may be set from any other by an authorized actor.
func ValidOrderStatus(s string) bool {
	switch s {
	case StatusPending, StatusProcessed, StatusDispatched, StatusDelivered:
		return true
	}
	return false
}

// ValidDeliveryStatus reports whether s is a member of the delivery status
// enumeration.
func ValidDeliveryStatus(s string) bool {
	switch s {
	case DeliveryAssigned, DeliveryPickedUp, DeliveryOutForDelivery, DeliveryDelivered:
		return true
	}
	return false
}

// OrderStatusLabel maps a status value to the label shown in notification
// emails.
func OrderStatusLabel(s string) string {
	switch s {
	case StatusPending:
		return "Order Received"
	case StatusProcessed:
		return "Ready for Dispatch"
	case StatusDispatched:
		return "Out for Delivery"
	case StatusDelivered:
		return "Delivered"
	}
	return s
}
