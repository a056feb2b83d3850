package models

// OrderStatus is the lifecycle state of an order. A draft starts Pending and
// becomes Paid after payment confirmation; there are no other states.
type OrderStatus string

const (
	StatusPending OrderStatus = "Pending"
	StatusPaid    OrderStatus = "Paid"
)

// OrderLine is one selected service within an order.
type OrderLine struct {
	ServiceID           string `json:"serviceId" validate:"required"`
	Quantity            int    `json:"quantity" validate:"min=1,max=999"`
	Unit                string `json:"unit" validate:"required"`
	SpecialInstructions string `json:"specialInstructions,omitempty"`
}

// Address is the pickup/delivery address captured on the order form.
type Address struct {
	Street  string `json:"street" validate:"required"`
	City    string `json:"city" validate:"required"`
	Pincode string `json:"pincode" validate:"required"`
}

// Schedule holds the pickup and delivery slots for an order.
type Schedule struct {
	PickupDate   string `json:"pickupDate" validate:"required"`
	PickupTime   string `json:"pickupTime" validate:"required"`
	DeliveryDate string `json:"deliveryDate" validate:"required"`
	DeliveryTime string `json:"deliveryTime" validate:"required"`
}

// Order is a laundry order. Before payment it lives in the store as the
// single current draft; once paid it is appended to the order history.
type Order struct {
	ID        string      `json:"id"`
	Services  []OrderLine `json:"services" validate:"min=1,dive"`
	Address   Address     `json:"address"`
	Schedule  Schedule    `json:"schedule"`
	Status    OrderStatus `json:"status"`
	Timestamp string      `json:"timestamp"` // RFC 3339 creation instant
}
