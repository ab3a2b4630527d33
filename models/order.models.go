package models

import "time"

// OrderStatus is the fulfillment state of an order
type OrderStatus string

const (
	StatusProcessing OrderStatus = "processing"
	StatusPacked     OrderStatus = "packed"
	StatusShipped    OrderStatus = "shipped"
	StatusDelivered  OrderStatus = "delivered"
	StatusCancelled  OrderStatus = "cancelled"
)

// ValidStatus reports whether s is one of the known order statuses
func ValidStatus(s OrderStatus) bool {
	switch s {
	case StatusProcessing, StatusPacked, StatusShipped, StatusDelivered, StatusCancelled:
		return true
	}
	return false
}

// CartTotals is the derived pricing for the current cart and coupon.
// Always recomputed from its inputs, never stored.
type CartTotals struct {
	Subtotal float64 `json:"subtotal"`
	Discount float64 `json:"discount"`
	Tax      float64 `json:"tax"`
	Shipping float64 `json:"shipping"`
	Total    float64 `json:"total"`
}

// Order is an immutable snapshot of a checkout, except for Status which an
// admin may overwrite.
type Order struct {
	ID                string      `json:"id"`
	UserID            string      `json:"userId"`
	Items             []CartItem  `json:"items"`
	Subtotal          float64     `json:"subtotal"`
	Discount          float64     `json:"discount"`
	Tax               float64     `json:"tax"`
	Shipping          float64     `json:"shipping"`
	Total             float64     `json:"total"`
	Status            OrderStatus `json:"status"`
	ShippingAddress   Address     `json:"shippingAddress"`
	PaymentMethod     string      `json:"paymentMethod"`
	TrackingNumber    string      `json:"trackingNumber,omitempty"`
	CreatedAt         time.Time   `json:"createdAt"`
	EstimatedDelivery time.Time   `json:"estimatedDelivery"`
}
