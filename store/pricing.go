package store

import "phihorizon/models"

// Valid coupon codes. Stored uppercase; matching is case-insensitive.
const (
	CouponWelcome10 = "WELCOME10"
	CouponSave20    = "SAVE20"
	CouponFlat50    = "FLAT50"
)

// Pricing constants.
const (
	taxRate               = 0.08
	shippingFee           = 10.0
	freeShippingThreshold = 100.0
	flat50Amount          = 50.0
)

func validCoupon(code string) bool {
	switch code {
	case CouponWelcome10, CouponSave20, CouponFlat50:
		return true
	}
	return false
}

// ComputeTotals derives the cart pricing from the cart lines and the active
// coupon. Tax applies to the post-discount amount; the shipping threshold is
// checked against the raw subtotal. FLAT50 deducts a flat 50 with no floor,
// so a small cart can end up with a negative total.
func ComputeTotals(cart []models.CartItem, coupon string) models.CartTotals {
	var subtotal float64
	for _, item := range cart {
		subtotal += item.Product.Price * float64(item.Quantity)
	}

	var discount float64
	switch coupon {
	case CouponWelcome10:
		discount = subtotal * 0.10
	case CouponSave20:
		discount = subtotal * 0.20
	case CouponFlat50:
		discount = flat50Amount
	}

	tax := (subtotal - discount) * taxRate

	shipping := shippingFee
	if subtotal > freeShippingThreshold {
		shipping = 0
	}

	return models.CartTotals{
		Subtotal: subtotal,
		Discount: discount,
		Tax:      tax,
		Shipping: shipping,
		Total:    subtotal - discount + tax + shipping,
	}
}
