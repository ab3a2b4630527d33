package models

import (
	"sort"
	"strings"
)

// CartItem is one line in the cart. Two lines for the same product with
// different variant selections are distinct.
type CartItem struct {
	ProductID        string            `json:"productId"`
	Product          Product           `json:"product"`
	Quantity         int               `json:"quantity"`
	SelectedVariants map[string]string `json:"selectedVariants"`
}

// VariantKey canonicalizes a variant selection so it can be compared
// regardless of map iteration order.
func VariantKey(selected map[string]string) string {
	if len(selected) == 0 {
		return ""
	}
	keys := make([]string, 0, len(selected))
	for k := range selected {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+"="+selected[k])
	}
	return strings.Join(parts, "&")
}

// LineKey identifies a cart line: product id plus canonical variant selection.
func (c CartItem) LineKey() string {
	return c.ProductID + "|" + VariantKey(c.SelectedVariants)
}

// WishlistItem is a saved product. One entry per product id.
type WishlistItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Product   Product `json:"product"`
}
