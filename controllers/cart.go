package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"phihorizon/catalog"
	"phihorizon/store"
)

// CartController handles cart and coupon requests
type CartController struct {
	Store   *store.Store
	Catalog *catalog.Catalog
}

// NewCartController creates a new CartController
func NewCartController(s *store.Store, c *catalog.Catalog) *CartController {
	return &CartController{Store: s, Catalog: c}
}

func (cc *CartController) writeCart(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"items":  cc.Store.Cart(),
		"totals": cc.Store.Totals(),
		"coupon": cc.Store.Coupon(),
	})
}

// GetCart returns the cart lines together with the derived totals
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	cc.writeCart(w)
}

// AddToCart adds a product line to the cart. An existing line for the same
// product and variant selection is incremented instead.
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID        string            `json:"productId"`
		Quantity         int               `json:"quantity"`
		SelectedVariants map[string]string `json:"selectedVariants"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, ok := cc.Catalog.ByID(body.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	if body.Quantity <= 0 {
		body.Quantity = 1
	}

	cc.Store.AddToCart(product, body.Quantity, body.SelectedVariants)
	cc.writeCart(w)
}

// UpdateCartItem sets the quantity of one cart line. A quantity of zero or
// less removes the line.
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID        string            `json:"productId"`
		Quantity         int               `json:"quantity"`
		SelectedVariants map[string]string `json:"selectedVariants"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	cc.Store.UpdateCartItem(body.ProductID, body.SelectedVariants, body.Quantity)
	cc.writeCart(w)
}

// RemoveFromCart removes every line for a product id
func (cc *CartController) RemoveFromCart(w http.ResponseWriter, r *http.Request) {
	cc.Store.RemoveFromCart(mux.Vars(r)["product_id"])
	cc.writeCart(w)
}

// ClearCart empties the cart and drops the active coupon
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	cc.Store.ClearCart()
	cc.writeCart(w)
}

// ApplyCoupon activates a coupon code against the current cart
func (cc *CartController) ApplyCoupon(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	if !cc.Store.ApplyCoupon(body.Code) {
		http.Error(w, "Invalid coupon code", http.StatusBadRequest)
		return
	}
	cc.writeCart(w)
}
