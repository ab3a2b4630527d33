package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"phihorizon/catalog"
	"phihorizon/store"
)

// WishlistController handles wishlist requests
type WishlistController struct {
	Store   *store.Store
	Catalog *catalog.Catalog
}

// NewWishlistController creates a new WishlistController
func NewWishlistController(s *store.Store, c *catalog.Catalog) *WishlistController {
	return &WishlistController{Store: s, Catalog: c}
}

// GetWishlist returns the saved products
func (wc *WishlistController) GetWishlist(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wc.Store.Wishlist())
}

// AddToWishlist saves a product. Saving an already-saved product is a no-op.
func (wc *WishlistController) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID string `json:"productId"`
	}
	err := json.NewDecoder(r.Body).Decode(&body)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}

	product, ok := wc.Catalog.ByID(body.ProductID)
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}

	wc.Store.AddToWishlist(product)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wc.Store.Wishlist())
}

// RemoveFromWishlist drops a saved product
func (wc *WishlistController) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	wc.Store.RemoveFromWishlist(mux.Vars(r)["product_id"])
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(wc.Store.Wishlist())
}
