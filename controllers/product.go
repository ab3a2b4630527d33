package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"phihorizon/catalog"
	"phihorizon/models"
)

// ProductController handles product-related requests
type ProductController struct {
	Catalog *catalog.Catalog
}

// NewProductController creates a new ProductController
func NewProductController(c *catalog.Catalog) *ProductController {
	return &ProductController{Catalog: c}
}

// GetProducts lists the catalog, optionally filtered by category, search
// query or the featured flag
func (pc *ProductController) GetProducts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	products := pc.Catalog.List(catalog.Filter{
		Category: q.Get("category"),
		Search:   q.Get("search"),
		Featured: q.Get("featured") == "true",
	})

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(products)
}

// GetProductByID returns a single product
func (pc *ProductController) GetProductByID(w http.ResponseWriter, r *http.Request) {
	product, ok := pc.Catalog.ByID(mux.Vars(r)["id"])
	if !ok {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// CreateProduct adds a product to the in-memory catalog (Admin only).
// Catalog changes are not persisted; a restart restores the fixtures.
func (pc *ProductController) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	err := json.NewDecoder(r.Body).Decode(&product)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	if product.ID == "" {
		product.ID = uuid.NewString()
	}

	pc.Catalog.Add(product)
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// UpdateProduct replaces a catalog product (Admin only)
func (pc *ProductController) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	err := json.NewDecoder(r.Body).Decode(&product)
	if err != nil {
		http.Error(w, "Invalid input", http.StatusBadRequest)
		return
	}
	product.ID = mux.Vars(r)["id"]

	if !pc.Catalog.Update(product) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(product)
}

// DeleteProduct removes a catalog product (Admin only)
func (pc *ProductController) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if !pc.Catalog.Delete(mux.Vars(r)["id"]) {
		http.Error(w, "Product not found", http.StatusNotFound)
		return
	}
	json.NewEncoder(w).Encode(map[string]string{"message": "Product deleted"})
}
