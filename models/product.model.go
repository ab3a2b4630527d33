package models

// ProductVariant is a named option group on a product, e.g. Color -> [Black, White]
type ProductVariant struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Options []string `json:"options"`
}

// Product represents a catalog entry
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	Price         float64          `json:"price"`
	OriginalPrice float64          `json:"originalPrice,omitempty"`
	Discount      int              `json:"discount,omitempty"`
	Category      string           `json:"category"`
	Subcategory   string           `json:"subcategory"`
	Brand         string           `json:"brand"`
	Images        []string         `json:"images"`
	Variants      []ProductVariant `json:"variants"`
	Stock         int              `json:"stock"`
	SKU           string           `json:"sku"`
	Rating        float64          `json:"rating"`
	ReviewCount   int              `json:"reviewCount"`
	Tags          []string         `json:"tags"`
	Featured      bool             `json:"featured,omitempty"`
}
