package catalog

import "phihorizon/models"

// Fixture products seeded into every new catalog.
var fixtureProducts = []models.Product{
	{
		ID:            "1",
		Name:          "Premium Wireless Headphones",
		Description:   "Experience crystal-clear audio with our premium wireless headphones featuring active noise cancellation.",
		Price:         299.99,
		OriginalPrice: 399.99,
		Discount:      25,
		Category:      "Electronics",
		Subcategory:   "Audio",
		Brand:         "SoundPro",
		Images: []string{
			"https://images.unsplash.com/photo-1505740420928-5e560c06d30e?w=800&q=80",
			"https://images.unsplash.com/photo-1484704849700-f032a568e944?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "color", Name: "Color", Options: []string{"Black", "White", "Blue"}},
		},
		Stock:       50,
		SKU:         "WH-001",
		Rating:      4.5,
		ReviewCount: 128,
		Tags:        []string{"wireless", "noise-cancelling", "featured"},
		Featured:    true,
	},
	{
		ID:            "2",
		Name:          "Smart Fitness Watch",
		Description:   "Track your health and fitness goals with this advanced smartwatch featuring heart rate monitoring and GPS.",
		Price:         199.99,
		OriginalPrice: 249.99,
		Discount:      20,
		Category:      "Electronics",
		Subcategory:   "Wearables",
		Brand:         "FitTech",
		Images: []string{
			"https://images.unsplash.com/photo-1523275335684-37898b6baf30?w=800&q=80",
			"https://images.unsplash.com/photo-1546868871-7041f2a55e12?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "color", Name: "Color", Options: []string{"Black", "Silver", "Rose Gold"}},
			{ID: "size", Name: "Band Size", Options: []string{"Small", "Medium", "Large"}},
		},
		Stock:       75,
		SKU:         "FW-002",
		Rating:      4.7,
		ReviewCount: 256,
		Tags:        []string{"smartwatch", "fitness", "featured"},
		Featured:    true,
	},
	{
		ID:          "3",
		Name:        "Professional Camera",
		Description: "Capture stunning photos with this professional-grade camera featuring a 24MP sensor and 4K video recording.",
		Price:       1299.99,
		Category:    "Electronics",
		Subcategory: "Cameras",
		Brand:       "PhotoMaster",
		Images: []string{
			"https://images.unsplash.com/photo-1526170375885-4d8ecf77b99f?w=800&q=80",
			"https://images.unsplash.com/photo-1606980470166-78d3b4a34e15?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "lens", Name: "Lens Kit", Options: []string{"Body Only", "With 18-55mm", "With 18-135mm"}},
		},
		Stock:       25,
		SKU:         "CAM-003",
		Rating:      4.9,
		ReviewCount: 89,
		Tags:        []string{"camera", "professional", "featured"},
		Featured:    true,
	},
	{
		ID:            "4",
		Name:          "Running Shoes",
		Description:   "Lightweight and comfortable running shoes designed for maximum performance and durability.",
		Price:         89.99,
		OriginalPrice: 129.99,
		Discount:      31,
		Category:      "Fashion",
		Subcategory:   "Footwear",
		Brand:         "SportMax",
		Images: []string{
			"https://images.unsplash.com/photo-1542291026-7eec264c27ff?w=800&q=80",
			"https://images.unsplash.com/photo-1606107557195-0e29a4b5b4aa?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "size", Name: "Size", Options: []string{"7", "8", "9", "10", "11", "12"}},
			{ID: "color", Name: "Color", Options: []string{"Black", "White", "Blue", "Red"}},
		},
		Stock:       100,
		SKU:         "SHOE-004",
		Rating:      4.6,
		ReviewCount: 342,
		Tags:        []string{"shoes", "running", "sports"},
		Featured:    true,
	},
	{
		ID:          "5",
		Name:        "Laptop Backpack",
		Description: "Durable and stylish backpack with padded laptop compartment and multiple pockets for organization.",
		Price:       49.99,
		Category:    "Accessories",
		Subcategory: "Bags",
		Brand:       "TravelGear",
		Images: []string{
			"https://images.unsplash.com/photo-1553062407-98eeb64c6a62?w=800&q=80",
			"https://images.unsplash.com/photo-1622560480605-d83c853bc5c3?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "color", Name: "Color", Options: []string{"Black", "Gray", "Navy"}},
		},
		Stock:       60,
		SKU:         "BAG-005",
		Rating:      4.4,
		ReviewCount: 145,
		Tags:        []string{"backpack", "travel", "laptop", "featured"},
		Featured:    true,
	},
	{
		ID:            "6",
		Name:          "Wireless Gaming Mouse",
		Description:   "High-precision wireless gaming mouse with customizable RGB lighting and programmable buttons.",
		Price:         79.99,
		OriginalPrice: 99.99,
		Discount:      20,
		Category:      "Electronics",
		Subcategory:   "Gaming",
		Brand:         "GamePro",
		Images: []string{
			"https://images.unsplash.com/photo-1527814050087-3793815479db?w=800&q=80",
			"https://images.unsplash.com/photo-1615663245857-ac93bb7c39e7?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "color", Name: "Color", Options: []string{"Black", "White"}},
		},
		Stock:       80,
		SKU:         "MOUSE-006",
		Rating:      4.8,
		ReviewCount: 276,
		Tags:        []string{"gaming", "mouse", "wireless", "featured"},
		Featured:    true,
	},
	{
		ID:          "7",
		Name:        "Premium Sunglasses",
		Description: "Stylish sunglasses with UV protection and polarized lenses for ultimate eye protection.",
		Price:       159.99,
		Category:    "Fashion",
		Subcategory: "Eyewear",
		Brand:       "StyleVision",
		Images: []string{
			"https://images.unsplash.com/photo-1572635196237-14b3f281503f?w=800&q=80",
			"https://images.unsplash.com/photo-1511499767150-a48a237f0083?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "style", Name: "Style", Options: []string{"Classic", "Aviator", "Wayfarer"}},
			{ID: "color", Name: "Frame Color", Options: []string{"Black", "Gold", "Silver"}},
		},
		Stock:       45,
		SKU:         "SUN-007",
		Rating:      4.5,
		ReviewCount: 98,
		Tags:        []string{"sunglasses", "fashion", "accessories", "featured"},
		Featured:    true,
	},
	{
		ID:            "8",
		Name:          "Bluetooth Speaker",
		Description:   "Portable waterproof Bluetooth speaker with 360 degree sound and 20-hour battery life.",
		Price:         129.99,
		OriginalPrice: 179.99,
		Discount:      28,
		Category:      "Electronics",
		Subcategory:   "Audio",
		Brand:         "SoundWave",
		Images: []string{
			"https://images.unsplash.com/photo-1608043152269-423dbba4e7e1?w=800&q=80",
			"https://images.unsplash.com/photo-1589492477829-5e65395b66cc?w=800&q=80",
		},
		Variants: []models.ProductVariant{
			{ID: "color", Name: "Color", Options: []string{"Black", "Blue", "Red", "Green"}},
		},
		Stock:       55,
		SKU:         "SPEAK-008",
		Rating:      4.7,
		ReviewCount: 187,
		Tags:        []string{"speaker", "bluetooth", "portable", "featured"},
		Featured:    true,
	},
}
