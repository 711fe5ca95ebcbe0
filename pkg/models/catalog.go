package models

import "time"

// SizeVariant represents one purchasable size of a product as delivered by the shop API
type SizeVariant struct {
	Size   string  `json:"size"`
	SizeID string  `json:"size_id"`
	Price  float64 `json:"price"`
}

// ProductRecord is the raw product payload from the shop API
type ProductRecord struct {
	ProductID   string        `json:"product_id"`
	ProductName string        `json:"product_name"`
	Description string        `json:"description"`
	Category    string        `json:"category"`
	ImageURL    string        `json:"image_url"`
	ImageURL2   string        `json:"image_url_2"`
	Discount    float64       `json:"discount"`
	Stock       int           `json:"stock"`
	Sizes       []SizeVariant `json:"sizes"`
}

// PriceOption is a size variant with its discounted price applied
type PriceOption struct {
	Size            string  `json:"size"`
	SizeID          string  `json:"size_id"`
	Price           float64 `json:"price"`
	DiscountedPrice float64 `json:"discounted_price"`
}

// NormalizedProduct is the display-ready product derived from a ProductRecord
type NormalizedProduct struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	SKU           string        `json:"sku"`
	Description   string        `json:"description"`
	Category      string        `json:"category"`
	OriginalPrice float64       `json:"original_price"`
	CurrentPrice  float64       `json:"current_price"`
	Discount      float64       `json:"discount"`
	DefaultImage  string        `json:"default_image"`
	HoverImage    string        `json:"hover_image"`
	Stock         int           `json:"stock"`
	Sizes         []PriceOption `json:"sizes"`
	ListedAt      time.Time     `json:"listed_at"`
}

// ViewState holds the user-selected filter/sort/paginate state
type ViewState struct {
	Category     string  `json:"category"`
	PriceCeiling float64 `json:"price_ceiling"`
	SortKey      string  `json:"sort_key"`
	Page         int     `json:"page"`
}

// PageView is one page of the filtered/sorted catalog
type PageView struct {
	ItemIDs    []string `json:"item_ids"`
	TotalCount int      `json:"total_count"`
	TotalPages int      `json:"total_pages"`
	Page       int      `json:"page"`
}

// Review represents a product review from the shop API
type Review struct {
	CustomerName string  `json:"customer_name"`
	ReviewDate   string  `json:"review_date"`
	Rating       int     `json:"rating"`
	Comment      string  `json:"comment"`
	ReviewImg    *string `json:"review_img"`
}
