package catalog

import (
	"strings"

	"cafehub/pkg/models"
)

// PlaceholderImage is used when a product record carries no image URL
const PlaceholderImage = "https://via.placeholder.com/600"

// DefaultCategory is assigned to records without a category label
const DefaultCategory = "others"

// Normalize converts a raw product record into its display-ready form.
// Malformed records are tolerated via defaulting, never rejected.
func Normalize(rec models.ProductRecord) models.NormalizedProduct {
	discount := clampDiscount(rec.Discount)

	defaultSize := pickDefaultSize(rec.Sizes)
	originalPrice := defaultSize.Price
	currentPrice := applyDiscount(originalPrice, discount)

	category := strings.ToLower(strings.TrimSpace(rec.Category))
	if category == "" {
		category = DefaultCategory
	}

	description := rec.Description
	if description == "" {
		description = "No description available."
	}

	defaultImage := rec.ImageURL
	if defaultImage == "" {
		defaultImage = PlaceholderImage
	}
	hoverImage := rec.ImageURL2
	if hoverImage == "" {
		hoverImage = defaultImage
	}

	sizes := make([]models.PriceOption, 0, len(rec.Sizes))
	for _, s := range rec.Sizes {
		sizes = append(sizes, models.PriceOption{
			Size:            s.Size,
			SizeID:          s.SizeID,
			Price:           s.Price,
			DiscountedPrice: applyDiscount(s.Price, discount),
		})
	}

	return models.NormalizedProduct{
		ID:            rec.ProductID,
		Title:         rec.ProductName,
		SKU:           strings.ToUpper(rec.ProductID),
		Description:   description,
		Category:      category,
		OriginalPrice: originalPrice,
		CurrentPrice:  currentPrice,
		Discount:      discount,
		DefaultImage:  defaultImage,
		HoverImage:    hoverImage,
		Stock:         rec.Stock,
		Sizes:         sizes,
	}
}

// pickDefaultSize selects the variant labeled "S", falling back to the first
// variant, then to a zero-price placeholder for records without sizes
func pickDefaultSize(sizes []models.SizeVariant) models.SizeVariant {
	for _, s := range sizes {
		if s.Size == "S" {
			return s
		}
	}
	if len(sizes) > 0 {
		return sizes[0]
	}
	return models.SizeVariant{}
}

func applyDiscount(price, discount float64) float64 {
	if discount <= 0 {
		return price
	}
	return price * (1 - discount/100)
}

func clampDiscount(discount float64) float64 {
	if discount < 0 {
		return 0
	}
	if discount > 100 {
		return 100
	}
	return discount
}
